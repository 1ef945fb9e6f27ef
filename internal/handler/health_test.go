package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDatabase map[string]string

func (f fakeDatabase) Health(ctx context.Context) map[string]string { return f }

func healthCode(db DatabaseHealth) (int, string) {
	r := gin.New()
	r.GET("/health", HealthHandler(db))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	return w.Code, w.Body.String()
}

func TestHealthHandler(t *testing.T) {
	code, body := healthCode(nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"status":"ok"`)

	code, body = healthCode(fakeDatabase{"status": "up"})
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"database"`)

	code, body = healthCode(fakeDatabase{"status": "down", "error": "db down"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body, `"status":"degraded"`)
}
