package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"AlzheimerRiskPredictor/internal/auth"
	"AlzheimerRiskPredictor/internal/middleware"
	"AlzheimerRiskPredictor/internal/models"
	"AlzheimerRiskPredictor/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeHistory struct {
	records   []models.Record
	counts    []models.KindCount
	err       error
	lastLimit int
}

func (f *fakeHistory) ListRecords(ctx context.Context, limit int) ([]models.Record, error) {
	f.lastLimit = limit
	return f.records, f.err
}

func (f *fakeHistory) GetRecord(ctx context.Context, id string) (models.Record, error) {
	if f.err != nil {
		return models.Record{}, f.err
	}
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Record{}, storage.ErrRecordNotFound
}

func (f *fakeHistory) CountByKind(ctx context.Context) ([]models.KindCount, error) {
	return f.counts, f.err
}

func newAdminRouter(t *testing.T, history HistoryStore) (*gin.Engine, *auth.Manager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := auth.NewManager("secret", time.Hour)
	admin := NewAdminHandler("operator", string(hash), tokens, history)

	r := gin.New()
	r.POST("/admin/login", admin.Login)
	protected := r.Group("/admin", middleware.AuthMiddleware(tokens))
	protected.GET("/history", admin.GetHistory)
	protected.GET("/history/summary", admin.GetSummary)
	protected.GET("/history/:id", admin.GetRecord)
	return r, tokens
}

func login(t *testing.T, r http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return postJSON(t, r, "/admin/login", LoginRequest{Username: username, Password: password})
}

func authedGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return perform(r, req)
}

func TestAdminLogin(t *testing.T) {
	r, tokens := newAdminRouter(t, &fakeHistory{})

	w := login(t, r, "operator", "s3cret-pass")
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginSuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
}

func TestAdminLoginRejected(t *testing.T) {
	r, _ := newAdminRouter(t, &fakeHistory{})

	tests := []struct{ username, password string }{
		{"operator", "wrong"},
		{"someone", "s3cret-pass"},
		{"", ""},
	}
	for _, tt := range tests {
		w := login(t, r, tt.username, tt.password)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tt)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, perform(r, req).Code)
}

func TestAdminHistory(t *testing.T) {
	history := &fakeHistory{records: []models.Record{
		{ID: "b", Channel: ChannelAPI, Kind: "success", HTTPStatus: 200, CreatedAt: time.Now().UTC()},
		{ID: "a", Channel: ChannelForm, Kind: "auth_error", HTTPStatus: 401, CreatedAt: time.Now().UTC()},
	}}
	r, tokens := newAdminRouter(t, history)
	token, err := tokens.GenerateToken("operator")
	require.NoError(t, err)

	w := authedGet(r, "/admin/history?limit=5", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, history.lastLimit)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.History, 2)
	assert.Equal(t, "b", resp.History[0].ID)

	w = authedGet(r, "/admin/history", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, history.lastLimit)

	for _, bad := range []string{"0", "-3", "ten"} {
		assert.Equal(t, http.StatusBadRequest, authedGet(r, "/admin/history?limit="+bad, token).Code, bad)
	}
}

func TestAdminGetRecord(t *testing.T) {
	history := &fakeHistory{records: []models.Record{{ID: "rec-1", Channel: ChannelWebSocket, Kind: "rate_limited", HTTPStatus: 429}}}
	r, tokens := newAdminRouter(t, history)
	token, err := tokens.GenerateToken("operator")
	require.NoError(t, err)

	w := authedGet(r, "/admin/history/rec-1", token)
	require.Equal(t, http.StatusOK, w.Code)
	var record models.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "rate_limited", record.Kind)
	assert.Equal(t, 429, record.HTTPStatus)

	assert.Equal(t, http.StatusNotFound, authedGet(r, "/admin/history/missing", token).Code)
}

func TestAdminHistoryRequiresSession(t *testing.T) {
	r, tokens := newAdminRouter(t, &fakeHistory{})

	w := perform(r, httptest.NewRequest(http.MethodGet, "/admin/history", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	submission, err := tokens.GenerateSubmissionToken()
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, authedGet(r, "/admin/history", submission).Code)
}

func TestAdminSummary(t *testing.T) {
	history := &fakeHistory{counts: []models.KindCount{{Kind: "success", Count: 3}, {Kind: "api_error", Count: 1}}}
	r, tokens := newAdminRouter(t, history)
	token, err := tokens.GenerateToken("operator")
	require.NoError(t, err)

	w := authedGet(r, "/admin/history/summary", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, history.counts, resp.Summary)
}

func TestAdminStoreFailure(t *testing.T) {
	r, tokens := newAdminRouter(t, &fakeHistory{err: errors.New("database is locked")})
	token, err := tokens.GenerateToken("operator")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, authedGet(r, "/admin/history", token).Code)
	assert.Equal(t, http.StatusInternalServerError, authedGet(r, "/admin/history/summary", token).Code)
	assert.Equal(t, http.StatusInternalServerError, authedGet(r, "/admin/history/some-id", token).Code)
}
