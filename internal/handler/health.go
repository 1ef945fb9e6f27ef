package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DatabaseHealth reports the state of the audit database.
type DatabaseHealth interface {
	Health(ctx context.Context) map[string]string
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Reports whether the service is running and, when the audit log is enabled, its database state.
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /health [get]
func HealthHandler(db DatabaseHealth) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "ok", "service": "alzheimer-risk-predictor"}
		if db == nil {
			c.JSON(http.StatusOK, body)
			return
		}
		stats := db.Health(c.Request.Context())
		body["database"] = stats
		if stats["status"] != "up" {
			body["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
