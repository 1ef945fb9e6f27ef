/**
* Name:         admin_handler.go
* Description:  Operator login and audit log endpoints
* Workflow:     login, list recent outcomes, look up one outcome, summarize by kind
 */
package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"AlzheimerRiskPredictor/internal/middleware"
	"AlzheimerRiskPredictor/internal/models"
	"AlzheimerRiskPredictor/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// HistoryStore reads the audit log.
type HistoryStore interface {
	ListRecords(ctx context.Context, limit int) ([]models.Record, error)
	GetRecord(ctx context.Context, id string) (models.Record, error)
	CountByKind(ctx context.Context) ([]models.KindCount, error)
}

type SessionIssuer interface {
	GenerateToken(username string) (string, error)
}

type AdminHandler struct {
	username     string
	passwordHash []byte
	tokens       SessionIssuer
	history      HistoryStore
}

func NewAdminHandler(username, passwordHash string, tokens SessionIssuer, history HistoryStore) *AdminHandler {
	return &AdminHandler{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
		history:      history,
	}
}

type LoginRequest struct {
	Username string `json:"username" example:"operator"`
	Password string `json:"password" example:"password123"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type HistoryResponse struct {
	History []models.Record `json:"history"`
}

type SummaryResponse struct {
	Summary []models.KindCount `json:"summary"`
	Total   int                `json:"total"`
}

// Login godoc
// @Summary      Operator login
// @Description  Exchanges the operator credentials for a JWT used by the audit endpoints.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "Operator credentials"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /admin/login [post]
func (a *AdminHandler) Login(c *gin.Context) {
	var credentials LoginRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	// the hash is always checked so unknown usernames take as long as wrong passwords
	userOK := subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(credentials.Password))
	if !userOK || passErr != nil {
		middleware.Logger(c).Warn().Msg("Login(): invalid operator credentials")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := a.tokens.GenerateToken(a.username)
	if err != nil {
		middleware.Logger(c).Error().Err(err).Msg("Login(): failed to generate token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, LoginSuccessResponse{Token: token})
}

// GetHistory godoc
// @Summary      Recent assessment outcomes
// @Description  Lists the most recent submissions (outcome kind, upstream status, latency). No profile data or keys are kept.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of records (default 50, max 500)"
// @Success      200 {object} handler.HistoryResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /admin/history [get]
func (a *AdminHandler) GetHistory(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive number"})
			return
		}
		limit = n
	}

	records, err := a.history.ListRecords(c.Request.Context(), limit)
	if err != nil {
		middleware.Logger(c).Error().Err(err).Msg("GetHistory(): failed to fetch records")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: records})
}

// GetRecord godoc
// @Summary      One assessment outcome
// @Description  Looks up a recorded submission by its record ID.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Record ID"
// @Success      200 {object} models.Record
// @Failure      401 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /admin/history/{id} [get]
func (a *AdminHandler) GetRecord(c *gin.Context) {
	record, err := a.history.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Record not found"})
			return
		}
		middleware.Logger(c).Error().Err(err).Msg("GetRecord(): failed to fetch record")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch record"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetSummary godoc
// @Summary      Outcome summary
// @Description  Counts recorded submissions per outcome kind.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SummaryResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /admin/history/summary [get]
func (a *AdminHandler) GetSummary(c *gin.Context) {
	counts, err := a.history.CountByKind(c.Request.Context())
	if err != nil {
		middleware.Logger(c).Error().Err(err).Msg("GetSummary(): failed to count records")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to summarize records"})
		return
	}
	total := 0
	for _, kc := range counts {
		total += kc.Count
	}
	c.JSON(http.StatusOK, SummaryResponse{Summary: counts, Total: total})
}
