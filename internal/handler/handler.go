/**
* Name:         handler.go
* Description:  Shared pieces of the assessment handlers
* Workflow:     bind submission, check key, dispatch once, record outcome
 */
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"AlzheimerRiskPredictor/internal/llm"
	"AlzheimerRiskPredictor/internal/middleware"
	"AlzheimerRiskPredictor/internal/models"

	"github.com/gin-gonic/gin"
)

const missingKeyMessage = "Please enter your OpenAI API Key."

// Submission channels recorded in the audit log.
const (
	ChannelForm      = "form"
	ChannelAPI       = "api"
	ChannelWebSocket = "ws"
)

// Assessor turns a profile and a caller-supplied key into a classified result.
type Assessor interface {
	RequestAssessment(ctx context.Context, profile models.RiskProfile, apiKey string) (*llm.Result, error)
}

// Recorder stores submission outcomes.
type Recorder interface {
	CreateRecord(ctx context.Context, r *models.Record) error
}

// Narrator converts assessment text to audio.
type Narrator interface {
	Narrate(ctx context.Context, text string) ([]byte, error)
}

// AssessmentRequest is one submission of the form. The key is used for the
// single upstream call and is never stored or logged.
type AssessmentRequest struct {
	Age                  int    `json:"age" form:"age" binding:"required,min=30,max=120" example:"67"`
	Gender               string `json:"gender" form:"gender" binding:"required,oneof=Male Female" example:"Female"`
	Smoking              string `json:"smoking" form:"smoking" binding:"required,oneof=Non-Smoker Smoker" example:"Non-Smoker"`
	PhysicalActivity     string `json:"physical_activity" form:"physical_activity" binding:"required,oneof=High Moderate Low" example:"Moderate"`
	HeadTrauma           string `json:"head_trauma" form:"head_trauma" binding:"required,oneof=No Yes" example:"No"`
	FamilyHistory        string `json:"family_history" form:"family_history" binding:"required,oneof=No Yes" example:"Yes"`
	ChronicInflammation  string `json:"chronic_inflammation" form:"chronic_inflammation" binding:"required,oneof=No Yes" example:"No"`
	SocioeconomicFactors string `json:"socioeconomic_factors" form:"socioeconomic_factors" binding:"required,oneof=High Moderate Low" example:"High"`
	APIKey               string `json:"api_key" form:"api_key" example:"sk-..."`
}

func (r AssessmentRequest) Profile() models.RiskProfile {
	return models.RiskProfile{
		Age:                  r.Age,
		Gender:               models.Gender(r.Gender),
		Smoking:              models.SmokingStatus(r.Smoking),
		PhysicalActivity:     models.Level(r.PhysicalActivity),
		HeadTrauma:           models.Answer(r.HeadTrauma),
		FamilyHistory:        models.Answer(r.FamilyHistory),
		ChronicInflammation:  models.Answer(r.ChronicInflammation),
		SocioeconomicFactors: models.Level(r.SocioeconomicFactors),
	}
}

func (r AssessmentRequest) hasKey() bool {
	return strings.TrimSpace(r.APIKey) != ""
}

// AssessmentResponse is the JSON rendering of one classified result.
type AssessmentResponse struct {
	Kind       llm.Kind           `json:"kind" example:"success"`
	Text       string             `json:"text,omitempty"`
	StatusCode int                `json:"status_code,omitempty" example:"200"`
	Message    string             `json:"message"`
	Profile    models.RiskProfile `json:"profile"`
	RequestID  string             `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Please enter your OpenAI API Key."`
}

type Handler struct {
	assessor           Assessor
	recorder           Recorder
	narrator           Narrator
	tokens             TokenIssuer
	accessCodeRequired bool

	// allowedOrigins limits browser origins for the WebSocket; empty or "*" allows all.
	allowedOrigins []string
}

// TokenIssuer hands out and redeems single-use form submission tokens.
type TokenIssuer interface {
	GenerateSubmissionToken() (string, error)
	ConsumeSubmissionToken(token string) error
}

type Option func(*Handler)

// WithRecorder enables the audit log.
func WithRecorder(r Recorder) Option {
	return func(h *Handler) { h.recorder = r }
}

// WithNarrator enables text-to-speech of assessment text.
func WithNarrator(n Narrator) Option {
	return func(h *Handler) { h.narrator = n }
}

// WithAccessCodeField shows the access code field on the form.
func WithAccessCodeField(required bool) Option {
	return func(h *Handler) { h.accessCodeRequired = required }
}

// WithAllowedOrigins restricts which browser origins may open the assessment socket.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.allowedOrigins = origins }
}

func New(assessor Assessor, tokens TokenIssuer, opts ...Option) *Handler {
	h := &Handler{assessor: assessor, tokens: tokens}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NarrationEnabled reports whether the narration route should be served.
func (h *Handler) NarrationEnabled() bool {
	return h.narrator != nil
}

// assess dispatches one submission and records its outcome. The returned error
// is a precondition failure; nothing was sent upstream in that case.
func (h *Handler) assess(c *gin.Context, channel string, req AssessmentRequest) (*llm.Result, error) {
	logger := middleware.Logger(c)
	profile := req.Profile()

	start := time.Now()
	result, err := h.assessor.RequestAssessment(c.Request.Context(), profile, req.APIKey)
	elapsed := time.Since(start)
	if err != nil {
		logger.Warn().Err(err).Str("channel", channel).Msg("assess(): submission rejected before dispatch")
		return nil, err
	}

	event := logger.Info()
	if !result.OK() {
		event = logger.Warn().Str("detail", result.Message)
	}
	event.
		Str("channel", channel).
		Str("kind", string(result.Kind)).
		Int("upstream_status", result.StatusCode).
		Dur("elapsed", elapsed).
		Msg("assess(): assessment finished")

	if h.recorder != nil {
		record := &models.Record{
			RequestID:  middleware.RequestID(c),
			Channel:    channel,
			Kind:       string(result.Kind),
			HTTPStatus: result.StatusCode,
			DurationMS: elapsed.Milliseconds(),
		}
		// detached from the request so a client disconnect does not drop the record
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 2*time.Second)
		defer cancel()
		if err := h.recorder.CreateRecord(ctx, record); err != nil {
			logger.Error().Err(err).Msg("assess(): failed to record outcome")
		}
	}
	return result, nil
}

func newAssessmentResponse(c *gin.Context, result *llm.Result, profile models.RiskProfile) AssessmentResponse {
	return AssessmentResponse{
		Kind:       result.Kind,
		Text:       result.Text,
		StatusCode: result.StatusCode,
		Message:    result.Display(),
		Profile:    profile,
		RequestID:  middleware.RequestID(c),
	}
}

// httpStatusFor maps a result kind to the status of the JSON API response.
func httpStatusFor(kind llm.Kind) int {
	switch kind {
	case llm.KindSuccess:
		return http.StatusOK
	case llm.KindAuthError:
		return http.StatusUnauthorized
	case llm.KindRateLimited:
		return http.StatusTooManyRequests
	case llm.KindAPIError, llm.KindTransportError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// preconditionMessage renders a rejected submission for the user.
func preconditionMessage(err error) string {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return missingKeyMessage
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return "Please check your inputs: " + verr.Error()
	}
	return "Please check your inputs."
}
