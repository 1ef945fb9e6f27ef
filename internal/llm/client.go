/**
* Name:         client.go
* Description:  OpenAI chat-completion client for risk assessments
* Workflow:     validate input, build prompt, send one request, classify the response
 */

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"AlzheimerRiskPredictor/internal/models"
)

const (
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultModel    = "gpt-4"
	DefaultTimeout  = 60 * time.Second

	// Temperature is fixed for every assessment.
	Temperature = 0.7

	unknownErrorMessage = "An unknown error occurred."
	maxResponseBytes    = 4 << 20
)

// ErrMissingAPIKey is returned before any request is made when no key was supplied.
var ErrMissingAPIKey = errors.New("missing OpenAI API key")

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error *struct {
		Message *string `json:"message"`
	} `json:"error"`
}

// Client sends assessment prompts to a chat-completion endpoint.
// It holds no credentials; the API key is passed on every call.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Model() string {
	return c.model
}

// RequestAssessment issues exactly one chat-completion request for the profile.
// Precondition failures (empty key, invalid profile) are returned as errors and
// nothing is sent; every other outcome is reported through the Result.
func (c *Client) RequestAssessment(ctx context.Context, profile models.RiskProfile, apiKey string) (*Result, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(ChatRequest{
		Model:       c.model,
		Messages:    []ChatMessage{{Role: "user", Content: BuildPrompt(profile)}},
		Temperature: Temperature,
	})
	if err != nil {
		return UnexpectedError(fmt.Sprintf("failed to encode request: %v", err)), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return UnexpectedError(fmt.Sprintf("failed to create request: %v", err)), nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransportError(err.Error()), nil
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return AuthError(), nil
	case http.StatusTooManyRequests:
		return RateLimited(), nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return TransportError(err.Error()), nil
	}

	if resp.StatusCode != http.StatusOK {
		return APIError(resp.StatusCode, errorMessage(body)), nil
	}
	return parseCompletion(body), nil
}

func parseCompletion(body []byte) *Result {
	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return UnexpectedError(fmt.Sprintf("failed to decode response: %v", err))
	}
	if len(completion.Choices) == 0 {
		return UnexpectedError("response contained no choices")
	}
	content := completion.Choices[0].Message.Content
	if content == nil {
		return UnexpectedError("response choice has no message content")
	}
	return Success(*content)
}

// errorMessage extracts error.message from an error body, falling back to a fixed text.
func errorMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return unknownErrorMessage
	}
	if e.Error == nil || e.Error.Message == nil {
		return unknownErrorMessage
	}
	return *e.Error.Message
}
