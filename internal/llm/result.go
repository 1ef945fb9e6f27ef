package llm

import "fmt"

// Kind tags the outcome of one assessment request.
type Kind string

const (
	KindSuccess         Kind = "success"
	KindAuthError       Kind = "auth_error"
	KindRateLimited     Kind = "rate_limited"
	KindAPIError        Kind = "api_error"
	KindTransportError  Kind = "transport_error"
	KindUnexpectedError Kind = "unexpected_error"
)

// Result is produced once per submission and handed straight to the display surface.
// StatusCode is the upstream HTTP status when a response was received.
type Result struct {
	Kind       Kind   `json:"kind"`
	Text       string `json:"text,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

func Success(text string) *Result {
	return &Result{Kind: KindSuccess, Text: text, StatusCode: 200}
}

func AuthError() *Result {
	return &Result{Kind: KindAuthError, StatusCode: 401}
}

func RateLimited() *Result {
	return &Result{Kind: KindRateLimited, StatusCode: 429}
}

func APIError(status int, message string) *Result {
	return &Result{Kind: KindAPIError, StatusCode: status, Message: message}
}

func TransportError(message string) *Result {
	return &Result{Kind: KindTransportError, Message: message}
}

func UnexpectedError(message string) *Result {
	return &Result{Kind: KindUnexpectedError, Message: message}
}

func (r *Result) OK() bool {
	return r.Kind == KindSuccess
}

// Display returns the text shown to the user for this outcome.
func (r *Result) Display() string {
	switch r.Kind {
	case KindSuccess:
		return r.Text
	case KindAuthError:
		return "Authentication Error: The API key provided is incorrect or unauthorized."
	case KindRateLimited:
		return "Rate Limit Exceeded: You've made too many requests. Please try again later."
	case KindAPIError:
		return fmt.Sprintf("Error %d: %s", r.StatusCode, r.Message)
	case KindTransportError:
		return "Request Error: " + r.Message
	default:
		return "An unexpected error occurred: " + r.Message
	}
}
