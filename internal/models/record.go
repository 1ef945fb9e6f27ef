package models

import "time"

// Record is the audit trail entry for one submission.
// It carries the outcome only; profile, key and assessment text are not kept.
type Record struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	Channel    string    `json:"channel"`
	Kind       string    `json:"kind"`
	HTTPStatus int       `json:"http_status,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// KindCount is one row of the outcome summary.
type KindCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}
