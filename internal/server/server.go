/*
Package server builds the HTTP service: router, middleware chain and the
http.Server with its timeouts.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"AlzheimerRiskPredictor/internal/auth"
	"AlzheimerRiskPredictor/internal/config"
	"AlzheimerRiskPredictor/internal/handler"
	"AlzheimerRiskPredictor/internal/storage"
)

// Server holds the dependencies the routes are built from.
type Server struct {
	cfg      *config.Config
	assessor handler.Assessor
	tokens   *auth.Manager

	// store is the audit log; nil disables recording, history and the database health check.
	store *storage.Store

	// narrator is nil unless narration is enabled.
	narrator handler.Narrator
}

type Option func(*Server)

func WithStore(store *storage.Store) Option {
	return func(s *Server) { s.store = store }
}

func WithNarrator(n handler.Narrator) Option {
	return func(s *Server) { s.narrator = n }
}

func New(cfg *config.Config, assessor handler.Assessor, tokens *auth.Manager, opts ...Option) *Server {
	s := &Server{cfg: cfg, assessor: assessor, tokens: tokens}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HTTPServer wraps the router in an http.Server. The write timeout leaves room
// for the slowest upstream call the client allows.
func (s *Server) HTTPServer() (*http.Server, error) {
	router, err := s.RegisterRoutes()
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.cfg.OpenAI.Timeout + 15*time.Second,
	}, nil
}
