// Package server exposes the decision engine over HTTP for the presentation
// layer: the intervention and insights operations plus the expense/profile
// persistence endpoints backing them.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/finguard/finguard/internal/advisor"
	"github.com/finguard/finguard/internal/narrative"
	"github.com/finguard/finguard/internal/storage"
)

// Config holds server configuration.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Deps are the collaborators the server routes requests to. The rewriter is
// constructed once at startup and passed in here rather than looked up
// globally.
type Deps struct {
	Classifier *advisor.Classifier
	Summarizer *advisor.Summarizer
	Rewriter   *narrative.Rewriter
	Store      *storage.Store
	Logger     *slog.Logger
}

// Server is the HTTP front end.
type Server struct {
	deps       Deps
	logger     *slog.Logger
	httpServer *http.Server
	shutdown   time.Duration
}

// New creates a server with its routes registered.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Classifier == nil || deps.Summarizer == nil || deps.Rewriter == nil {
		return nil, fmt.Errorf("classifier, summarizer and rewriter are required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 30 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		// Leaves headroom above the narrative provider's 15s bound.
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		deps:     deps,
		logger:   deps.Logger,
		shutdown: cfg.ShutdownTimeout,
	}

	router := mux.NewRouter()
	router.Use(s.requestIDMiddleware, s.loggingMiddleware, s.recoveryMiddleware)

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/intervention", s.handleIntervention).Methods(http.MethodPost)
	api.HandleFunc("/insights", s.handleInsights).Methods(http.MethodPost)

	if deps.Store != nil {
		api.HandleFunc("/expenses", s.handleCreateExpense).Methods(http.MethodPost)
		api.HandleFunc("/users/{id}/expenses", s.handleListExpenses).Methods(http.MethodGet)
		api.HandleFunc("/users/{id}/profile", s.handleGetProfile).Methods(http.MethodGet)
		api.HandleFunc("/users/{id}/profile", s.handlePutProfile).Methods(http.MethodPut)
		api.HandleFunc("/users/{id}/snapshot", s.handleSnapshot).Methods(http.MethodGet)
		api.HandleFunc("/users/{id}/insights", s.handleUserInsights).Methods(http.MethodGet)
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s, nil
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	s.logger.Info("shutting down HTTP server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
