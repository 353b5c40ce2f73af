// Package server hosts the interactive diagram editor over HTTP.
//
// The server owns the editing surface: diagrams live in an in-memory
// session store keyed by uuid, and every edit replaces the session's
// network or style wholesale. Rendering goes through the shared
// pipeline.Runner so artifacts benefit from the same cache as the CLI.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/netsketch/netsketch/pkg/pipeline"
	"github.com/netsketch/netsketch/pkg/session"
)

// janitorInterval is how often expired sessions are swept.
const janitorInterval = 10 * time.Minute

// Server wires the session store, pipeline runner, and router together.
type Server struct {
	store      *session.MemoryStore
	runner     *pipeline.Runner
	logger     *log.Logger
	sessionTTL time.Duration
	router     chi.Router
}

// Config configures a Server.
type Config struct {
	Runner     *pipeline.Runner
	Logger     *log.Logger
	SessionTTL time.Duration
}

// New creates a Server and mounts its routes.
func New(cfg Config) *Server {
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = session.DefaultTTL
	}

	s := &Server{
		store:      session.NewMemoryStore(),
		runner:     cfg.Runner,
		logger:     cfg.Logger,
		sessionTTL: cfg.SessionTTL,
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// StartJanitor begins periodic eviction of expired sessions.
func (s *Server) StartJanitor(ctx context.Context) {
	s.store.StartJanitor(ctx, janitorInterval)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api/diagrams", func(r chi.Router) {
		r.Post("/", s.handleCreate)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/render", s.handleRender)

			r.Post("/layers", s.handleAddLayer)
			r.Put("/layers/{index}", s.handleSetNeurons)
			r.Delete("/layers/{index}", s.handleRemoveLayer)

			r.Patch("/style", s.handlePatchStyle)
			r.Post("/reroll", s.handleReroll)
		})
	})

	return r
}

// logRequests logs each request with method, path, status, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
