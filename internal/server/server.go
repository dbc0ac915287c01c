// ABOUTME: HTTP API for the bookchat backend
// ABOUTME: chi router wiring, lifecycle, and JSON response helpers
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bookchat/internal/config"
	"bookchat/internal/core"
)

// TextExtractor turns uploaded sources into raw document text.
type TextExtractor interface {
	ExtractFile(filename string, content []byte) (string, error)
	ExtractURL(ctx context.Context, url string) (string, error)
}

// Server is the HTTP server for the bookchat API.
type Server struct {
	engine    *core.Engine
	extractor TextExtractor
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(engine *core.Engine, extractor TextExtractor, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		engine:    engine,
		extractor: extractor,
		config:    cfg,
		logger:    logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Generation backoff alone can take ~7s; leave headroom for the model
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/", s.handleRoot)
	r.Post("/upload", s.handleUpload)
	r.Post("/chat", s.handleChat)
	r.Get("/characters", s.handleCharacters)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
