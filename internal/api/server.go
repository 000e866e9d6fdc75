// Package api exposes the classifier over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Veraticus/gastx/internal/classification"
	"github.com/Veraticus/gastx/internal/config"
)

const maxJSONBytes = 1 << 20

// Server serves the HTTP API.
type Server struct {
	startTime  time.Time
	engine     *classification.Engine
	router     *mux.Router
	httpServer *http.Server
	version    string
	cfg        config.ServerConfig
}

// NewServer creates a server for engine. Routes are registered immediately.
func NewServer(engine *classification.Engine, cfg config.ServerConfig, version string) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = config.DefaultMaxUploadBytes
	}

	// Category names contain '/', so variables are matched on the escaped path.
	router := mux.NewRouter().UseEncodedPath()

	s := &Server{
		engine:    engine,
		router:    router,
		version:   version,
		cfg:       cfg,
		startTime: time.Now(),
	}
	s.registerRoutes()

	// Recovery -> Logging -> CORS
	handler := Recovery(Logging(CORS(cfg.AllowedOrigins)(router)))

	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/", s.HandleRoot).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.HandleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/upload/csv", s.HandleUploadCSV).Methods(http.MethodPost)

	v1 := s.router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/categories", s.HandleListCategories).Methods(http.MethodGet)
	v1.HandleFunc("/categories/{name}/patterns", s.HandleGetPatterns).Methods(http.MethodGet)
	v1.HandleFunc("/categories/{name}/patterns", s.HandleAddPattern).Methods(http.MethodPost)
	v1.HandleFunc("/classify", s.HandleClassify).Methods(http.MethodPost)
	v1.HandleFunc("/classify/batch", s.HandleClassifyBatch).Methods(http.MethodPost)
	v1.HandleFunc("/suggest", s.HandleSuggest).Methods(http.MethodPost)
	v1.HandleFunc("/stats", s.HandleStats).Methods(http.MethodPost)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		SendError(w, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		SendError(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "method not allowed")
	})
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Router returns the underlying router for testing.
func (s *Server) Router() *mux.Router {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.startTime = time.Now()
	slog.Info("Starting API server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
