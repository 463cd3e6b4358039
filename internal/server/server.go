package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sozercan/textlens/internal/analyzer"
	"github.com/sozercan/textlens/internal/config"
)

type Server struct {
	cfg      config.ServerConfig
	server   *http.Server
	router   *chi.Mux
	analyzer *analyzer.Analyzer
}

func New(cfg config.Config, analyzer *analyzer.Analyzer) *Server {
	s := &Server{
		cfg:      cfg.Server,
		router:   chi.NewRouter(),
		analyzer: analyzer,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(loggingMiddleware)
	s.router.Use(recoverer)
	s.router.Use(cors(s.cfg.CORSOrigins))
	if s.cfg.RequestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	s.router.Post("/analyze", s.handleAnalyze)
	s.router.Get("/health", s.handleHealth)

	// Serve the browser client
	fs := http.FileServer(http.Dir(s.cfg.StaticDir))
	s.router.Handle("/*", fs)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	// Create a channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Starting server", "address", s.server.Addr, "provider", s.analyzer.ProviderName())
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("Starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
