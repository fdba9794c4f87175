package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"trivium-hq/vesta/pkg/api"
	"trivium-hq/vesta/pkg/api/handlers"
	"trivium-hq/vesta/pkg/api/middleware"
	"trivium-hq/vesta/pkg/archive"
	"trivium-hq/vesta/pkg/config"
	"trivium-hq/vesta/pkg/providers"
	"trivium-hq/vesta/pkg/storage"
	"trivium-hq/vesta/pkg/telemetry/metrics"
)

// Server is the Vesta HTTP server.
type Server struct {
	config       *config.Config
	httpServer   *http.Server
	store        storage.Store
	storeOpenErr error
	provider     providers.Provider
	recorder     *archive.Recorder
	collector    *metrics.Collector
	logger       *slog.Logger
	shutdownOnce sync.Once
}

// Option configures an optional server collaborator.
type Option func(*Server)

// WithStore attaches the database store backing the /test probe and the
// quiz archive. openErr carries the error from a failed store open so the
// probe can report it; pass a nil store with a non-nil openErr in that case.
func WithStore(store storage.Store, openErr error) Option {
	return func(s *Server) {
		s.store = store
		s.storeOpenErr = openErr
	}
}

// WithProvider attaches the generative provider used by the quiz endpoint.
func WithProvider(provider providers.Provider) Option {
	return func(s *Server) {
		s.provider = provider
	}
}

// WithRecorder attaches the archive recorder for served quiz items.
func WithRecorder(recorder *archive.Recorder) Option {
	return func(s *Server) {
		s.recorder = recorder
	}
}

// WithCollector attaches the metrics collector. It drives both the
// per-request metrics middleware and the /metrics endpoint.
func WithCollector(collector *metrics.Collector) Option {
	return func(s *Server) {
		s.collector = collector
	}
}

// New creates the server and builds its route and middleware stack.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	s := &Server{
		config: cfg,
		logger: slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:           cfg.Server.ListenAddress,
		Handler:        s.buildHandler(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s, nil
}

// Start starts the HTTP server and blocks until the context is cancelled
// or the listener fails. Cancellation triggers a graceful shutdown bounded
// by the configured ShutdownTimeout.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting server",
			"address", s.httpServer.Addr,
			"database_configured", s.store != nil,
			"provider_configured", s.provider != nil,
			"metrics_enabled", s.config.Telemetry.Metrics.Enabled,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server. It is safe to call more than
// once; only the first call performs the shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.logger.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String(),
		)

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			return
		}

		s.logger.Info("server stopped")
	})

	return shutdownErr
}

// Handler returns the fully wired HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// buildHandler configures HTTP routes and the middleware chain.
func (s *Server) buildHandler() http.Handler {
	mux := http.NewServeMux()

	// "/{$}" matches only the root path itself; the bare "/" pattern
	// below catches every path no other route claims.
	mux.Handle("/{$}", handlers.NewGreetingHandler(handlers.RootGreeting))
	mux.Handle("/api/hello", handlers.NewGreetingHandler(handlers.APIGreeting))
	mux.Handle("/test", handlers.NewStatusHandler(s.store, s.storeOpenErr))
	mux.Handle("/quiz", handlers.NewQuizHandler(s.provider, s.recorder, s.collector))

	if s.config.Telemetry.Metrics.Enabled && s.collector != nil {
		mux.Handle(s.metricsPath(), s.collector.Handler())
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_ = api.WriteError(w, api.NewNotFoundError(r.URL.Path))
	})

	// Apply middleware chain
	var handler http.Handler = mux

	// Timeout middleware (innermost)
	handler = middleware.TimeoutMiddleware(s.config.Server.RequestTimeout)(handler)

	// CORS middleware
	handler = middleware.CORSMiddleware(s.corsConfig())(handler)

	// Request ID middleware
	handler = middleware.RequestIDMiddleware(handler)

	// Metrics middleware
	handler = middleware.MetricsMiddleware(s.collector)(handler)

	// Logging middleware
	handler = middleware.LoggingMiddleware(handler)

	// Recovery middleware (outermost)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

func (s *Server) metricsPath() string {
	if s.config.Telemetry.Metrics.Path != "" {
		return s.config.Telemetry.Metrics.Path
	}
	return config.DefaultMetricsPath
}

// corsConfig converts config.CORSConfig to the middleware's type.
func (s *Server) corsConfig() *middleware.CORSConfig {
	return &middleware.CORSConfig{
		Enabled:          s.config.Server.CORS.Enabled,
		AllowedOrigins:   s.config.Server.CORS.AllowedOrigins,
		AllowedMethods:   s.config.Server.CORS.AllowedMethods,
		AllowedHeaders:   s.config.Server.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:           s.config.Server.CORS.MaxAge,
		AllowCredentials: s.config.Server.CORS.AllowCredentials,
	}
}
