// Package httpapi serves the TextSummary HTTP API with chi.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/localrivet/textsummary/internal/config"
	"github.com/localrivet/textsummary/internal/summarizer"
)

// Options configures the router.
type Options struct {
	AllowedOrigins   []string
	RequestTimeout   time.Duration
	MaxBodyBytes     int64
	BatchConcurrency int
}

// OptionsFromConfig reads the router options from the HTTP and Summarizer
// configuration sections.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		AllowedOrigins:   cfg.Origins(),
		RequestTimeout:   cfg.RequestTimeoutDuration(),
		MaxBodyBytes:     int64(cfg.HTTP.MaxBodyBytes),
		BatchConcurrency: cfg.Summarizer.BatchConcurrency,
	}
}

// NewRouter builds and wires all routes.
func NewRouter(s *summarizer.FrequencySummarizer, opts Options, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = config.DefaultRequestTimeout * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = config.DefaultMaxBodyBytes
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{config.DefaultAllowedOrigins}
	}

	h := NewHandler(s, opts.BatchConcurrency, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.RequestSize(opts.MaxBodyBytes))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", h.Index)
	r.Post("/", h.IndexSubmit)
	r.Get("/health", h.Health)

	r.Post("/summarize", h.Summarize)
	r.Post("/summarize/batch", h.SummarizeBatch)
	r.Post("/summarize/file", h.SummarizeFile)

	return r
}

// requestLogger logs one line per request with slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("HTTP request",
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"remote_addr", r.RemoteAddr,
					"duration", time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
