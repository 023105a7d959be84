package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/config"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps http.Server with graceful shutdown support.
type Server struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// NewServer creates a new HTTP server from the given config and handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	logger = logging.OrDiscard(logger)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// Start begins listening and serving HTTP requests.
// It blocks until the server stops. Returns nil on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", slog.String("addr", s.srv.Addr))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests to
// complete within the context deadline. If ctx has no deadline, the
// configured server.shutdown_timeout applies.
//
// The signature satisfies the samber/do shutdowner contract so the server is
// stopped when the root scope is shut down.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	s.logger.InfoContext(ctx, "shutting down HTTP server", slog.Duration("timeout", s.shutdownTimeout))
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Addr returns the server's configured listen address string.
func (s *Server) Addr() string {
	return s.srv.Addr
}
