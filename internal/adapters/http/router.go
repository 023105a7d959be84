// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is composed with [middleware.Chain] and applied globally: the
// first one given is the outermost.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	statusHandler *handlers.StatusHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	if len(middlewares) > 0 {
		r.Use(middleware.Chain(middlewares...))
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Method(http.MethodGet, "/health", statusHandler)

	return r
}
