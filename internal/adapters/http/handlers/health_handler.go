// Package handlers implements the inbound HTTP endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http/dto"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/health"
	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

const statusOK = "ok"

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	readiness ports.ReadinessReporter
}

// NewHealthHandler creates a new HealthHandler backed by the given readiness
// reporter.
func NewHealthHandler(readiness ports.ReadinessReporter) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

// Liveness handles GET /health/live. Always returns 200 OK, including while
// the service drains.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 while every readiness
// controller is up and 503 once any of them went down.
func (h *HealthHandler) Readiness(w http.ResponseWriter, _ *http.Request) {
	ready := h.readiness.Ready()

	resp := dto.ReadinessResponse{
		Status:  health.StatusOf(ready).State,
		Details: h.readiness.Details(),
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, resp)
}
