package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.uber.org/atomic"

	"github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http/dto"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/buildinfo"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/health"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

// StatusControllerName identifies the status endpoint in the readiness
// registry.
const StatusControllerName = "status-endpoint"

// Compile-time interface check.
var _ ports.ReadinessController = (*StatusHandler)(nil)

// StatusHandler serves GET /health. It is a readiness controller of its own:
// once marked not-ready it answers 503 so callers polling it observe the
// shutdown as well.
type StatusHandler struct {
	ready     atomic.Bool
	hostname  string
	startedAt time.Time
	build     buildinfo.Info
	now       func() time.Time
	logger    *slog.Logger
}

// StatusOption configures a StatusHandler.
type StatusOption func(*StatusHandler)

// WithClock replaces time.Now, used for uptime.
func WithClock(now func() time.Time) StatusOption {
	return func(h *StatusHandler) { h.now = now }
}

// WithBuildInfo overrides the build metadata reported by the endpoint.
func WithBuildInfo(info buildinfo.Info) StatusOption {
	return func(h *StatusHandler) { h.build = info }
}

// NewStatusHandler creates a StatusHandler in the ready state.
func NewStatusHandler(logger *slog.Logger, opts ...StatusOption) *StatusHandler {
	logger = logging.OrDiscard(logger)

	hostname, err := os.Hostname()
	if err != nil {
		logger.Warn("resolving hostname", slog.Any("error", err))
		hostname = "unknown"
	}

	h := &StatusHandler{
		hostname: hostname,
		build:    buildinfo.Get(),
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.startedAt = h.now()
	h.ready.Store(true)

	return h
}

// Name returns the registry identity of the status endpoint.
func (h *StatusHandler) Name() string { return StatusControllerName }

// IsReady reports whether the endpoint still serves status.
func (h *StatusHandler) IsReady() bool { return h.ready.Load() }

// SetReady switches the endpoint to refusing with 503. Like the readiness
// probe it never comes back up once down.
func (h *StatusHandler) SetReady(ready bool) {
	if ready && !h.ready.Load() {
		h.logger.Warn(StatusControllerName+" is shutting down, ignoring SetReady(true)")
		return
	}
	if !ready {
		h.ready.Store(false)
	}
	h.logger.Info(StatusControllerName+" readiness changed",
		slog.String("detail", health.StatusOf(ready).Detail),
	)
}

// Status reports the endpoint's current readiness record.
func (h *StatusHandler) Status() health.Status {
	return health.StatusOf(h.IsReady())
}

// ServeHTTP handles GET /health.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.IsReady() {
		dto.WriteErrorResponse(w, r, ports.ErrShuttingDown)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{
		Hostname:  h.hostname,
		StartedAt: h.startedAt.UTC().Format(time.RFC3339),
		Uptime:    h.now().Sub(h.startedAt).Round(time.Second).String(),
		Build: dto.BuildInfo{
			Version:    h.build.Version,
			GitVersion: h.build.GitVersion,
			BuildTime:  h.build.BuildTime,
			LastCommit: dto.Commit{
				Author: h.build.LastCommitUser,
				ID:     h.build.LastCommitHash,
				Time:   h.build.LastCommitTime,
			},
		},
	})
}
