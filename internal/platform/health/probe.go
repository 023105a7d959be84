package health

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

// Compile-time interface check.
var _ ports.ReadinessController = (*Probe)(nil)

// DefaultProbeName is the registry key of the orchestrator-facing probe.
const DefaultProbeName = "gracefulshutdown"

// Probe status states and detail strings as exposed to the orchestrator.
const (
	StateUp   = "UP"
	StateDown = "DOWN"

	DetailUp   = "application up"
	DetailDown = "gracefully shutting down"
)

// Status is the observable record of a readiness controller.
type Status struct {
	State  string `json:"status"`
	Detail string `json:"detail"`
}

// StatusReporter is implemented by controllers that publish a [Status].
type StatusReporter interface {
	Status() Status
}

// Probe is the readiness state consulted by the load balancer or
// orchestrator. It starts ready and is flipped to not-ready once by the
// shutdown sequencer. Once down it stays down.
type Probe struct {
	name   string
	ready  *atomic.Bool
	logger *slog.Logger
}

// NewProbe creates a ready probe. An empty name falls back to
// [DefaultProbeName].
func NewProbe(name string, logger *slog.Logger) *Probe {
	if name == "" {
		name = DefaultProbeName
	}
	logger = logging.OrDiscard(logger)
	p := &Probe{
		name:   name,
		ready:  atomic.NewBool(true),
		logger: logger,
	}
	p.logger.Info(p.name+" healthcheck up", slog.String("detail", DetailUp))
	return p
}

// Name returns the probe's registry key.
func (p *Probe) Name() string {
	return p.name
}

// IsReady reports the current flag.
func (p *Probe) IsReady() bool {
	return p.ready.Load()
}

// SetReady logs the resulting status. The flag only moves from ready to
// not-ready: SetReady(true) on a probe that is already down is ignored with
// a warning.
func (p *Probe) SetReady(ready bool) {
	if ready {
		if !p.ready.Load() {
			p.logger.Warn(p.name+" healthcheck is down for good, ignoring SetReady(true)",
				slog.String("detail", DetailDown),
			)
			return
		}
		p.logger.Info(p.name+" healthcheck up", slog.String("detail", DetailUp))
		return
	}

	p.ready.Store(false)
	p.logger.Info(p.name+" healthcheck down", slog.String("detail", DetailDown))
}

// Status derives the status record from the current flag so the two can
// never disagree.
func (p *Probe) Status() Status {
	return StatusOf(p.IsReady())
}

// StatusOf maps a readiness flag to its status record.
func StatusOf(ready bool) Status {
	if ready {
		return Status{State: StateUp, Detail: DetailUp}
	}
	return Status{State: StateDown, Detail: DetailDown}
}
