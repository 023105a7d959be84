// Package health provides the readiness state exposed to the orchestrator and
// a thread-safe registry of readiness controllers. The registry is consulted
// by the readiness endpoint and flipped to not-ready by the shutdown
// sequencer.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ReadinessRegistry = (*Registry)(nil)
	_ ports.ReadinessReporter = (*Registry)(nil)
)

// Registry is a thread-safe implementation of [ports.ReadinessRegistry].
// Controllers are registered explicitly at construction time and are never
// removed.
type Registry struct {
	mu          sync.RWMutex
	controllers []ports.ReadinessController
	notReady    bool
	logger      *slog.Logger
}

// New creates an empty readiness registry.
func New(logger *slog.Logger) *Registry {
	return &Registry{logger: logging.OrDiscard(logger)}
}

// Register adds a controller to the registry. Safe for concurrent use. A
// controller registered after the broadcast is marked not-ready immediately
// so the service never reports ready again. Names key the readiness details,
// so a duplicate name is logged: its entry shadows the earlier one there.
func (r *Registry) Register(controller ports.ReadinessController) {
	name := controller.Name()

	r.mu.Lock()
	duplicate := false
	for _, c := range r.controllers {
		if c.Name() == name {
			duplicate = true
			break
		}
	}
	r.controllers = append(r.controllers, controller)
	late := r.notReady
	r.mu.Unlock()

	if duplicate {
		r.logger.Warn("readiness controller name already registered, readiness details will show one entry",
			slog.String("controller", name),
		)
	}

	if late {
		r.logger.Warn("readiness controller registered after shutdown began, marking not ready",
			slog.String("controller", name),
		)
		r.markNotReady(context.Background(), controller)
	}
}

// BroadcastNotReady calls SetReady(false) on every registered controller in
// registration order. A panicking controller is logged and skipped; the
// remaining controllers are still marked. It returns the number of
// controllers that were marked without failure.
func (r *Registry) BroadcastNotReady(ctx context.Context) int {
	r.mu.Lock()
	r.notReady = true
	controllers := make([]ports.ReadinessController, len(r.controllers))
	copy(controllers, r.controllers)
	r.mu.Unlock()

	switch n := len(controllers); {
	case n == 0:
		r.logger.ErrorContext(ctx, "no readiness controller registered, orchestrator will not observe the shutdown",
			slog.String("operation", "BroadcastNotReady"),
		)
	case n > 1:
		r.logger.InfoContext(ctx, "multiple readiness controllers registered",
			slog.Int("count", n),
		)
	}

	marked := 0
	for _, c := range controllers {
		if r.markNotReady(ctx, c) {
			marked++
		}
	}
	return marked
}

// Controllers returns a snapshot of the registered controllers in
// registration order.
func (r *Registry) Controllers() []ports.ReadinessController {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.ReadinessController, len(r.controllers))
	copy(out, r.controllers)
	return out
}

// Ready reports whether every registered controller is ready. An empty
// registry is ready.
func (r *Registry) Ready() bool {
	for _, c := range r.Controllers() {
		if !c.IsReady() {
			return false
		}
	}
	return true
}

// Statuses returns the status record of every controller keyed by name.
// Controllers that do not implement [StatusReporter] are reported from their
// readiness flag.
func (r *Registry) Statuses() map[string]Status {
	controllers := r.Controllers()

	out := make(map[string]Status, len(controllers))
	for _, c := range controllers {
		if sr, ok := c.(StatusReporter); ok {
			out[c.Name()] = sr.Status()
			continue
		}
		out[c.Name()] = StatusOf(c.IsReady())
	}
	return out
}

// Details returns the detail text of every controller keyed by name.
func (r *Registry) Details() map[string]string {
	statuses := r.Statuses()

	out := make(map[string]string, len(statuses))
	for name, st := range statuses {
		out[name] = st.Detail
	}
	return out
}

// markNotReady isolates a single controller so that a panic in its SetReady
// cannot stop the broadcast.
func (r *Registry) markNotReady(ctx context.Context, c ports.ReadinessController) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.ErrorContext(ctx, "readiness controller failed to mark not ready",
				slog.String("operation", "BroadcastNotReady"),
				slog.String("controller", c.Name()),
				slog.Any("error", fmt.Errorf("panic: %v", v)),
			)
			ok = false
		}
	}()

	c.SetReady(false)
	return true
}
