package ports

import "context"

// ReadinessController is implemented by any component that reports whether
// the service accepts new traffic and can be told to stop accepting it.
// Examples: the orchestrator-facing readiness probe, an explicit status
// endpoint.
type ReadinessController interface {
	// Name returns a human-readable identifier for this controller
	// (e.g., "gracefulshutdown", "status-endpoint").
	Name() string

	// IsReady reports the current readiness flag. Must be safe to call
	// concurrently with SetReady.
	IsReady() bool

	// SetReady sets the readiness flag. Must not block.
	SetReady(ready bool)
}

// ReadinessRegistry tracks the readiness controllers registered by the host
// application and fans a not-ready transition out to all of them.
type ReadinessRegistry interface {
	// Register adds a ReadinessController to the registry.
	Register(controller ReadinessController)

	// BroadcastNotReady calls SetReady(false) on every registered controller
	// in registration order and returns how many were marked.
	BroadcastNotReady(ctx context.Context) int
}

// ReadinessReporter exposes the aggregate readiness consulted by probes.
type ReadinessReporter interface {
	// Ready reports whether every registered controller is ready.
	Ready() bool

	// Details returns each controller's status detail keyed by name.
	Details() map[string]string
}
