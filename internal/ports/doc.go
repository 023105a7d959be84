// Package ports defines interfaces between layers in the hexagonal architecture.
// Readiness ports are implemented by the platform layer, consumed by the
// shutdown sequencer and exposed by the inbound HTTP adapter.
package ports
