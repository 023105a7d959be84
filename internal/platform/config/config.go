// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// GraceWaitSecondsKey is the property naming the drain wait in whole seconds.
// The same name is used for the command-line override.
const GraceWaitSecondsKey = "graceful-shutdown-wait-seconds"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Shutdown  ShutdownConfig  `koanf:"shutdown"`

	// GraceWaitSeconds is kept as raw text; the grace period resolver
	// decides whether it is usable.
	GraceWaitSeconds string `koanf:"graceful-shutdown-wait-seconds"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ShutdownConfig holds settings for the graceful shutdown sequence.
type ShutdownConfig struct {
	// TerminationDeadline bounds the drain wait after the termination
	// signal, mirroring the orchestrator's kill deadline. Zero disables it.
	TerminationDeadline time.Duration `koanf:"termination_deadline"`
}
