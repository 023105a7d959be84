// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and on SIGINT/SIGTERM runs the
// graceful shutdown sequence: readiness down, grace period, resource close.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/pflag"

	adapthttp "github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http"
	"github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/graceful-shutdown/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/config"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/health"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/telemetry"
	"github.com/jsamuelsen11/graceful-shutdown/internal/shutdown"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the process-level overrides.
type flags struct {
	set     *pflag.FlagSet
	profile string
}

func parseFlags(args []string) (*flags, error) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)

	f := &flags{set: fs}
	fs.StringVar(&f.profile, "profile", os.Getenv("APP_PROFILE"),
		"configuration profile to load (local, dev, qa, prod); defaults to $APP_PROFILE")
	fs.String(config.GraceWaitSecondsKey, "",
		"seconds to keep serving after readiness goes down; overrides the configured value")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	return f, nil
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if f.profile == "" {
		return errors.New("APP_PROFILE environment variable or --profile is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger.
	cfg, err := config.Load(f.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	registerDependencies(injector, cfg, logger)

	// Resolve the readiness probe, which nothing else depends on, then the
	// server (eagerly wires the full graph).
	if _, err := do.Invoke[*health.Probe](injector); err != nil {
		return errors.Join(fmt.Errorf("resolving readiness probe: %w", err), closeScope(context.Background(), injector))
	}
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return errors.Join(fmt.Errorf("resolving server: %w", err), closeScope(context.Background(), injector))
	}

	registry := do.MustInvoke[*health.Registry](injector)
	metrics := do.MustInvoke[*telemetry.Metrics](injector)

	resolver := shutdown.NewGracePeriodResolver(shutdown.DefaultGraceSeconds, logger,
		shutdown.FlagSource(f.set, config.GraceWaitSecondsKey),
		shutdown.StaticSource("config", cfg.GraceWaitSeconds),
	)

	sequencer := shutdown.NewSequencer(registry, resolver,
		func(ctx context.Context) error { return closeScope(ctx, injector) },
		shutdown.WithLogger(logger),
		shutdown.WithMetrics(metrics),
		shutdown.WithTracerProvider(otel.GetTracerProvider()),
	)

	listener := shutdown.NewSignalListener(sequencer,
		shutdown.WithTerminationDeadline(cfg.Shutdown.TerminationDeadline),
		shutdown.WithListenerLogger(logger),
	)
	listener.Start(context.Background())
	defer listener.Stop()

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	logger.Info("service started",
		slog.String("profile", f.profile),
		slog.Int("grace_period_seconds", resolver.Resolve()),
	)

	// Wait for the shutdown sequence or a server failure.
	select {
	case <-listener.Done():
	case err := <-serverErr:
		// Run the sequence with an already cancelled context: readiness goes
		// down and resources close without waiting out the grace period.
		listener.Stop()
		aborted, cancel := context.WithCancel(context.Background())
		cancel()
		closeErr := sequencer.Run(aborted)
		if errors.Is(closeErr, shutdown.ErrAlreadyTriggered) {
			<-sequencer.Done()
			closeErr = sequencer.Err()
		}
		return errors.Join(fmt.Errorf("server failed: %w", err), closeErr)
	}

	// The closer shut the server down, so Start has returned.
	if err := <-serverErr; err != nil {
		logger.Error("server error during shutdown", slog.Any("error", err))
	}

	if err := listener.Err(); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// closeScope shuts down every service the container instantiated, in reverse
// dependency order: the HTTP server first, the telemetry providers last.
func closeScope(ctx context.Context, injector *do.RootScope) error {
	report := injector.ShutdownWithContext(ctx)
	if report != nil && !report.Succeed {
		return fmt.Errorf("shutting down services: %v", report)
	}
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*otelProviders, error) {
		return initTelemetry(context.Background(), cfg)
	})

	// Metrics depend on the providers so the container flushes them after
	// every instrumented service has shut down.
	do.Provide(injector, func(i do.Injector) (*telemetry.Metrics, error) {
		if _, err := do.Invoke[*otelProviders](i); err != nil {
			return nil, err
		}
		return telemetry.NewMetrics(otel.GetMeterProvider(), cfg.Telemetry.ServiceName)
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*health.Probe, error) {
		registry := do.MustInvoke[*health.Registry](i)
		probe := health.NewProbe(health.DefaultProbeName, logger)
		registry.Register(probe)
		return probe, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StatusHandler, error) {
		registry := do.MustInvoke[*health.Registry](i)
		status := handlers.NewStatusHandler(logger)
		registry.Register(status)
		return status, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[*health.Registry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		statusH := do.MustInvoke[*handlers.StatusHandler](i)
		registry := do.MustInvoke[*health.Registry](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(healthH, statusH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger, registry),
			middleware.Draining(registry),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
