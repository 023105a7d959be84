package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/telemetry"
	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

// ErrAlreadyTriggered is returned by [Sequencer.Run] for every call after the
// first.
var ErrAlreadyTriggered = errors.New("shutdown already triggered")

// State is the lifecycle state of a [Sequencer].
type State int32

const (
	// StateRunning is the initial state: the service accepts traffic.
	StateRunning State = iota
	// StateDraining means readiness is down and the grace period is running.
	StateDraining
	// StateClosed is terminal: the resource closer has been invoked.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Closer releases the resources held by the host application. It is invoked
// exactly once, after the grace period.
type Closer func(ctx context.Context) error

// GraceResolver yields the drain wait in whole seconds.
type GraceResolver interface {
	Resolve() int
}

// Option configures a [Sequencer].
type Option func(*Sequencer)

// WithLogger sets the sequencer's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records phase durations and broadcast counts. Nil disables
// metric recording.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(s *Sequencer) {
		s.metrics = metrics
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Sequencer) {
		if tp != nil {
			s.tracer = tp.Tracer(telemetry.ScopeName)
		}
	}
}

// Sequencer runs the shutdown sequence: mark not ready, wait the grace
// period, close resources. Only the first call to Run has any effect.
type Sequencer struct {
	registry ports.ReadinessRegistry
	resolver GraceResolver
	closer   Closer
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   trace.Tracer

	triggered *atomic.Bool
	state     *atomic.Int32
	done      chan struct{}
	err       error
}

// NewSequencer creates a sequencer in [StateRunning]. registry, resolver and
// closer are required; a nil value is a wiring error and panics.
func NewSequencer(registry ports.ReadinessRegistry, resolver GraceResolver, closer Closer, opts ...Option) *Sequencer {
	if registry == nil || resolver == nil || closer == nil {
		panic("shutdown: sequencer requires a registry, a grace resolver and a closer")
	}

	s := &Sequencer{
		registry:  registry,
		resolver:  resolver,
		closer:    closer,
		logger:    logging.OrDiscard(nil),
		tracer:    otel.GetTracerProvider().Tracer(telemetry.ScopeName),
		triggered: atomic.NewBool(false),
		state:     atomic.NewInt32(int32(StateRunning)),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the shutdown sequence. The first call blocks until the closer
// returns and reports the closer's error; any other call returns
// [ErrAlreadyTriggered] immediately without side effects.
//
// Cancelling ctx cuts the grace period short. It never prevents the closer
// from running, and the closer receives a context that is not cancelled with
// ctx.
func (s *Sequencer) Run(ctx context.Context) (err error) {
	if !s.triggered.CompareAndSwap(false, true) {
		s.logger.WarnContext(ctx, "shutdown already triggered, ignoring")
		return ErrAlreadyTriggered
	}

	defer func() {
		s.err = err
		close(s.done)
	}()

	ctx, span := s.tracer.Start(ctx, "shutdown.run")
	defer span.End()

	s.state.Store(int32(StateDraining))
	s.drain(ctx, span)

	s.state.Store(int32(StateClosed))
	err = s.close(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "closing resources failed")
	}
	return err
}

// State returns the current lifecycle state.
func (s *Sequencer) State() State {
	return State(s.state.Load())
}

// Done is closed once the closer has returned.
func (s *Sequencer) Done() <-chan struct{} {
	return s.done
}

// Err returns the result of the first Run once [Sequencer.Done] is closed,
// nil before that.
func (s *Sequencer) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

func (s *Sequencer) drain(ctx context.Context, span trace.Span) {
	s.logger.InfoContext(ctx, "marking service not ready so no new traffic is routed to it")
	marked := s.registry.BroadcastNotReady(ctx)
	span.AddEvent("readiness.down", trace.WithAttributes(attribute.Int("controllers", marked)))
	s.addBroadcast(ctx, marked)

	seconds := s.resolver.Resolve()
	span.SetAttributes(attribute.Int("shutdown.grace_seconds", seconds))
	s.logger.InfoContext(ctx, "waiting for grace period before releasing resources",
		slog.Int("grace_seconds", seconds),
	)

	start := time.Now()
	interrupted := !s.wait(ctx, time.Duration(seconds)*time.Second)
	waited := time.Since(start)

	if interrupted {
		s.logger.ErrorContext(ctx, "grace period interrupted, releasing resources now",
			slog.String("operation", "Run"),
			slog.Duration("waited", waited),
			slog.Any("error", context.Cause(ctx)),
		)
	}
	span.AddEvent("grace.elapsed", trace.WithAttributes(attribute.Bool("interrupted", interrupted)))
	s.recordPhase(ctx, telemetry.PhaseDrain, waited, telemetry.AttrInterrupted.Bool(interrupted))
}

// wait blocks for d and reports whether it elapsed in full. No lock is held.
func (s *Sequencer) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *Sequencer) close(ctx context.Context, span trace.Span) error {
	s.logger.InfoContext(ctx, "releasing resources")
	span.AddEvent("resources.closing")

	start := time.Now()
	err := s.closer(context.WithoutCancel(ctx))

	result := "success"
	if err != nil {
		result = "error"
	}
	s.recordPhase(ctx, telemetry.PhaseClose, time.Since(start), telemetry.AttrResult.String(result))

	if err != nil {
		s.logger.ErrorContext(ctx, "releasing resources failed",
			slog.String("operation", "Run"),
			slog.Any("error", err),
		)
		return fmt.Errorf("closing resources: %w", err)
	}

	s.logger.InfoContext(ctx, "resources released", slog.Duration("duration", time.Since(start)))
	return nil
}

func (s *Sequencer) addBroadcast(ctx context.Context, marked int) {
	if s.metrics == nil {
		return
	}
	s.metrics.ReadinessBroadcastTotal.Add(ctx, int64(marked), metric.WithAttributes(s.metrics.ServiceAttr()))
}

func (s *Sequencer) recordPhase(ctx context.Context, phase string, d time.Duration, extra attribute.KeyValue) {
	if s.metrics == nil {
		return
	}
	s.metrics.ShutdownPhaseDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		s.metrics.ServiceAttr(),
		telemetry.AttrShutdownPhase.String(phase),
		extra,
	))
}
