package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
)

// ErrTerminationDeadline is the cancellation cause when the termination
// deadline cuts the grace period short.
var ErrTerminationDeadline = errors.New("termination deadline exceeded")

// Runner is the sequence started by the first termination signal.
type Runner interface {
	Run(ctx context.Context) error
}

// ListenerOption configures a [SignalListener].
type ListenerOption func(*SignalListener)

// WithSignals replaces the default SIGTERM and SIGINT subscription.
func WithSignals(signals ...os.Signal) ListenerOption {
	return func(l *SignalListener) {
		if len(signals) > 0 {
			l.signals = signals
		}
	}
}

// WithTerminationDeadline bounds the context handed to the runner, starting
// at the first signal. Zero means no deadline.
func WithTerminationDeadline(d time.Duration) ListenerOption {
	return func(l *SignalListener) {
		l.deadline = d
	}
}

// WithListenerLogger sets the listener's logger.
func WithListenerLogger(logger *slog.Logger) ListenerOption {
	return func(l *SignalListener) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// SignalListener subscribes to termination signals once and starts the
// runner on the first one. Subscribing replaces the runtime's default
// behaviour of exiting immediately on SIGTERM and SIGINT.
type SignalListener struct {
	runner   Runner
	signals  []os.Signal
	deadline time.Duration
	logger   *slog.Logger

	notify     func(c chan<- os.Signal, sig ...os.Signal)
	stopNotify func(c chan<- os.Signal)

	startOnce sync.Once
	stopOnce  sync.Once
	sigCh     chan os.Signal
	quit      chan struct{}
	loopDone  chan struct{}
	done      chan struct{}

	mu  sync.Mutex
	err error
}

// NewSignalListener creates a listener for runner. Call Start to subscribe.
func NewSignalListener(runner Runner, opts ...ListenerOption) *SignalListener {
	l := &SignalListener{
		runner:     runner,
		signals:    []os.Signal{syscall.SIGTERM, syscall.SIGINT},
		logger:     logging.OrDiscard(nil),
		notify:     signal.Notify,
		stopNotify: signal.Stop,
		sigCh:      make(chan os.Signal, 1),
		quit:       make(chan struct{}),
		loopDone:   make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start subscribes to the configured signals. Only the first call has an
// effect. ctx is the parent of the context handed to the runner;
// cancelling it interrupts the grace period.
func (l *SignalListener) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		l.notify(l.sigCh, l.signals...)
		go l.loop(ctx)
	})
}

// Stop unsubscribes from signals and waits for the listening goroutine to
// exit. A sequence already started keeps running; wait on Done for it.
// Stop before Start prevents any later Start from subscribing.
func (l *SignalListener) Stop() {
	l.startOnce.Do(func() { close(l.loopDone) })
	l.stopOnce.Do(func() {
		l.stopNotify(l.sigCh)
		close(l.quit)
	})
	<-l.loopDone
}

// Done is closed once the runner started by the first signal has returned.
func (l *SignalListener) Done() <-chan struct{} {
	return l.done
}

// Err returns the runner's result after Done is closed.
func (l *SignalListener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *SignalListener) loop(ctx context.Context) {
	defer close(l.loopDone)

	first := true
	for {
		select {
		case sig := <-l.sigCh:
			if first {
				first = false
				l.logger.InfoContext(ctx, "received termination signal, starting graceful shutdown",
					slog.String("signal", sig.String()),
				)
				go l.run(ctx)
				continue
			}

			l.logger.WarnContext(ctx, "shutdown already in progress, ignoring signal",
				slog.String("signal", sig.String()),
			)
		case <-l.quit:
			return
		}
	}
}

func (l *SignalListener) run(ctx context.Context) {
	defer close(l.done)

	if l.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, l.deadline, ErrTerminationDeadline)
		defer cancel()
	}

	err := l.runner.Run(ctx)

	l.mu.Lock()
	l.err = err
	l.mu.Unlock()
}
