package shutdown_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/health"
	"github.com/jsamuelsen11/graceful-shutdown/internal/shutdown"
)

// fakeNotifier captures the channel the listener subscribes so tests can
// deliver signals directly.
type fakeNotifier struct {
	mu      sync.Mutex
	ch      chan<- os.Signal
	signals []os.Signal
	calls   int
	stopped bool
}

func (f *fakeNotifier) notify(c chan<- os.Signal, sig ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch = c
	f.signals = sig
	f.calls++
}

func (f *fakeNotifier) stop(chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeNotifier) send(t *testing.T, sig os.Signal) {
	t.Helper()
	f.mu.Lock()
	ch := f.ch
	f.mu.Unlock()
	require.NotNil(t, ch, "listener never subscribed")
	ch <- sig
}

type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Run(ctx context.Context) error { return f(ctx) }

func newListener(t *testing.T, runner shutdown.Runner, opts ...shutdown.ListenerOption) (*shutdown.SignalListener, *fakeNotifier) {
	t.Helper()
	fn := &fakeNotifier{}
	l := shutdown.NewSignalListener(runner, opts...)
	l.SetNotifier(fn.notify, fn.stop)
	return l, fn
}

func waitDone(t *testing.T, l *shutdown.SignalListener) {
	t.Helper()
	select {
	case <-l.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("sequence did not finish")
	}
}

func TestSignalListener_SubscribesOnceToTerminationSignals(t *testing.T) {
	t.Parallel()

	l, fn := newListener(t, runnerFunc(func(context.Context) error { return nil }))
	l.Start(context.Background())
	l.Start(context.Background())
	l.Stop()

	assert.Equal(t, 1, fn.calls)
	assert.ElementsMatch(t, []os.Signal{syscall.SIGTERM, syscall.SIGINT}, fn.signals)
	assert.True(t, fn.stopped)
}

func TestSignalListener_FirstSignalRunsSequence(t *testing.T) {
	t.Parallel()

	closes := atomic.NewInt32(0)
	seq := shutdown.NewSequencer(health.New(nil), fixedGrace(0), func(context.Context) error {
		closes.Inc()
		return nil
	})

	l, fn := newListener(t, seq)
	l.Start(context.Background())
	defer l.Stop()

	fn.send(t, syscall.SIGTERM)
	waitDone(t, l)

	assert.Equal(t, int32(1), closes.Load())
	assert.NoError(t, l.Err())
	assert.Equal(t, shutdown.StateClosed, seq.State())
}

func TestSignalListener_RepeatedSignalsHaveNoEffect(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	runs := atomic.NewInt32(0)
	runner := runnerFunc(func(context.Context) error {
		runs.Inc()
		<-release
		return nil
	})

	l, fn := newListener(t, runner)
	l.Start(context.Background())
	defer l.Stop()

	fn.send(t, syscall.SIGTERM)
	fn.send(t, syscall.SIGINT)
	fn.send(t, syscall.SIGTERM)
	close(release)
	waitDone(t, l)

	assert.Equal(t, int32(1), runs.Load())
}

func TestSignalListener_TerminationDeadlineInterruptsDrain(t *testing.T) {
	t.Parallel()

	closed := make(chan struct{})
	seq := shutdown.NewSequencer(health.New(nil), fixedGrace(60), func(context.Context) error {
		close(closed)
		return nil
	})

	l, fn := newListener(t, seq, shutdown.WithTerminationDeadline(100*time.Millisecond))
	l.Start(context.Background())
	defer l.Stop()

	start := time.Now()
	fn.send(t, syscall.SIGTERM)
	waitDone(t, l)

	<-closed
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.NoError(t, l.Err())
}

func TestSignalListener_DeadlineCause(t *testing.T) {
	t.Parallel()

	causeCh := make(chan error, 1)
	runner := runnerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		causeCh <- context.Cause(ctx)
		return nil
	})

	l, fn := newListener(t, runner, shutdown.WithTerminationDeadline(10*time.Millisecond))
	l.Start(context.Background())
	defer l.Stop()

	fn.send(t, syscall.SIGTERM)
	waitDone(t, l)

	assert.ErrorIs(t, <-causeCh, shutdown.ErrTerminationDeadline)
}

func TestSignalListener_PropagatesRunnerError(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("container close failed")
	seq := shutdown.NewSequencer(health.New(nil), fixedGrace(0), func(context.Context) error {
		return closeErr
	})

	l, fn := newListener(t, seq)
	l.Start(context.Background())
	defer l.Stop()

	fn.send(t, syscall.SIGTERM)
	waitDone(t, l)

	assert.ErrorIs(t, l.Err(), closeErr)
}

func TestSignalListener_CustomSignals(t *testing.T) {
	t.Parallel()

	l, fn := newListener(t, runnerFunc(func(context.Context) error { return nil }),
		shutdown.WithSignals(syscall.SIGHUP),
	)
	l.Start(context.Background())
	l.Stop()

	assert.Equal(t, []os.Signal{syscall.SIGHUP}, fn.signals)
}

func TestSignalListener_StopBeforeStart(t *testing.T) {
	t.Parallel()

	l, fn := newListener(t, runnerFunc(func(context.Context) error { return nil }))
	l.Stop()
	l.Start(context.Background())
	l.Stop()

	assert.Equal(t, 0, fn.calls, "Start after Stop must not subscribe")
}
