// Package shutdown coordinates the graceful termination of the service.
//
// On the first termination signal the [SignalListener] runs the [Sequencer]
// on its own goroutine. The sequencer executes three strictly ordered steps
// exactly once per process:
//
//  1. mark every registered readiness controller not ready, so the load
//     balancer or orchestrator stops routing new traffic;
//  2. wait the grace period resolved by [GracePeriodResolver] so in-flight
//     requests can finish;
//  3. invoke the host-supplied resource closer.
//
// Wiring in the composition root:
//
//	resolver := shutdown.NewGracePeriodResolver(shutdown.DefaultGraceSeconds, logger,
//	    shutdown.FlagSource(flags, config.GraceWaitSecondsKey),
//	    shutdown.StaticSource("config", cfg.GraceWaitSeconds),
//	)
//	seq := shutdown.NewSequencer(registry, resolver, closeContainer,
//	    shutdown.WithLogger(logger),
//	)
//	listener := shutdown.NewSignalListener(seq, shutdown.WithListenerLogger(logger))
//	listener.Start(ctx)
//	<-listener.Done()
//
// A cancelled context interrupts only the grace period wait; the sequence then
// proceeds straight to closing. Nothing aborts the closer.
package shutdown
