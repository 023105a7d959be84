package shutdown

import "os"

// SetNotifier replaces signal.Notify and signal.Stop so tests can deliver
// signals without touching the process.
func (l *SignalListener) SetNotifier(notify func(c chan<- os.Signal, sig ...os.Signal), stop func(c chan<- os.Signal)) {
	l.notify = notify
	l.stopNotify = stop
}
