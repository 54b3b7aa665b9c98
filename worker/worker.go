// Package worker contains the background counter: the Worker state machine
// that ticks, publishes and drains commands, and the Controller that starts
// and stops workers on behalf of the UI.
//
// Maintenance notes:
//   - counter and step are only touched by the goroutine running Run. The
//     UI observes them exclusively through published dispatch.Update values.
//   - Commands are processed only in the drain phase after each tick, so a
//     Die sent right after a tick waits up to one interval to be seen.
package worker

import (
	"UIDemos/control"
	"UIDemos/dispatch"
	"sync/atomic"
	"time"
)

// State defines the possible states of a worker.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// DefaultInterval is the time a worker sleeps between ticks.
const DefaultInterval = time.Second

// Option configures a Worker.
type Option func(*Worker)

// WithInterval sets the sleep between ticks.
func WithInterval(d time.Duration) Option {
	return func(w *Worker) {
		w.interval = d
	}
}

// WithSleep replaces the sleep between ticks. Tests use it to step the
// worker one tick at a time.
func WithSleep(sleep func()) Option {
	return func(w *Worker) {
		w.sleep = sleep
	}
}

// Worker counts in the background. A Worker runs once; start a new one to
// count again from zero.
type Worker struct {
	queue    *control.Queue
	pub      dispatch.Publisher
	interval time.Duration
	sleep    func()

	state atomic.Int32
	done  chan struct{}

	// owned by the Run goroutine
	counter int64
	step    int64
}

// New creates an idle worker reading commands from q and publishing
// updates to pub.
func New(q *control.Queue, pub dispatch.Publisher, opts ...Option) *Worker {
	w := &Worker{
		queue:    q,
		pub:      pub,
		interval: DefaultInterval,
		done:     make(chan struct{}),
		step:     1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.sleep == nil {
		w.sleep = func() { time.Sleep(w.interval) }
	}
	return w
}

// State returns the current state in a thread-safe manner.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Done is closed once Run has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Run executes ticks until a Die command is drained.
func (w *Worker) Run() {
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return
	}
	defer func() {
		w.state.Store(int32(StateTerminated))
		close(w.done)
	}()

	for {
		w.sleep()
		w.counter += w.step
		w.pub.Post(dispatch.Update{Counter: w.counter, Step: w.step})

		if w.drain() {
			return
		}
	}
}

// drain applies every pending command and reports whether a Die was seen.
// Commands queued behind a Die are not applied.
func (w *Worker) drain() bool {
	for _, cmd := range w.queue.DequeueAll() {
		switch cmd.Type {
		case control.CmdDie:
			return true
		case control.CmdMultiply:
			w.step *= cmd.Factor
		}
	}
	return false
}
