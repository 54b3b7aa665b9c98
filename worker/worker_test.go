package worker

import (
	"UIDemos/control"
	"UIDemos/dispatch"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder hands every update to the test. With ack set, the worker blocks
// after publishing until the test acknowledges, which lets the test enqueue
// commands that the same tick's drain will see.
type recorder struct {
	ch  chan dispatch.Update
	ack chan struct{}
}

func newRecorder(withAck bool) *recorder {
	r := &recorder{ch: make(chan dispatch.Update, 64)}
	if withAck {
		r.ack = make(chan struct{})
	}
	return r
}

func (r *recorder) Post(u dispatch.Update) {
	r.ch <- u
	if r.ack != nil {
		<-r.ack
	}
}

func (r *recorder) next(t *testing.T) dispatch.Update {
	t.Helper()
	select {
	case u := <-r.ch:
		return u
	case <-time.After(time.Second):
		t.Fatal("no update published")
	}
	return dispatch.Update{}
}

// stepper replaces the worker's sleep so tests decide when a tick happens.
type stepper struct {
	ticks   chan struct{}
	entered atomic.Int32
}

func newStepper() *stepper {
	return &stepper{ticks: make(chan struct{})}
}

func (s *stepper) option() Option {
	return WithSleep(func() {
		s.entered.Add(1)
		<-s.ticks
	})
}

func (s *stepper) tick() {
	s.ticks <- struct{}{}
}

// waitAsleep waits until the worker has entered its n-th sleep overall.
func (s *stepper) waitAsleep(t *testing.T, n int32) {
	t.Helper()
	require.Eventually(t, func() bool { return s.entered.Load() == n }, time.Second, time.Millisecond)
}

// tickAfterLen ticks once q holds n commands. The worker must be asleep.
func (s *stepper) tickAfterLen(q *control.Queue, n int) {
	go func() {
		for q.Len() < n {
			time.Sleep(time.Millisecond)
		}
		s.tick()
	}()
}

func waitDone(t *testing.T, w *Worker) {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not terminate")
	}
}

func TestDrainMultipliesStep(t *testing.T) {
	for n, want := range []int64{1, 10, 100, 1000, 10000} {
		q := control.NewQueue()
		for i := 0; i < n; i++ {
			q.Enqueue(control.TenX())
		}
		w := New(q, newRecorder(false))
		assert.False(t, w.drain())
		assert.Equal(t, want, w.step, "after %d 10x commands", n)
		assert.Equal(t, 0, q.Len())
	}
}

func TestDrainStopsAtDie(t *testing.T) {
	q := control.NewQueue()
	q.Enqueue(control.TenX())
	q.Enqueue(control.Die())
	q.Enqueue(control.TenX())
	q.Enqueue(control.TenX())

	w := New(q, newRecorder(false))
	assert.True(t, w.drain())
	assert.Equal(t, int64(10), w.step, "commands after die must not be applied")
}

func TestRunTicksAndTerminates(t *testing.T) {
	s := newStepper()
	rec := newRecorder(false)
	q := control.NewQueue()
	w := New(q, rec, s.option())
	assert.Equal(t, StateIdle, w.State())

	go w.Run()

	s.tick()
	assert.Equal(t, dispatch.Update{Counter: 1, Step: 1}, rec.next(t))
	assert.Equal(t, StateRunning, w.State())

	s.tick()
	assert.Equal(t, dispatch.Update{Counter: 2, Step: 1}, rec.next(t))

	s.waitAsleep(t, 3)
	q.Enqueue(control.Die())
	s.tick()
	assert.Equal(t, dispatch.Update{Counter: 3, Step: 1}, rec.next(t))
	waitDone(t, w)
	assert.Equal(t, StateTerminated, w.State())
}

func TestRunOnlyOnce(t *testing.T) {
	q := control.NewQueue()
	q.Enqueue(control.Die())
	w := New(q, newRecorder(false), WithSleep(func() {}))
	w.Run()
	assert.Equal(t, StateTerminated, w.State())

	// A second Run returns immediately without ticking.
	w.Run()
	assert.Equal(t, int64(1), w.counter)
}

func TestRunWithInterval(t *testing.T) {
	q := control.NewQueue()
	rec := newRecorder(false)
	w := New(q, rec, WithInterval(5*time.Millisecond))
	go w.Run()

	assert.Equal(t, int64(1), rec.next(t).Counter)
	q.Enqueue(control.Die())
	waitDone(t, w)
}
