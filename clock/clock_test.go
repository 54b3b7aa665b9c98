package clock

import (
	"UIDemos/dispatch"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleIntervalFires(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []time.Duration
	)
	s := ScheduleInterval(context.Background(), 5*time.Millisecond, dispatch.Immediate, func(dt time.Duration) {
		mu.Lock()
		calls = append(calls, dt)
		mu.Unlock()
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) >= 3
	}, time.Second, time.Millisecond)
	s.Cancel()

	mu.Lock()
	n := len(calls)
	for _, dt := range calls {
		assert.Greater(t, dt, time.Duration(0))
	}
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, n, len(calls), "no calls after Cancel")
	mu.Unlock()
}

func TestScheduleStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := ScheduleInterval(ctx, time.Hour, dispatch.Immediate, func(time.Duration) {
		t.Error("callback should not run")
	})
	cancel()
	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("schedule goroutine did not exit")
	}
	s.Cancel()
}

func TestScheduleUsesRunner(t *testing.T) {
	posted := make(chan func(), 1)
	run := func(fn func()) {
		select {
		case posted <- fn:
		default:
		}
	}
	ran := false
	s := ScheduleInterval(context.Background(), time.Millisecond, run, func(time.Duration) { ran = true })

	var fn func()
	select {
	case fn = <-posted:
	case <-time.After(time.Second):
		t.Fatal("nothing handed to the runner")
	}
	s.Cancel()

	assert.False(t, ran, "callback must only run through the runner")
	fn()
	assert.True(t, ran)
}
