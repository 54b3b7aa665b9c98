// Package clock schedules periodic callbacks on the UI thread.
package clock

import (
	"UIDemos/dispatch"
	"context"
	"sync"
	"time"
)

// Schedule is a running interval registration.
type Schedule struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// ScheduleInterval calls fn on the UI thread (through run) every interval,
// passing the time elapsed since the previous call, or since scheduling for
// the first call. The schedule ends when ctx is done or Cancel is called.
func ScheduleInterval(ctx context.Context, interval time.Duration, run dispatch.Runner, fn func(dt time.Duration)) *Schedule {
	ctx, cancel := context.WithCancel(ctx)
	s := &Schedule{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				dt := now.Sub(last)
				last = now
				run(func() { fn(dt) })
			}
		}
	}()
	return s
}

// Cancel stops the schedule and waits for its goroutine to exit. Callbacks
// already handed to the runner may still execute.
func (s *Schedule) Cancel() {
	s.once.Do(s.cancel)
	<-s.done
}
