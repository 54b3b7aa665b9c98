// Package dispatch moves counter updates from the worker goroutine onto the
// UI thread. The worker posts typed Update messages into a Mailbox owned by
// the UI; a pump goroutine drains the mailbox and hands each batch to a
// Runner, which in the application is fyne.Do.
package dispatch

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
)

// Update is published by the worker after every tick.
type Update struct {
	Counter int64
	Step    int64
}

// Runner schedules fn on the UI thread and returns without waiting.
type Runner func(fn func())

// Fyne runs fn on the Fyne main goroutine.
func Fyne(fn func()) {
	fyne.Do(fn)
}

// Immediate runs fn on the calling goroutine. Used by tests and when there
// is no event loop to marshal onto.
func Immediate(fn func()) {
	fn()
}

// Publisher is what the worker needs to send updates to the UI.
type Publisher interface {
	Post(Update)
}

// Mailbox is an unbounded, UI-owned inbox of updates. Post never blocks.
type Mailbox struct {
	mu      sync.Mutex
	pending []Update
	wake    chan struct{}
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{wake: make(chan struct{}, 1)}
}

// Post queues u for the UI and returns immediately.
func (m *Mailbox) Post(u Update) {
	m.mu.Lock()
	m.pending = append(m.pending, u)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Drain returns every pending update in the order it was posted.
func (m *Mailbox) Drain() []Update {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.pending
	m.pending = nil
	return out
}

// Pump waits for posted updates and applies them on the UI thread through
// run, one batch per wake-up. It returns when ctx is done.
func (m *Mailbox) Pump(ctx context.Context, run Runner, apply func(Update)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.wake:
			batch := m.Drain()
			if len(batch) == 0 {
				continue
			}
			run(func() {
				for _, u := range batch {
					apply(u)
				}
			})
		}
	}
}
