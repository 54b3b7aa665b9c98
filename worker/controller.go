package worker

import (
	"UIDemos/control"
	"UIDemos/dispatch"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrStopTimeout is returned by Stop when the worker did not exit in time.
var ErrStopTimeout = errors.New("worker did not stop in time")

// DefaultStopTimeout bounds how long Stop blocks the UI.
const DefaultStopTimeout = 3 * DefaultInterval

// Controller owns the running flag, the command queue and the current
// worker. It is driven from the UI thread; the mutex only guards against
// lifecycle hooks that fire from elsewhere.
type Controller struct {
	mu      sync.Mutex
	running bool
	queue   *control.Queue
	current *Worker
	outlet  *outlet

	pub         dispatch.Publisher
	stopTimeout time.Duration
	opts        []Option
}

// NewController creates a controller whose workers publish to pub. opts are
// passed to every worker it starts.
func NewController(pub dispatch.Publisher, stopTimeout time.Duration, opts ...Option) *Controller {
	if stopTimeout <= 0 {
		stopTimeout = DefaultStopTimeout
	}
	return &Controller{pub: pub, stopTimeout: stopTimeout, opts: opts}
}

// Running reports whether a worker is currently started.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start spawns a worker with a fresh queue. It returns false and does
// nothing if a worker is already running.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return false
	}

	c.queue = control.NewQueue()
	c.outlet = &outlet{pub: c.pub}
	c.current = New(c.queue, c.outlet, c.opts...)
	go c.current.Run()
	c.running = true
	log.Printf("Worker started.")
	return true
}

// Send enqueues cmd for the running worker. It is a no-op when idle.
func (c *Controller) Send(cmd control.Command) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.queue.Enqueue(cmd)
}

// TenX multiplies the running worker's step by ten.
func (c *Controller) TenX() {
	c.Send(control.TenX())
}

// Stop sends Die and waits for the worker to exit, at most the stop
// timeout. On timeout the worker is abandoned: it still has Die pending and
// exits at its next drain. Stop is a no-op when idle.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return nil
	}

	c.queue.Enqueue(control.Die())
	w, out := c.current, c.outlet
	c.running = false
	c.queue = nil
	c.current = nil
	c.outlet = nil

	select {
	case <-w.Done():
		log.Printf("Worker stopped.")
		return nil
	case <-time.After(c.stopTimeout):
		out.close()
		log.Printf("Worker did not stop within %v, abandoning it.", c.stopTimeout)
		return errors.Wrapf(ErrStopTimeout, "after %v", c.stopTimeout)
	}
}

// outlet is the publisher of a single worker run. Once closed it drops
// updates, so an abandoned worker cannot overwrite what its successor shows.
type outlet struct {
	mu     sync.Mutex
	pub    dispatch.Publisher
	closed bool
}

func (o *outlet) Post(u dispatch.Update) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.pub.Post(u)
}

func (o *outlet) close() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()
}
