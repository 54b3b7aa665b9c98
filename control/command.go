// Package control defines the command messages the UI sends to the counter
// worker and the queue that carries them. The UI is the only producer and the
// worker the only consumer of a given queue.
package control

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognised literals.
var ErrUnknownCommand = errors.New("unknown command")

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdDie CommandType = iota
	CmdMultiply
)

// Command is the message sent from the UI to the worker. Commands are
// values, so nothing the sender does after Enqueue can change them.
type Command struct {
	Type   CommandType
	Factor int64 // used by CmdMultiply
}

// Die asks the worker to terminate at its next drain.
func Die() Command {
	return Command{Type: CmdDie}
}

// Multiply asks the worker to multiply its increment step by factor.
func Multiply(factor int64) Command {
	return Command{Type: CmdMultiply, Factor: factor}
}

// TenX is the command bound to the "10x" button.
func TenX() Command {
	return Multiply(10)
}

func (c Command) String() string {
	switch c.Type {
	case CmdDie:
		return "die"
	case CmdMultiply:
		if c.Factor == 10 {
			return "10x"
		}
		return fmt.Sprintf("x%d", c.Factor)
	}
	return fmt.Sprintf("command(%d)", int(c.Type))
}

// ParseCommand converts the literal command strings ("die", "10x") into a
// Command.
func ParseCommand(s string) (Command, error) {
	switch strings.TrimSpace(s) {
	case "die":
		return Die(), nil
	case "10x":
		return TenX(), nil
	}
	return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", s)
}

// Queue is an unbounded FIFO of commands. Enqueue never blocks.
type Queue struct {
	mu    sync.Mutex
	items []Command
}

// NewQueue returns an empty queue. A worker gets a fresh queue every time it
// starts.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends cmd to the tail of the queue.
func (q *Queue) Enqueue(cmd Command) {
	q.mu.Lock()
	q.items = append(q.items, cmd)
	q.mu.Unlock()
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// DequeueAll removes and returns every pending command in arrival order.
// It returns nil when the queue is empty.
func (q *Queue) DequeueAll() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
