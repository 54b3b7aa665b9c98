package control

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand("die")
	require.NoError(t, err)
	assert.Equal(t, CmdDie, cmd.Type)

	cmd, err = ParseCommand("10x")
	require.NoError(t, err)
	assert.Equal(t, Multiply(10), cmd)

	_, err = ParseCommand("11x")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownCommand, errors.Cause(err))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "die", Die().String())
	assert.Equal(t, "10x", TenX().String())
	assert.Equal(t, "x3", Multiply(3).String())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.DequeueAll())

	q.Enqueue(TenX())
	q.Enqueue(Multiply(2))
	q.Enqueue(Die())
	assert.Equal(t, 3, q.Len())

	got := q.DequeueAll()
	assert.Equal(t, []Command{TenX(), Multiply(2), Die()}, got)
	assert.Equal(t, 0, q.Len())
}

func TestQueueConcurrentProducerConsumer(t *testing.T) {
	const n = 1000
	q := NewQueue()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Enqueue(Multiply(int64(i)))
		}
	}()

	var got []Command
	for len(got) < n {
		got = append(got, q.DequeueAll()...)
	}
	wg.Wait()

	require.Len(t, got, n)
	for i, c := range got {
		assert.Equal(t, int64(i), c.Factor)
	}
}
