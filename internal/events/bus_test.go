package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	a, unsubA := bus.Subscribe(4)
	b, unsubB := bus.Subscribe(4)
	defer unsubA()
	defer unsubB()

	require.NoError(t, bus.SendEvent(Event{Type: EventBoardChanged, Op: "add_task"}))

	for _, ch := range []<-chan Event{a, b} {
		ev := <-ch
		assert.Equal(t, EventBoardChanged, ev.Type)
		assert.Equal(t, "add_task", ev.Op)
		assert.Equal(t, int64(1), ev.SequenceID)
		assert.False(t, ev.Timestamp.IsZero())
	}
}

func TestBus_SequenceIsMonotonic(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsub := bus.Subscribe(8)
	defer unsub()

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.SendEvent(Event{Type: EventBoardChanged}))
	}

	var last int64
	for i := 0; i < 3; i++ {
		ev := <-ch
		assert.Greater(t, ev.SequenceID, last)
		last = ev.SequenceID
	}
}

func TestBus_FullSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsub := bus.Subscribe(1)
	defer unsub()

	require.NoError(t, bus.SendEvent(Event{Op: "first"}))
	require.NoError(t, bus.SendEvent(Event{Op: "second"}))

	assert.Equal(t, "first", (<-ch).Op)
	assert.Len(t, ch, 0)
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsub := bus.Subscribe(1)
	unsub()
	unsub() // idempotent

	_, open := <-ch
	assert.False(t, open)
	assert.NoError(t, bus.SendEvent(Event{}))
}

func TestBus_Close(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsub := bus.Subscribe(1)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	_, open := <-ch
	assert.False(t, open)
	unsub() // safe after close

	assert.ErrorIs(t, bus.SendEvent(Event{}), ErrBusClosed)

	late, _ := bus.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestBus_ConcurrentSend(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsub := bus.Subscribe(100)
	defer unsub()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = bus.SendEvent(Event{Type: EventBoardChanged})
		}()
	}
	wg.Wait()

	assert.Len(t, ch, 10)
}
