package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proveo/clientkit/pkg/broadcast"
)

func receiveOne[T any](t *testing.T, sub broadcast.Subscriber[T]) T {
	t.Helper()
	select {
	case v, ok := <-sub.Receive():
		require.True(t, ok, "subscriber channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		panic("unreachable")
	}
}

func TestMemory_DeliversToAllSubscribers(t *testing.T) {
	t.Parallel()
	b := broadcast.NewMemory[string](4)
	defer b.Close()

	ctx := context.Background()
	sub1 := b.Subscribe(ctx)
	sub2 := b.Subscribe(ctx)

	b.Broadcast("hello")

	assert.Equal(t, "hello", receiveOne(t, sub1))
	assert.Equal(t, "hello", receiveOne(t, sub2))
}

func TestMemory_PreservesOrderPerSubscriber(t *testing.T) {
	t.Parallel()
	b := broadcast.NewMemory[int](8)
	defer b.Close()

	sub := b.Subscribe(context.Background())
	for i := range 5 {
		b.Broadcast(i)
	}

	for i := range 5 {
		assert.Equal(t, i, receiveOne(t, sub))
	}
}

func TestMemory_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()
	b := broadcast.NewMemory[int](1)
	defer b.Close()

	// Never drained; its buffer fills after one value.
	_ = b.Subscribe(context.Background())

	done := make(chan struct{})
	go func() {
		for i := range 100 {
			b.Broadcast(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on slow subscriber")
	}
}

func TestMemory_ContextCancelUnsubscribes(t *testing.T) {
	t.Parallel()
	b := broadcast.NewMemory[int](4)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	// Channel closes once cleanup runs.
	select {
	case _, ok := <-sub.Receive():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscriber not closed after context cancel")
	}
}

func TestMemory_CloseIdempotent(t *testing.T) {
	t.Parallel()
	b := broadcast.NewMemory[int](4)
	sub := b.Subscribe(context.Background())

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, ok := <-sub.Receive()
	assert.False(t, ok)

	// Subscriptions after close come back already closed.
	late := b.Subscribe(context.Background())
	_, ok = <-late.Receive()
	assert.False(t, ok)

	// Broadcast after close is a no-op, not a panic.
	b.Broadcast(1)
}
