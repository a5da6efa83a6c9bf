package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel delivering broadcast values. The
	// channel is closed when the subscriber is closed.
	Receive() <-chan T

	// Close closes the subscriber and releases resources. Close is
	// idempotent and safe to call multiple times.
	Close() error
}

// Broadcaster fans values out to multiple subscribers. Implementations
// handle slow consumers by dropping values rather than blocking.
type Broadcaster[T any] interface {
	// Subscribe creates a subscriber that receives every subsequent
	// broadcast. The subscription is cleaned up when ctx is cancelled.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends a value to all active subscribers. Values may be
	// dropped for subscribers whose buffers are full.
	Broadcast(v T)

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan T, bufferSize),
	}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
