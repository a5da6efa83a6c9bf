package broadcast

import (
	"context"
	"sync"
)

// Memory is an in-process Broadcaster. It never blocks the sender: a
// subscriber whose buffer is full misses the value and is dropped from
// the subscriber set. All methods are safe for concurrent use.
type Memory[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemory creates an in-memory broadcaster whose subscribers buffer
// up to bufferSize values. A minimum buffer of 1 is enforced; a
// zero-buffer channel would make every send blocking.
func NewMemory[T any](bufferSize int) *Memory[T] {
	return &Memory[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe creates a subscriber receiving all subsequent broadcasts.
// The subscription is removed when ctx is cancelled. If the broadcaster
// is already closed, the returned subscriber is closed too.
func (b *Memory[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize)
	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Broadcast delivers v to every active subscriber without blocking.
// Subscribers that cannot keep up are unsubscribed.
func (b *Memory[T]) Broadcast(v T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for sub := range b.subscribers {
		if !sub.send(v) {
			// Unsubscribe asynchronously; this goroutine holds the
			// read lock the unsubscribe needs.
			go b.unsubscribe(sub)
		}
	}
}

// Close shuts down the broadcaster and closes all subscribers. Safe to
// call multiple times.
func (b *Memory[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	// Wait for pending context-cancel cleanups so Close fully settles.
	b.cleanupWg.Wait()

	return nil
}

func (b *Memory[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
