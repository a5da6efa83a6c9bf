package statestore

import (
	"context"
	"sync"
)

// externalBuffer bounds the external-change channel. Changes beyond it
// are dropped rather than blocking the writer, mirroring the
// non-blocking delivery of the broadcast package.
const externalBuffer = 64

// Memory implements Store with a mutex-guarded map. It represents the
// single-instance world: no other writer shares the store, so External
// stays silent unless a test injects changes via SimulateExternal.
type Memory struct {
	mu       sync.RWMutex
	values   map[string]string
	external chan Change
	closed   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values:   make(map[string]string),
		external: make(chan Change, externalBuffer),
	}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) External() <-chan Change {
	return m.external
}

// SimulateExternal injects a change as if another holder of the same
// underlying store had written it: the value is applied and delivered
// on the External channel. Intended for tests of cross-instance
// synchronization.
func (m *Memory) SimulateExternal(c Change) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	if c.Deleted {
		delete(m.values, c.Key)
	} else {
		m.values[c.Key] = c.Value
	}
	m.mu.Unlock()

	select {
	case m.external <- c:
	default:
	}
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.external)
	}
	return nil
}
