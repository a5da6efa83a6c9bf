package statestore

import "context"

// Change describes a single key mutation observed in the store.
type Change struct {
	Key     string
	Value   string
	Deleted bool
}

// Store is the persisted key-value state behind the client facade.
// Implementations must be safe for concurrent use.
//
// External returns a channel delivering changes made by *other* holders
// of the same underlying store (another client instance writing through
// Redis, for example). Changes made through this handle never appear on
// its own External channel; the facade raises local notifications for
// those itself.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// External delivers changes originating outside this handle. The
	// channel is closed when the store is closed.
	External() <-chan Change

	// Close releases resources held by the store.
	Close() error
}
