package statestore

import "errors"

var (
	// ErrStoreClosed is returned by writes against a closed store.
	ErrStoreClosed = errors.New("statestore: store is closed")

	// ErrFailedToParseRedisConnString is returned when the Redis
	// connection URL cannot be parsed.
	ErrFailedToParseRedisConnString = errors.New("statestore: failed to parse redis connection string")

	// ErrRedisNotReady is returned when the Redis server cannot be
	// reached within the configured retry budget.
	ErrRedisNotReady = errors.New("statestore: redis is not ready")
)
