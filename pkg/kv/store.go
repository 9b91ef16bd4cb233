package kv

import (
	"context"
)

// Store is a minimal key-value abstraction over string keys and raw JSON
// values. A single implementation backs the whole application; swapping the
// in-memory store for Redis must not change any caller.
//
// Missing keys are not errors: Get reports absence through its ok result and
// MGet leaves a nil slot. A non-nil error from any method means the store
// itself is unavailable.
type Store interface {
	// Get retrieves the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set writes the value for key, overwriting unconditionally.
	Set(ctx context.Context, key string, value []byte) error
	// SetNX writes the value only if the key does not exist yet and reports
	// whether the write happened. Implementations must make the
	// check-and-write atomic.
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	// Keys returns all keys starting with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// MGet retrieves values for keys, order-preserving and same length as
	// the input. Absent keys yield nil slots.
	MGet(ctx context.Context, keys ...string) ([][]byte, error)
	// Del removes key. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
