// Package kv provides durable key-value storage for small records.
// The application uses it for exactly one slot, the persisted session.
package kv

import "context"

// Store is an interface for durable key-value operations.
// It abstracts the underlying medium, allowing for different implementations
// (e.g., on-disk files, in-memory for tests).
type Store interface {
	// Get retrieves the value stored under key.
	// The boolean reports whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key.
	// Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
