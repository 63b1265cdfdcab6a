// ABOUTME: Core interfaces for dependency injection into the fragment pipeline
// ABOUTME: Cache defines the key-value store contract shared by both cache namespaces

package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
// The raw feed-response cache and the rendered-fragment cache are two key
// namespaces on top of the same store; a store failure is treated by callers
// as a miss, never as a fatal error.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
