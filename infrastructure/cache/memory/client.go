// ABOUTME: In-memory cache backend over go-cache with TTL support
// ABOUTME: Default backend; suitable for a single-instance deployment

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// cleanupInterval is how often expired entries are swept out.
const cleanupInterval = 10 * time.Minute

// ErrKeyNotFound is returned on a cache miss.
var ErrKeyNotFound = errors.New("key not found")

// MemoryCache implements the Cache interface with an in-process store.
// Entries carry their own TTL; a TTL of zero or less means no expiry.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-memory cache instance.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}
	stored := value.([]byte)

	// Return a copy so callers cannot mutate the cached entry.
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.store.Set(key, stored, ttl)
	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.store.Delete(key)
	return nil
}
