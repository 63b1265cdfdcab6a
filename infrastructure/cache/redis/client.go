// ABOUTME: Redis cache backend using the go-redis client
// ABOUTME: Shares fragment and feed caches across instances with TTL expiry

package redis

import (
	"context"
	"errors"
	"time"

	"cs-embed-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned on a cache miss.
var ErrKeyNotFound = errors.New("key not found")

// RedisCache implements the Cache interface using Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache instance and verifies the connection.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis with the given TTL. A zero TTL means no expiry.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting an absent key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
