package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "idempotency:",
	}
}

// Get retrieves a cached response by idempotency key.
// Returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

// Set stores a response in the idempotency cache with TTL.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}

// Claim atomically marks key as in flight using SET NX.
// Returns false if another request already holds the claim.
func (c *IdempotencyCache) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := c.client.SetArgs(ctx, c.lockKey(key), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis idempotency claim: %w", err)
	}
	return result == "OK", nil
}

// Release drops the in-flight marker for key.
func (c *IdempotencyCache) Release(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.lockKey(key)).Err(); err != nil {
		return fmt.Errorf("redis idempotency release: %w", err)
	}
	return nil
}

func (c *IdempotencyCache) lockKey(key string) string {
	return c.prefix + "inflight:" + key
}
