package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CountCache holds short-lived collection totals.
type CountCache interface {
	// Get returns the cached total and whether it was present.
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, n int64) error
	Invalidate(ctx context.Context, key string) error
}

const keyPrefix = "jobportal:count:"

// RedisCountCache stores totals in Redis with a fixed TTL.
type RedisCountCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCountCache returns a cache backed by client.
func NewRedisCountCache(client redis.UniversalClient, ttl time.Duration) *RedisCountCache {
	return &RedisCountCache{client: client, ttl: ttl}
}

func (r *RedisCountCache) Get(ctx context.Context, key string) (int64, bool, error) {
	if key == "" {
		return 0, false, errors.New("key cannot be empty")
	}
	n, err := r.client.Get(ctx, keyPrefix+key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis get: %w", err)
	}
	return n, true, nil
}

func (r *RedisCountCache) Set(ctx context.Context, key string, n int64) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if err := r.client.Set(ctx, keyPrefix+key, n, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisCountCache) Invalidate(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Noop never caches; every Get misses.
type Noop struct{}

func (Noop) Get(context.Context, string) (int64, bool, error) { return 0, false, nil }
func (Noop) Set(context.Context, string, int64) error         { return nil }
func (Noop) Invalidate(context.Context, string) error         { return nil }
