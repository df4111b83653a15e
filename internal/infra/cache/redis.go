package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-booking/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const cacheName = "redis"

// Cache stores JSON values in Redis.
type Cache struct{ c redis.UniversalClient }

func New(client redis.UniversalClient) *Cache {
	return &Cache{c: client}
}

// Get reports whether the key was present and decoded into dst.
func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveCache(cacheName, "miss")
		return false, nil
	}
	if err != nil {
		metrics.ObserveCache(cacheName, "error")
		return false, err
	}
	metrics.ObserveCache(cacheName, "hit")
	return true, json.Unmarshal(v, dst)
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	metrics.ObserveCache(cacheName, "set")
	return r.c.Set(ctx, key, b, ttl).Err()
}
