package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-campfire/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DefaultTTL applies to every read-side aggregate the core caches.
const DefaultTTL = 5 * time.Minute

const namespace = "campfire"

// Cache is a thin get-or-compute wrapper over Redis. All cached values are
// idempotent read-side aggregates, so misses and races just recompute.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCache connects to Redis and registers shutdown with the Fx lifecycle.
// A failed ping is not fatal: the cache degrades to recompute-on-every-call.
func NewCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return &Cache{client: client, logger: logger}
}

// NewWithClient wraps an existing Redis client. Used by tests and tools that
// manage the client themselves.
func NewWithClient(client *redis.Client, logger *zap.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// Key builds a consistent cache key: campfire:<prefix>:<identifier>.
func Key(prefix string, identifier interface{}) string {
	return fmt.Sprintf("%s:%s:%v", namespace, prefix, identifier)
}

// Remember returns the cached value for key, or computes it via producer and
// stores the result for ttl. dest must be a pointer; the producer's return
// value is JSON round-tripped into it. Cache errors never surface: the worst
// case is recomputing the aggregate.
func (c *Cache) Remember(ctx context.Context, key string, ttl time.Duration, dest interface{}, producer func() (interface{}, error)) error {
	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		if err := json.Unmarshal(raw, dest); err == nil {
			return nil
		}
		// Unreadable entry, fall through and overwrite it.
	}

	value, err := producer()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Debug("cache store failed", zap.String("key", key), zap.Error(err))
	}
	return json.Unmarshal(raw, dest)
}

// Invalidate removes a key. Best effort.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}
