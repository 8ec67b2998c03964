// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/inventory-catalog/internal/core/ports"
)

// ErrCacheMiss is returned when a key is not found in cache
var ErrCacheMiss = errors.New("cache miss")

// Cache is a JSON value cache on Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Statically assert that *Cache implements the CacheRepository interface.
var _ ports.CacheRepository = (*Cache)(nil)

// NewCache creates a new cache instance
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int, dialTimeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: dialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// Set stores a value in cache with default TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, c.ttl)
}

// SetWithTTL stores a value in cache with custom TTL
func (c *Cache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &CacheError{Op: "marshal", Key: key, Err: err}
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to set cache",
			slog.String("key", key),
			slog.Any("error", err))
		return &CacheError{Op: "set", Key: key, Err: err}
	}

	c.logger.DebugContext(ctx, "cache set",
		slog.String("key", key),
		slog.Duration("ttl", ttl))

	return nil
}

// Get decodes the cached value at key into dest.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.DebugContext(ctx, "cache miss", slog.String("key", key))
			return ErrCacheMiss
		}
		c.logger.ErrorContext(ctx, "failed to get cache",
			slog.String("key", key),
			slog.Any("error", err))
		return &CacheError{Op: "get", Key: key, Err: err}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return &CacheError{Op: "unmarshal", Key: key, Err: err}
	}

	c.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
	return nil
}

// Delete removes keys from cache
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete cache",
			slog.Any("keys", keys),
			slog.Any("error", err))
		return &CacheError{Op: "del", Key: keys[0], Err: err}
	}

	c.logger.DebugContext(ctx, "cache deleted", slog.Any("keys", keys))
	return nil
}

// DeletePattern removes all keys matching a glob pattern.
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return &CacheError{Op: "scan", Key: pattern, Err: err}
	}

	return c.Delete(ctx, keys...)
}

// Ping checks if Redis is accessible
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping error: %w", err)
	}
	return nil
}

// CacheError represents cache-specific errors
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s operation failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
