// internal/core/ports/cache.go
package ports

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// CacheKeyPrefix namespaces cache keys.
type CacheKeyPrefix string

const (
	PrefixInventory CacheKeyPrefix = "inv"
)

// CacheRepository defines the interface for cache operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}

// BuildKey joins prefix and parts with ":".
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	return strings.Join(append([]string{string(prefix)}, parts...), ":")
}

// ProductCacheKey is the cache key of a single product.
func ProductCacheKey(id int64) string {
	return BuildKey(PrefixInventory, "product", strconv.FormatInt(id, 10))
}

// ProductCachePattern matches every product key.
func ProductCachePattern() string {
	return BuildKey(PrefixInventory, "product", "*")
}
