package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/inventory-catalog/internal/adapters/redis_adapter"
	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
	"github.com/ammerola/inventory-catalog/test/helpers"
)

func newTestCache(t *testing.T) (*redis_a.Cache, *helpers.TestRedis) {
	t.Helper()
	tr := helpers.SetupTestRedis(t)
	return redis_a.NewCache(tr.Client, 5*time.Minute, helpers.TestLogger()), tr
}

func TestCache_SetAndGetProduct(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	product := helpers.CreateTestProduct(func(p *domain.Product) { p.ID = 12 })

	require.NoError(t, cache.Set(ctx, ports.ProductCacheKey(product.ID), product))

	var got domain.Product
	require.NoError(t, cache.Get(ctx, ports.ProductCacheKey(product.ID), &got))
	assert.Equal(t, product, got)
}

func TestCache_GetMiss(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	var got domain.Product
	err := cache.Get(ctx, ports.ProductCacheKey(99), &got)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, tr := newTestCache(t)

	err := cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond)
	require.NoError(t, err)

	var result string
	require.NoError(t, cache.Get(ctx, "ttl:test", &result))
	assert.Equal(t, "value", result)

	tr.Server.FastForward(200 * time.Millisecond)

	err = cache.Get(ctx, "ttl:test", &result)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_CorruptValue(t *testing.T) {
	ctx := context.Background()
	cache, tr := newTestCache(t)

	require.NoError(t, tr.Server.Set(ports.ProductCacheKey(1), "{not json"))

	var got domain.Product
	err := cache.Get(ctx, ports.ProductCacheKey(1), &got)

	var cerr *redis_a.CacheError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "unmarshal", cerr.Op)
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	keysToDelete := []string{ports.ProductCacheKey(1), ports.ProductCacheKey(2), ports.ProductCacheKey(30)}
	keysToKeep := []string{"inv:list", "other:1"}

	for _, key := range append(keysToDelete, keysToKeep...) {
		require.NoError(t, cache.Set(ctx, key, "value"))
	}

	require.NoError(t, cache.DeletePattern(ctx, ports.ProductCachePattern()))

	for _, key := range keysToDelete {
		var result string
		assert.ErrorIs(t, cache.Get(ctx, key, &result), redis_a.ErrCacheMiss, key)
	}
	for _, key := range keysToKeep {
		var result string
		require.NoError(t, cache.Get(ctx, key, &result))
		assert.Equal(t, "value", result)
	}

	// Nothing left to match is fine.
	assert.NoError(t, cache.DeletePattern(ctx, ports.ProductCachePattern()))
}

func TestCache_Ping(t *testing.T) {
	ctx := context.Background()
	cache, tr := newTestCache(t)

	assert.NoError(t, cache.Ping(ctx))

	tr.Server.Close()
	assert.Error(t, cache.Ping(ctx))
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()
	tr := helpers.SetupTestRedis(t)

	client, err := redis_a.NewClient(ctx, tr.Server.Addr(), "", 0, time.Second)
	require.NoError(t, err)
	client.Close()

	_, err = redis_a.NewClient(ctx, "127.0.0.1:1", "", 0, 100*time.Millisecond)
	assert.ErrorContains(t, err, "failed to connect to redis")
}
