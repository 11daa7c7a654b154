package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/pkg/circuitbreaker"
)

// unreachableCache 指向一个没有Redis监听的端口
func unreachableCache(t *testing.T, threshold uint32) (*ItemCache, *circuitbreaker.CircuitBreaker) {
	t.Helper()
	client := newClient(config.RedisConfig{
		Host:        "127.0.0.1",
		Port:        1,
		DialTimeout: 50 * time.Millisecond,
		ReadTimeout: 50 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	breaker := circuitbreaker.New("redis-test-"+uuid.NewString(), circuitbreaker.Config{
		MaxRequests:      1,
		Timeout:          time.Minute,
		FailureThreshold: threshold,
	})
	return NewItemCache(client, breaker, 0, zap.NewNop()), breaker
}

func TestItemKey(t *testing.T) {
	storeID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	key := itemKey(catalog.Scope{Catalog: "academic-book", StoreID: storeID}, id)
	assert.Equal(t, "catalog:item:academic-book:11111111-1111-1111-1111-111111111111:22222222-2222-2222-2222-222222222222", key)

	other := itemKey(catalog.Scope{Catalog: "academic-book", StoreID: uuid.New()}, id)
	assert.NotEqual(t, key, other, "不同店铺的key必须不同")
}

func TestItemCacheDegrades(t *testing.T) {
	ctx := context.Background()
	cache, breaker := unreachableCache(t, 2)
	scope := catalog.Scope{Catalog: "book"}
	id := uuid.New()

	t.Run("Redis不可用时按未命中处理", func(t *testing.T) {
		item, ok := cache.Get(ctx, scope, id)
		assert.False(t, ok)
		assert.Nil(t, item)
	})

	t.Run("写入和删除失败不panic", func(t *testing.T) {
		cache.Set(ctx, &catalog.Item{ID: id, Catalog: "book"})
		cache.Invalidate(ctx, scope, id)
	})

	t.Run("连续失败后熔断器打开", func(t *testing.T) {
		assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

		_, ok := cache.Get(ctx, scope, id)
		assert.False(t, ok, "熔断中仍按未命中处理")
	})

	assert.Equal(t, DefaultItemTTL, cache.ttl)
}
