package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/pkg/circuitbreaker"
	"github.com/xiebiao/catalogstore/pkg/metrics"
)

// DefaultItemTTL 商品详情缓存默认过期时间
const DefaultItemTTL = 5 * time.Minute

// ItemCache 商品详情缓存(Cache-Aside)
// 设计说明:
// 1. Key: catalog:item:{catalog}:{store_id}:{id},范围写进key,不同店铺互不可见
// 2. 读: 命中直接返回,未命中由调用方查库后Set
// 3. 写: 任何修改商品的操作成功后Invalidate,不做更新缓存(避免并发写入旧值)
// 4. Redis故障不影响请求: 错误记日志并按未命中处理,连续失败后熔断器打开直接跳过
type ItemCache struct {
	client  *redis.Client
	breaker *circuitbreaker.CircuitBreaker
	ttl     time.Duration
	log     *zap.Logger
}

// NewItemCache 创建商品缓存
func NewItemCache(client *redis.Client, breaker *circuitbreaker.CircuitBreaker, ttl time.Duration, log *zap.Logger) *ItemCache {
	if ttl <= 0 {
		ttl = DefaultItemTTL
	}
	return &ItemCache{
		client:  client,
		breaker: breaker,
		ttl:     ttl,
		log:     log.Named("item_cache"),
	}
}

func itemKey(scope catalog.Scope, id uuid.UUID) string {
	return fmt.Sprintf("catalog:item:%s:%s:%s", scope.Catalog, scope.StoreID, id)
}

// Get 读取缓存,第二个返回值表示是否命中
func (c *ItemCache) Get(ctx context.Context, scope catalog.Scope, id uuid.UUID) (*catalog.Item, bool) {
	var data []byte
	err := c.breaker.Execute(func() error {
		b, err := c.client.Get(ctx, itemKey(scope, id)).Bytes()
		if errors.Is(err, redis.Nil) {
			// 未命中不算故障
			return nil
		}
		data = b
		return err
	})
	if err != nil {
		c.degrade("get", err)
		return nil, false
	}
	if data == nil {
		metrics.RecordCache("miss")
		return nil, false
	}

	var item catalog.Item
	if err := json.Unmarshal(data, &item); err != nil {
		c.log.Warn("缓存数据损坏", zap.String("key", itemKey(scope, id)), zap.Error(err))
		metrics.RecordCache("miss")
		return nil, false
	}
	metrics.RecordCache("hit")
	return &item, true
}

// Set 写入缓存
func (c *ItemCache) Set(ctx context.Context, item *catalog.Item) {
	data, err := json.Marshal(item)
	if err != nil {
		c.log.Warn("序列化商品失败", zap.String("id", item.ID.String()), zap.Error(err))
		return
	}
	err = c.breaker.Execute(func() error {
		return c.client.Set(ctx, itemKey(item.Scope(), item.ID), data, c.ttl).Err()
	})
	if err != nil {
		c.degrade("set", err)
	}
}

// Invalidate 删除缓存
func (c *ItemCache) Invalidate(ctx context.Context, scope catalog.Scope, ids ...uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(scope, id)
	}
	err := c.breaker.Execute(func() error {
		return c.client.Del(ctx, keys...).Err()
	})
	if err != nil {
		c.degrade("invalidate", err)
	}
}

func (c *ItemCache) degrade(op string, err error) {
	metrics.RecordCache("error")
	if circuitbreaker.IsRejected(err) {
		// 熔断中,不再逐条记录
		return
	}
	c.log.Warn("缓存操作失败,已降级", zap.String("op", op), zap.Error(err))
}
