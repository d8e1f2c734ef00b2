// Package cache は商品読み取りのキャッシュ（cache-aside）。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qualifygym/commerce/internal/catalog/model"
)

// ProductCache はget-by-idのキャッシュ。実装が無い構成ではNoopを使う。
type ProductCache interface {
	Get(ctx context.Context, productID int64) (model.Product, bool)
	Set(ctx context.Context, p model.Product)
	Invalidate(ctx context.Context, productID int64)
}

type RedisProductCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{
		client: client,
		prefix: "productos:",
		ttl:    ttl,
	}
}

func (c *RedisProductCache) key(productID int64) string {
	return fmt.Sprintf("%s%d", c.prefix, productID)
}

// Get はヒットしたときだけtrueを返す。キャッシュ障害はミス扱い。
func (c *RedisProductCache) Get(ctx context.Context, productID int64) (model.Product, bool) {
	data, err := c.client.Get(ctx, c.key(productID)).Bytes()
	if err != nil {
		return model.Product{}, false
	}

	var p model.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Product{}, false
	}
	return p, true
}

func (c *RedisProductCache) Set(ctx context.Context, p model.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(p.ID), data, c.ttl)
}

func (c *RedisProductCache) Invalidate(ctx context.Context, productID int64) {
	c.client.Del(ctx, c.key(productID))
}

// NoopProductCache は常にミスする。
type NoopProductCache struct{}

func (NoopProductCache) Get(ctx context.Context, productID int64) (model.Product, bool) {
	return model.Product{}, false
}

func (NoopProductCache) Set(ctx context.Context, p model.Product) {}

func (NoopProductCache) Invalidate(ctx context.Context, productID int64) {}
