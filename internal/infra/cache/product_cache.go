package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shop-service/internal/domain"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const productTTL = 5 * time.Minute

// ProductCache fronts the product table with Redis. All methods are
// best-effort: a cache error is logged and treated as a miss, never
// propagated.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	return &ProductCache{rdb: rdb}
}

func key(slug string) string {
	return "product:slug:" + slug
}

func (c *ProductCache) Get(ctx context.Context, slug string) *domain.Product {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, key(slug)).Result()
	if err != nil {
		return nil
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}

func (c *ProductCache) Set(ctx context.Context, p *domain.Product) {
	if c == nil || c.rdb == nil || p == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(p.Slug), data, productTTL).Err(); err != nil {
		log.Printf("cache: set %s: %v", p.Slug, err)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, slugs ...string) {
	if c == nil || c.rdb == nil || len(slugs) == 0 {
		return
	}
	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = key(s)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache: invalidate: %v", err)
	}
}

// Warmup preloads the catalogue into the cache.
func (c *ProductCache) Warmup(ctx context.Context, products []domain.Product) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range products {
		p := products[i]
		g.Go(func() error {
			c.Set(ctx, &p)
			return nil
		})
	}
	return g.Wait()
}
