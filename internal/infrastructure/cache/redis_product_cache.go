package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agrox/backend/internal/application/catalog"
	"github.com/agrox/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productListKey = "catalog:products:list"

// RedisProductListCache caches the product listing in Redis. Suitable
// for multi-instance deployments where the cache must be shared and
// invalidation must reach every instance.
type RedisProductListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisProductListCache connects to Redis and verifies the
// connection before returning the cache.
func NewRedisProductListCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisProductListCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProductListCache{
		client: client,
		ttl:    cfg.TTL,
		logger: logger,
	}, nil
}

// Get returns the cached listing. Any Redis or decoding failure is
// logged and reported as a miss so the caller falls through to the
// database.
func (c *RedisProductListCache) Get(ctx context.Context) ([]catalog.ProductResponse, bool) {
	payload, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Product listing cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var products []catalog.ProductResponse
	if err := json.Unmarshal(payload, &products); err != nil {
		c.logger.Warn("Product listing cache entry is corrupt, dropping it", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

// Set stores the listing with the configured TTL
func (c *RedisProductListCache) Set(ctx context.Context, products []catalog.ProductResponse) {
	payload, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("Failed to encode product listing for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, productListKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Product listing cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing
func (c *RedisProductListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productListKey).Err(); err != nil {
		c.logger.Warn("Product listing cache invalidation failed", zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisProductListCache) Close() error {
	return c.client.Close()
}

var _ catalog.ProductListCache = (*RedisProductListCache)(nil)
