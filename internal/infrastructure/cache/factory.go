package cache

import (
	"github.com/agrox/backend/internal/application/catalog"
	"github.com/agrox/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewProductListCache builds a product listing cache from the Redis
// configuration. When Redis is disabled or unreachable it falls back
// to an in-memory cache, which is correct for single-instance
// deployments and keeps the service usable without Redis.
func NewProductListCache(cfg config.RedisConfig, logger *zap.Logger) catalog.ProductListCache {
	if !cfg.Enabled {
		logger.Info("Redis disabled, using in-memory product listing cache")
		return NewInMemoryProductListCache(cfg.TTL)
	}

	redisCache, err := NewRedisProductListCache(cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory product listing cache",
			zap.Error(err))
		return NewInMemoryProductListCache(cfg.TTL)
	}

	logger.Info("Using Redis product listing cache", zap.String("addr", cfg.Addr()))
	return redisCache
}
