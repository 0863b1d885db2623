package cache

import (
	"context"
	"sync"
	"time"

	"github.com/agrox/backend/internal/application/catalog"
)

// InMemoryProductListCache caches the product listing in process
// memory. State is not shared across instances, so it is only
// suitable for single-instance deployments and tests.
type InMemoryProductListCache struct {
	mu        sync.RWMutex
	products  []catalog.ProductResponse
	populated bool
	expiresAt time.Time
	ttl       time.Duration
}

// NewInMemoryProductListCache creates an in-memory listing cache
func NewInMemoryProductListCache(ttl time.Duration) *InMemoryProductListCache {
	return &InMemoryProductListCache{ttl: ttl}
}

// Get returns the cached listing if present and not expired
func (c *InMemoryProductListCache) Get(ctx context.Context) ([]catalog.ProductResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated || time.Now().After(c.expiresAt) {
		return nil, false
	}
	products := make([]catalog.ProductResponse, len(c.products))
	copy(products, c.products)
	return products, true
}

// Set stores the listing with the configured TTL
func (c *InMemoryProductListCache) Set(ctx context.Context, products []catalog.ProductResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = make([]catalog.ProductResponse, len(products))
	copy(c.products, products)
	c.populated = true
	c.expiresAt = time.Now().Add(c.ttl)
}

// Invalidate drops the cached listing
func (c *InMemoryProductListCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	c.populated = false
}

var _ catalog.ProductListCache = (*InMemoryProductListCache)(nil)
