package cache

import (
	"context"
	"testing"
	"time"

	"github.com/agrox/backend/internal/application/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingFixture() []catalog.ProductResponse {
	return []catalog.ProductResponse{
		{
			ID:          uuid.New(),
			Description: "Carrots",
			Price:       decimal.RequireFromString("10.50"),
		},
	}
}

func TestInMemoryProductListCache(t *testing.T) {
	ctx := context.Background()

	t.Run("misses when empty", func(t *testing.T) {
		c := NewInMemoryProductListCache(time.Minute)

		_, ok := c.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("round-trips a listing", func(t *testing.T) {
		c := NewInMemoryProductListCache(time.Minute)
		listing := listingFixture()

		c.Set(ctx, listing)

		cached, ok := c.Get(ctx)
		require.True(t, ok)
		require.Len(t, cached, 1)
		assert.Equal(t, "Carrots", cached[0].Description)
	})

	t.Run("returns a copy callers cannot mutate", func(t *testing.T) {
		c := NewInMemoryProductListCache(time.Minute)
		c.Set(ctx, listingFixture())

		cached, ok := c.Get(ctx)
		require.True(t, ok)
		cached[0].Description = "mutated"

		again, ok := c.Get(ctx)
		require.True(t, ok)
		assert.Equal(t, "Carrots", again[0].Description)
	})

	t.Run("misses after invalidation", func(t *testing.T) {
		c := NewInMemoryProductListCache(time.Minute)
		c.Set(ctx, listingFixture())

		c.Invalidate(ctx)

		_, ok := c.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("misses after expiry", func(t *testing.T) {
		c := NewInMemoryProductListCache(time.Nanosecond)
		c.Set(ctx, listingFixture())

		time.Sleep(time.Millisecond)

		_, ok := c.Get(ctx)
		assert.False(t, ok)
	})
}
