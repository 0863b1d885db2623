package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrox/backend/internal/domain/catalog"
	"github.com/agrox/backend/internal/domain/identity"
	"github.com/agrox/backend/internal/domain/order"
	"github.com/agrox/backend/internal/domain/report"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/agrox/backend/internal/infrastructure/persistence"
)

func TestUserRepository(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormUserRepository(tdb.DB)
	ctx := context.Background()

	user, err := identity.NewUser("alice", "alice@example.com", "secret-password")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "alice", found.Username)
		assert.True(t, found.VerifyPassword("secret-password"))
	})

	t.Run("exists checks", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		dup, err := identity.NewUser("alice", "other@example.com", "secret-password")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, dup))
	})
}

func TestProductRepository(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormProductRepository(tdb.DB)
	ctx := context.Background()

	product, err := catalog.NewProduct("Organic carrots 1kg", decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	product.SetImage([]byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, repo.Create(ctx, product))

	t.Run("round trip with image", func(t *testing.T) {
		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Organic carrots 1kg", found.Description)
		assert.True(t, decimal.RequireFromString("10.50").Equal(found.Price))
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, found.Image)
	})

	t.Run("update clears image", func(t *testing.T) {
		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		found.ClearImage()
		require.NoError(t, repo.Update(ctx, found))

		reloaded, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.HasImage())
	})

	t.Run("find all", func(t *testing.T) {
		second, err := catalog.NewProduct("Potatoes 5kg", decimal.RequireFromString("12.00"))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, product.ID))
		_, err := repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderRepository(t *testing.T) {
	tdb := NewTestDB(t)
	userRepo := persistence.NewGormUserRepository(tdb.DB)
	productRepo := persistence.NewGormProductRepository(tdb.DB)
	orderRepo := persistence.NewGormOrderRepository(tdb.DB)
	ctx := context.Background()

	user, err := identity.NewUser("bob", "bob@example.com", "secret-password")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, user))

	product, err := catalog.NewProduct("Apples 2kg", decimal.RequireFromString("8.00"))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(ctx, product))

	placed, err := order.NewOrder(user.ID, product.ID, "2025-06-01",
		"ul. Polna 5, Krakow", order.TransportCourier, order.ProvinceMalopolskie)
	require.NoError(t, err)
	require.NoError(t, orderRepo.Create(ctx, placed))

	t.Run("find by id", func(t *testing.T) {
		found, err := orderRepo.FindByID(ctx, placed.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.UserID)
		assert.Equal(t, product.ID, found.ProductID)
		assert.Equal(t, "2025-06-01", found.DeliveryDate)
		assert.Equal(t, order.TransportCourier, found.TransportType)
		assert.Equal(t, order.ProvinceMalopolskie, found.Province)
	})

	t.Run("find by user", func(t *testing.T) {
		second, err := order.NewOrder(user.ID, product.ID, "2025-06-02",
			"ul. Polna 5, Krakow", order.TransportPickup, order.ProvinceMalopolskie)
		require.NoError(t, err)
		require.NoError(t, orderRepo.Create(ctx, second))

		orders, err := orderRepo.FindByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("orders survive product deletion", func(t *testing.T) {
		require.NoError(t, productRepo.Delete(ctx, product.ID))

		found, err := orderRepo.FindByID(ctx, placed.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ProductID)
	})
}

func TestSalesReportRepository(t *testing.T) {
	tdb := NewTestDB(t)
	userRepo := persistence.NewGormUserRepository(tdb.DB)
	productRepo := persistence.NewGormProductRepository(tdb.DB)
	orderRepo := persistence.NewGormOrderRepository(tdb.DB)
	reportRepo := persistence.NewGormSalesReportRepository(tdb.DB)
	ctx := context.Background()

	user, err := identity.NewUser("carol", "carol@example.com", "secret-password")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, user))

	carrots, err := catalog.NewProduct("Carrots", decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(ctx, carrots))

	apples, err := catalog.NewProduct("Apples", decimal.RequireFromString("8.00"))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(ctx, apples))

	place := func(product *catalog.Product, date string, province order.Province) {
		t.Helper()
		o, err := order.NewOrder(user.ID, product.ID, date, "ul. Rolna 10", order.TransportTruck, province)
		require.NoError(t, err)
		require.NoError(t, orderRepo.Create(ctx, o))
	}

	place(carrots, "2025-05-10", order.ProvinceMazowieckie)
	place(carrots, "2025-05-15", order.ProvinceMazowieckie)
	place(apples, "2025-05-20", order.ProvinceLodzkie)
	// Outside the window
	place(apples, "2025-07-01", order.ProvincePomorskie)

	filter := report.SalesReportFilter{StartDate: "2025-05-01", EndDate: "2025-05-31"}

	t.Run("count orders", func(t *testing.T) {
		count, err := reportRepo.CountOrders(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("sum product prices", func(t *testing.T) {
		sum, err := reportRepo.SumProductPrices(ctx, filter)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("29.00").Equal(sum), "got %s", sum)
	})

	t.Run("count by province", func(t *testing.T) {
		counts, err := reportRepo.CountOrdersByProvince(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts["MAZOWIECKIE"])
		assert.Equal(t, int64(1), counts["LODZKIE"])
		assert.NotContains(t, counts, "POMORSKIE")
	})

	t.Run("sum skips orphaned orders", func(t *testing.T) {
		require.NoError(t, productRepo.Delete(ctx, apples.ID))

		sum, err := reportRepo.SumProductPrices(ctx, filter)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("21.00").Equal(sum), "got %s", sum)
	})
}
