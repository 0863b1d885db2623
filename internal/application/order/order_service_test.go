package order

import (
	"context"
	"errors"
	"testing"

	domaincatalog "github.com/agrox/backend/internal/domain/catalog"
	domainorder "github.com/agrox/backend/internal/domain/order"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domainorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainorder.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainorder.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domainorder.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainorder.Order), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domaincatalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domaincatalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domaincatalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaincatalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*domaincatalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domaincatalog.Product), args.Error(1)
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestService(orderRepo *MockOrderRepository, productRepo *MockProductRepository) *OrderService {
	return NewOrderService(orderRepo, productRepo, zap.NewNop())
}

func newTestProduct(t *testing.T) *domaincatalog.Product {
	t.Helper()
	product, err := domaincatalog.NewProduct("Carrots", decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	return product
}

func newTestOrder(t *testing.T, userID, productID uuid.UUID) *domainorder.Order {
	t.Helper()
	o, err := domainorder.NewOrder(userID, productID, "2025-05-20", "ul. Rolna 10, Warszawa",
		domainorder.TransportTruck, domainorder.ProvinceMazowieckie)
	require.NoError(t, err)
	return o
}

// =============================================================================
// Create Tests
// =============================================================================

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	validInput := func(productID uuid.UUID) CreateOrderInput {
		return CreateOrderInput{
			ProductID:     productID,
			DeliveryDate:  "2025-05-20",
			Address:       "ul. Rolna 10, Warszawa",
			TransportType: "TRUCK",
			Province:      "mazowieckie",
		}
	}

	t.Run("places an order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		product := newTestProduct(t)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		orderRepo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		result, err := svc.Create(ctx, userID, validInput(product.ID))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.OrderID)
		orderRepo.AssertExpectations(t)
	})

	t.Run("rejects incomplete data", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)

		input := validInput(uuid.New())
		input.Address = ""
		_, err := svc.Create(ctx, userID, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("fails when product does not exist", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		productID := uuid.New()

		productRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, userID, validInput(productID))

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("rejects unknown transport type", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		product := newTestProduct(t)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		input := validInput(product.ID)
		input.TransportType = "BICYCLE"
		_, err := svc.Create(ctx, userID, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Contains(t, err.Error(), "PICKUP, TRUCK, COURIER")
	})

	t.Run("rejects unknown province", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		product := newTestProduct(t)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		input := validInput(product.ID)
		input.Province = "atlantyda"
		_, err := svc.Create(ctx, userID, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Contains(t, err.Error(), "mazowieckie")
	})

	t.Run("rejects malformed delivery date", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		product := newTestProduct(t)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		input := validInput(product.ID)
		input.DeliveryDate = "20-05-2025"
		_, err := svc.Create(ctx, userID, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

// =============================================================================
// Get Tests
// =============================================================================

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns the order joined with its product", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		product := newTestProduct(t)
		product.SetImage([]byte{0x01, 0x02})
		o := newTestOrder(t, userID, product.ID)

		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		detail, err := svc.Get(ctx, userID, o.ID)

		require.NoError(t, err)
		assert.Equal(t, "Carrots", detail.ProductDescription)
		assert.Equal(t, "TRUCK", detail.TransportType)
		assert.Equal(t, "mazowieckie", detail.Province)
		assert.True(t, decimal.RequireFromString("10.50").Equal(detail.TotalSum))
		assert.NotNil(t, detail.Image)
	})

	t.Run("forbids access to a nonexistent order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		id := uuid.New()

		orderRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Get(ctx, userID, id)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrForbidden))
	})

	t.Run("forbids access to another user's order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		o := newTestOrder(t, uuid.New(), uuid.New())

		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := svc.Get(ctx, userID, o.ID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrForbidden))
		productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("fails when the product was deleted", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		productID := uuid.New()
		o := newTestOrder(t, userID, productID)

		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)
		productRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		_, err := svc.Get(ctx, userID, o.ID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

// =============================================================================
// ListMine Tests
// =============================================================================

func TestOrderService_ListMine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns the user's orders with product descriptions", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		product := newTestProduct(t)
		o := newTestOrder(t, userID, product.ID)

		orderRepo.On("FindByUserID", ctx, userID).Return([]*domainorder.Order{o}, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		summaries, err := svc.ListMine(ctx, userID)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		require.NotNil(t, summaries[0].ProductDescription)
		assert.Equal(t, "Carrots", *summaries[0].ProductDescription)
		assert.Equal(t, "mazowieckie", summaries[0].Province)
	})

	t.Run("keeps orders whose product was deleted", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)
		productID := uuid.New()
		o := newTestOrder(t, userID, productID)

		orderRepo.On("FindByUserID", ctx, userID).Return([]*domainorder.Order{o}, nil)
		productRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		summaries, err := svc.ListMine(ctx, userID)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Nil(t, summaries[0].ProductDescription)
	})

	t.Run("returns an empty slice when the user has no orders", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := newTestService(orderRepo, productRepo)

		orderRepo.On("FindByUserID", ctx, userID).Return([]*domainorder.Order{}, nil)

		summaries, err := svc.ListMine(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}
