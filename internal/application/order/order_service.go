package order

import (
	"context"
	"encoding/base64"
	"errors"

	domaincatalog "github.com/agrox/backend/internal/domain/catalog"
	domainorder "github.com/agrox/backend/internal/domain/order"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order placement and retrieval
type OrderService struct {
	orderRepo   domainorder.OrderRepository
	productRepo domaincatalog.ProductRepository
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo domainorder.OrderRepository,
	productRepo domaincatalog.ProductRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create places an order for userID. The referenced product must
// exist at placement time; transport and province are validated
// against their enumerations before the order is built.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*CreateOrderResult, error) {
	if input.ProductID == uuid.Nil || input.DeliveryDate == "" || input.Address == "" ||
		input.TransportType == "" || input.Province == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Incomplete order data")
	}

	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product does not exist")
		}
		return nil, err
	}

	transport, err := domainorder.ParseTransportType(input.TransportType)
	if err != nil {
		return nil, err
	}
	province, err := domainorder.ParseProvince(input.Province)
	if err != nil {
		return nil, err
	}

	order, err := domainorder.NewOrder(userID, input.ProductID, input.DeliveryDate, input.Address, transport, province)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("province", province.Display()))

	return &CreateOrderResult{OrderID: order.ID}, nil
}

// Get returns the detail of a single order. It fails with a forbidden
// error both when the order does not exist and when it belongs to a
// different user, so callers cannot probe for order existence.
func (s *OrderService) Get(ctx context.Context, userID, orderID uuid.UUID) (*OrderDetail, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("FORBIDDEN", "No access to this order")
		}
		return nil, err
	}
	if !order.BelongsTo(userID) {
		return nil, shared.NewDomainError("FORBIDDEN", "No access to this order")
	}

	product, err := s.productRepo.FindByID(ctx, order.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product for this order no longer exists")
		}
		return nil, err
	}

	var image *string
	if product.HasImage() {
		encoded := base64.StdEncoding.EncodeToString(product.Image)
		image = &encoded
	}

	return &OrderDetail{
		OrderID:            order.ID,
		UserID:             order.UserID,
		ProductID:          order.ProductID,
		ProductDescription: product.Description,
		DeliveryDate:       order.DeliveryDate,
		Address:            order.Address,
		TransportType:      order.TransportType.String(),
		Province:           order.Province.Display(),
		Image:              image,
		TotalSum:           product.Price,
	}, nil
}

// ListMine returns all orders owned by userID, each joined with the
// product description. Orders whose product was deleted keep a nil
// description rather than disappearing from the listing.
func (s *OrderService) ListMine(ctx context.Context, userID uuid.UUID) ([]OrderSummary, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		var description *string
		product, err := s.productRepo.FindByID(ctx, o.ProductID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
		} else {
			description = &product.Description
		}
		summaries = append(summaries, summaryFromDomain(o, description))
	}
	return summaries, nil
}
