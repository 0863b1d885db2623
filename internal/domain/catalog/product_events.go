package catalog

import (
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Product
const AggregateTypeProduct = "Product"

// Product domain event types
const (
	EventTypeProductCreated = "ProductCreated"
	EventTypeProductUpdated = "ProductUpdated"
	EventTypeProductDeleted = "ProductDeleted"
)

// ProductCreatedEvent is published when a product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		Description:     product.Description,
		Price:           product.Price,
	}
}

// ProductUpdatedEvent is published when a product is modified
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	HasImage    bool            `json:"has_image"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		Description:     product.Description,
		Price:           product.Price,
		HasImage:        product.HasImage(),
	}
}

// ProductDeletedEvent is published when a product is removed
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(productID uuid.UUID) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, AggregateTypeProduct, productID),
	}
}
