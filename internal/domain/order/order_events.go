package order

import (
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Order
const AggregateTypeOrder = "Order"

// Order domain event types
const (
	EventTypeOrderPlaced = "OrderPlaced"
)

// OrderPlacedEvent is published when an order is created
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	UserID        uuid.UUID `json:"user_id"`
	ProductID     uuid.UUID `json:"product_id"`
	DeliveryDate  string    `json:"delivery_date"`
	TransportType string    `json:"transport_type"`
	Province      string    `json:"province"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, o.ID),
		UserID:          o.UserID,
		ProductID:       o.ProductID,
		DeliveryDate:    o.DeliveryDate,
		TransportType:   o.TransportType.String(),
		Province:        o.Province.Display(),
	}
}
