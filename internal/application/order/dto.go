package order

import (
	domainorder "github.com/agrox/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput contains the fields for placing an order. Transport
// and province arrive as raw strings and are validated against their
// enumerations.
type CreateOrderInput struct {
	ProductID     uuid.UUID
	DeliveryDate  string
	Address       string
	TransportType string
	Province      string
}

// CreateOrderResult is returned after a successful order placement
type CreateOrderResult struct {
	OrderID uuid.UUID `json:"order_id"`
}

// OrderDetail is the full view of an order joined with its product.
// TotalSum carries the product's current price, not a snapshot taken
// at order time.
type OrderDetail struct {
	OrderID            uuid.UUID       `json:"order_id"`
	UserID             uuid.UUID       `json:"user_id"`
	ProductID          uuid.UUID       `json:"product_id"`
	ProductDescription string          `json:"product_description"`
	DeliveryDate       string          `json:"delivery_date"`
	Address            string          `json:"address"`
	TransportType      string          `json:"transport_type"`
	Province           string          `json:"province"`
	Image              *string         `json:"image"`
	TotalSum           decimal.Decimal `json:"total_sum"`
}

// OrderSummary is the listing view of an order. ProductDescription is
// nil when the referenced product has been deleted.
type OrderSummary struct {
	OrderID            uuid.UUID `json:"order_id"`
	ProductID          uuid.UUID `json:"product_id"`
	ProductDescription *string   `json:"product_description"`
	DeliveryDate       string    `json:"delivery_date"`
	Address            string    `json:"address"`
	TransportType      string    `json:"transport_type"`
	Province           string    `json:"province"`
}

func summaryFromDomain(o *domainorder.Order, description *string) OrderSummary {
	return OrderSummary{
		OrderID:            o.ID,
		ProductID:          o.ProductID,
		ProductDescription: description,
		DeliveryDate:       o.DeliveryDate,
		Address:            o.Address,
		TransportType:      o.TransportType.String(),
		Province:           o.Province.Display(),
	}
}
