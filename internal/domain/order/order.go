package order

import (
	"strings"
	"time"

	"github.com/agrox/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DateLayout is the wire and storage format for delivery dates.
// Fixed-width and zero-padded, so lexicographic comparison of stored
// values is equivalent to chronological comparison.
const DateLayout = "2006-01-02"

// Order represents a placed order. Orders are immutable after
// creation: there is no update or delete operation.
type Order struct {
	shared.BaseAggregateRoot
	UserID        uuid.UUID
	ProductID     uuid.UUID
	DeliveryDate  string
	Address       string
	TransportType TransportType
	Province      Province
}

// NewOrder creates an order owned by userID for the given product.
// All six fields are required; the transport type and province must
// already be members of their enumerations.
func NewOrder(userID, productID uuid.UUID, deliveryDate, address string, transport TransportType, province Province) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product ID cannot be empty")
	}
	if err := validateDeliveryDate(deliveryDate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Address cannot be empty")
	}
	if !transport.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT",
			"Invalid transport type. Allowed: "+strings.Join(TransportTypeValues(), ", "))
	}
	if !province.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT",
			"Invalid province. Allowed: "+strings.Join(ProvinceDisplayValues(), ", "))
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ProductID:         productID,
		DeliveryDate:      deliveryDate,
		Address:           strings.TrimSpace(address),
		TransportType:     transport,
		Province:          province,
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// BelongsTo reports whether the order is owned by the given user
func (o *Order) BelongsTo(userID uuid.UUID) bool {
	return o.UserID == userID
}

func validateDeliveryDate(deliveryDate string) error {
	if deliveryDate == "" {
		return shared.NewDomainError("INVALID_INPUT", "Delivery date cannot be empty")
	}
	if _, err := time.Parse(DateLayout, deliveryDate); err != nil {
		return shared.NewDomainError("INVALID_INPUT", "Delivery date must be in YYYY-MM-DD format")
	}
	return nil
}
