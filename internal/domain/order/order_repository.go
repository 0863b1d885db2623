package order

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, o *Order) error

	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByUserID returns all orders owned by the given user
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Order, error)
}
