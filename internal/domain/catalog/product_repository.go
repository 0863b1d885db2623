package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error

	// Delete removes a product by ID. There is no referential check
	// against orders; orders referencing the product are left in place.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns all products
	FindAll(ctx context.Context) ([]*Product, error)
}
