package catalog

import (
	"strings"

	"github.com/agrox/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents an item offered in the catalog. It is the
// aggregate root for catalog operations. The image payload is optional
// raw binary data; a nil slice means no image is set.
type Product struct {
	shared.BaseAggregateRoot
	Description string
	Price       decimal.Decimal
	Image       []byte
}

// NewProduct creates a new product
func NewProduct(description string, price decimal.Decimal) (*Product, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Description:       strings.TrimSpace(description),
		Price:             price,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// UpdateDescription replaces the product description
func (p *Product) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}

	p.Description = strings.TrimSpace(description)
	p.markUpdated()
	return nil
}

// UpdatePrice replaces the product price
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}

	p.Price = price
	p.markUpdated()
	return nil
}

// SetImage stores a binary image payload
func (p *Product) SetImage(image []byte) {
	p.Image = image
	p.markUpdated()
}

// ClearImage removes any stored image. Distinct from leaving the image
// untouched: callers that omit the field must not call this.
func (p *Product) ClearImage() {
	p.Image = nil
	p.markUpdated()
}

// HasImage reports whether an image payload is stored
func (p *Product) HasImage() bool {
	return len(p.Image) > 0
}

func (p *Product) markUpdated() {
	p.Touch()
	p.AddDomainEvent(NewProductUpdatedEvent(p))
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Description cannot be empty")
	}
	if len(description) > 2000 {
		return shared.NewDomainError("INVALID_INPUT", "Description cannot exceed 2000 characters")
	}
	return nil
}
