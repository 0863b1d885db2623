package catalog

import (
	"time"

	domaincatalog "github.com/agrox/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput contains the fields for creating a product
type CreateProductInput struct {
	Description string
	Price       decimal.Decimal
	// ImageBase64 is the optional image payload, base64 encoded
	ImageBase64 string
}

// UpdateProductInput is a partial update. Nil fields are left
// untouched. An empty ImageBase64 string clears the stored image.
type UpdateProductInput struct {
	Description *string
	Price       *decimal.Decimal
	ImageBase64 *string
}

// ProductResponse is the public view of a product. Image is nil when
// no image is stored, otherwise the base64 encoded payload.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductResponseFromDomain maps a domain product to its public view
func ProductResponseFromDomain(p *domaincatalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Description: p.Description,
		Price:       p.Price,
		Image:       encodeImage(p.Image),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
