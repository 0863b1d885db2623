package handler

import "github.com/shopspring/decimal"

// CreateProductRequest is the payload for creating a product. Image is
// an optional base64 string.
type CreateProductRequest struct {
	Description string           `json:"description" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Image       string           `json:"image"`
}

// UpdateProductRequest is a partial product update. Omitted fields are
// left untouched; an explicit empty image string clears the stored
// image.
type UpdateProductRequest struct {
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
}
