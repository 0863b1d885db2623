package models

import (
	"github.com/agrox/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
// The image payload is stored inline as a binary column; a NULL value
// means no image is set.
type ProductModel struct {
	BaseModel
	Description string          `gorm:"type:varchar(2000);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Image       []byte          `gorm:"type:bytea"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	product := &catalog.Product{
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
	}
	m.PopulateAggregateRoot(&product.BaseAggregateRoot)
	return product
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Description = p.Description
	m.Price = p.Price
	m.Image = p.Image
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
