package persistence

import (
	"context"
	"errors"

	"github.com/agrox/backend/internal/domain/catalog"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/agrox/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create creates a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing product. Save writes all columns, so an
// image cleared to nil is persisted as NULL rather than skipped.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a product by ID. Orders referencing the product are
// intentionally left untouched.
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all products
func (r *GormProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	var list []models.ProductModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&list).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, len(list))
	for i := range list {
		products[i] = list[i].ToDomain()
	}
	return products, nil
}
