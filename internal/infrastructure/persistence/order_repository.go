package persistence

import (
	"context"
	"errors"

	"github.com/agrox/backend/internal/domain/order"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/agrox/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create creates a new order
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID returns all orders owned by the given user
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	var list []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(list))
	for i := range list {
		orders[i] = list[i].ToDomain()
	}
	return orders, nil
}
