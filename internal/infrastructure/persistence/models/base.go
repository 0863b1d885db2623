package models

import (
	"time"

	"github.com/agrox/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// FromDomainAggregateRoot populates BaseModel from a domain aggregate root
func (m *BaseModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
}

// PopulateAggregateRoot populates a domain aggregate root from the model
func (m *BaseModel) PopulateAggregateRoot(a *shared.BaseAggregateRoot) {
	a.BaseEntity.ID = m.ID
	a.BaseEntity.CreatedAt = m.CreatedAt
	a.BaseEntity.UpdatedAt = m.UpdatedAt
}
