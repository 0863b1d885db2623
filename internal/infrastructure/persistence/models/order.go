package models

import (
	"github.com/agrox/backend/internal/domain/order"
	"github.com/google/uuid"
)

// OrderModel is the persistence model for the Order domain entity.
// DeliveryDate is stored as the wire string `YYYY-MM-DD`; range
// filters compare it lexicographically. Province is stored as the
// symbolic enum name, not the display value.
type OrderModel struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryDate  string    `gorm:"type:varchar(10);not null;index"`
	Address       string    `gorm:"type:varchar(200);not null"`
	TransportType string    `gorm:"type:varchar(20);not null"`
	Province      string    `gorm:"type:varchar(30);not null;index"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		UserID:        m.UserID,
		ProductID:     m.ProductID,
		DeliveryDate:  m.DeliveryDate,
		Address:       m.Address,
		TransportType: order.TransportType(m.TransportType),
		Province:      order.Province(m.Province),
	}
	m.PopulateAggregateRoot(&o.BaseAggregateRoot)
	return o
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.UserID = o.UserID
	m.ProductID = o.ProductID
	m.DeliveryDate = o.DeliveryDate
	m.Address = o.Address
	m.TransportType = o.TransportType.String()
	m.Province = o.Province.String()
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
