package models

import (
	"github.com/agrox/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
	}
	m.PopulateAggregateRoot(&user.BaseAggregateRoot)
	return user
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.IsAdmin = u.IsAdmin
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
