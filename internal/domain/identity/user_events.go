package identity

import (
	"github.com/agrox/backend/internal/domain/shared"
)

// Aggregate type constant for User
const AggregateTypeUser = "User"

// User domain event types
const (
	EventTypeUserRegistered      = "UserRegistered"
	EventTypeUserPasswordChanged = "UserPasswordChanged"
)

// UserRegisteredEvent is published when a user account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		Username:        user.Username,
		Email:           user.Email,
		IsAdmin:         user.IsAdmin,
	}
}
