package identity

import (
	"time"

	"github.com/agrox/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterInput contains the fields required to register an account
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterResult is returned after a successful registration
type RegisterResult struct {
	UserID uuid.UUID `json:"user_id"`
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the issued tokens and basic user info
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	User                  UserInfo  `json:"user"`
}

// UserInfo is the public view of a user account
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}

// UserInfoFromDomain maps a domain user to its public view
func UserInfoFromDomain(u *identity.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}
