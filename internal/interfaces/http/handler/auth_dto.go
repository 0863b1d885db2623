package handler

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

// AuthUserResponse is the user payload inside login responses
type AuthUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}

// LoginResponse is returned after a successful login or refresh
type LoginResponse struct {
	Token TokenResponse    `json:"token"`
	User  AuthUserResponse `json:"user"`
}

// RefreshTokenRequest is the payload for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
