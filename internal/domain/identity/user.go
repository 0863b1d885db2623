package identity

import (
	"regexp"
	"strings"

	"github.com/agrox/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an account in the system. It is the aggregate root
// for registration, login and authorization checks.
type User struct {
	shared.BaseAggregateRoot
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// NewUser creates a regular (non-admin) user with a hashed credential.
func NewUser(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password cannot be empty")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Email:             email,
		PasswordHash:      hash,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// NewAdminUser creates a user carrying the administrator flag. Used by
// the startup bootstrap only; registration never produces admins.
func NewAdminUser(username, email, password string) (*User, error) {
	user, err := NewUser(username, email, password)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = true
	return user, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword replaces the stored credential hash.
func (u *User) ChangePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_INPUT", "Password cannot be empty")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_INPUT", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_INPUT", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
