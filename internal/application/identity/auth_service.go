package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/agrox/backend/internal/domain/identity"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/agrox/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles registration, login and authorization checks
type AuthService struct {
	userRepo      identity.UserRepository
	jwtService    *auth.JWTService
	adminUsername string
	logger        *zap.Logger
}

// NewAuthService creates a new authentication service. adminUsername
// is the reserved bootstrap administrator name; registration under
// that name is always refused.
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	adminUsername string,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		adminUsername: adminUsername,
		logger:        logger,
	}
}

// Register creates a new non-admin account
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	username := strings.TrimSpace(input.Username)

	if username == s.adminUsername {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is reserved")
	}

	user, err := identity.NewUser(username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &RegisterResult{UserID: user.ID}, nil
}

// Login authenticates by email and password and issues a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Email and password are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email")
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		User:                  UserInfoFromDomain(user),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	tokenPair, err := s.jwtService.RefreshTokenPair(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired refresh token")
	}

	claims, err := s.jwtService.ValidateAccessToken(tokenPair.AccessToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired refresh token")
	}
	userID, err := claims.ParsedUserID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired refresh token")
	}

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		User:                  UserInfoFromDomain(user),
	}, nil
}

// CurrentUser returns the public profile for the given user id
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := UserInfoFromDomain(user)
	return &info, nil
}

// RequireAdmin re-resolves the user from storage and fails with a
// forbidden error when the user does not exist or lacks the
// administrator flag. Resolving per call means privilege changes take
// effect immediately, not at next login.
func (s *AuthService) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("FORBIDDEN", "Administrator privileges required")
		}
		return err
	}
	if !user.IsAdmin {
		return shared.NewDomainError("FORBIDDEN", "Administrator privileges required")
	}
	return nil
}
