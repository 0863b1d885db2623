package persistence

import (
	"context"
	"fmt"

	"github.com/agrox/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// AdminEmail is the fixed email of the bootstrap administrator account.
const AdminEmail = "admin@example.com"

// EnsureAdminUser creates the bootstrap administrator if and only if
// no user with the configured username exists yet. Idempotent; runs
// once at startup before any request is served.
func EnsureAdminUser(ctx context.Context, repo identity.UserRepository, username, password string, logger *zap.Logger) error {
	exists, err := repo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		logger.Debug("Admin user already present", zap.String("username", username))
		return nil
	}

	admin, err := identity.NewAdminUser(username, AdminEmail, password)
	if err != nil {
		return fmt.Errorf("failed to build admin user: %w", err)
	}

	if err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Bootstrap admin user created", zap.String("username", username))
	return nil
}
