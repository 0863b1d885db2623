package middleware

import (
	"context"
	"net/http"

	"github.com/agrox/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminChecker re-resolves a user's admin flag from storage
type AdminChecker interface {
	RequireAdmin(ctx context.Context, userID uuid.UUID) error
}

// RequireAdmin allows only administrators past this point. The admin
// flag is read from storage on every request, so revoking it takes
// effect without waiting for tokens to expire.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetJWTUserID(c)
		if userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if err := checker.RequireAdmin(c.Request.Context(), userID); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Administrator privileges required"))
			return
		}
		c.Next()
	}
}
