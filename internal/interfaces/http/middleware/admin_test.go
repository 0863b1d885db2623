package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrox/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAdminChecker struct {
	err error
}

func (s *stubAdminChecker) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	return s.err
}

func newAdminRouter(checker AdminChecker, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(JWTUserIDKey, userID)
		}
	})
	router.Use(RequireAdmin(checker))
	router.GET("/admin", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	t.Run("allows administrators", func(t *testing.T) {
		router := newAdminRouter(&stubAdminChecker{}, uuid.New())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbids non-administrators", func(t *testing.T) {
		checker := &stubAdminChecker{err: shared.NewDomainError("FORBIDDEN", "Administrator privileges required")}
		router := newAdminRouter(checker, uuid.New())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		router := newAdminRouter(&stubAdminChecker{}, uuid.Nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
