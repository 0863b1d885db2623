package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrox/backend/internal/infrastructure/auth"
	"github.com/agrox/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(accessExpiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "middleware-test-secret-key-32-chars",
		AccessTokenExpiration:  accessExpiration,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "agrox-test",
	})
}

func newProtectedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuthMiddleware(jwtService))
	router.GET("/api/v1/user", func(c *gin.Context) {
		c.String(http.StatusOK, GetJWTUserID(c).String())
	})
	router.GET("/api/v1/claims", func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.String(http.StatusInternalServerError, "no claims")
			return
		}
		c.String(http.StatusOK, claims.UserID)
	})
	router.GET("/api/v1/products", func(c *gin.Context) {
		c.String(http.StatusOK, "public")
	})
	router.POST("/api/v1/products", func(c *gin.Context) {
		c.String(http.StatusOK, "created")
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService(15 * time.Minute)
	router := newProtectedRouter(jwtService)

	t.Run("accepts a valid token and exposes the user id", func(t *testing.T) {
		userID := uuid.New()
		pair, err := jwtService.GenerateTokenPair(userID)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/user", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("exposes the validated claims", func(t *testing.T) {
		userID := uuid.New()
		pair, err := jwtService.GenerateTokenPair(userID)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/claims", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("returns no claims on an unauthenticated context", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Nil(t, GetJWTClaims(c))
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/user", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/user", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expiredService := newTestJWTService(-time.Minute)
		pair, err := expiredService.GenerateTokenPair(uuid.New())
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/user", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		newProtectedRouter(expiredService).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("lets anonymous GET through on public paths", func(t *testing.T) {
		for _, path := range []string{"/health", "/api/v1/products"} {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("still guards writes on public read paths", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/products", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
