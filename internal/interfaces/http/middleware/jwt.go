package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/agrox/backend/internal/infrastructure/auth"
	"github.com/agrox/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys set by the JWT middleware
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// SkipPaths do not require authentication for any method
	SkipPaths []string
	// PublicGETPaths and PublicGETPrefixes are unauthenticated for GET
	// only; write verbs on the same paths still require a token
	PublicGETPaths    []string
	PublicGETPrefixes []string
	Logger            *zap.Logger
}

// DefaultJWTConfig returns the default skip list: health checks, the
// endpoints a client must reach before it has a token, and the public
// product catalog reads.
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		PublicGETPaths:    []string{"/api/v1/products"},
		PublicGETPrefixes: []string{"/api/v1/products/"},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware with the
// default configuration.
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipAuth(c, cfg) {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, cfg, nil, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, cfg, nil, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, cfg, nil, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Token validation failed")
			return
		}
		userID, err := claims.ParsedUserID()
		if err != nil {
			abortUnauthorized(c, cfg, err, "Token carries no usable subject")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, userID)
		c.Next()
	}
}

func skipAuth(c *gin.Context, cfg JWTMiddlewareConfig) bool {
	path := c.Request.URL.Path
	for _, skip := range cfg.SkipPaths {
		if path == skip {
			return true
		}
	}
	if c.Request.Method != http.MethodGet {
		return false
	}
	for _, public := range cfg.PublicGETPaths {
		if path == public {
			return true
		}
	}
	for _, prefix := range cfg.PublicGETPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func abortUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path))
	}

	code := dto.ErrCodeUnauthorized
	responseMessage := "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = dto.ErrCodeTokenExpired
		responseMessage = "Token has expired"
	case err != nil:
		code = dto.ErrCodeTokenInvalid
		responseMessage = "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, responseMessage))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the authenticated user id from the context.
// Returns uuid.Nil when the request was not authenticated.
func GetJWTUserID(c *gin.Context) uuid.UUID {
	if userID, exists := c.Get(JWTUserIDKey); exists {
		if id, ok := userID.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
