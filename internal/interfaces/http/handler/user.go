package handler

import (
	"github.com/agrox/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated user's profile
type UserHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *identity.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.CurrentUser)
}

// CurrentUser godoc
// @Summary      Current user profile
// @Description  Return the profile of the authenticated user
// @Tags         user
// @Produce      json
// @Success      200 {object} dto.Response{data=AuthUserResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /user [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, AuthUserResponse{
		ID:       info.ID,
		Username: info.Username,
		Email:    info.Email,
		IsAdmin:  info.IsAdmin,
	})
}
