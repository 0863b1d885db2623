package handler

import (
	"net/http"

	"github.com/agrox/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness information
type HealthHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Register registers the health route on the engine root, outside the
// versioned API group.
func (h *HealthHandler) Register(engine *gin.Engine) {
	engine.GET("/health", h.Health)
}

// Health godoc
// @Summary      Health check
// @Description  Reports service and database health
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
	})
}
