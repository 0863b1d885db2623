package handler

import (
	"github.com/agrox/backend/internal/application/order"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateOrderRequest is the payload for placing an order
type CreateOrderRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	DeliveryDate  string    `json:"delivery_date" binding:"required"`
	Address       string    `json:"address" binding:"required"`
	TransportType string    `json:"transport_type" binding:"required"`
	Province      string    `json:"province" binding:"required"`
}

// OrderHandler handles order placement and retrieval
type OrderHandler struct {
	BaseHandler
	orderService *order.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("/mine", h.ListMine)
		orders.GET("/:id", h.Get)
	}
}

// Create godoc
// @Summary      Place an order
// @Description  Order a product for delivery. Transport type and
// @Description  province must match their allowed values.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "Order data"
// @Success      201 {object} dto.Response{data=order.CreateOrderResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Incomplete order data")
		return
	}

	result, err := h.orderService.Create(c.Request.Context(), userID, order.CreateOrderInput{
		ProductID:     req.ProductID,
		DeliveryDate:  req.DeliveryDate,
		Address:       req.Address,
		TransportType: req.TransportType,
		Province:      req.Province,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Get godoc
// @Summary      Get an order
// @Description  Returns the order joined with its product. Responds
// @Description  403 both for missing orders and orders owned by
// @Description  someone else.
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=order.OrderDetail}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order id")
		return
	}

	detail, err := h.orderService.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// ListMine godoc
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Success      200 {object} dto.Response{data=[]order.OrderSummary}
// @Router       /orders/mine [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summaries, err := h.orderService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summaries)
}
