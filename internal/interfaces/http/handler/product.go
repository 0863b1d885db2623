package handler

import (
	"github.com/agrox/backend/internal/application/catalog"
	"github.com/agrox/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles product catalog requests. Reads are public;
// writes require an administrator.
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
	adminChecker   middleware.AdminChecker
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalog.ProductService, adminChecker middleware.AdminChecker) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		adminChecker:   adminChecker,
	}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)

		admin := products.Group("", middleware.RequireAdmin(h.adminChecker))
		{
			admin.POST("", h.Create)
			admin.PATCH("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

// List godoc
// @Summary      List products
// @Description  Return all products, images base64 encoded
// @Tags         products
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalog.ProductResponse}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Get godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=catalog.ProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create godoc
// @Summary      Create a product
// @Description  Administrators only
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body CreateProductRequest true "Product data"
// @Success      201 {object} dto.Response{data=catalog.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), catalog.CreateProductInput{
		Description: req.Description,
		Price:       *req.Price,
		ImageBase64: req.Image,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update godoc
// @Summary      Update a product
// @Description  Administrators only. Omitted fields stay unchanged; an
// @Description  empty image string removes the stored image.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body UpdateProductRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=catalog.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, catalog.UpdateProductInput{
		Description: req.Description,
		Price:       req.Price,
		ImageBase64: req.Image,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete godoc
// @Summary      Delete a product
// @Description  Administrators only. Orders referencing the product
// @Description  are left in place.
// @Tags         products
// @Param        id path string true "Product ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
