package handler

import (
	"errors"
	"net/http"

	"github.com/agrox/backend/internal/domain/shared"
	"github.com/agrox/backend/internal/interfaces/http/dto"
	"github.com/agrox/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// getUserID extracts the authenticated user id set by the JWT middleware
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userID := middleware.GetJWTUserID(c)
	if userID == uuid.Nil {
		return uuid.Nil, errors.New("user id not found in context")
	}
	return userID, nil
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, message, getRequestID(c)))
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, getRequestID(c)))
}

// BindError maps a request binding failure onto a 400 response.
// Validator failures carry per-field details; other decode errors
// (malformed JSON, type mismatches) get the supplied message.
func (h *BaseHandler) BindError(c *gin.Context, err error, message string) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, middleware.FormatValidationErrors(err, getRequestID(c)))
		return
	}
	h.BadRequest(c, message)
}

// HandleError maps domain errors onto HTTP responses; anything that is
// not a DomainError becomes an opaque 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	requestID := getRequestID(c)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, requestID))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeInternal, "An unexpected error occurred", requestID))
}
