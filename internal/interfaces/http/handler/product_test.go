package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appcatalog "github.com/agrox/backend/internal/application/catalog"
	domaincatalog "github.com/agrox/backend/internal/domain/catalog"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/agrox/backend/internal/interfaces/http/middleware"
)

type handlerProductRepo struct {
	mock.Mock
}

func (m *handlerProductRepo) Create(ctx context.Context, product *domaincatalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *handlerProductRepo) Update(ctx context.Context, product *domaincatalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *handlerProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *handlerProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*domaincatalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaincatalog.Product), args.Error(1)
}

func (m *handlerProductRepo) FindAll(ctx context.Context) ([]*domaincatalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domaincatalog.Product), args.Error(1)
}

type allowAllAdmin struct{}

func (allowAllAdmin) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	return nil
}

type denyAllAdmin struct{}

func (denyAllAdmin) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	return shared.NewDomainError("FORBIDDEN", "Administrator privileges required")
}

func newProductRouter(repo *handlerProductRepo, checker middleware.AdminChecker, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.JWTUserIDKey, userID)
		}
		c.Next()
	})

	service := appcatalog.NewProductService(repo, nil, zap.NewNop())
	handler := NewProductHandler(service, checker)

	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine
}

func TestProductHandlerList(t *testing.T) {
	repo := new(handlerProductRepo)
	product, err := domaincatalog.NewProduct("Carrots", decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	repo.On("FindAll", mock.Anything).Return([]*domaincatalog.Product{product}, nil)

	engine := newProductRouter(repo, allowAllAdmin{}, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Carrots")
	assert.Contains(t, w.Body.String(), "10.5")
}

func TestProductHandlerGetNotFound(t *testing.T) {
	repo := new(handlerProductRepo)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	engine := newProductRouter(repo, allowAllAdmin{}, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+uuid.NewString(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestProductHandlerGetInvalidID(t *testing.T) {
	repo := new(handlerProductRepo)
	engine := newProductRouter(repo, allowAllAdmin{}, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "FindByID")
}

func TestProductHandlerCreateAsAdmin(t *testing.T) {
	repo := new(handlerProductRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	engine := newProductRouter(repo, allowAllAdmin{}, uuid.New())

	body, _ := json.Marshal(gin.H{"description": "Potatoes", "price": "4.20"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Potatoes")
	repo.AssertExpectations(t)
}

func TestProductHandlerCreateMissingDescription(t *testing.T) {
	repo := new(handlerProductRepo)

	engine := newProductRouter(repo, allowAllAdmin{}, uuid.New())

	body, _ := json.Marshal(gin.H{"price": "1.0"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	assert.Contains(t, w.Body.String(), `"field":"description"`)
	assert.Contains(t, w.Body.String(), "This field is required")
	repo.AssertNotCalled(t, "Create")
}

func TestProductHandlerCreateForbiddenForRegularUser(t *testing.T) {
	repo := new(handlerProductRepo)

	engine := newProductRouter(repo, denyAllAdmin{}, uuid.New())

	body, _ := json.Marshal(gin.H{"description": "Potatoes", "price": "4.20"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestProductHandlerCreateUnauthenticated(t *testing.T) {
	repo := new(handlerProductRepo)

	engine := newProductRouter(repo, allowAllAdmin{}, uuid.Nil)

	body, _ := json.Marshal(gin.H{"description": "Potatoes", "price": "4.20"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductHandlerDelete(t *testing.T) {
	repo := new(handlerProductRepo)
	product, err := domaincatalog.NewProduct("Carrots", decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Delete", mock.Anything, product.ID).Return(nil)

	engine := newProductRouter(repo, allowAllAdmin{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+product.ID.String(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
