package catalog

import (
	"context"
	"encoding/base64"

	domaincatalog "github.com/agrox/backend/internal/domain/catalog"
	"github.com/agrox/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductListCache caches the public product listing. Implementations
// must tolerate a missing backend and simply report a miss.
type ProductListCache interface {
	Get(ctx context.Context) ([]ProductResponse, bool)
	Set(ctx context.Context, products []ProductResponse)
	Invalidate(ctx context.Context)
}

// ProductService handles product catalog operations
type ProductService struct {
	productRepo domaincatalog.ProductRepository
	cache       ProductListCache
	logger      *zap.Logger
}

// NewProductService creates a new ProductService. cache may be nil,
// in which case every listing hits the database.
func NewProductService(
	productRepo domaincatalog.ProductRepository,
	cache ProductListCache,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductResponse, error) {
	product, err := domaincatalog.NewProduct(input.Description, input.Price)
	if err != nil {
		return nil, err
	}

	if input.ImageBase64 != "" {
		image, err := decodeImage(input.ImageBase64)
		if err != nil {
			return nil, err
		}
		product.SetImage(image)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)

	s.logger.Info("Product created", zap.String("product_id", product.ID.String()))

	resp := ProductResponseFromDomain(product)
	return &resp, nil
}

// Get returns a single product by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ProductResponseFromDomain(product)
	return &resp, nil
}

// List returns all products. Results are served from the listing
// cache when present.
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, ProductResponseFromDomain(product))
	}

	if s.cache != nil {
		s.cache.Set(ctx, responses)
	}
	return responses, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		if err := product.UpdateDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Price != nil {
		if err := product.UpdatePrice(*input.Price); err != nil {
			return nil, err
		}
	}
	if input.ImageBase64 != nil {
		if *input.ImageBase64 == "" {
			product.ClearImage()
		} else {
			image, err := decodeImage(*input.ImageBase64)
			if err != nil {
				return nil, err
			}
			product.SetImage(image)
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)

	resp := ProductResponseFromDomain(product)
	return &resp, nil
}

// Delete removes a product. Existing orders that reference it are
// left in place.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListing(ctx)

	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

func (s *ProductService) invalidateListing(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func decodeImage(encoded string) ([]byte, error) {
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Image must be valid base64 data")
	}
	return image, nil
}

func encodeImage(image []byte) *string {
	if len(image) == 0 {
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString(image)
	return &encoded
}
