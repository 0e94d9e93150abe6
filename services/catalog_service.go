package services

import (
	"context"

	"store-api/models"
	"store-api/repository"

	"go.uber.org/zap"
)

// CatalogService exposes the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	SeedProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
}

type catalogServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repo: repo, logger: logger}
}

// ListProducts returns every catalog entry. An empty catalog yields an empty
// slice, never an error.
func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, internal("Failed to fetch products")
	}
	return products, nil
}

// SeedProduct inserts one catalog entry. Duplicate names are rejected by the
// database's unique index.
func (s *catalogServiceImpl) SeedProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to seed product", zap.String("name", req.Name), zap.Error(err))
		return nil, internal("Failed to add product")
	}
	return product, nil
}
