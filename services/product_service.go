package services

import (
	"context"

	"go.uber.org/zap"

	apperrors "bakery-service/common/errors"
	"bakery-service/models"
	awspkg "bakery-service/pkg/aws"
	"bakery-service/repository"
)

// ProductCache is the optional listing cache in front of the repository.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]models.Product, bool)
	SetProducts(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context) error
}

// ProductService defines the catalog operations.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, *apperrors.Error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (string, *apperrors.Error)
	SeedProducts(ctx context.Context) (*models.SeedResult, *apperrors.Error)
}

type productServiceImpl struct {
	repo  repository.ProductRepository
	cache ProductCache
	telemetry
}

// NewProductService creates a ProductService. cache and metrics may be nil.
func NewProductService(repo repository.ProductRepository, cache ProductCache, metrics awspkg.MetricsRecorder, logger *zap.Logger) ProductService {
	return &productServiceImpl{
		repo:      repo,
		cache:     cache,
		telemetry: telemetry{metrics: metrics, logger: logger},
	}
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *apperrors.Error) {
	if s.cache != nil {
		if products, ok := s.cache.GetProducts(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, apperrors.Internal("Failed to fetch products", err)
	}

	if s.cache != nil {
		s.cache.SetProducts(ctx, products)
	}
	return products, nil
}

// CreateProduct inserts the product as sent. Names are not deduplicated.
func (s *productServiceImpl) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (string, *apperrors.Error) {
	product := req.ToProduct()

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error("Failed to create product", zap.String("name", product.Name), zap.Error(err))
		return "", apperrors.Internal("Failed to create product", err)
	}

	s.invalidate(ctx)
	s.count(awspkg.MetricProductsCreated)
	s.logger.Info("Product created", zap.String("product_id", id), zap.String("name", product.Name))
	return id, nil
}

// SeedProducts inserts the sample catalog only when the collection is empty.
func (s *productServiceImpl) SeedProducts(ctx context.Context) (*models.SeedResult, *apperrors.Error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count products", zap.Error(err))
		return nil, apperrors.Internal("Failed to seed products", err)
	}
	if n > 0 {
		s.logger.Info("Seed skipped, catalog not empty", zap.Int64("existing", n))
		return &models.SeedResult{Inserted: 0, Skipped: true}, nil
	}

	inserted := 0
	for _, p := range sampleProducts() {
		if _, err := s.repo.Create(ctx, &p); err != nil {
			s.logger.Error("Failed to seed product", zap.String("name", p.Name), zap.Int("inserted", inserted), zap.Error(err))
			s.invalidate(ctx)
			return nil, apperrors.Internal("Failed to seed products", err)
		}
		inserted++
	}

	s.invalidate(ctx)
	s.count(awspkg.MetricProductsSeeded)
	s.logger.Info("Products seeded", zap.Int("inserted", inserted))
	return &models.SeedResult{Inserted: inserted}, nil
}

func (s *productServiceImpl) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Error("Failed to invalidate product cache", zap.Error(err))
	}
}
