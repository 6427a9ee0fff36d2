package catalogsvc

import (
	"context"

	"github.com/hngpack/packaging-svc/internal/dal/interfaces/iproductrepo"
	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
	"github.com/shopspring/decimal"
)

// CatalogService is a service for managing the product catalog.
type CatalogService struct {
	productRepo iproductrepo.IProductRepository
}

// option is a function that configures the CatalogService.
type option func(*CatalogService)

// MustNewCatalogService creates a new CatalogService.
func MustNewCatalogService(opts ...option) *CatalogService {
	s := &CatalogService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.productRepo == nil {
		panic("catalogsvc: product repository is required")
	}

	return s
}

// WithProductRepository sets the product repository for the CatalogService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *CatalogService) {
		s.productRepo = repo
	}
}

// GetProducts retrieves products, filtered by exact category match when the
// filter carries one.
func (s *CatalogService) GetProducts(
	ctx context.Context,
	filter *product.QueryProductsModel,
) ([]product.Product, error) {
	return s.productRepo.Query(ctx, filter)
}

// CreateProduct inserts a new product and returns the store-assigned
// identifier.
func (s *CatalogService) CreateProduct(ctx context.Context, p product.Product) (docid.ID, error) {
	return s.productRepo.Insert(ctx, p)
}

// sampleProducts returns the sample catalog used for seeding.
func sampleProducts() []product.Product {
	return []product.Product{
		{
			Title:       "Corrugated Boxes - Small",
			Description: "Durable small corrugated boxes for light shipments.",
			Price:       decimal.RequireFromString("12.99"),
			Category:    "Boxes",
			Image:       "https://images.unsplash.com/photo-1585166276991-9a6f4018f3a0",
			InStock:     true,
		},
		{
			Title:       "Bubble Wrap Roll",
			Description: "High-quality bubble wrap for fragile items.",
			Price:       decimal.RequireFromString("19.50"),
			Category:    "Protective",
			Image:       "https://images.unsplash.com/photo-1585386959984-a4155223168f",
			InStock:     true,
		},
		{
			Title:       "Packing Tape - Heavy Duty",
			Description: "Strong adhesive packing tape for secure sealing.",
			Price:       decimal.RequireFromString("4.75"),
			Category:    "Tape",
			Image:       "https://images.unsplash.com/photo-1516637090014-cb1ab0d08fc7",
			InStock:     true,
		},
	}
}

// Seed inserts the sample products once. A second call inserts nothing and
// reports the existing count.
func (s *CatalogService) Seed(ctx context.Context) (string, int64, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return "", 0, err
	}

	if count > 0 {
		return "Products already seeded", count, nil
	}

	samples := sampleProducts()
	for _, p := range samples {
		if _, err := s.productRepo.Insert(ctx, p); err != nil {
			return "", 0, err
		}
	}

	return "Seeded sample products", int64(len(samples)), nil
}
