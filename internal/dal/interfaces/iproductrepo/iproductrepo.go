package iproductrepo

import (
	"context"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
)

// IProductRepository is an interface for the product document repository.
type IProductRepository interface {
	// Insert adds a new product and returns the store-assigned identifier.
	Insert(ctx context.Context, p product.Product) (docid.ID, error)

	// Query retrieves products matching the filter, all products when the
	// filter is empty.
	Query(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error)

	// GetByID retrieves a single product. Returns *product.NotFoundError
	// when the identifier does not resolve.
	GetByID(ctx context.Context, id docid.ID) (*product.Product, error)

	// Count returns the number of products in the collection.
	Count(ctx context.Context) (int64, error)
}
