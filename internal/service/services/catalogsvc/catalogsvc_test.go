package catalogsvc_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
	"github.com/hngpack/packaging-svc/internal/service/services/catalogsvc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memProductRepo is an in-memory product repository preserving insertion
// order, mirroring the store's natural storage order.
type memProductRepo struct {
	products []product.Product
	nextID   int
}

func (m *memProductRepo) Insert(_ context.Context, p product.Product) (docid.ID, error) {
	m.nextID++
	p.ID = docid.ID(fmt.Sprintf("%024x", m.nextID))
	m.products = append(m.products, p)
	return p.ID, nil
}

func (m *memProductRepo) Query(_ context.Context, filter *product.QueryProductsModel) ([]product.Product, error) {
	result := []product.Product{}
	for _, p := range m.products {
		if filter != nil && filter.Category != "" && p.Category != filter.Category {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *memProductRepo) GetByID(_ context.Context, id docid.ID) (*product.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &product.NotFoundError{ID: id}
}

func (m *memProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func newService(repo *memProductRepo) *catalogsvc.CatalogService {
	return catalogsvc.MustNewCatalogService(catalogsvc.WithProductRepository(repo))
}

func TestCreateProductRoundtrip(t *testing.T) {
	repo := &memProductRepo{}
	svc := newService(repo)

	in := product.Product{
		Title:       "Stretch Film",
		Description: "Industrial stretch film for pallet wrapping.",
		Price:       decimal.RequireFromString("27.40"),
		Category:    "Protective",
		Image:       "https://example.com/stretch-film.jpg",
		InStock:     true,
	}

	id, err := svc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	require.False(t, id.IsZero())

	listed, err := svc.GetProducts(context.Background(), &product.QueryProductsModel{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	require.Equal(t, id, got.ID)
	require.Equal(t, in.Title, got.Title)
	require.Equal(t, in.Description, got.Description)
	require.True(t, in.Price.Equal(got.Price))
	require.Equal(t, in.Category, got.Category)
	require.Equal(t, in.Image, got.Image)
	require.Equal(t, in.InStock, got.InStock)
}

func TestGetProductsCategoryFilter(t *testing.T) {
	repo := &memProductRepo{}
	svc := newService(repo)

	ctx := context.Background()
	for _, p := range []product.Product{
		{Title: "Box S", Category: "Boxes", Price: decimal.RequireFromString("1.00")},
		{Title: "Box L", Category: "Boxes", Price: decimal.RequireFromString("2.00")},
		{Title: "Tape", Category: "Tape", Price: decimal.RequireFromString("3.00")},
	} {
		_, err := svc.CreateProduct(ctx, p)
		require.NoError(t, err)
	}

	boxes, err := svc.GetProducts(ctx, &product.QueryProductsModel{Category: "Boxes"})
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	for _, p := range boxes {
		require.Equal(t, "Boxes", p.Category)
	}

	// The match is case-sensitive.
	none, err := svc.GetProducts(ctx, &product.QueryProductsModel{Category: "boxes"})
	require.NoError(t, err)
	require.Empty(t, none)

	all, err := svc.GetProducts(ctx, &product.QueryProductsModel{})
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := &memProductRepo{}
	svc := newService(repo)

	ctx := context.Background()

	message, count, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, "Seeded sample products", message)
	require.EqualValues(t, 3, count)

	message, count, err = svc.Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, "Products already seeded", message)
	require.EqualValues(t, 3, count)

	all, err := svc.GetProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestSeedSamplePrices(t *testing.T) {
	repo := &memProductRepo{}
	svc := newService(repo)

	_, _, err := svc.Seed(context.Background())
	require.NoError(t, err)

	all, err := svc.GetProducts(context.Background(), nil)
	require.NoError(t, err)

	prices := map[string]string{}
	for _, p := range all {
		prices[p.Title] = p.Price.StringFixed(2)
	}
	require.Equal(t, map[string]string{
		"Corrugated Boxes - Small":  "12.99",
		"Bubble Wrap Roll":          "19.50",
		"Packing Tape - Heavy Duty": "4.75",
	}, prices)
}
