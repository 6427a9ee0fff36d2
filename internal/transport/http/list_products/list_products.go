package listproducts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
)

type service interface {
	GetProducts(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error)
}

type queryProductsRequest struct {
	Category string `schema:"category,omitempty"`
}

func (q *queryProductsRequest) ToModel() *product.QueryProductsModel {
	return &product.QueryProductsModel{
		Category: q.Category,
	}
}

// productResponse renders a product with the internal identifier exposed
// only as a string under "id".
type productResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
}

func toResponse(products []product.Product) []productResponse {
	result := make([]productResponse, len(products))
	for i, p := range products {
		result[i] = productResponse{
			ID:          p.ID.String(),
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price.InexactFloat64(),
			Category:    p.Category,
			Image:       p.Image,
			InStock:     p.InStock,
		}
	}

	return result
}

func ListProducts(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryProductsRequest{}
	err := decoder.Decode(query, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	products, err := service.GetProducts(r.Context(), query.ToModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting products", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(toResponse(products)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
