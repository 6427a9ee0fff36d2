package createproduct

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
	"github.com/shopspring/decimal"
)

// service is an interface for the service layer.
type service interface {
	CreateProduct(ctx context.Context, p product.Product) (docid.ID, error)
}

var errNegativePrice = errors.New("price must not be negative")

// createProductRequest represents a create product request.
type createProductRequest struct {
	Title       string          `json:"title"       validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	InStock     bool            `json:"in_stock"`
}

// Validate validates the create product request.
func (r *createProductRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return errNegativePrice
	}

	return nil
}

// toModel converts createProductRequest to product.Product.
func (r *createProductRequest) toModel() product.Product {
	return product.Product{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		InStock:     r.InStock,
	}
}

// createProductResponse represents a create product response.
type createProductResponse struct {
	ID string `json:"id"`
}

// CreateProduct handles the create product request.
func CreateProduct(w http.ResponseWriter, r *http.Request, service service) {
	req := createProductRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create product", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create product", "error", err)

		return
	}

	id, err := service.CreateProduct(r.Context(), req.toModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating product", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(createProductResponse{ID: id.String()}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for create product", "error", err)
	}
}
