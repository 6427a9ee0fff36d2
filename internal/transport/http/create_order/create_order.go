package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/order"
	"github.com/hngpack/packaging-svc/internal/service/models/orderitem"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
}

// itemInCreateOrderRequest represents an item in a create order request.
type itemInCreateOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"gt=0"`
}

// toModel converts itemInCreateOrderRequest to orderitem.OrderItem.
func (r *itemInCreateOrderRequest) toModel() orderitem.OrderItem {
	return orderitem.OrderItem{
		ProductID: docid.ID(r.ProductID),
		Quantity:  r.Quantity,
	}
}

// createOrderRequest represents a create order request. An empty items
// list is allowed and yields a zero total.
type createOrderRequest struct {
	CustomerName    string                     `json:"customer_name"`
	Email           string                     `json:"email"            validate:"omitempty,email"`
	ShippingAddress string                     `json:"shipping_address"`
	Items           []itemInCreateOrderRequest `json:"items"            validate:"dive"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createOrderRequest to order.Order.
func (r *createOrderRequest) toModel() order.Order {
	items := make([]orderitem.OrderItem, len(r.Items))
	for i := range r.Items {
		items[i] = r.Items[i].toModel()
	}

	return order.Order{
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		ShippingAddress: r.ShippingAddress,
		Items:           items,
	}
}

// createOrderResponse represents a create order response.
type createOrderResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), req.toModel())
	if err != nil {
		var notFound *product.NotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, notFound.Error(), http.StatusNotFound)
			slog.Error("Order references missing product", "product_id", notFound.ID)

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating order", "error", err)

		return
	}

	resp := createOrderResponse{
		ID:    created.ID.String(),
		Total: created.TotalAmount.InexactFloat64(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for create order", "error", err)
	}
}
