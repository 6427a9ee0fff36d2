package order

import (
	"time"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
)

// Order represents a placed order. Buyer fields are opaque pass-through
// data; TotalAmount is computed by the service, never client-supplied.
type Order struct {
	ID              docid.ID              `json:"id"`
	CustomerName    string                `json:"customer_name"`
	Email           string                `json:"email"`
	ShippingAddress string                `json:"shipping_address"`
	Items           []orderitem.OrderItem `json:"items"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	CreatedAt       time.Time             `json:"created_at"`
}
