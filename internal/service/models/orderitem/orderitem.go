package orderitem

import (
	"github.com/hngpack/packaging-svc/internal/service/models/docid"
)

// OrderItem represents an item within an order. It only exists embedded in
// an order and has no independent identity.
type OrderItem struct {
	ProductID docid.ID `json:"product_id"`
	Quantity  int      `json:"quantity"`
}
