package product

import (
	"fmt"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product. Products are insert-only: no
// update or delete operations exist in this system.
type Product struct {
	ID          docid.ID        `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	InStock     bool            `json:"in_stock"`
}

// NotFoundError is returned when a referenced product identifier does not
// resolve to an existing product.
type NotFoundError struct {
	ID docid.ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ID)
}
