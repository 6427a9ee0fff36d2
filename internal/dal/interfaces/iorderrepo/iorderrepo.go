package iorderrepo

import (
	"context"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/order"
)

// IOrderRepository is an interface for the order document repository.
type IOrderRepository interface {
	// Insert persists an order as a single document and returns the
	// store-assigned identifier.
	Insert(ctx context.Context, o order.Order) (docid.ID, error)
}
