package ordersvc

import (
	"context"
	"time"

	"github.com/hngpack/packaging-svc/internal/dal/interfaces/iorderrepo"
	"github.com/hngpack/packaging-svc/internal/dal/interfaces/iproductrepo"
	"github.com/hngpack/packaging-svc/internal/service/models/money"
	"github.com/hngpack/packaging-svc/internal/service/models/order"
	"github.com/shopspring/decimal"
)

// eventSink receives created orders for best-effort publishing. A nil sink
// disables publishing entirely.
type eventSink interface {
	Enqueue(o order.Order)
}

// OrderService is a service for placing orders.
type OrderService struct {
	productRepo iproductrepo.IProductRepository
	orderRepo   iorderrepo.IOrderRepository
	events      eventSink
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.productRepo == nil || s.orderRepo == nil {
		panic("ordersvc: product and order repositories are required")
	}

	return s
}

// WithProductRepository sets the product repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *OrderService) {
		s.productRepo = repo
	}
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = repo
	}
}

// WithEventSink sets the order-created event sink for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventSink(sink eventSink) option {
	return func(s *OrderService) {
		s.events = sink
	}
}

// CreateOrder resolves each item's current product price, computes the
// order total and persists the order as a single document.
//
// Items are visited sequentially; a missing product aborts the whole
// operation before anything is written. The price is read once per item
// with no lock, so it may change between lookup and insert.
func (s *OrderService) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	total := decimal.Zero
	for _, item := range o.Items {
		p, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return order.Order{}, err
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	o.TotalAmount = money.Round2(total)
	o.CreatedAt = time.Now()

	id, err := s.orderRepo.Insert(ctx, o)
	if err != nil {
		return order.Order{}, err
	}
	o.ID = id

	if s.events != nil {
		s.events.Enqueue(o)
	}

	return o, nil
}
