package mongorepo

import (
	"context"
	"fmt"
	"time"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/order"
	"github.com/hngpack/packaging-svc/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderItemDal represents an order line item in the stored document.
type OrderItemDal struct {
	ProductId string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
}

// OrderDal represents the order data access layer model.
type OrderDal struct {
	Id              primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName    string             `bson:"customer_name"`
	Email           string             `bson:"email"`
	ShippingAddress string             `bson:"shipping_address"`
	Items           []OrderItemDal     `bson:"items"`
	TotalAmount     float64            `bson:"total_amount"`
	CreatedAt       time.Time          `bson:"created_at"`
}

// OrderDalFromModel converts a service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	items := make([]OrderItemDal, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemDal{
			ProductId: item.ProductID.String(),
			Quantity:  item.Quantity,
		}
	}

	return &OrderDal{
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		TotalAmount:     o.TotalAmount.InexactFloat64(),
		CreatedAt:       o.CreatedAt,
	}
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() *order.Order {
	items := make([]orderitem.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderitem.OrderItem{
			ProductID: docid.ID(item.ProductId),
			Quantity:  item.Quantity,
		}
	}

	return &order.Order{
		ID:              docid.FromObjectID(o.Id),
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		TotalAmount:     decimal.NewFromFloat(o.TotalAmount),
		CreatedAt:       o.CreatedAt,
	}
}

type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(collection *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: collection,
	}
}

// Insert persists an order as a single document.
func (r *MongoOrderRepository) Insert(ctx context.Context, o order.Order) (docid.ID, error) {
	res, err := r.collection.InsertOne(ctx, OrderDalFromModel(&o))
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return docid.FromObjectID(oid), nil
}
