package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductDal represents the product data access layer model.
type ProductDal struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image"`
	InStock     bool               `bson:"in_stock"`
}

// ToModel converts ProductDal to the service layer Product model.
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:          docid.FromObjectID(p.Id),
		Title:       p.Title,
		Description: p.Description,
		Price:       decimal.NewFromFloat(p.Price),
		Category:    p.Category,
		Image:       p.Image,
		InStock:     p.InStock,
	}
}

// ProductDalFromModel converts a service layer Product model to ProductDal.
func ProductDalFromModel(p *product.Product) *ProductDal {
	return &ProductDal{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Image:       p.Image,
		InStock:     p.InStock,
	}
}

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		collection: collection,
	}
}

// Insert adds a new product and returns the store-assigned identifier.
func (r *MongoProductRepository) Insert(ctx context.Context, p product.Product) (docid.ID, error) {
	res, err := r.collection.InsertOne(ctx, ProductDalFromModel(&p))
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return docid.FromObjectID(oid), nil
}

// Query retrieves products matching the filter in natural storage order.
func (r *MongoProductRepository) Query(
	ctx context.Context,
	filter *product.QueryProductsModel,
) ([]product.Product, error) {
	query := bson.M{}
	if filter != nil && filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	result := []product.Product{}
	for cursor.Next(ctx) {
		var dal ProductDal
		if err := cursor.Decode(&dal); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration error: %w", err)
	}

	return result, nil
}

// GetByID retrieves a single product by its identifier.
func (r *MongoProductRepository) GetByID(ctx context.Context, id docid.ID) (*product.Product, error) {
	oid, err := id.ObjectID()
	if err != nil {
		return nil, &product.NotFoundError{ID: id}
	}

	var dal ProductDal
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&dal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &product.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return dal.ToModel(), nil
}

// Count returns the number of products in the collection.
func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
