package mongodb

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client represents a MongoDB client bound to the service database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Database returns the underlying database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping checks connectivity to the store.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// ListCollectionNames lists the collections of the service database.
func (c *Client) ListCollectionNames(ctx context.Context) ([]string, error) {
	return c.db.ListCollectionNames(ctx, bson.D{})
}

// Close closes the connection for graceful shutdown.
func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return c.client.Disconnect(ctx)
}

// MustNewClient creates a new MongoDB client. The service fails fast at
// startup when the store is unreachable.
func MustNewClient() *Client {
	uri := os.Getenv("DATABASE_URL")
	dbName := os.Getenv("DATABASE_NAME")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		panic("failed to connect to mongodb: " + err.Error())
	}

	if err := client.Ping(ctx, nil); err != nil {
		panic("failed to ping mongodb: " + err.Error())
	}

	return &Client{
		client: client,
		db:     client.Database(dbName),
	}
}
