package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
	PaymentCollection = "payment"
)

// Mongo is the process-wide database handle. The driver client is safe for
// concurrent use, so one Mongo is shared by every repository.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect opens the client and pings the primary. A failed ping is returned
// together with a usable handle: the driver keeps reconnecting in the
// background, and callers decide whether to carry on.
func Connect(ctx context.Context, uri, name string) (*Mongo, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	m := &Mongo{Client: client, DB: client.Database(name)}
	if err := client.Ping(ctx, nil); err != nil {
		return m, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return m, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// Name returns the database name.
func (m *Mongo) Name() string {
	return m.DB.Name()
}

// ListCollectionNames lists the collections in the database.
func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.DB.ListCollectionNames(ctx, bson.D{})
}
