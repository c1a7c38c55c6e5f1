package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bakery-service/database"
	"bakery-service/models"
)

// OrderRepository defines data access for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (string, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, paymentStatus string) error
}

// MongoOrderRepository implements OrderRepository on the "order" collection.
type MongoOrderRepository struct {
	db *mongo.Database
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{db: db}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	return database.CreateDocument(ctx, r.db, database.OrderCollection, order)
}

// FindByID returns ErrInvalidID when id is not an ObjectID hex string and
// ErrNotFound when no order has that id.
func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	var order models.Order
	err = r.db.Collection(database.OrderCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &order, nil
}

// UpdatePaymentStatus sets payment_status on a single order. It is the only
// mutation an order sees after creation.
func (r *MongoOrderRepository) UpdatePaymentStatus(ctx context.Context, id string, paymentStatus string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	res, err := r.db.Collection(database.OrderCollection).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"payment_status": paymentStatus,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update order %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
