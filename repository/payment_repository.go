package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bakery-service/database"
	"bakery-service/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (string, error)
}

type MongoPaymentRepository struct {
	db *mongo.Database
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{db: db}
}

func (r *MongoPaymentRepository) Create(ctx context.Context, payment *models.Payment) (string, error) {
	return database.CreateDocument(ctx, r.db, database.PaymentCollection, payment)
}
