package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bakery-service/database"
	"bakery-service/models"
)

// ProductRepository defines data access for the product catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) (string, error)
	Count(ctx context.Context) (int64, error)
}

// MongoProductRepository implements ProductRepository on the "product" collection.
type MongoProductRepository struct {
	db *mongo.Database
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{db: db}
}

// List returns every product. Documents without an in_stock field decode
// as in stock.
func (r *MongoProductRepository) List(ctx context.Context) ([]models.Product, error) {
	docs, err := database.GetDocuments(ctx, r.db, database.ProductCollection, nil, 0)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		p := models.Product{InStock: true}
		if err := bson.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	return database.CreateDocument(ctx, r.db, database.ProductCollection, product)
}

func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.db.Collection(database.ProductCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
