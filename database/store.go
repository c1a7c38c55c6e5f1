package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDocument inserts doc into collection with created_at and updated_at
// set to now, and returns the generated _id as a hex string.
func CreateDocument(ctx context.Context, db *mongo.Database, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal %s document: %w", collection, err)
	}

	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return "", fmt.Errorf("decode %s document: %w", collection, err)
	}

	now := time.Now().UTC()
	d = setField(d, "created_at", now)
	d = setField(d, "updated_at", now)

	res, err := db.Collection(collection).InsertOne(ctx, d)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// GetDocuments returns the raw documents of collection matching filter.
// A nil filter matches everything; limit <= 0 means no limit.
func GetDocuments(ctx context.Context, db *mongo.Database, collection string, filter interface{}, limit int64) ([]bson.Raw, error) {
	if filter == nil {
		filter = bson.D{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := make([]bson.Raw, 0)
	for cur.Next(ctx) {
		doc := make(bson.Raw, len(cur.Current))
		copy(doc, cur.Current)
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return docs, nil
}

func setField(d bson.D, key string, value interface{}) bson.D {
	for i := range d {
		if d[i].Key == key {
			d[i].Value = value
			return d
		}
	}
	return append(d, bson.E{Key: key, Value: value})
}
