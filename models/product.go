package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry stored in the "product" collection.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description *string            `bson:"description,omitempty" json:"description"`
	PriceCents  int64              `bson:"price_cents" json:"price_cents"`
	ImageURL    *string            `bson:"image_url,omitempty" json:"image_url"`
	Category    *string            `bson:"category,omitempty" json:"category"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"-"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"-"`
}

// CreateProductRequest is the body of POST /api/products.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents" binding:"required,gte=0"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
	InStock     *bool   `json:"in_stock"`
}

// ToProduct applies schema defaults: in_stock is true unless sent.
func (r *CreateProductRequest) ToProduct() *Product {
	p := &Product{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		InStock:     true,
	}
	if r.PriceCents != nil {
		p.PriceCents = *r.PriceCents
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

// SeedResult is returned by POST /api/seed.
type SeedResult struct {
	Inserted int  `json:"inserted"`
	Skipped  bool `json:"skipped,omitempty"`
}
