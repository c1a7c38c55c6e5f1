package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values.
const (
	OrderStatusNew       = "new"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order payment status values.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// OrderItem is embedded by value in an Order. ProductID is a snapshot
// reference and is not checked against the product collection.
type OrderItem struct {
	ProductID      string `bson:"product_id" json:"product_id"`
	Name           string `bson:"name" json:"name"`
	Quantity       int    `bson:"quantity" json:"quantity"`
	UnitPriceCents int64  `bson:"unit_price_cents" json:"unit_price_cents"`
	SubtotalCents  int64  `bson:"subtotal_cents" json:"subtotal_cents"`
}

// Order is stored in the "order" collection.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items         []OrderItem        `bson:"items" json:"items"`
	CustomerName  string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail *string            `bson:"customer_email,omitempty" json:"customer_email"`
	CustomerPhone *string            `bson:"customer_phone,omitempty" json:"customer_phone"`
	TotalCents    int64              `bson:"total_cents" json:"total_cents"`
	Status        string             `bson:"status" json:"status"`
	PaymentStatus string             `bson:"payment_status" json:"payment_status"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// SubtotalSum adds up the subtotal of every item. ok is false when the sum
// does not fit in an int64.
func (o *Order) SubtotalSum() (sum int64, ok bool) {
	for _, item := range o.Items {
		if item.SubtotalCents > 0 && sum > math.MaxInt64-item.SubtotalCents {
			return 0, false
		}
		sum += item.SubtotalCents
	}
	return sum, true
}

// OrderItemRequest is one line of CreateOrderRequest.
type OrderItemRequest struct {
	ProductID      string `json:"product_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	UnitPriceCents *int64 `json:"unit_price_cents" binding:"required,gte=0"`
	SubtotalCents  *int64 `json:"subtotal_cents" binding:"required,gte=0"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required,dive"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail *string            `json:"customer_email"`
	CustomerPhone *string            `json:"customer_phone"`
	TotalCents    *int64             `json:"total_cents" binding:"required,gte=0"`
	Status        string             `json:"status" binding:"omitempty,oneof=new preparing ready completed cancelled"`
	PaymentStatus string             `json:"payment_status" binding:"omitempty,oneof=unpaid pending paid failed refunded"`
}

// ToOrder copies the request into an Order, filling status defaults.
func (r *CreateOrderRequest) ToOrder() *Order {
	o := &Order{
		Items:         make([]OrderItem, 0, len(r.Items)),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
	}
	if r.TotalCents != nil {
		o.TotalCents = *r.TotalCents
	}
	if o.Status == "" {
		o.Status = OrderStatusNew
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentStatusUnpaid
	}
	for _, it := range r.Items {
		item := OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
		}
		if it.UnitPriceCents != nil {
			item.UnitPriceCents = *it.UnitPriceCents
		}
		if it.SubtotalCents != nil {
			item.SubtotalCents = *it.SubtotalCents
		}
		o.Items = append(o.Items, item)
	}
	return o
}

// CreateOrderResponse is returned by POST /api/orders.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
