package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment record status values.
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
)

// Payment methods accepted by the simulated processor.
const (
	MethodCard     = "card"
	MethodCash     = "cash"
	MethodApplePay = "apple_pay"
)

// Payment is one simulated payment attempt, stored in the "payment"
// collection and never updated afterwards.
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID     string             `bson:"order_id" json:"order_id"`
	AmountCents int64              `bson:"amount_cents" json:"amount_cents"`
	Method      string             `bson:"method" json:"method"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CreatePaymentRequest is the body of POST /api/payments. An absent method
// defaults to "card"; any sent value, including "", is stored verbatim even
// when it is not an accepted method.
type CreatePaymentRequest struct {
	OrderID     string  `json:"order_id" binding:"required"`
	AmountCents *int64  `json:"amount_cents" binding:"required,gte=0"`
	Method      *string `json:"method"`
}

// MethodOrDefault returns the sent method, or "card" when none was sent.
func (r *CreatePaymentRequest) MethodOrDefault() string {
	if r.Method == nil {
		return MethodCard
	}
	return *r.Method
}

// CreatePaymentResponse is returned by POST /api/payments.
type CreatePaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}
