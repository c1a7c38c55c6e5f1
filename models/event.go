package models

import "time"

// Event types published on the event bus.
const (
	EventOrderCreated     = "order.created"
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
)

// Event is the envelope published for order and payment activity.
type Event struct {
	ID          string    `json:"event_id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	PaymentID   string    `json:"payment_id,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method,omitempty"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// Diagnostics is the body of GET /test.
type Diagnostics struct {
	Backend      string   `json:"backend"`
	Database     string   `json:"database"`
	DatabaseURL  string   `json:"database_url"`
	DatabaseName string   `json:"database_name"`
	Collections  []string `json:"collections"`
}
