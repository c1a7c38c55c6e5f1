package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "bakery-service/common/errors"
	"bakery-service/events"
	"bakery-service/models"
	awspkg "bakery-service/pkg/aws"
	"bakery-service/repository"
)

var acceptedMethods = map[string]bool{
	models.MethodCard:     true,
	models.MethodCash:     true,
	models.MethodApplePay: true,
}

// PaymentService simulates payment processing against existing orders.
type PaymentService interface {
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.CreatePaymentResponse, *apperrors.Error)
}

type paymentServiceImpl struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	telemetry
}

// NewPaymentService creates a PaymentService. publisher and metrics may be nil.
func NewPaymentService(
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	publisher events.Publisher,
	metrics awspkg.MetricsRecorder,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		payments:  payments,
		orders:    orders,
		telemetry: telemetry{metrics: metrics, publisher: publisher, logger: logger},
	}
}

// Outcome returns the simulated result for a payment method. Only the
// accepted methods succeed.
func Outcome(method string) string {
	if acceptedMethods[method] {
		return models.PaymentSucceeded
	}
	return models.PaymentFailed
}

// CreatePayment records a payment for an order whose total matches the
// amount, then mirrors the outcome onto the order's payment_status. The two
// writes are not transactional.
func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.CreatePaymentResponse, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, orderLookupError(s.logger, req.OrderID, err)
	}

	var amount int64
	if req.AmountCents != nil {
		amount = *req.AmountCents
	}
	if amount != order.TotalCents {
		s.logger.Warn("Payment amount mismatch",
			zap.String("order_id", req.OrderID),
			zap.Int64("amount_cents", amount),
			zap.Int64("total_cents", order.TotalCents),
		)
		return nil, apperrors.BadRequest("Amount mismatch")
	}

	method := req.MethodOrDefault()
	status := Outcome(method)

	payment := &models.Payment{
		OrderID:     req.OrderID,
		AmountCents: amount,
		Method:      method,
		Status:      status,
	}
	paymentID, err := s.payments.Create(ctx, payment)
	if err != nil {
		s.logger.Error("Failed to create payment", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, apperrors.Internal("Failed to create payment", err)
	}

	orderPaymentStatus := models.PaymentStatusFailed
	if status == models.PaymentSucceeded {
		orderPaymentStatus = models.PaymentStatusPaid
	}
	if err := s.orders.UpdatePaymentStatus(ctx, req.OrderID, orderPaymentStatus); err != nil {
		// The payment record stays; the order keeps its previous payment_status.
		s.logger.Error("Failed to update order payment status",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal("Failed to update order payment status", err)
	}

	s.logger.Info("Payment processed",
		zap.String("payment_id", paymentID),
		zap.String("order_id", req.OrderID),
		zap.String("method", method),
		zap.String("status", status),
	)

	eventType := models.EventPaymentFailed
	metric := awspkg.MetricPaymentFailed
	if status == models.PaymentSucceeded {
		eventType = models.EventPaymentSucceeded
		metric = awspkg.MetricPaymentSucceeded
	}
	s.count(metric)
	s.publish(ctx, models.Event{
		ID:          uuid.New().String(),
		Type:        eventType,
		OrderID:     req.OrderID,
		PaymentID:   paymentID,
		AmountCents: amount,
		Method:      method,
		Status:      status,
		Timestamp:   time.Now().UTC(),
	})

	return &models.CreatePaymentResponse{PaymentID: paymentID, Status: status}, nil
}
