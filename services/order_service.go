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

// OrderCreatedStatus is the status string returned to the caller on create.
const OrderCreatedStatus = "created"

// OrderService defines order operations.
type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error)
	GetOrder(ctx context.Context, id string) (*models.Order, *apperrors.Error)
}

type orderServiceImpl struct {
	repo repository.OrderRepository
	telemetry
}

// NewOrderService creates an OrderService. publisher and metrics may be nil.
func NewOrderService(repo repository.OrderRepository, publisher events.Publisher, metrics awspkg.MetricsRecorder, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		repo:      repo,
		telemetry: telemetry{metrics: metrics, publisher: publisher, logger: logger},
	}
}

// CreateOrder persists the order only when total_cents equals the sum of
// the item subtotals.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error) {
	order := req.ToOrder()

	if sum, ok := order.SubtotalSum(); !ok || sum != order.TotalCents {
		s.logger.Warn("Order total mismatch",
			zap.Int64("total_cents", order.TotalCents),
			zap.Int64("subtotal_sum", sum),
			zap.Bool("overflow", !ok),
		)
		s.count(awspkg.MetricOrdersRejected)
		return nil, apperrors.BadRequest("Total does not match items subtotal")
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, apperrors.Internal("Failed to create order", err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", id),
		zap.Int("items", len(order.Items)),
		zap.Int64("total_cents", order.TotalCents),
	)
	s.count(awspkg.MetricOrdersCreated)
	s.publish(ctx, models.Event{
		ID:          uuid.New().String(),
		Type:        models.EventOrderCreated,
		OrderID:     id,
		AmountCents: order.TotalCents,
		Status:      order.Status,
		Timestamp:   time.Now().UTC(),
	})

	return &models.CreateOrderResponse{OrderID: id, Status: OrderCreatedStatus}, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*models.Order, *apperrors.Error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orderLookupError(s.logger, id, err)
	}
	return order, nil
}

// orderLookupError maps repository lookup failures to HTTP-facing errors.
func orderLookupError(logger *zap.Logger, id string, err error) *apperrors.Error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return apperrors.BadRequest("Invalid order id")
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound("Order not found")
	default:
		logger.Error("Failed to fetch order", zap.String("order_id", id), zap.Error(err))
		return apperrors.Internal("Failed to fetch order", err)
	}
}
