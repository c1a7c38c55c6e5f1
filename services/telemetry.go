package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bakery-service/events"
	"bakery-service/models"
	awspkg "bakery-service/pkg/aws"
)

const serviceName = "bakery-service"

// telemetry bundles the best-effort side channels every service writes to.
// Nil metrics or publisher are treated as disabled.
type telemetry struct {
	metrics   awspkg.MetricsRecorder
	publisher events.Publisher
	logger    *zap.Logger
}

func (t telemetry) count(metricName string) {
	if t.metrics == nil || !t.metrics.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := t.metrics.RecordCount(ctx, metricName, map[string]string{"Service": serviceName}); err != nil {
			t.logger.Warn("Failed to record metric", zap.String("metric", metricName), zap.Error(err))
		}
	}()
}

// publish sends event on the request context; a failure is logged, never
// returned.
func (t telemetry) publish(ctx context.Context, event models.Event) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(ctx, event); err != nil {
		t.logger.Error("Failed to publish event",
			zap.String("event_type", event.Type),
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
		return
	}
	t.logger.Debug("Event published",
		zap.String("event_type", event.Type),
		zap.String("order_id", event.OrderID),
	)
}
