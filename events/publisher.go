package events

import (
	"context"
	"encoding/json"
	"fmt"

	"bakery-service/models"
	awspkg "bakery-service/pkg/aws"
)

// Publisher delivers order and payment events. Delivery is best effort:
// callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no event bus is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, models.Event) error { return nil }
func (NoopPublisher) Close() error                                { return nil }

// SNSPublisher publishes events as JSON to a single SNS topic.
type SNSPublisher struct {
	client   awspkg.SNSPublisher
	topicArn string
}

func NewSNSPublisher(client awspkg.SNSPublisher, topicArn string) *SNSPublisher {
	return &SNSPublisher{client: client, topicArn: topicArn}
}

func (p *SNSPublisher) Publish(ctx context.Context, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	return p.client.Publish(ctx, p.topicArn, payload)
}

func (p *SNSPublisher) Close() error { return nil }
