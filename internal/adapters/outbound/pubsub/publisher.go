package pubsub

import (
	"context"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Message attribute keys set on every published outbox event.
const (
	AttrEventType  = "event_type"
	AttrEntityType = "entity_type"
	AttrEntityID   = "entity_id"
)

// EventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub.
type EventPublisher struct {
	client *pubsubV2.Client
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(client *pubsubV2.Client) EventPublisher {
	return EventPublisher{client: client}
}

// PublishEvent publishes the outbox event to its topic and waits for the server ack.
func (p EventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	result := p.client.Publisher(string(event.Topic)).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			AttrEventType:  string(event.EventType),
			AttrEntityType: string(event.EntityType),
			AttrEntityID:   event.EntityID.String(),
		},
	})

	_, err := result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitPublisher registers the Pub/Sub domain.EventPublisher.
type InitPublisher struct {
	Client *pubsubV2.Client `resolve:""`
}

func (i InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventPublisher](NewEventPublisher(i.Client))
	return ctx, nil
}
