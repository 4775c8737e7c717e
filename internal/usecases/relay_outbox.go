package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
)

// outboxBatchSize is the number of pending events relayed per run.
const outboxBatchSize = 100

// RelayOutbox defines the interface for relaying outbox events
type RelayOutbox interface {
	// Execute processes pending outbox events and relays them
	Execute(ctx context.Context) error
}

// RelayOutboxImpl publishes pending outbox events to the event bus.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *zap.Logger
}

// NewRelayOutboxImpl creates a new instance
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *zap.Logger) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute processes pending outbox events and relays them
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, outboxBatchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if err := r.relayEvent(spanCtx, uow, event); err != nil {
				r.logger.Error("relay failed",
					zap.String("event_id", event.ID.String()),
					zap.String("event_type", string(event.EventType)),
					zap.Error(err),
				)
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// relayEvent publishes one event; failures bump the retry count until the event is marked as failed.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) error {
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		retries := event.RetryCount + 1
		status := domain.OutboxStatus_Pending
		if retries >= event.MaxRetries {
			status = domain.OutboxStatus_Failed
		}
		if uerr := uow.Outbox().UpdateEvent(ctx, event.ID, status, retries, err.Error()); uerr != nil {
			return uerr
		}
		return err
	}
	return uow.Outbox().DeleteEvent(ctx, event.ID)
}

// InitRelayOutbox is used to initialize the RelayOutbox in the dependency container
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Logger    *zap.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
}

// Initialize registers the RelayOutbox implementation in the dependency container
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger))
	return ctx, nil
}
