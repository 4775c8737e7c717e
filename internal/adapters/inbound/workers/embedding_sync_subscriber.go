package workers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmbeddingSyncSubscriber consumes task events from Pub/Sub and recomputes
// the embedding of every task whose title was created or changed.
type EmbeddingSyncSubscriber struct {
	Logger              *zap.Logger            `resolve:""`
	Client              *pubsub.Client         `resolve:""`
	SyncEmbedding       usecases.SyncEmbedding `resolve:""`
	Interval            time.Duration          `config:"EMBEDDING_SYNC_BATCH_INTERVAL" default:"1s"`
	BatchSize           int                    `config:"EMBEDDING_SYNC_BATCH_SIZE" default:"20"`
	SubscriptionID      string                 `config:"PUBSUB_EMBEDDING_SUBSCRIPTION_ID" default:"task-embedding-sync"`
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker.
func (s EmbeddingSyncSubscriber) Run(ctx context.Context) error {
	s.Logger.Info("EmbeddingSyncSubscriber: running", zap.String("subscription", s.SubscriptionID))

	if s.BatchSize <= 0 {
		s.BatchSize = 20
	}
	if s.Interval <= 0 {
		s.Interval = time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("EmbeddingSyncSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// taskEventBatch keeps every delivery for one task and its most recent event.
// Only the most recent title needs an embedding; earlier ones are already stale.
type taskEventBatch struct {
	LatestEvent domain.TaskEvent
	Messages    []*pubsub.Message
}

// flush processes one batch of Pub/Sub messages.
func (s EmbeddingSyncSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Debug("EmbeddingSyncSubscriber: processing batch", zap.Int("size", len(batch)))

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	var order []uuid.UUID
	tasks := make(map[uuid.UUID]taskEventBatch)
	for _, msg := range batch {
		var event domain.TaskEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Error("EmbeddingSyncSubscriber: failed to decode event payload", zap.Error(err))
			msg.Nack()
			continue
		}

		if event.Type != domain.EventType_TASK_CREATED && event.Type != domain.EventType_TASK_TITLE_CHANGED {
			msg.Ack()
			continue
		}

		taskBatch, found := tasks[event.TaskID]
		if !found {
			order = append(order, event.TaskID)
		}
		if !found || !event.CreatedAt.Before(taskBatch.LatestEvent.CreatedAt) {
			taskBatch.LatestEvent = event
		}
		taskBatch.Messages = append(taskBatch.Messages, msg)
		tasks[event.TaskID] = taskBatch
	}

	for _, id := range order {
		taskBatch := tasks[id]
		event := taskBatch.LatestEvent

		result, err := s.SyncEmbedding.Execute(ctx, domain.NewIdentity(event.OwnerID), event.TaskID, event.Title)
		switch {
		case errors.Is(err, context.Canceled):
			// Shutting down: let Pub/Sub redeliver.
			for _, msg := range taskBatch.Messages {
				msg.Nack()
			}
			continue
		case err != nil:
			// Sync is best effort. A missing embedding is picked up by the next backfill.
			s.Logger.Warn("EmbeddingSyncSubscriber: embedding sync failed",
				zap.Stringer("task_id", event.TaskID),
				zap.Error(err),
			)
		case result.Stale:
			s.Logger.Debug("EmbeddingSyncSubscriber: title changed before the embedding was stored",
				zap.Stringer("task_id", event.TaskID),
			)
		}

		for _, msg := range taskBatch.Messages {
			msg.Ack()
		}
	}
}
