package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/google/uuid"
)

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"status",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository implements domain.OutboxRepository for Postgres.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateTaskEvent stores a task event as a pending outbox row.
func (op OutboxRepository) CreateTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(outboxEventFields...).
		Values(
			uuid.New(),
			domain.OutboxEntityType_Task,
			event.TaskID,
			domain.OutboxTopic_Tasks,
			event.Type,
			payload,
			domain.OutboxStatus_Pending,
			0,
			domain.DefaultOutboxMaxRetries,
			nil,
			event.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// FetchPendingEvents locks and returns a batch of pending events, oldest first.
// Rows locked by another relay are skipped.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := op.sb.
		Select(outboxEventFields...).
		From("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatus_Pending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.Status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		events = append(events, oe)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := op.sb.
		Update("outbox_events").
		Set("status", status).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(spanCtx)

	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// DeleteEvent deletes an outbox event.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(spanCtx)

	telemetry.RecordErrorAndStatus(span, err)
	return err
}
