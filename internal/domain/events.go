package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of domain event carried by an outbox message.
type EventType string

const (
	// EventType_TASK_CREATED represents the event when a task is created.
	EventType_TASK_CREATED EventType = "TASK.CREATED"
	// EventType_TASK_TITLE_CHANGED represents the event when the title of a task changes.
	EventType_TASK_TITLE_CHANGED EventType = "TASK.TITLE_CHANGED"
)

// TaskEvent represents a change to a task that requires its embedding to be recomputed.
type TaskEvent struct {
	Type      EventType `json:"type"`
	TaskID    uuid.UUID `json:"task_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
