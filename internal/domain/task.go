package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	// TaskPriority_LOW is the lowest priority.
	TaskPriority_LOW TaskPriority = "low"
	// TaskPriority_MEDIUM is the default priority.
	TaskPriority_MEDIUM TaskPriority = "medium"
	// TaskPriority_HIGH is the highest priority.
	TaskPriority_HIGH TaskPriority = "high"
)

// Validate checks that the priority is one of the known values.
func (p TaskPriority) Validate() error {
	switch p {
	case TaskPriority_LOW, TaskPriority_MEDIUM, TaskPriority_HIGH:
		return nil
	}
	return NewValidationErr("priority must be one of low, medium or high")
}

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	// TaskStatus_PENDING indicates that work on the task has not started.
	TaskStatus_PENDING TaskStatus = "pending"
	// TaskStatus_IN_PROGRESS indicates that the task is being worked on.
	TaskStatus_IN_PROGRESS TaskStatus = "in-progress"
	// TaskStatus_DONE indicates that the task has been completed.
	TaskStatus_DONE TaskStatus = "done"
)

// Validate checks that the status is one of the known values.
func (s TaskStatus) Validate() error {
	switch s {
	case TaskStatus_PENDING, TaskStatus_IN_PROGRESS, TaskStatus_DONE:
		return nil
	}
	return NewValidationErr("status must be one of pending, in-progress or done")
}

const (
	// MaxTaskTitleLength is the maximum number of characters allowed in a task title.
	MaxTaskTitleLength = 200
	// EmbeddingDimensions is the size of the stored embedding vectors.
	EmbeddingDimensions = 1536
)

// Task represents a unit of work owned by a single user.
// A task with a ParentID is a subtask of that parent.
type Task struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	ParentID  *uuid.UUID
	Title     string
	Priority  TaskPriority
	Status    TaskStatus
	Embedding []float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSubtask reports whether the task belongs to a parent task.
func (t Task) IsSubtask() bool {
	return t.ParentID != nil
}

// HasEmbedding reports whether an embedding was computed for the current title.
func (t Task) HasEmbedding() bool {
	return len(t.Embedding) > 0
}

// Validate checks the task invariants.
func (t Task) Validate() error {
	if t.OwnerID == uuid.Nil {
		return NewValidationErr("owner_id cannot be empty")
	}
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return NewValidationErr("title cannot be empty")
	}
	if utf8.RuneCountInString(title) > MaxTaskTitleLength {
		return NewValidationErr("title must be at most 200 characters")
	}
	if t.ParentID != nil && *t.ParentID == t.ID {
		return NewValidationErr("a task cannot be its own parent")
	}
	if err := t.Priority.Validate(); err != nil {
		return err
	}
	return t.Status.Validate()
}

// ListTasksParams represents the filters for listing tasks.
// A nil ParentID lists top-level tasks only.
type ListTasksParams struct {
	ParentID *uuid.UUID
	Status   *TaskStatus
	Priority *TaskPriority
}

// SimilarityQuery describes a vector similarity scan over one user's tasks.
type SimilarityQuery struct {
	OwnerID   uuid.UUID
	Embedding []float64
	Threshold float64
	Limit     int
}

// SearchResult pairs a task with its cosine similarity to a query.
type SearchResult struct {
	Task       Task
	Similarity float64
}

// TaskRepository defines the interface for interacting with tasks in the data store.
// Every operation is scoped to the owner of the tasks.
type TaskRepository interface {
	// ListTasks lists the owner's tasks, newest first.
	ListTasks(ctx context.Context, ownerID uuid.UUID, params ListTasksParams) ([]Task, error)

	// GetTask retrieves a task by its unique identifier.
	GetTask(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (Task, bool, error)

	// CreateTask inserts a new task.
	CreateTask(ctx context.Context, task Task) error

	// UpdateTask writes title, priority and status. The stored embedding is cleared when the title changes.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask removes a task and its subtasks. It returns false when nothing was deleted.
	DeleteTask(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (bool, error)

	// ListTasksWithoutEmbedding lists the owner's tasks that have no embedding, oldest first.
	ListTasksWithoutEmbedding(ctx context.Context, ownerID uuid.UUID) ([]Task, error)

	// UpdateEmbedding stores the embedding only if the task still has the given title.
	UpdateEmbedding(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, title string, embedding []float64) (bool, error)

	// SearchBySimilarity returns embedded tasks whose similarity to the query embedding reaches the threshold.
	SearchBySimilarity(ctx context.Context, query SimilarityQuery) ([]SearchResult, error)
}
