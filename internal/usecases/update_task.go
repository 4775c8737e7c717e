package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// UpdateTaskParams holds a partial update; nil fields are left unchanged.
type UpdateTaskParams struct {
	Title    *string
	Priority *domain.TaskPriority
	Status   *domain.TaskStatus
}

// UpdateTask defines the interface for the UpdateTask use case.
type UpdateTask interface {
	Execute(ctx context.Context, identity domain.Identity, id uuid.UUID, params UpdateTaskParams) (domain.Task, error)
}

// UpdateTaskImpl is the implementation of the UpdateTask use case.
type UpdateTaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateTaskImpl creates a new instance of UpdateTaskImpl.
func NewUpdateTaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateTaskImpl {
	return UpdateTaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute applies the partial update and returns the stored task.
// A title change drops the embedding and queues a new one.
func (uti UpdateTaskImpl) Execute(ctx context.Context, identity domain.Identity, id uuid.UUID, params UpdateTaskParams) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	now := uti.timeProvider.Now()
	var task domain.Task
	err := uti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		current, found, err := uow.Task().GetTask(spanCtx, identity.UserID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", id))
		}

		updated := current
		if params.Title != nil {
			updated.Title = strings.TrimSpace(*params.Title)
		}
		if params.Priority != nil {
			updated.Priority = *params.Priority
		}
		if params.Status != nil {
			updated.Status = *params.Status
		}
		updated.UpdatedAt = now

		if err := updated.Validate(); err != nil {
			return err
		}

		titleChanged := updated.Title != current.Title
		if titleChanged {
			updated.Embedding = nil
		}

		if err := uow.Task().UpdateTask(spanCtx, updated); err != nil {
			return err
		}
		task = updated

		if !titleChanged {
			return nil
		}
		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_TITLE_CHANGED,
			TaskID:    updated.ID,
			OwnerID:   updated.OwnerID,
			Title:     updated.Title,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitUpdateTask initializes the UpdateTask use case and registers it in the dependency container.
type InitUpdateTask struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the UpdateTaskImpl use case.
func (iut InitUpdateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTask](NewUpdateTaskImpl(iut.Uow, iut.TimeProvider))
	return ctx, nil
}
