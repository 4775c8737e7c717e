package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// CreateTaskParams holds the input of the CreateTask use case.
// Nil Priority and Status fall back to medium and pending.
type CreateTaskParams struct {
	ParentID *uuid.UUID
	Title    string
	Priority *domain.TaskPriority
	Status   *domain.TaskStatus
}

// CreateTask defines the interface for the CreateTask use case.
type CreateTask interface {
	Execute(ctx context.Context, identity domain.Identity, params CreateTaskParams) (domain.Task, error)
}

// CreateTaskImpl is the implementation of the CreateTask use case.
type CreateTaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateTaskImpl creates a new instance of CreateTaskImpl.
func NewCreateTaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateTaskImpl {
	return CreateTaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates a task for the identity and queues the embedding of its title.
func (cti CreateTaskImpl) Execute(ctx context.Context, identity domain.Identity, params CreateTaskParams) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	now := cti.timeProvider.Now()
	task := domain.Task{
		ID:        cti.createUUID(),
		OwnerID:   identity.UserID,
		ParentID:  params.ParentID,
		Title:     strings.TrimSpace(params.Title),
		Priority:  domain.TaskPriority_MEDIUM,
		Status:    domain.TaskStatus_PENDING,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}
	if params.Status != nil {
		task.Status = *params.Status
	}

	if err := task.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	err := cti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if task.ParentID != nil {
			if err := checkParent(spanCtx, uow, identity.UserID, *task.ParentID); err != nil {
				return err
			}
		}

		if err := uow.Task().CreateTask(spanCtx, task); err != nil {
			return err
		}

		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_CREATED,
			TaskID:    task.ID,
			OwnerID:   task.OwnerID,
			Title:     task.Title,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// checkParent enforces a single level of nesting under a task of the same owner.
func checkParent(ctx context.Context, uow domain.UnitOfWork, ownerID, parentID uuid.UUID) error {
	parent, found, err := uow.Task().GetTask(ctx, ownerID, parentID)
	if err != nil {
		return err
	}
	if !found {
		return domain.NewNotFoundErr("parent task not found")
	}
	if parent.IsSubtask() {
		return domain.NewValidationErr("subtasks cannot have subtasks")
	}
	return nil
}

// InitCreateTask initializes the CreateTask use case and registers it in the dependency container.
type InitCreateTask struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateTask use case in the dependency container.
func (ict InitCreateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTask](NewCreateTaskImpl(ict.Uow, ict.TimeProvider))
	return ctx, nil
}
