package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ListTasks defines the interface for the ListTasks use case.
type ListTasks interface {
	Query(ctx context.Context, identity domain.Identity, params domain.ListTasksParams) ([]domain.Task, error)
}

// ListTasksImpl is the implementation of the ListTasks use case.
type ListTasksImpl struct {
	repo domain.TaskRepository
}

// NewListTasksImpl creates a new instance of ListTasksImpl.
func NewListTasksImpl(repo domain.TaskRepository) ListTasksImpl {
	return ListTasksImpl{repo: repo}
}

// Query returns the identity's tasks, newest first.
func (lti ListTasksImpl) Query(ctx context.Context, identity domain.Identity, params domain.ListTasksParams) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if params.Status != nil {
		if err := params.Status.Validate(); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
	}
	if params.Priority != nil {
		if err := params.Priority.Validate(); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
	}

	tasks, err := lti.repo.ListTasks(spanCtx, identity.UserID, params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// GetTask defines the interface for the GetTask use case.
type GetTask interface {
	Query(ctx context.Context, identity domain.Identity, id uuid.UUID) (domain.Task, error)
}

// GetTaskImpl is the implementation of the GetTask use case.
type GetTaskImpl struct {
	repo domain.TaskRepository
}

// NewGetTaskImpl creates a new instance of GetTaskImpl.
func NewGetTaskImpl(repo domain.TaskRepository) GetTaskImpl {
	return GetTaskImpl{repo: repo}
}

// Query returns one task of the identity.
func (gti GetTaskImpl) Query(ctx context.Context, identity domain.Identity, id uuid.UUID) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	task, found, err := gti.repo.GetTask(spanCtx, identity.UserID, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}
	return task, nil
}

// InitListTasks initializes the task query use cases.
type InitListTasks struct {
	Repo domain.TaskRepository `resolve:""`
}

// Initialize registers ListTasks and GetTask in the dependency container.
func (ilt InitListTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTasks](NewListTasksImpl(ilt.Repo))
	depend.Register[GetTask](NewGetTaskImpl(ilt.Repo))
	return ctx, nil
}
