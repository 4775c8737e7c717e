package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// DeleteTask defines the interface for the DeleteTask use case.
type DeleteTask interface {
	Execute(ctx context.Context, identity domain.Identity, id uuid.UUID) error
}

// DeleteTaskImpl is the implementation of the DeleteTask use case.
type DeleteTaskImpl struct {
	uow domain.UnitOfWork
}

// NewDeleteTaskImpl creates a new instance of DeleteTaskImpl.
func NewDeleteTaskImpl(uow domain.UnitOfWork) DeleteTaskImpl {
	return DeleteTaskImpl{uow: uow}
}

// Execute deletes a task of the identity. Its subtasks are removed by the store cascade.
func (dti DeleteTaskImpl) Execute(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	deleted, err := dti.uow.Task().DeleteTask(spanCtx, identity.UserID, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !deleted {
		err := domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// InitDeleteTask initializes the DeleteTask use case.
type InitDeleteTask struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the DeleteTask use case in the dependency container.
func (i InitDeleteTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTask](NewDeleteTaskImpl(i.Uow))
	return ctx, nil
}
