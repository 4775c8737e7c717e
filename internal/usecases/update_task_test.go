package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smarttasks/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateTaskImpl_Execute(t *testing.T) {
	updatedAt := fixedTime.Add(time.Hour)
	current := domain.Task{
		ID:        taskID,
		OwnerID:   ownerID,
		Title:     "Plan a wedding",
		Priority:  domain.TaskPriority_MEDIUM,
		Status:    domain.TaskStatus_PENDING,
		Embedding: []float64{0.1, 0.2},
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}

	tests := map[string]struct {
		identity        domain.Identity
		params          UpdateTaskParams
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedTask    domain.Task
		expectedErr     error
	}{
		"title-change-clears-embedding-and-queues-event": {
			identity: identity,
			params:   UpdateTaskParams{Title: common.Ptr(" Plan a beach wedding ")},
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(updatedAt)

				repo := domain_mocks.NewMockTaskRepository(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)
				uow.EXPECT().Task().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)
				runInTransaction(uow)

				expected := current
				expected.Title = "Plan a beach wedding"
				expected.Embedding = nil
				expected.UpdatedAt = updatedAt

				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(current, true, nil)
				repo.EXPECT().UpdateTask(mock.Anything, expected).Return(nil)
				outbox.EXPECT().CreateTaskEvent(mock.Anything, domain.TaskEvent{
					Type:      domain.EventType_TASK_TITLE_CHANGED,
					TaskID:    taskID,
					OwnerID:   ownerID,
					Title:     "Plan a beach wedding",
					CreatedAt: updatedAt,
				}).Return(nil)
			},
			expectedTask: func() domain.Task {
				tk := current
				tk.Title = "Plan a beach wedding"
				tk.Embedding = nil
				tk.UpdatedAt = updatedAt
				return tk
			}(),
		},
		"status-change-keeps-embedding": {
			identity: identity,
			params:   UpdateTaskParams{Status: common.Ptr(domain.TaskStatus_DONE)},
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(updatedAt)

				repo := domain_mocks.NewMockTaskRepository(t)
				uow.EXPECT().Task().Return(repo)
				runInTransaction(uow)

				expected := current
				expected.Status = domain.TaskStatus_DONE
				expected.UpdatedAt = updatedAt

				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(current, true, nil)
				repo.EXPECT().UpdateTask(mock.Anything, expected).Return(nil)
			},
			expectedTask: func() domain.Task {
				tk := current
				tk.Status = domain.TaskStatus_DONE
				tk.UpdatedAt = updatedAt
				return tk
			}(),
		},
		"not-found": {
			identity: identity,
			params:   UpdateTaskParams{Status: common.Ptr(domain.TaskStatus_DONE)},
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(updatedAt)

				repo := domain_mocks.NewMockTaskRepository(t)
				uow.EXPECT().Task().Return(repo)
				runInTransaction(uow)

				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(domain.Task{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("task with ID 123e4567-e89b-12d3-a456-426614174000 not found"),
		},
		"invalid-priority": {
			identity: identity,
			params:   UpdateTaskParams{Priority: common.Ptr(domain.TaskPriority("urgent"))},
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(updatedAt)

				repo := domain_mocks.NewMockTaskRepository(t)
				uow.EXPECT().Task().Return(repo)
				runInTransaction(uow)

				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(current, true, nil)
			},
			expectedErr: domain.NewValidationErr("priority must be one of low, medium or high"),
		},
		"anonymous-identity": {
			identity:    domain.Identity{},
			params:      UpdateTaskParams{Title: common.Ptr("x")},
			expectedErr: domain.NewUnauthenticatedErr("authentication required"),
		},
		"outbox-error": {
			identity: identity,
			params:   UpdateTaskParams{Title: common.Ptr("Plan a beach wedding")},
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(updatedAt)

				repo := domain_mocks.NewMockTaskRepository(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)
				uow.EXPECT().Task().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)
				runInTransaction(uow)

				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(current, true, nil)
				repo.EXPECT().UpdateTask(mock.Anything, mock.Anything).Return(nil)
				outbox.EXPECT().CreateTaskEvent(mock.Anything, mock.Anything).Return(errors.New("outbox error"))
			},
			expectedErr: errors.New("outbox error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			uti := NewUpdateTaskImpl(uow, timeProvider)
			got, gotErr := uti.Execute(context.Background(), tt.identity, taskID, tt.params)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedTask, got)
		})
	}
}

func TestInitUpdateTask_Initialize(t *testing.T) {
	iut := InitUpdateTask{}

	_, err := iut.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[UpdateTask]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
