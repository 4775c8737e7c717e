package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smarttasks/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListTasksImpl_Query(t *testing.T) {
	tasks := []domain.Task{
		{ID: taskID, OwnerID: ownerID, Title: "Plan a wedding", CreatedAt: fixedTime},
	}

	tests := map[string]struct {
		identity        domain.Identity
		params          domain.ListTasksParams
		setExpectations func(repo *domain_mocks.MockTaskRepository)
		expectedTasks   []domain.Task
		expectedErr     error
	}{
		"top-level-tasks": {
			identity: identity,
			setExpectations: func(repo *domain_mocks.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, ownerID, domain.ListTasksParams{}).Return(tasks, nil)
			},
			expectedTasks: tasks,
		},
		"subtasks-with-filters": {
			identity: identity,
			params: domain.ListTasksParams{
				ParentID: common.Ptr(parentID),
				Status:   common.Ptr(domain.TaskStatus_DONE),
				Priority: common.Ptr(domain.TaskPriority_LOW),
			},
			setExpectations: func(repo *domain_mocks.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, ownerID, mock.MatchedBy(func(p domain.ListTasksParams) bool {
					return *p.ParentID == parentID && *p.Status == domain.TaskStatus_DONE
				})).Return(tasks, nil)
			},
			expectedTasks: tasks,
		},
		"invalid-status-filter": {
			identity:    identity,
			params:      domain.ListTasksParams{Status: common.Ptr(domain.TaskStatus("closed"))},
			expectedErr: domain.NewValidationErr("status must be one of pending, in-progress or done"),
		},
		"invalid-priority-filter": {
			identity:    identity,
			params:      domain.ListTasksParams{Priority: common.Ptr(domain.TaskPriority("p0"))},
			expectedErr: domain.NewValidationErr("priority must be one of low, medium or high"),
		},
		"repository-error": {
			identity: identity,
			setExpectations: func(repo *domain_mocks.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, ownerID, domain.ListTasksParams{}).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"anonymous-identity": {
			identity:    domain.Identity{},
			expectedErr: domain.NewUnauthenticatedErr("authentication required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockTaskRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			got, err := NewListTasksImpl(repo).Query(context.Background(), tt.identity, tt.params)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedTasks, got)
		})
	}
}

func TestGetTaskImpl_Query(t *testing.T) {
	task := domain.Task{ID: taskID, OwnerID: ownerID, Title: "Plan a wedding"}

	tests := map[string]struct {
		identity        domain.Identity
		setExpectations func(repo *domain_mocks.MockTaskRepository)
		expectedTask    domain.Task
		expectedErr     error
	}{
		"found": {
			identity: identity,
			setExpectations: func(repo *domain_mocks.MockTaskRepository) {
				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(task, true, nil)
			},
			expectedTask: task,
		},
		"not-found": {
			identity: identity,
			setExpectations: func(repo *domain_mocks.MockTaskRepository) {
				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(domain.Task{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("task with ID 123e4567-e89b-12d3-a456-426614174000 not found"),
		},
		"repository-error": {
			identity: identity,
			setExpectations: func(repo *domain_mocks.MockTaskRepository) {
				repo.EXPECT().GetTask(mock.Anything, ownerID, taskID).Return(domain.Task{}, false, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"anonymous-identity": {
			identity:    domain.Identity{},
			expectedErr: domain.NewUnauthenticatedErr("authentication required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockTaskRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			got, err := NewGetTaskImpl(repo).Query(context.Background(), tt.identity, taskID)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedTask, got)
		})
	}
}

func TestInitListTasks_Initialize(t *testing.T) {
	_, err := InitListTasks{}.Initialize(context.Background())
	assert.NoError(t, err)

	list, err := depend.Resolve[ListTasks]()
	assert.NoError(t, err)
	assert.NotNil(t, list)

	get, err := depend.Resolve[GetTask]()
	assert.NoError(t, err)
	assert.NotNil(t, get)
}
