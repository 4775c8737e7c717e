package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTask_Validate(t *testing.T) {
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	taskID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	valid := Task{
		ID:       taskID,
		OwnerID:  ownerID,
		Title:    "Plan a wedding",
		Priority: TaskPriority_MEDIUM,
		Status:   TaskStatus_PENDING,
	}

	tests := map[string]struct {
		mutate func(t Task) Task
		errMsg string
	}{
		"valid-task": {
			mutate: func(t Task) Task { return t },
		},
		"valid-subtask": {
			mutate: func(t Task) Task {
				parent := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
				t.ParentID = &parent
				return t
			},
		},
		"missing-owner": {
			mutate: func(t Task) Task {
				t.OwnerID = uuid.Nil
				return t
			},
			errMsg: "owner_id cannot be empty",
		},
		"blank-title": {
			mutate: func(t Task) Task {
				t.Title = "   "
				return t
			},
			errMsg: "title cannot be empty",
		},
		"title-too-long": {
			mutate: func(t Task) Task {
				t.Title = strings.Repeat("a", 201)
				return t
			},
			errMsg: "title must be at most 200 characters",
		},
		"multibyte-title-at-limit": {
			mutate: func(t Task) Task {
				t.Title = strings.Repeat("é", 200)
				return t
			},
		},
		"own-parent": {
			mutate: func(t Task) Task {
				t.ParentID = &t.ID
				return t
			},
			errMsg: "a task cannot be its own parent",
		},
		"invalid-priority": {
			mutate: func(t Task) Task {
				t.Priority = "urgent"
				return t
			},
			errMsg: "priority must be one of low, medium or high",
		},
		"invalid-status": {
			mutate: func(t Task) Task {
				t.Status = "blocked"
				return t
			},
			errMsg: "status must be one of pending, in-progress or done",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.IsType(t, &ValidationErr{}, err)
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestTask_IsSubtask(t *testing.T) {
	parent := uuid.New()
	assert.False(t, Task{}.IsSubtask())
	assert.True(t, Task{ParentID: &parent}.IsSubtask())
}

func TestTask_HasEmbedding(t *testing.T) {
	assert.False(t, Task{}.HasEmbedding())
	assert.False(t, Task{Embedding: []float64{}}.HasEmbedding())
	assert.True(t, Task{Embedding: []float64{0.1}}.HasEmbedding())
}
