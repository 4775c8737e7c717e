package taskboard

import (
	"context"
	"net/http"
	"slices"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/google/uuid"
)

// Refresh reloads the top-level tasks from the server.
func (b *Board) Refresh(ctx context.Context) error {
	sess, err := b.active()
	if err != nil {
		return b.fail(nil, err)
	}

	resp, err := b.client.ListTasksWithResponse(ctx, &gen.ListTasksParams{})
	if err != nil {
		return b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	tasks := fromTasks(resp.JSON200.Items)
	b.commit(sess, func() { b.tasks = tasks })
	return nil
}

// Subtasks loads the subtasks of a parent from the server and caches them.
func (b *Board) Subtasks(ctx context.Context, parentID uuid.UUID) ([]domain.Task, error) {
	sess, err := b.active()
	if err != nil {
		return nil, b.fail(nil, err)
	}

	resp, err := b.client.ListSubtasksWithResponse(ctx, parentID)
	if err != nil {
		return nil, b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return nil, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	subtasks := fromTasks(resp.JSON200.Items)
	b.commit(sess, func() { b.subtasks[parentID] = slices.Clone(subtasks) })
	return subtasks, nil
}

// Create adds a task or subtask and caches the row returned by the server.
func (b *Board) Create(ctx context.Context, params CreateParams) (domain.Task, error) {
	sess, err := b.active()
	if err != nil {
		return domain.Task{}, b.fail(nil, err)
	}

	resp, err := b.client.CreateTaskWithResponse(ctx, gen.CreateTaskJSONRequestBody{
		ParentId: params.ParentID,
		Title:    params.Title,
		Priority: (*gen.TaskPriority)(params.Priority),
		Status:   (*gen.TaskStatus)(params.Status),
	})
	if err != nil {
		return domain.Task{}, b.fail(sess, err)
	}
	if resp.JSON201 == nil {
		return domain.Task{}, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	task := fromTask(*resp.JSON201)
	b.commit(sess, func() {
		if task.ParentID != nil {
			b.subtasks[*task.ParentID] = slices.Insert(b.subtasks[*task.ParentID], 0, task)
		} else {
			b.tasks = slices.Insert(b.tasks, 0, task)
		}
	})
	return task, nil
}

// Task fetches a single task from the server. The cache is not touched.
func (b *Board) Task(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	sess, err := b.active()
	if err != nil {
		return domain.Task{}, b.fail(nil, err)
	}

	resp, err := b.client.GetTaskWithResponse(ctx, id)
	if err != nil {
		return domain.Task{}, b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return domain.Task{}, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	task := fromTask(*resp.JSON200)
	b.commit(sess, func() {})
	return task, nil
}

// Update changes a task and replaces the cached entry with the row returned by the server.
func (b *Board) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (domain.Task, error) {
	sess, err := b.active()
	if err != nil {
		return domain.Task{}, b.fail(nil, err)
	}

	resp, err := b.client.UpdateTaskWithResponse(ctx, id, gen.UpdateTaskJSONRequestBody{
		Title:    params.Title,
		Priority: (*gen.TaskPriority)(params.Priority),
		Status:   (*gen.TaskStatus)(params.Status),
	})
	if err != nil {
		return domain.Task{}, b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return domain.Task{}, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	task := fromTask(*resp.JSON200)
	b.commit(sess, func() {
		if task.ParentID != nil {
			b.subtasks[*task.ParentID] = replaceTask(b.subtasks[*task.ParentID], task)
		} else {
			b.tasks = replaceTask(b.tasks, task)
		}
	})
	return task, nil
}

// Delete removes a task on the server and drops it, and its subtasks, from the cache.
func (b *Board) Delete(ctx context.Context, id uuid.UUID) error {
	sess, err := b.active()
	if err != nil {
		return b.fail(nil, err)
	}

	resp, err := b.client.DeleteTaskWithResponse(ctx, id)
	if err != nil {
		return b.fail(sess, err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	b.commit(sess, func() {
		b.tasks = removeTask(b.tasks, id)
		delete(b.subtasks, id)
		for parentID, subtasks := range b.subtasks {
			b.subtasks[parentID] = removeTask(subtasks, id)
		}
	})
	return nil
}

func replaceTask(tasks []domain.Task, task domain.Task) []domain.Task {
	i := slices.IndexFunc(tasks, func(t domain.Task) bool { return t.ID == task.ID })
	if i < 0 {
		return slices.Insert(tasks, 0, task)
	}
	tasks[i] = task
	return tasks
}

func removeTask(tasks []domain.Task, id uuid.UUID) []domain.Task {
	return slices.DeleteFunc(tasks, func(t domain.Task) bool { return t.ID == id })
}

func fromTask(t gen.Task) domain.Task {
	task := domain.Task{
		ID:        t.Id,
		OwnerID:   t.OwnerId,
		ParentID:  t.ParentId,
		Title:     t.Title,
		Priority:  domain.TaskPriority(t.Priority),
		Status:    domain.TaskStatus(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	return task
}

func fromTasks(items []gen.Task) []domain.Task {
	tasks := make([]domain.Task, 0, len(items))
	for _, t := range items {
		tasks = append(tasks, fromTask(t))
	}
	return tasks
}
