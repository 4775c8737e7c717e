package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

func (api SmartTasksServer) ListTasks(w http.ResponseWriter, r *http.Request, params gen.ListTasksParams) {
	ctx := r.Context()
	tasks, err := api.ListTasksUseCase.Query(ctx, IdentityFromContext(ctx), domain.ListTasksParams{
		Status:   (*domain.TaskStatus)(params.Status),
		Priority: (*domain.TaskPriority)(params.Priority),
	})
	if err != nil {
		api.Logger.Error("Error listing tasks", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	respondJSON(w, http.StatusOK, gen.ListTasksResp{Items: toTasks(tasks)})
}

func (api SmartTasksServer) ListSubtasks(w http.ResponseWriter, r *http.Request, taskId openapi_types.UUID) {
	ctx := r.Context()
	identity := IdentityFromContext(ctx)
	parentID := uuid.UUID(taskId)

	// Listing the subtasks of a missing parent is a 404, not an empty list.
	if _, err := api.GetTaskUseCase.Query(ctx, identity, parentID); err != nil {
		api.Logger.Error("Error loading parent task", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	tasks, err := api.ListTasksUseCase.Query(ctx, identity, domain.ListTasksParams{ParentID: &parentID})
	if err != nil {
		api.Logger.Error("Error listing subtasks", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	respondJSON(w, http.StatusOK, gen.ListTasksResp{Items: toTasks(tasks)})
}

func (api SmartTasksServer) GetTask(w http.ResponseWriter, r *http.Request, taskId openapi_types.UUID) {
	ctx := r.Context()
	task, err := api.GetTaskUseCase.Query(ctx, IdentityFromContext(ctx), uuid.UUID(taskId))
	if err != nil {
		api.Logger.Error("Error getting task", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api SmartTasksServer) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateTaskJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	ctx := r.Context()
	task, err := api.CreateTaskUseCase.Execute(ctx, IdentityFromContext(ctx), usecases.CreateTaskParams{
		ParentID: (*uuid.UUID)(req.ParentId),
		Title:    req.Title,
		Priority: (*domain.TaskPriority)(req.Priority),
		Status:   (*domain.TaskStatus)(req.Status),
	})
	if err != nil {
		api.Logger.Error("Error creating task", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	respondJSON(w, http.StatusCreated, toTask(task))
}

func (api SmartTasksServer) UpdateTask(w http.ResponseWriter, r *http.Request, taskId openapi_types.UUID) {
	var req gen.UpdateTaskJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	ctx := r.Context()
	task, err := api.UpdateTaskUseCase.Execute(ctx, IdentityFromContext(ctx), uuid.UUID(taskId), usecases.UpdateTaskParams{
		Title:    req.Title,
		Priority: (*domain.TaskPriority)(req.Priority),
		Status:   (*domain.TaskStatus)(req.Status),
	})
	if err != nil {
		api.Logger.Error("Error updating task", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api SmartTasksServer) DeleteTask(w http.ResponseWriter, r *http.Request, taskId openapi_types.UUID) {
	ctx := r.Context()
	err := api.DeleteTaskUseCase.Execute(ctx, IdentityFromContext(ctx), uuid.UUID(taskId))
	if err != nil {
		api.Logger.Error("Error deleting task", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
