package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	generateEmbeddingFailed     = "Failed to generate embedding"
	generateAllEmbeddingsFailed = "Failed to generate embeddings"
	generateSubtasksFailed      = "Failed to generate subtasks"
	smartSearchFailed           = "Failed to perform search"
)

func (api SmartTasksServer) GenerateEmbedding(w http.ResponseWriter, r *http.Request) {
	var req gen.GenerateEmbeddingJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if req.TaskId == uuid.Nil || strings.TrimSpace(req.Text) == "" {
		respondError(w, badRequest("taskId and text are required"))
		return
	}

	ctx := r.Context()
	result, err := api.SyncEmbeddingUseCase.Execute(ctx, IdentityFromContext(ctx), uuid.UUID(req.TaskId), req.Text)
	if err != nil {
		api.Logger.Error("Error generating embedding", zap.Stringer("task_id", req.TaskId), zap.Error(err))
		respondError(w, toError(err, generateEmbeddingFailed))
		return
	}

	resp := gen.GenerateEmbeddingResp{Success: true}
	if result.Stale {
		resp.Stale = common.Ptr(true)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api SmartTasksServer) GenerateAllEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req gen.GenerateAllEmbeddingsJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if req.UserId == uuid.Nil {
		respondError(w, badRequest("userId is required"))
		return
	}

	ctx := r.Context()
	identity, err := bodyIdentity(ctx, uuid.UUID(req.UserId))
	if err != nil {
		respondError(w, toError(err, generateAllEmbeddingsFailed))
		return
	}

	result, err := api.BackfillEmbeddingsUseCase.Execute(ctx, identity)
	if err != nil {
		api.Logger.Error("Error generating embeddings", zap.Stringer("user_id", req.UserId), zap.Error(err))
		respondError(w, toError(err, generateAllEmbeddingsFailed))
		return
	}

	respondJSON(w, http.StatusOK, toBackfillResp(result))
}

func (api SmartTasksServer) GenerateSubtasks(w http.ResponseWriter, r *http.Request) {
	var req gen.GenerateSubtasksJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	subtasks, err := api.GenerateSubtasksUseCase.Execute(r.Context(), req.TaskTitle)
	if err != nil {
		api.Logger.Error("Error generating subtasks", zap.Error(err))
		respondError(w, toError(err, generateSubtasksFailed))
		return
	}
	if subtasks == nil {
		subtasks = []string{}
	}

	respondJSON(w, http.StatusOK, gen.GenerateSubtasksResp{Subtasks: subtasks})
}

func (api SmartTasksServer) SmartSearch(w http.ResponseWriter, r *http.Request) {
	var req gen.SmartSearchJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if req.UserId == uuid.Nil {
		respondError(w, badRequest("userId is required"))
		return
	}

	ctx := r.Context()
	identity, err := bodyIdentity(ctx, uuid.UUID(req.UserId))
	if err != nil {
		respondError(w, toError(err, smartSearchFailed))
		return
	}

	results, err := api.SmartSearchUseCase.Execute(ctx, identity, req.Query)
	if err != nil {
		api.Logger.Error("Error performing search", zap.Stringer("user_id", req.UserId), zap.Error(err))
		respondError(w, toError(err, smartSearchFailed))
		return
	}

	respondJSON(w, http.StatusOK, gen.SmartSearchResp{Results: toSearchResults(results)})
}
