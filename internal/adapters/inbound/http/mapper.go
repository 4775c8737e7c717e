package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const internalErrorMessage = "internal server error"

// toError maps a use case error to the API error body.
// Store and unexpected failures are reported with fallback instead of their own message.
func toError(err error, fallback string) gen.ErrorResp {
	var (
		validationErr    *domain.ValidationErr
		notFoundErr      *domain.NotFoundErr
		unauthErr        *domain.UnauthenticatedErr
		forbiddenErr     *domain.ForbiddenErr
		providerErr      *domain.ProviderErr
		notConfiguredErr *domain.ProviderNotConfiguredErr
	)
	switch {
	case errors.As(err, &validationErr):
		return gen.ErrorResp{Code: gen.BADREQUEST, Error: validationErr.Error()}
	case errors.As(err, &notFoundErr):
		return gen.ErrorResp{Code: gen.NOTFOUND, Error: notFoundErr.Error()}
	case errors.As(err, &unauthErr):
		return gen.ErrorResp{Code: gen.UNAUTHENTICATED, Error: unauthErr.Error()}
	case errors.As(err, &forbiddenErr):
		return gen.ErrorResp{Code: gen.FORBIDDEN, Error: forbiddenErr.Error()}
	case errors.As(err, &providerErr):
		return gen.ErrorResp{Code: gen.INTERNALERROR, Error: providerErr.Error()}
	case errors.As(err, &notConfiguredErr):
		return gen.ErrorResp{Code: gen.INTERNALERROR, Error: notConfiguredErr.Error()}
	default:
		return gen.ErrorResp{Code: gen.INTERNALERROR, Error: fallback}
	}
}

func toTask(t domain.Task) gen.Task {
	task := gen.Task{
		Id:           openapi_types.UUID(t.ID),
		OwnerId:      openapi_types.UUID(t.OwnerID),
		Title:        t.Title,
		Priority:     gen.TaskPriority(t.Priority),
		Status:       gen.TaskStatus(t.Status),
		HasEmbedding: t.HasEmbedding(),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.ParentID != nil {
		parentID := openapi_types.UUID(*t.ParentID)
		task.ParentId = &parentID
	}
	return task
}

func toTasks(tasks []domain.Task) []gen.Task {
	items := make([]gen.Task, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, toTask(t))
	}
	return items
}

func toSearchResults(results []domain.SearchResult) []gen.SearchResult {
	items := make([]gen.SearchResult, 0, len(results))
	for _, r := range results {
		items = append(items, gen.SearchResult{
			Task:       toTask(r.Task),
			Similarity: r.Similarity,
		})
	}
	return items
}

func toProfile(p domain.Profile) gen.Profile {
	return gen.Profile{
		Id:        openapi_types.UUID(p.ID),
		FullName:  p.FullName,
		AvatarUrl: p.AvatarURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toBackfillResp(r usecases.BackfillResult) gen.GenerateAllEmbeddingsResp {
	return gen.GenerateAllEmbeddingsResp{
		Processed: r.Processed,
		Errors:    r.Errors,
		Message:   r.Message,
	}
}
