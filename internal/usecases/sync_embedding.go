package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SyncResult reports the outcome of an embedding sync.
// Stale is set when the task title changed while the embedding was being computed.
type SyncResult struct {
	Stale bool
}

// SyncEmbedding defines the interface for the SyncEmbedding use case.
type SyncEmbedding interface {
	Execute(ctx context.Context, identity domain.Identity, taskID uuid.UUID, text string) (SyncResult, error)
}

// SyncEmbeddingImpl is the implementation of the SyncEmbedding use case.
type SyncEmbeddingImpl struct {
	repo    domain.TaskRepository
	encoder domain.SemanticEncoder
	model   string
}

// NewSyncEmbeddingImpl creates a new instance of SyncEmbeddingImpl.
func NewSyncEmbeddingImpl(repo domain.TaskRepository, encoder domain.SemanticEncoder, model string) SyncEmbeddingImpl {
	return SyncEmbeddingImpl{
		repo:    repo,
		encoder: encoder,
		model:   model,
	}
}

// Execute embeds text and stores the vector on the task if text is still its title.
func (s SyncEmbeddingImpl) Execute(ctx context.Context, identity domain.Identity, taskID uuid.UUID, text string) (SyncResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("task_id", taskID.String()),
	))
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return SyncResult{}, err
	}
	if taskID == uuid.Nil || strings.TrimSpace(text) == "" {
		err := domain.NewValidationErr("taskId and text are required")
		telemetry.RecordErrorAndStatus(span, err)
		return SyncResult{}, err
	}
	if !s.encoder.Configured() {
		err := domain.NewProviderNotConfiguredErr()
		telemetry.RecordErrorAndStatus(span, err)
		return SyncResult{}, err
	}

	result, err := embedTitle(spanCtx, s.repo, s.encoder, s.model, identity.UserID, taskID, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordEmbeddingSync(spanCtx, syncOutcome(err))
		return SyncResult{}, err
	}

	if result.Stale {
		RecordEmbeddingSync(spanCtx, SyncOutcome_Stale)
	} else {
		RecordEmbeddingSync(spanCtx, SyncOutcome_Stored)
	}
	return result, nil
}

// embedTitle computes the embedding of title and writes it with the title guard.
// A guard miss is resolved into NotFoundErr or a stale result.
func embedTitle(
	ctx context.Context,
	repo domain.TaskRepository,
	encoder domain.SemanticEncoder,
	model string,
	ownerID, taskID uuid.UUID,
	title string,
) (SyncResult, error) {
	vec, err := encoder.VectorizeTask(ctx, model, title)
	if err != nil {
		return SyncResult{}, err
	}
	RecordLLMTokensEmbedding(ctx, vec.TotalTokens)

	stored, err := repo.UpdateEmbedding(ctx, ownerID, taskID, title, vec.Vector)
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to store embedding: %w", err)
	}
	if stored {
		return SyncResult{}, nil
	}

	_, found, err := repo.GetTask(ctx, ownerID, taskID)
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to load task: %w", err)
	}
	if !found {
		return SyncResult{}, domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", taskID))
	}
	return SyncResult{Stale: true}, nil
}

func syncOutcome(err error) string {
	if _, ok := err.(*domain.NotFoundErr); ok {
		return SyncOutcome_Missing
	}
	return SyncOutcome_Failed
}

// InitSyncEmbedding initializes the SyncEmbedding use case.
type InitSyncEmbedding struct {
	Repo    domain.TaskRepository  `resolve:""`
	Encoder domain.SemanticEncoder `resolve:""`
	Model   string                 `config:"LLM_EMBEDDING_MODEL" default:"text-embedding-3-small"`
}

// Initialize registers the SyncEmbedding use case in the dependency container.
func (i InitSyncEmbedding) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SyncEmbedding](NewSyncEmbeddingImpl(i.Repo, i.Encoder, i.Model))
	return ctx, nil
}
