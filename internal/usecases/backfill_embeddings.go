package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// BackfillResult summarizes one backfill run.
type BackfillResult struct {
	Processed int
	Errors    int
	Message   string
}

// BackfillEmbeddings defines the interface for the BackfillEmbeddings use case.
type BackfillEmbeddings interface {
	Execute(ctx context.Context, identity domain.Identity) (BackfillResult, error)
}

// BackfillEmbeddingsImpl is the implementation of the BackfillEmbeddings use case.
type BackfillEmbeddingsImpl struct {
	repo    domain.TaskRepository
	encoder domain.SemanticEncoder
	logger  *zap.Logger
	model   string
	delay   time.Duration
	group   *singleflight.Group
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewBackfillEmbeddingsImpl creates a new instance of BackfillEmbeddingsImpl.
func NewBackfillEmbeddingsImpl(
	repo domain.TaskRepository,
	encoder domain.SemanticEncoder,
	logger *zap.Logger,
	model string,
	delay time.Duration,
) BackfillEmbeddingsImpl {
	return BackfillEmbeddingsImpl{
		repo:    repo,
		encoder: encoder,
		logger:  logger,
		model:   model,
		delay:   delay,
		group:   &singleflight.Group{},
		sleep:   sleepCtx,
	}
}

// Execute embeds every task of the identity that has no embedding yet.
// Concurrent runs for the same user share one execution and its result.
func (b BackfillEmbeddingsImpl) Execute(ctx context.Context, identity domain.Identity) (BackfillResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return BackfillResult{}, err
	}
	if !b.encoder.Configured() {
		err := domain.NewProviderNotConfiguredErr()
		telemetry.RecordErrorAndStatus(span, err)
		return BackfillResult{}, err
	}

	// The run outlives the caller that started it; other callers may be waiting on it.
	runCtx := context.WithoutCancel(spanCtx)
	v, err, shared := b.group.Do(identity.UserID.String(), func() (any, error) {
		return b.backfill(runCtx, identity)
	})
	span.SetAttributes(attribute.Bool("shared", shared))
	if telemetry.RecordErrorAndStatus(span, err) {
		return BackfillResult{}, err
	}

	result := v.(BackfillResult)
	span.SetAttributes(
		attribute.Int("processed", result.Processed),
		attribute.Int("errors", result.Errors),
	)
	return result, nil
}

func (b BackfillEmbeddingsImpl) backfill(ctx context.Context, identity domain.Identity) (BackfillResult, error) {
	tasks, err := b.repo.ListTasksWithoutEmbedding(ctx, identity.UserID)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	if len(tasks) == 0 {
		return BackfillResult{Message: "No tasks need embeddings"}, nil
	}

	var processed, errs int
	for _, task := range tasks {
		if _, err := embedTitle(ctx, b.repo, b.encoder, b.model, identity.UserID, task.ID, task.Title); err != nil {
			b.logger.Warn("backfill: failed to embed task",
				zap.String("task_id", task.ID.String()),
				zap.Error(err),
			)
			RecordEmbeddingSync(ctx, syncOutcome(err))
			errs++
			continue
		}
		RecordEmbeddingSync(ctx, SyncOutcome_Stored)
		processed++

		if err := b.sleep(ctx, b.delay); err != nil {
			return BackfillResult{}, err
		}
	}

	RecordBackfill(ctx, processed, errs)
	return BackfillResult{
		Processed: processed,
		Errors:    errs,
		Message:   fmt.Sprintf("Successfully processed %d tasks with %d errors", processed, errs),
	}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InitBackfillEmbeddings initializes the BackfillEmbeddings use case.
type InitBackfillEmbeddings struct {
	Repo    domain.TaskRepository  `resolve:""`
	Encoder domain.SemanticEncoder `resolve:""`
	Logger  *zap.Logger            `resolve:""`
	Model   string                 `config:"LLM_EMBEDDING_MODEL" default:"text-embedding-3-small"`
	Delay   time.Duration          `config:"BACKFILL_DELAY" default:"100ms"`
}

// Initialize registers the BackfillEmbeddings use case in the dependency container.
func (i InitBackfillEmbeddings) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BackfillEmbeddings](NewBackfillEmbeddingsImpl(i.Repo, i.Encoder, i.Logger, i.Model, i.Delay))
	return ctx, nil
}
