package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcomes recorded by the embedding_sync_total counter.
const (
	SyncOutcome_Stored  = "stored"
	SyncOutcome_Stale   = "stale"
	SyncOutcome_Missing = "missing"
	SyncOutcome_Failed  = "failed"
)

var (
	meter             = otel.Meter("usecases")
	LLMTokensUsed     metric.Int64Counter
	EmbeddingSyncs    metric.Int64Counter
	BackfillProcessed metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingSyncs, err = meter.Int64Counter(
		"embedding_sync_total",
		metric.WithDescription("Embedding sync attempts by outcome"),
	)
	if err != nil {
		panic(err)
	}

	BackfillProcessed, err = meter.Int64Counter(
		"embedding_backfill_tasks_total",
		metric.WithDescription("Tasks visited by embedding backfill runs"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordEmbeddingSync counts one embedding sync attempt.
func RecordEmbeddingSync(ctx context.Context, outcome string) {
	EmbeddingSyncs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordBackfill counts the tasks a backfill run processed and failed.
func RecordBackfill(ctx context.Context, processed, errors int) {
	BackfillProcessed.Add(ctx, int64(processed), metric.WithAttributes(
		attribute.String("result", "processed"),
	))
	BackfillProcessed.Add(ctx, int64(errors), metric.WithAttributes(
		attribute.String("result", "error"),
	))
}
