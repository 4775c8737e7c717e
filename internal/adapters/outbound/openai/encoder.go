package openai

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SemanticEncoder adapts Client to domain.SemanticEncoder.
type SemanticEncoder struct {
	client Client
}

// NewSemanticEncoder creates a new SemanticEncoder.
func NewSemanticEncoder(client Client) SemanticEncoder {
	return SemanticEncoder{client: client}
}

// Configured implements domain.SemanticEncoder.
func (e SemanticEncoder) Configured() bool {
	return e.client.HasAPIKey()
}

// VectorizeTask implements domain.SemanticEncoder.
func (e SemanticEncoder) VectorizeTask(ctx context.Context, model, title string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("model", model)))
	defer span.End()

	vec, err := e.embed(spanCtx, model, promptFor(model).IndexingInput(title))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (e SemanticEncoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("model", model)))
	defer span.End()

	vec, err := e.embed(spanCtx, model, promptFor(model).SearchInput(query))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// embed returns vectors sized to the store column, whatever the model's native width.
func (e SemanticEncoder) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	resp, err := e.client.Embeddings(ctx, EmbeddingsRequest{Model: model, Input: input})
	if err != nil {
		return domain.EmbeddingVector{}, providerErr("embedding request failed", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return domain.EmbeddingVector{}, domain.NewProviderErr("embedding response contained no vector", nil)
	}
	return domain.EmbeddingVector{
		Vector:      common.FitDimensions(resp.Data[0].Embedding, domain.EmbeddingDimensions),
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// providerErr exposes the provider's own message when there is one.
func providerErr(prefix string, err error) *domain.ProviderErr {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return domain.NewProviderErr(prefix+": "+apiErr.Message, err)
	}
	return domain.NewProviderErr(prefix, err)
}
