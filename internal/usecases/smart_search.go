package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultMatchThreshold is the minimum cosine similarity of a search hit.
	DefaultMatchThreshold = 0.5
	// DefaultMatchCount is the maximum number of search hits.
	DefaultMatchCount = 5
)

// SmartSearch defines the interface for the SmartSearch use case.
type SmartSearch interface {
	Execute(ctx context.Context, identity domain.Identity, query string) ([]domain.SearchResult, error)
}

// SmartSearchImpl is the implementation of the SmartSearch use case.
type SmartSearchImpl struct {
	repo       domain.TaskRepository
	encoder    domain.SemanticEncoder
	model      string
	threshold  float64
	matchCount int
}

// NewSmartSearchImpl creates a new instance of SmartSearchImpl.
func NewSmartSearchImpl(
	repo domain.TaskRepository,
	encoder domain.SemanticEncoder,
	model string,
	threshold float64,
	matchCount int,
) SmartSearchImpl {
	return SmartSearchImpl{
		repo:       repo,
		encoder:    encoder,
		model:      model,
		threshold:  threshold,
		matchCount: matchCount,
	}
}

// Execute returns the identity's tasks most similar to query, best match first.
func (s SmartSearchImpl) Execute(ctx context.Context, identity domain.Identity, query string) ([]domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Float64("threshold", s.threshold),
		attribute.Int("match_count", s.matchCount),
	))
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SearchResult{}, nil
	}
	if !s.encoder.Configured() {
		err := domain.NewProviderNotConfiguredErr()
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vec, err := s.encoder.VectorizeQuery(spanCtx, s.model, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	RecordLLMTokensEmbedding(spanCtx, vec.TotalTokens)

	// Stored vectors never exceed the column width.
	queryVec := common.Truncate(vec.Vector, domain.EmbeddingDimensions)

	candidates, err := s.repo.SearchBySimilarity(spanCtx, domain.SimilarityQuery{
		OwnerID:   identity.UserID,
		Embedding: queryVec,
		Threshold: s.threshold,
		Limit:     s.matchCount,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}

	results := rankResults(candidates, identity.UserID, queryVec, s.threshold, s.matchCount)
	span.SetAttributes(attribute.Int("results", len(results)))
	return results, nil
}

// rankResults keeps the owner's embedded candidates at or above threshold,
// sorted by similarity desc, then newest first, then id.
func rankResults(candidates []domain.SearchResult, ownerID uuid.UUID, query []float64, threshold float64, limit int) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if c.Task.OwnerID != ownerID || !c.Task.HasEmbedding() {
			continue
		}
		sim, ok := common.CosineSimilarity(query, c.Task.Embedding)
		if !ok || sim < threshold {
			continue
		}
		c.Similarity = sim
		results = append(results, c)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if !a.Task.CreatedAt.Equal(b.Task.CreatedAt) {
			return a.Task.CreatedAt.After(b.Task.CreatedAt)
		}
		return a.Task.ID.String() < b.Task.ID.String()
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// InitSmartSearch initializes the SmartSearch use case.
type InitSmartSearch struct {
	Repo       domain.TaskRepository  `resolve:""`
	Encoder    domain.SemanticEncoder `resolve:""`
	Model      string                 `config:"LLM_EMBEDDING_MODEL" default:"text-embedding-3-small"`
	Threshold  float64                `config:"SEARCH_MATCH_THRESHOLD" default:"0.5"`
	MatchCount int                    `config:"SEARCH_MATCH_COUNT" default:"5"`
}

// Initialize registers the SmartSearch use case in the dependency container.
func (i InitSmartSearch) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SmartSearch](NewSmartSearchImpl(i.Repo, i.Encoder, i.Model, i.Threshold, i.MatchCount))
	return ctx, nil
}
