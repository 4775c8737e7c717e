package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// Configured reports whether the provider credentials are present.
	Configured() bool
	// VectorizeTask generates a semantic vector for a task title.
	VectorizeTask(ctx context.Context, model, title string) (EmbeddingVector, error)
	// VectorizeQuery generates a semantic vector for one user query/search input.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
}
