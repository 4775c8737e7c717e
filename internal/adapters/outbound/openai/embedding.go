package openai

import (
	"fmt"
	"strings"
)

// EmbeddingPrompter shapes the text sent to an embedding model.
type EmbeddingPrompter interface {
	// IndexingInput is the input used to embed a stored task title.
	IndexingInput(title string) string
	// SearchInput is the input used to embed a search query.
	SearchInput(query string) string
}

// promptFor picks the input format expected by the embedding model.
// Models without a documented format receive the text verbatim.
func promptFor(model string) EmbeddingPrompter {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaPrompter{}
	}
	return rawPrompter{}
}

// gemmaPrompter uses the task prefixes EmbeddingGemma was trained with.
type gemmaPrompter struct{}

func (gemmaPrompter) IndexingInput(title string) string {
	return fmt.Sprintf("title: none | text: %s", title)
}

func (gemmaPrompter) SearchInput(query string) string {
	return fmt.Sprintf("task: search result | query: %s", query)
}

type rawPrompter struct{}

func (rawPrompter) IndexingInput(title string) string { return title }

func (rawPrompter) SearchInput(query string) string { return query }
