package domain

import "context"

// LLMClient defines the interface for interacting with a chat completion API.
type LLMClient interface {
	// Configured reports whether the provider credentials are present.
	Configured() bool
	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)
}
