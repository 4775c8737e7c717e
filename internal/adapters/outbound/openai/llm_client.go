package openai

import (
	"context"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
)

// LLMClient adapts Client to the domain.LLMClient interface.
type LLMClient struct {
	client Client
}

// NewLLMClient creates a new adapter.
func NewLLMClient(client Client) LLMClient {
	return LLMClient{client: client}
}

// Configured implements domain.LLMClient.
func (a LLMClient) Configured() bool {
	return a.client.HasAPIKey()
}

// Chat implements domain.LLMClient.
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{Role: string(msg.Role), Content: msg.Content}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if err != nil {
		perr := providerErr("completion request failed", err)
		telemetry.RecordErrorAndStatus(span, perr)
		return domain.LLMChatResponse{}, perr
	}

	if len(resp.Choices) == 0 {
		perr := domain.NewProviderErr("completion response contained no choices", nil)
		telemetry.RecordErrorAndStatus(span, perr)
		return domain.LLMChatResponse{}, perr
	}

	out := domain.LLMChatResponse{Content: resp.Choices[0].Message.Content}
	if resp.Usage != nil {
		out.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}
