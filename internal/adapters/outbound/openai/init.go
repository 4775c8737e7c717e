package openai

import (
	"context"
	"net/http"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
)

// InitOpenAIClient registers the provider adapters.
// An APIKey of "-" leaves the provider unconfigured; use cases then refuse provider work.
type InitOpenAIClient struct {
	HttpClient *http.Client `resolve:""`
	Logger     *zap.Logger  `resolve:""`
	APIKey     string       `config:"OPENAI_API_KEY" default:"-"`
	Host       string       `config:"LLM_API_HOST" default:"https://api.openai.com"`
}

// Initialize registers domain.SemanticEncoder and domain.LLMClient.
func (i InitOpenAIClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
		i.Logger.Warn("OPENAI_API_KEY is not set; embedding and completion features are disabled")
	}

	client := NewClient(i.Host, apiKey, i.HttpClient)
	depend.Register[domain.SemanticEncoder](NewSemanticEncoder(client))
	depend.Register[domain.LLMClient](NewLLMClient(client))
	return ctx, nil
}
