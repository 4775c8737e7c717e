package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// MaxSubtasks caps the number of suggestions returned to the caller.
const MaxSubtasks = 7

// GenerateSubtasks defines the interface for the GenerateSubtasks use case.
type GenerateSubtasks interface {
	Execute(ctx context.Context, taskTitle string) ([]string, error)
}

// GenerateSubtasksImpl is the implementation of the GenerateSubtasks use case.
type GenerateSubtasksImpl struct {
	llmClient domain.LLMClient
	model     string
}

// NewGenerateSubtasksImpl creates a new instance of GenerateSubtasksImpl.
func NewGenerateSubtasksImpl(llmClient domain.LLMClient, model string) GenerateSubtasksImpl {
	return GenerateSubtasksImpl{
		llmClient: llmClient,
		model:     model,
	}
}

// Execute asks the LLM to break taskTitle down into short subtasks.
// Nothing is persisted.
func (g GenerateSubtasksImpl) Execute(ctx context.Context, taskTitle string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	taskTitle = strings.TrimSpace(taskTitle)
	if taskTitle == "" {
		err := domain.NewValidationErr("task title is required")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if !g.llmClient.Configured() {
		err := domain.NewProviderNotConfiguredErr()
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	messages, err := buildSubtasksPrompt(taskTitle)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	resp, err := g.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: common.Ptr(1.0),
		TopP:        common.Ptr(1.0),
		MaxTokens:   common.Ptr(2048),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	subtasks, err := parseSubtasks(resp.Content)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return subtasks, nil
}

//go:embed prompts/subtasks.yml
var subtasksPrompt embed.FS

type subtasksPromptInput struct {
	MainTask string `toon:"main_task"`
}

// buildSubtasksPrompt renders the embedded prompt for taskTitle.
func buildSubtasksPrompt(taskTitle string) ([]domain.LLMChatMessage, error) {
	inputTOON, err := toon.MarshalString(subtasksPromptInput{MainTask: taskTitle}, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prompt input: %w", err)
	}

	file, err := subtasksPrompt.Open("prompts/subtasks.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open subtasks prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode subtasks prompt: %w", err)
	}

	for i, msg := range messages {
		switch msg.Role {
		case domain.ChatRole_System:
			msg.Content = fmt.Sprintf(msg.Content, inputTOON)
		case domain.ChatRole_User:
			msg.Content = fmt.Sprintf(msg.Content, taskTitle)
		}
		messages[i] = msg
	}
	return messages, nil
}

var reJSONArray = regexp.MustCompile(`(?s)\[.*\]`)

// parseSubtasks reads a JSON string array from content, falling back to the
// first bracketed block when the model wrapped the array in prose.
func parseSubtasks(content string) ([]string, error) {
	var raw []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		block := reJSONArray.FindString(content)
		if block == "" {
			return nil, domain.NewProviderErr("failed to parse subtasks from response", err)
		}
		if err := json.Unmarshal([]byte(block), &raw); err != nil {
			return nil, domain.NewProviderErr("failed to parse subtasks from response", err)
		}
	}

	subtasks := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		subtasks = append(subtasks, s)
		if len(subtasks) == MaxSubtasks {
			break
		}
	}
	return subtasks, nil
}

// InitGenerateSubtasks initializes the GenerateSubtasks use case.
type InitGenerateSubtasks struct {
	LLMClient domain.LLMClient `resolve:""`
	Model     string           `config:"LLM_MODEL" default:"gpt-4o-mini"`
}

// Initialize registers the GenerateSubtasks use case in the dependency container.
func (i InitGenerateSubtasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateSubtasks](NewGenerateSubtasksImpl(i.LLMClient, i.Model))
	return ctx, nil
}
