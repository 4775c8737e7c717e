package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smarttasks/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateSubtasksImpl_Execute(t *testing.T) {
	const model = "gpt-4o-mini"

	tests := map[string]struct {
		taskTitle       string
		setExpectations func(llm *domain_mocks.MockLLMClient)
		expected        []string
		expectedErr     error
	}{
		"plain-json-array": {
			taskTitle: "Plan a wedding",
			setExpectations: func(llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Configured().Return(true)
				llm.EXPECT().Chat(mock.Anything, mock.MatchedBy(func(req domain.LLMChatRequest) bool {
					return req.Model == model &&
						len(req.Messages) == 2 &&
						req.Messages[1].Role == domain.ChatRole_User &&
						req.Messages[1].Content == "Plan a wedding"
				})).Return(domain.LLMChatResponse{
					Content: `["Book wedding venue", "Hire photographer", "Send invitations"]`,
					Usage:   domain.LLMUsage{PromptTokens: 10, CompletionTokens: 5},
				}, nil)
			},
			expected: []string{"Book wedding venue", "Hire photographer", "Send invitations"},
		},
		"array-wrapped-in-prose": {
			taskTitle: "Move house",
			setExpectations: func(llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Configured().Return(true)
				llm.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{
					Content: "Sure! Here you go:\n```json\n[\"Pack boxes\", \"  \", \" Book movers \"]\n```",
				}, nil)
			},
			expected: []string{"Pack boxes", "Book movers"},
		},
		"capped-at-seven": {
			taskTitle: "Launch product",
			setExpectations: func(llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Configured().Return(true)
				llm.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{
					Content: `["a","b","c","d","e","f","g","h","i"]`,
				}, nil)
			},
			expected: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		"unparseable-response": {
			taskTitle: "Plan a wedding",
			setExpectations: func(llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Configured().Return(true)
				llm.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{
					Content: "I cannot help with that.",
				}, nil)
			},
			expectedErr: domain.NewProviderErr("failed to parse subtasks from response", nil),
		},
		"provider-error": {
			taskTitle: "Plan a wedding",
			setExpectations: func(llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Configured().Return(true)
				llm.EXPECT().Chat(mock.Anything, mock.Anything).
					Return(domain.LLMChatResponse{}, domain.NewProviderErr("completion request failed", nil))
			},
			expectedErr: domain.NewProviderErr("completion request failed", nil),
		},
		"provider-not-configured": {
			taskTitle: "Plan a wedding",
			setExpectations: func(llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Configured().Return(false)
			},
			expectedErr: domain.NewProviderNotConfiguredErr(),
		},
		"blank-title": {
			taskTitle:   " ",
			expectedErr: domain.NewValidationErr("task title is required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain_mocks.NewMockLLMClient(t)
			if tt.setExpectations != nil {
				tt.setExpectations(llm)
			}

			got, err := NewGenerateSubtasksImpl(llm, model).Execute(context.Background(), tt.taskTitle)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildSubtasksPrompt(t *testing.T) {
	messages, err := buildSubtasksPrompt("Plan 100% of the trip")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, domain.ChatRole_System, messages[0].Role)
	assert.Contains(t, messages[0].Content, "5 to 7")
	assert.Contains(t, messages[0].Content, "Plan 100% of the trip")
	assert.NotContains(t, messages[0].Content, "%s")

	assert.Equal(t, domain.ChatRole_User, messages[1].Role)
	assert.Equal(t, "Plan 100% of the trip", messages[1].Content)
}

func TestInitGenerateSubtasks_Initialize(t *testing.T) {
	_, err := InitGenerateSubtasks{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[GenerateSubtasks]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
