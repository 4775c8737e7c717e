package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSmartTasksServer_GenerateEmbedding(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		user           uuid.UUID
		setupMocks     func(*mocks.MockSyncEmbedding)
		expectedStatus int
		expectedBody   *gen.GenerateEmbeddingResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, gen.GenerateEmbeddingJSONRequestBody{TaskId: taskID, Text: "Plan team offsite"}),
			user:        userID,
			setupMocks: func(m *mocks.MockSyncEmbedding) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, "Plan team offsite").
					Return(usecases.SyncResult{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.GenerateEmbeddingResp{Success: true},
		},
		"stale-title": {
			requestBody: serializeJSON(t, gen.GenerateEmbeddingJSONRequestBody{TaskId: taskID, Text: "Old title"}),
			user:        userID,
			setupMocks: func(m *mocks.MockSyncEmbedding) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, "Old title").
					Return(usecases.SyncResult{Stale: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.GenerateEmbeddingResp{Success: true, Stale: common.Ptr(true)},
		},
		"missing-text": {
			requestBody:    serializeJSON(t, gen.GenerateEmbeddingJSONRequestBody{TaskId: taskID}),
			user:           userID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "taskId and text are required"},
		},
		"missing-task-id": {
			requestBody:    []byte(`{"text":"Plan team offsite"}`),
			user:           userID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "taskId and text are required"},
		},
		"malformed-task-id": {
			requestBody:    []byte(`{"taskId":"42","text":"Plan team offsite"}`),
			user:           userID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "invalid request body"},
		},
		"provider-not-configured": {
			requestBody: serializeJSON(t, gen.GenerateEmbeddingJSONRequestBody{TaskId: taskID, Text: "Plan team offsite"}),
			user:        userID,
			setupMocks: func(m *mocks.MockSyncEmbedding) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, mock.Anything).
					Return(usecases.SyncResult{}, domain.NewProviderNotConfiguredErr())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "provider API key not configured"},
		},
		"provider-error-message-is-exposed": {
			requestBody: serializeJSON(t, gen.GenerateEmbeddingJSONRequestBody{TaskId: taskID, Text: "Plan team offsite"}),
			user:        userID,
			setupMocks: func(m *mocks.MockSyncEmbedding) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, mock.Anything).
					Return(usecases.SyncResult{}, domain.NewProviderErr("embedding request failed: rate limited", nil))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "embedding request failed: rate limited"},
		},
		"store-error-uses-fallback": {
			requestBody: serializeJSON(t, gen.GenerateEmbeddingJSONRequestBody{TaskId: taskID, Text: "Plan team offsite"}),
			user:        userID,
			setupMocks: func(m *mocks.MockSyncEmbedding) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, mock.Anything).
					Return(usecases.SyncResult{}, errors.New("failed to store embedding: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "Failed to generate embedding"},
		},
		"task-of-other-user": {
			requestBody: serializeJSON(t, gen.GenerateEmbeddingJSONRequestBody{TaskId: taskID, Text: "Plan team offsite"}),
			user:        otherUserID,
			setupMocks: func(m *mocks.MockSyncEmbedding) {
				m.EXPECT().
					Execute(mock.Anything, domain.NewIdentity(otherUserID), taskID, mock.Anything).
					Return(usecases.SyncResult{}, domain.NewNotFoundErr("task not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &gen.ErrorResp{Code: gen.NOTFOUND, Error: "task not found"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockSync := mocks.NewMockSyncEmbedding(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSync)
			}
			server := newTestServer(func(s *SmartTasksServer) {
				s.SyncEmbeddingUseCase = mockSync
			})

			w := serve(t, server, http.MethodPost, "/generate-embedding", tt.requestBody, tt.user)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.GenerateEmbeddingResp](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestSmartTasksServer_GenerateAllEmbeddings(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		user           uuid.UUID
		setupMocks     func(*mocks.MockBackfillEmbeddings)
		expectedStatus int
		expectedBody   *gen.GenerateAllEmbeddingsResp
		expectedError  *gen.ErrorResp
	}{
		"anonymous-caller": {
			requestBody:    serializeJSON(t, gen.GenerateAllEmbeddingsJSONRequestBody{UserId: userID}),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  &gen.ErrorResp{Code: gen.UNAUTHENTICATED, Error: "authentication required"},
		},
		"success": {
			requestBody: serializeJSON(t, gen.GenerateAllEmbeddingsJSONRequestBody{UserId: userID}),
			user:        userID,
			setupMocks: func(m *mocks.MockBackfillEmbeddings) {
				m.EXPECT().
					Execute(mock.Anything, identity).
					Return(usecases.BackfillResult{Processed: 3, Errors: 1, Message: "Successfully processed 3 tasks with 1 errors"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.GenerateAllEmbeddingsResp{
				Processed: 3,
				Errors:    1,
				Message:   "Successfully processed 3 tasks with 1 errors",
			},
		},
		"token-matches-body": {
			requestBody: serializeJSON(t, gen.GenerateAllEmbeddingsJSONRequestBody{UserId: userID}),
			user:        userID,
			setupMocks: func(m *mocks.MockBackfillEmbeddings) {
				m.EXPECT().
					Execute(mock.Anything, identity).
					Return(usecases.BackfillResult{Message: "No tasks need embeddings"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.GenerateAllEmbeddingsResp{Message: "No tasks need embeddings"},
		},
		"token-of-other-user": {
			requestBody:    serializeJSON(t, gen.GenerateAllEmbeddingsJSONRequestBody{UserId: userID}),
			user:           otherUserID,
			expectedStatus: http.StatusForbidden,
			expectedError:  &gen.ErrorResp{Code: gen.FORBIDDEN, Error: "identity does not match the requested user"},
		},
		"missing-user-id": {
			requestBody:    []byte(`{}`),
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "userId is required"},
		},
		"fetch-error": {
			requestBody: serializeJSON(t, gen.GenerateAllEmbeddingsJSONRequestBody{UserId: userID}),
			user:        userID,
			setupMocks: func(m *mocks.MockBackfillEmbeddings) {
				m.EXPECT().
					Execute(mock.Anything, identity).
					Return(usecases.BackfillResult{}, errors.New("failed to fetch tasks: boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "Failed to generate embeddings"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockBackfill := mocks.NewMockBackfillEmbeddings(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockBackfill)
			}
			server := newTestServer(func(s *SmartTasksServer) {
				s.BackfillEmbeddingsUseCase = mockBackfill
			})

			w := serve(t, server, http.MethodPost, "/generate-all-embeddings", tt.requestBody, tt.user)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.GenerateAllEmbeddingsResp](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestSmartTasksServer_GenerateSubtasks(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockGenerateSubtasks)
		expectedStatus int
		expectedBody   *gen.GenerateSubtasksResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, gen.GenerateSubtasksJSONRequestBody{TaskTitle: "Plan a wedding"}),
			setupMocks: func(m *mocks.MockGenerateSubtasks) {
				m.EXPECT().
					Execute(mock.Anything, "Plan a wedding").
					Return([]string{"Set a budget", "Book a venue"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.GenerateSubtasksResp{Subtasks: []string{"Set a budget", "Book a venue"}},
		},
		"no-suggestions-is-empty-array": {
			requestBody: serializeJSON(t, gen.GenerateSubtasksJSONRequestBody{TaskTitle: "x"}),
			setupMocks: func(m *mocks.MockGenerateSubtasks) {
				m.EXPECT().Execute(mock.Anything, "x").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.GenerateSubtasksResp{Subtasks: []string{}},
		},
		"missing-title": {
			requestBody: []byte(`{}`),
			setupMocks: func(m *mocks.MockGenerateSubtasks) {
				m.EXPECT().
					Execute(mock.Anything, "").
					Return(nil, domain.NewValidationErr("task title is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "task title is required"},
		},
		"unparseable-completion": {
			requestBody: serializeJSON(t, gen.GenerateSubtasksJSONRequestBody{TaskTitle: "Plan a wedding"}),
			setupMocks: func(m *mocks.MockGenerateSubtasks) {
				m.EXPECT().
					Execute(mock.Anything, "Plan a wedding").
					Return(nil, domain.NewProviderErr("failed to parse subtasks from response", nil))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "failed to parse subtasks from response"},
		},
		"unexpected-error": {
			requestBody: serializeJSON(t, gen.GenerateSubtasksJSONRequestBody{TaskTitle: "Plan a wedding"}),
			setupMocks: func(m *mocks.MockGenerateSubtasks) {
				m.EXPECT().
					Execute(mock.Anything, "Plan a wedding").
					Return(nil, errors.New("context canceled"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "Failed to generate subtasks"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGenerate := mocks.NewMockGenerateSubtasks(t)
			tt.setupMocks(mockGenerate)
			server := newTestServer(func(s *SmartTasksServer) {
				s.GenerateSubtasksUseCase = mockGenerate
			})

			w := serve(t, server, http.MethodPost, "/generate-subtasks", tt.requestBody, uuid.Nil)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.GenerateSubtasksResp](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestSmartTasksServer_SmartSearch(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		user           uuid.UUID
		setupMocks     func(*mocks.MockSmartSearch)
		expectedStatus int
		expectedBody   *gen.SmartSearchResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, gen.SmartSearchJSONRequestBody{Query: "offsite", UserId: userID}),
			user:        userID,
			setupMocks: func(m *mocks.MockSmartSearch) {
				m.EXPECT().
					Execute(mock.Anything, identity, "offsite").
					Return([]domain.SearchResult{{Task: domainTask, Similarity: 0.83}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.SmartSearchResp{
				Results: []gen.SearchResult{{Task: toTask(domainTask), Similarity: 0.83}},
			},
		},
		"blank-query-returns-empty-results": {
			requestBody: serializeJSON(t, gen.SmartSearchJSONRequestBody{Query: "   ", UserId: userID}),
			user:        userID,
			setupMocks: func(m *mocks.MockSmartSearch) {
				m.EXPECT().
					Execute(mock.Anything, identity, "   ").
					Return([]domain.SearchResult{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.SmartSearchResp{Results: []gen.SearchResult{}},
		},
		"anonymous-caller-cannot-read-other-tasks": {
			requestBody:    serializeJSON(t, gen.SmartSearchJSONRequestBody{Query: "passport", UserId: otherUserID}),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  &gen.ErrorResp{Code: gen.UNAUTHENTICATED, Error: "authentication required"},
		},
		"missing-user-id": {
			requestBody:    []byte(`{"query":"offsite"}`),
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "userId is required"},
		},
		"token-of-other-user": {
			requestBody:    serializeJSON(t, gen.SmartSearchJSONRequestBody{Query: "offsite", UserId: userID}),
			user:           otherUserID,
			expectedStatus: http.StatusForbidden,
			expectedError:  &gen.ErrorResp{Code: gen.FORBIDDEN, Error: "identity does not match the requested user"},
		},
		"provider-not-configured": {
			requestBody: serializeJSON(t, gen.SmartSearchJSONRequestBody{Query: "offsite", UserId: userID}),
			user:        userID,
			setupMocks: func(m *mocks.MockSmartSearch) {
				m.EXPECT().
					Execute(mock.Anything, identity, "offsite").
					Return(nil, domain.NewProviderNotConfiguredErr())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "provider API key not configured"},
		},
		"search-error": {
			requestBody: serializeJSON(t, gen.SmartSearchJSONRequestBody{Query: "offsite", UserId: userID}),
			user:        userID,
			setupMocks: func(m *mocks.MockSmartSearch) {
				m.EXPECT().
					Execute(mock.Anything, identity, "offsite").
					Return(nil, errors.New("failed to search tasks: timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "Failed to perform search"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockSearch := mocks.NewMockSmartSearch(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSearch)
			}
			server := newTestServer(func(s *SmartTasksServer) {
				s.SmartSearchUseCase = mockSearch
			})

			w := serve(t, server, http.MethodPost, "/smart-search", tt.requestBody, tt.user)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.SmartSearchResp](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}
