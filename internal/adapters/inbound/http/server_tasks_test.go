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
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSmartTasksServer_CreateTask(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		user           uuid.UUID
		setupMocks     func(*mocks.MockCreateTask)
		expectedStatus int
		expectedBody   *gen.Task
		expectedError  *gen.ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, gen.CreateTaskJSONRequestBody{
				Title:    "Plan team offsite",
				Priority: common.Ptr(gen.High),
			}),
			user: userID,
			setupMocks: func(m *mocks.MockCreateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, usecases.CreateTaskParams{
						Title:    "Plan team offsite",
						Priority: common.Ptr(domain.TaskPriority_HIGH),
					}).
					Return(domainTask, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   common.Ptr(toTask(domainTask)),
		},
		"subtask": {
			requestBody: serializeJSON(t, gen.CreateTaskJSONRequestBody{
				Title:    "Book venue",
				Status:   common.Ptr(gen.InProgress),
				ParentId: common.Ptr(openapi_types.UUID(parentID)),
			}),
			user: userID,
			setupMocks: func(m *mocks.MockCreateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, usecases.CreateTaskParams{
						ParentID: &parentID,
						Title:    "Book venue",
						Status:   common.Ptr(domain.TaskStatus_IN_PROGRESS),
					}).
					Return(domainSubtask, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   common.Ptr(toTask(domainSubtask)),
		},
		"validation-error": {
			requestBody: serializeJSON(t, gen.CreateTaskJSONRequestBody{Title: "  "}),
			user:        userID,
			setupMocks: func(m *mocks.MockCreateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, usecases.CreateTaskParams{Title: "  "}).
					Return(domain.Task{}, domain.NewValidationErr("title cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "title cannot be empty"},
		},
		"parent-not-found": {
			requestBody: serializeJSON(t, gen.CreateTaskJSONRequestBody{
				Title:    "Book venue",
				ParentId: common.Ptr(openapi_types.UUID(parentID)),
			}),
			user: userID,
			setupMocks: func(m *mocks.MockCreateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, mock.Anything).
					Return(domain.Task{}, domain.NewNotFoundErr("parent task not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &gen.ErrorResp{Code: gen.NOTFOUND, Error: "parent task not found"},
		},
		"anonymous": {
			requestBody: serializeJSON(t, gen.CreateTaskJSONRequestBody{Title: "Plan team offsite"}),
			setupMocks: func(m *mocks.MockCreateTask) {
				m.EXPECT().
					Execute(mock.Anything, domain.Identity{}, mock.Anything).
					Return(domain.Task{}, domain.NewUnauthenticatedErr("authentication required"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  &gen.ErrorResp{Code: gen.UNAUTHENTICATED, Error: "authentication required"},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"title": 42}`),
			user:           userID,
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Code:  gen.BADREQUEST,
				Error: "invalid request body: json: cannot unmarshal number",
			},
		},
		"internal-server-error": {
			requestBody: serializeJSON(t, gen.CreateTaskJSONRequestBody{Title: "Plan team offsite"}),
			user:        userID,
			setupMocks: func(m *mocks.MockCreateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, mock.Anything).
					Return(domain.Task{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockCreateTask := mocks.NewMockCreateTask(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockCreateTask)
			}
			server := newTestServer(func(s *SmartTasksServer) {
				s.CreateTaskUseCase = mockCreateTask
			})

			w := serve(t, server, http.MethodPost, "/api/v1/tasks", tt.requestBody, tt.user)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.Task](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestSmartTasksServer_ListTasks(t *testing.T) {
	tests := map[string]struct {
		query          string
		setupMocks     func(*mocks.MockListTasks)
		expectedStatus int
		expectedBody   *gen.ListTasksResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *mocks.MockListTasks) {
				m.EXPECT().
					Query(mock.Anything, identity, domain.ListTasksParams{}).
					Return([]domain.Task{domainTask}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ListTasksResp{Items: []gen.Task{toTask(domainTask)}},
		},
		"empty-list-is-not-null": {
			setupMocks: func(m *mocks.MockListTasks) {
				m.EXPECT().
					Query(mock.Anything, identity, domain.ListTasksParams{}).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ListTasksResp{Items: []gen.Task{}},
		},
		"filters": {
			query: "?status=in-progress&priority=low",
			setupMocks: func(m *mocks.MockListTasks) {
				m.EXPECT().
					Query(mock.Anything, identity, domain.ListTasksParams{
						Status:   common.Ptr(domain.TaskStatus_IN_PROGRESS),
						Priority: common.Ptr(domain.TaskPriority_LOW),
					}).
					Return([]domain.Task{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ListTasksResp{Items: []gen.Task{}},
		},
		"invalid-filter": {
			query: "?status=archived",
			setupMocks: func(m *mocks.MockListTasks) {
				m.EXPECT().
					Query(mock.Anything, identity, mock.Anything).
					Return(nil, domain.NewValidationErr("status must be one of pending, in-progress or done"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Code:  gen.BADREQUEST,
				Error: "status must be one of pending, in-progress or done",
			},
		},
		"internal-server-error": {
			setupMocks: func(m *mocks.MockListTasks) {
				m.EXPECT().
					Query(mock.Anything, identity, mock.Anything).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListTasks := mocks.NewMockListTasks(t)
			tt.setupMocks(mockListTasks)
			server := newTestServer(func(s *SmartTasksServer) {
				s.ListTasksUseCase = mockListTasks
			})

			w := serve(t, server, http.MethodGet, "/api/v1/tasks"+tt.query, nil, userID)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.ListTasksResp](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestSmartTasksServer_ListSubtasks(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*mocks.MockGetTask, *mocks.MockListTasks)
		expectedStatus int
		expectedBody   *gen.ListTasksResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(get *mocks.MockGetTask, list *mocks.MockListTasks) {
				get.EXPECT().
					Query(mock.Anything, identity, parentID).
					Return(domain.Task{ID: parentID, OwnerID: userID}, nil)
				list.EXPECT().
					Query(mock.Anything, identity, domain.ListTasksParams{ParentID: &parentID}).
					Return([]domain.Task{domainSubtask}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ListTasksResp{Items: []gen.Task{toTask(domainSubtask)}},
		},
		"parent-not-found": {
			setupMocks: func(get *mocks.MockGetTask, _ *mocks.MockListTasks) {
				get.EXPECT().
					Query(mock.Anything, identity, parentID).
					Return(domain.Task{}, domain.NewNotFoundErr("task not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &gen.ErrorResp{Code: gen.NOTFOUND, Error: "task not found"},
		},
		"list-error": {
			setupMocks: func(get *mocks.MockGetTask, list *mocks.MockListTasks) {
				get.EXPECT().
					Query(mock.Anything, identity, parentID).
					Return(domain.Task{ID: parentID, OwnerID: userID}, nil)
				list.EXPECT().
					Query(mock.Anything, identity, mock.Anything).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Code: gen.INTERNALERROR, Error: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGetTask := mocks.NewMockGetTask(t)
			mockListTasks := mocks.NewMockListTasks(t)
			tt.setupMocks(mockGetTask, mockListTasks)
			server := newTestServer(func(s *SmartTasksServer) {
				s.GetTaskUseCase = mockGetTask
				s.ListTasksUseCase = mockListTasks
			})

			w := serve(t, server, http.MethodGet, "/api/v1/tasks/"+parentID.String()+"/subtasks", nil, userID)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.ListTasksResp](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestSmartTasksServer_GetTask(t *testing.T) {
	tests := map[string]struct {
		path           string
		setupMocks     func(*mocks.MockGetTask)
		expectedStatus int
		expectedBody   *gen.Task
		expectedCode   gen.ErrorCode
	}{
		"success": {
			path: "/api/v1/tasks/" + taskID.String(),
			setupMocks: func(m *mocks.MockGetTask) {
				m.EXPECT().Query(mock.Anything, identity, taskID).Return(domainTask, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   common.Ptr(toTask(domainTask)),
		},
		"not-found": {
			path: "/api/v1/tasks/" + taskID.String(),
			setupMocks: func(m *mocks.MockGetTask) {
				m.EXPECT().
					Query(mock.Anything, identity, taskID).
					Return(domain.Task{}, domain.NewNotFoundErr("task not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   gen.NOTFOUND,
		},
		"invalid-task-id": {
			path:           "/api/v1/tasks/not-a-uuid",
			setupMocks:     func(m *mocks.MockGetTask) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   gen.BADREQUEST,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGetTask := mocks.NewMockGetTask(t)
			tt.setupMocks(mockGetTask)
			server := newTestServer(func(s *SmartTasksServer) {
				s.GetTaskUseCase = mockGetTask
			})

			w := serve(t, server, http.MethodGet, tt.path, nil, userID)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.Task](t, w))
			}
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeJSON[gen.ErrorResp](t, w).Code)
			}
		})
	}
}

func TestSmartTasksServer_UpdateTask(t *testing.T) {
	renamed := domainTask
	renamed.Title = "Plan company offsite"
	renamed.Embedding = nil

	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockUpdateTask)
		expectedStatus int
		expectedBody   *gen.Task
		expectedError  *gen.ErrorResp
	}{
		"rename-returns-canonical-row": {
			requestBody: serializeJSON(t, gen.UpdateTaskJSONRequestBody{Title: common.Ptr("Plan company offsite")}),
			setupMocks: func(m *mocks.MockUpdateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, usecases.UpdateTaskParams{
						Title: common.Ptr("Plan company offsite"),
					}).
					Return(renamed, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   common.Ptr(toTask(renamed)),
		},
		"status-and-priority": {
			requestBody: serializeJSON(t, gen.UpdateTaskJSONRequestBody{
				Status:   common.Ptr(gen.Done),
				Priority: common.Ptr(gen.Low),
			}),
			setupMocks: func(m *mocks.MockUpdateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, usecases.UpdateTaskParams{
						Status:   common.Ptr(domain.TaskStatus_DONE),
						Priority: common.Ptr(domain.TaskPriority_LOW),
					}).
					Return(domainTask, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   common.Ptr(toTask(domainTask)),
		},
		"other-owner-is-not-found": {
			requestBody: serializeJSON(t, gen.UpdateTaskJSONRequestBody{Title: common.Ptr("x")}),
			setupMocks: func(m *mocks.MockUpdateTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID, mock.Anything).
					Return(domain.Task{}, domain.NewNotFoundErr("task with ID "+taskID.String()+" not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &gen.ErrorResp{
				Code:  gen.NOTFOUND,
				Error: "task with ID " + taskID.String() + " not found",
			},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{`),
			setupMocks:     func(m *mocks.MockUpdateTask) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &gen.ErrorResp{Code: gen.BADREQUEST, Error: "invalid request body: unexpected EOF"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockUpdateTask := mocks.NewMockUpdateTask(t)
			tt.setupMocks(mockUpdateTask)
			server := newTestServer(func(s *SmartTasksServer) {
				s.UpdateTaskUseCase = mockUpdateTask
			})

			w := serve(t, server, http.MethodPatch, "/api/v1/tasks/"+taskID.String(), tt.requestBody, userID)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.Task](t, w))
			}
			if tt.expectedError != nil {
				assertErrorResp(t, w, *tt.expectedError)
			}
		})
	}
}

func TestSmartTasksServer_DeleteTask(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*mocks.MockDeleteTask)
		expectedStatus int
		expectedCode   gen.ErrorCode
	}{
		"success": {
			setupMocks: func(m *mocks.MockDeleteTask) {
				m.EXPECT().Execute(mock.Anything, identity, taskID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"not-found": {
			setupMocks: func(m *mocks.MockDeleteTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID).
					Return(domain.NewNotFoundErr("task not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   gen.NOTFOUND,
		},
		"internal-server-error": {
			setupMocks: func(m *mocks.MockDeleteTask) {
				m.EXPECT().
					Execute(mock.Anything, identity, taskID).
					Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   gen.INTERNALERROR,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockDeleteTask := mocks.NewMockDeleteTask(t)
			tt.setupMocks(mockDeleteTask)
			server := newTestServer(func(s *SmartTasksServer) {
				s.DeleteTaskUseCase = mockDeleteTask
			})

			w := serve(t, server, http.MethodDelete, "/api/v1/tasks/"+taskID.String(), nil, userID)

			expectStatus(t, w, tt.expectedStatus)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeJSON[gen.ErrorResp](t, w).Code)
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
