package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

var (
	userID      = uuid.MustParse("9b2f4c1e-3a7d-4f5b-8c6e-1d2a3b4c5d6e")
	otherUserID = uuid.MustParse("0c1d2e3f-4a5b-4c6d-8e7f-9a0b1c2d3e4f")
	taskID      = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	parentID    = uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	createdAt   = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	identity    = domain.NewIdentity(userID)

	domainTask = domain.Task{
		ID:        taskID,
		OwnerID:   userID,
		Title:     "Plan team offsite",
		Priority:  domain.TaskPriority_HIGH,
		Status:    domain.TaskStatus_PENDING,
		Embedding: []float64{0.1, 0.2},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	domainSubtask = domain.Task{
		ID:        uuid.MustParse("323e4567-e89b-12d3-a456-426614174000"),
		OwnerID:   userID,
		ParentID:  &parentID,
		Title:     "Book venue",
		Priority:  domain.TaskPriority_MEDIUM,
		Status:    domain.TaskStatus_IN_PROGRESS,
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(time.Hour),
	}
)

// newTestServer returns a server with a silent logger and the test signing secret.
func newTestServer(configure func(*SmartTasksServer)) SmartTasksServer {
	server := SmartTasksServer{
		JWTSecret: testSecret,
		Logger:    zap.NewNop(),
	}
	if configure != nil {
		configure(&server)
	}
	return server
}

func signToken(t *testing.T, secret string, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// serve runs a request through the full handler, authenticated as user when it is not uuid.Nil.
func serve(t *testing.T, server SmartTasksServer, method, target string, body []byte, user uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, user.String()))
	}

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	if status != http.StatusNoContent {
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	}
}

// assertErrorResp checks the error code and that the message starts with the expected text.
func assertErrorResp(t *testing.T, w *httptest.ResponseRecorder, expected gen.ErrorResp) {
	t.Helper()

	resp := decodeJSON[gen.ErrorResp](t, w)
	assert.Equal(t, expected.Code, resp.Code)
	assert.True(t, strings.HasPrefix(resp.Error, expected.Error), "error %q does not start with %q", resp.Error, expected.Error)
}
