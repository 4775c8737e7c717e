package taskboard

import (
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
)

var errNoSession = domain.NewUnauthenticatedErr("sign in required")

// APIError is a non-success response of the task API.
type APIError struct {
	StatusCode int
	Code       gen.ErrorCode
	Message    string
}

// Error returns the server message, or the status text when the body had none.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether the server answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func apiError(statusCode int, body *gen.ErrorResp) error {
	e := &APIError{StatusCode: statusCode}
	if body != nil {
		e.Code = body.Code
		e.Message = body.Error
	}
	return e
}
