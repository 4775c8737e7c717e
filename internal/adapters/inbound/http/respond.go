package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.UNAUTHENTICATED:
		statusCode = http.StatusUnauthorized
	case gen.FORBIDDEN:
		statusCode = http.StatusForbidden
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	}
	respondJSON(w, statusCode, err)
}

func badRequest(message string) gen.ErrorResp {
	return gen.ErrorResp{Code: gen.BADREQUEST, Error: message}
}

// paramErrorHandler renders parameter binding failures in the API error format.
func paramErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	respondError(w, badRequest(err.Error()))
}
