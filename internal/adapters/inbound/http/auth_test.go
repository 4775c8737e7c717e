package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_Middleware(t *testing.T) {
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: userID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]struct {
		secret           string
		authorization    string
		expectedStatus   int
		expectedIdentity domain.Identity
		expectedError    string
	}{
		"no-header-is-anonymous": {
			secret:           testSecret,
			expectedStatus:   http.StatusOK,
			expectedIdentity: domain.Identity{},
		},
		"valid-token": {
			secret:           testSecret,
			authorization:    "Bearer " + signToken(t, testSecret, userID.String()),
			expectedStatus:   http.StatusOK,
			expectedIdentity: identity,
		},
		"wrong-scheme": {
			secret:         testSecret,
			authorization:  "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "authorization header must use the Bearer scheme",
		},
		"empty-token": {
			secret:         testSecret,
			authorization:  "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "authorization header must use the Bearer scheme",
		},
		"wrong-secret": {
			secret:         testSecret,
			authorization:  "Bearer " + signToken(t, "another-secret", userID.String()),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid bearer token",
		},
		"unsigned-token": {
			secret:         testSecret,
			authorization:  "Bearer " + noneToken,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid bearer token",
		},
		"subject-not-a-uuid": {
			secret:         testSecret,
			authorization:  "Bearer " + signToken(t, testSecret, "service-role"),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "bearer token subject is not a user id",
		},
		"no-secret-configured": {
			secret:         "",
			authorization:  "Bearer " + signToken(t, testSecret, userID.String()),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid bearer token",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var seen *domain.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id := IdentityFromContext(r.Context())
				seen = &id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			NewAuthenticator(tt.secret).Middleware(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Nil(t, seen, "handler must not run")
				assert.Equal(t, gen.ErrorResp{Code: gen.UNAUTHENTICATED, Error: tt.expectedError}, decodeJSON[gen.ErrorResp](t, w))
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, tt.expectedIdentity, *seen)
		})
	}
}

func TestBodyIdentity(t *testing.T) {
	tests := map[string]struct {
		caller        domain.Identity
		userID        uuid.UUID
		expected      domain.Identity
		expectedError error
	}{
		"anonymous-caller": {
			userID:        userID,
			expectedError: &domain.UnauthenticatedErr{},
		},
		"matching-caller": {
			caller:   identity,
			userID:   userID,
			expected: identity,
		},
		"mismatching-caller": {
			caller:        domain.NewIdentity(otherUserID),
			userID:        userID,
			expectedError: &domain.ForbiddenErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if !tt.caller.IsAnonymous() {
				ctx = WithIdentity(ctx, tt.caller)
			}

			got, err := bodyIdentity(ctx, tt.userID)
			if tt.expectedError != nil {
				assert.IsType(t, tt.expectedError, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
