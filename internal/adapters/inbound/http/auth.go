package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type identityCtxKey struct{}

var (
	errMalformedAuthHeader = errors.New("authorization header must use the Bearer scheme")
	errInvalidToken        = errors.New("invalid bearer token")
	errInvalidSubject      = errors.New("bearer token subject is not a user id")
)

// Authenticator resolves the caller identity from an HS256 signed bearer token.
// Requests without an Authorization header pass through anonymously; use cases decide
// whether they need an identity.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an Authenticator verifying tokens with the given secret.
func NewAuthenticator(secret string) Authenticator {
	return Authenticator{secret: []byte(secret)}
}

// Middleware attaches the token identity to the request context.
// A present but invalid token is rejected with 401.
func (a Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := a.identify(header)
		if err != nil {
			respondError(w, gen.ErrorResp{Code: gen.UNAUTHENTICATED, Error: err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func (a Authenticator) identify(header string) (domain.Identity, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return domain.Identity{}, errMalformedAuthHeader
	}
	if len(a.secret) == 0 {
		return domain.Identity{}, errInvalidToken
	}

	token, err := jwt.Parse(
		strings.TrimSpace(raw),
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return domain.Identity{}, errInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return domain.Identity{}, errInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil || userID == uuid.Nil {
		return domain.Identity{}, errInvalidSubject
	}
	return domain.NewIdentity(userID), nil
}

// WithIdentity returns a context carrying the caller identity.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext returns the caller identity, or an anonymous identity.
func IdentityFromContext(ctx context.Context) domain.Identity {
	identity, _ := ctx.Value(identityCtxKey{}).(domain.Identity)
	return identity
}

// bodyIdentity resolves the identity of a function endpoint that names its user in the request body.
// The caller must be authenticated as that user.
func bodyIdentity(ctx context.Context, userID uuid.UUID) (domain.Identity, error) {
	caller := IdentityFromContext(ctx)
	if err := caller.Authorize(userID); err != nil {
		return domain.Identity{}, err
	}
	return caller, nil
}
