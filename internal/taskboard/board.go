// Package taskboard is the client side of the task API. A Board mirrors the
// signed-in user's tasks in a session-scoped cache that only ever holds rows
// returned by the server.
package taskboard

import (
	"context"
	"net/http"
	"slices"
	"sync"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/google/uuid"
)

// Config holds the connection settings of a Board.
type Config struct {
	// APIURL is the base URL of the task API.
	APIURL string
	// AnonKey is sent as the apikey header on every request.
	AnonKey string
	// HTTPClient performs the requests. http.DefaultClient is used when nil.
	HTTPClient gen.HttpRequestDoer
}

// Session identifies the signed-in user.
type Session struct {
	UserID uuid.UUID
	Token  string
}

// CreateParams describes a new task. A non-nil ParentID creates a subtask.
type CreateParams struct {
	ParentID *uuid.UUID
	Title    string
	Priority *domain.TaskPriority
	Status   *domain.TaskStatus
}

// UpdateParams holds the fields to change. Nil fields are left untouched.
type UpdateParams struct {
	Title    *string
	Priority *domain.TaskPriority
	Status   *domain.TaskStatus
}

// BackfillResult reports the outcome of an embedding backfill.
type BackfillResult struct {
	Processed int
	Errors    int
	Message   string
}

// Board is a session-scoped view of the user's tasks.
type Board struct {
	client gen.ClientWithResponsesInterface

	mu       sync.RWMutex
	session  *Session
	tasks    []domain.Task
	subtasks map[uuid.UUID][]domain.Task
	results  []domain.SearchResult
	profile  *domain.Profile
	err      error
}

// New creates a Board talking to the API described by cfg.
func New(cfg Config) (*Board, error) {
	b := &Board{subtasks: map[uuid.UUID][]domain.Task{}}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = http.DefaultClient
	}

	client, err := gen.NewClientWithResponses(
		cfg.APIURL,
		gen.WithHTTPClient(doer),
		gen.WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
			if cfg.AnonKey != "" {
				req.Header.Set("apikey", cfg.AnonKey)
			}
			if token := b.token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	b.client = client
	return b, nil
}

// SignIn starts a session. The cache of a previous session is dropped.
func (b *Board) SignIn(session Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = &session
	b.resetLocked()
}

// SignOut ends the session and drops the cache.
func (b *Board) SignOut() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = nil
	b.resetLocked()
}

// Tasks returns the cached top-level tasks, newest first.
func (b *Board) Tasks() []domain.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.tasks)
}

// CachedSubtasks returns the cached subtasks of a parent, newest first.
func (b *Board) CachedSubtasks(parentID uuid.UUID) []domain.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.subtasks[parentID])
}

// SearchResults returns the results of the last search.
func (b *Board) SearchResults() []domain.SearchResult {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.results)
}

// Err returns the error of the last failed call, or nil when the last call succeeded.
func (b *Board) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.err
}

func (b *Board) token() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.session == nil {
		return ""
	}
	return b.session.Token
}

// active returns the current session. Results of a call are only cached while the
// session it started under is still the current one.
func (b *Board) active() (*Session, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.session == nil || b.session.Token == "" {
		return nil, errNoSession
	}
	return b.session, nil
}

func (b *Board) resetLocked() {
	b.tasks = nil
	b.subtasks = map[uuid.UUID][]domain.Task{}
	b.results = nil
	b.profile = nil
	b.err = nil
}

// commit applies update to the cache and clears the error state, unless the session changed
// while the call was in flight.
func (b *Board) commit(sess *Session, update func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != sess {
		return
	}
	update()
	b.err = nil
}

// fail records err as the error state of sess and returns it.
// A nil sess marks a call that never had a session.
func (b *Board) fail(sess *Session, err error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sess == nil || b.session == sess {
		b.err = err
	}
	return err
}
