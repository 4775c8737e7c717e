package taskboard

import (
	"context"
	"slices"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
)

// Search runs a semantic search over the user's tasks.
// On failure the last results are cleared and the error state is set.
func (b *Board) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	sess, err := b.active()
	if err != nil {
		return []domain.SearchResult{}, b.failSearch(nil, err)
	}

	resp, err := b.client.SmartSearchWithResponse(ctx, gen.SmartSearchJSONRequestBody{
		Query:  query,
		UserId: sess.UserID,
	})
	if err == nil && resp.JSON200 == nil {
		err = apiError(resp.StatusCode(), resp.JSONDefault)
	}
	if err != nil {
		return []domain.SearchResult{}, b.failSearch(sess, err)
	}

	results := make([]domain.SearchResult, 0, len(resp.JSON200.Results))
	for _, r := range resp.JSON200.Results {
		results = append(results, domain.SearchResult{Task: fromTask(r.Task), Similarity: r.Similarity})
	}
	b.commit(sess, func() { b.results = slices.Clone(results) })
	return results, nil
}

func (b *Board) failSearch(sess *Session, err error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sess == nil || b.session == sess {
		b.results = []domain.SearchResult{}
		b.err = err
	}
	return err
}

// SuggestSubtasks asks for subtask titles for a task title. Nothing is created.
// On failure no suggestions are returned and the error state is set.
func (b *Board) SuggestSubtasks(ctx context.Context, title string) ([]string, error) {
	sess, err := b.active()
	if err != nil {
		return nil, b.fail(nil, err)
	}

	resp, err := b.client.GenerateSubtasksWithResponse(ctx, gen.GenerateSubtasksJSONRequestBody{TaskTitle: title})
	if err != nil {
		return nil, b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return nil, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}
	b.commit(sess, func() {})
	return resp.JSON200.Subtasks, nil
}

// Backfill computes the embeddings of every task of the user that has none.
func (b *Board) Backfill(ctx context.Context) (BackfillResult, error) {
	sess, err := b.active()
	if err != nil {
		return BackfillResult{}, b.fail(nil, err)
	}

	resp, err := b.client.GenerateAllEmbeddingsWithResponse(ctx, gen.GenerateAllEmbeddingsJSONRequestBody{UserId: sess.UserID})
	if err != nil {
		return BackfillResult{}, b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return BackfillResult{}, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}
	b.commit(sess, func() {})

	return BackfillResult{
		Processed: resp.JSON200.Processed,
		Errors:    resp.JSON200.Errors,
		Message:   resp.JSON200.Message,
	}, nil
}
