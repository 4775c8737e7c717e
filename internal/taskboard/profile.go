package taskboard

import (
	"context"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
)

// ProfileParams holds the profile fields to change. Nil fields are left untouched
// and an empty string clears the field.
type ProfileParams struct {
	FullName  *string
	AvatarURL *string
}

// Profile loads the signed-in user's profile and caches it.
func (b *Board) Profile(ctx context.Context) (domain.Profile, error) {
	sess, err := b.active()
	if err != nil {
		return domain.Profile{}, b.fail(nil, err)
	}

	resp, err := b.client.GetProfileWithResponse(ctx)
	if err != nil {
		return domain.Profile{}, b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return domain.Profile{}, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	profile := fromProfile(*resp.JSON200)
	b.commit(sess, func() { b.profile = &profile })
	return profile, nil
}

// UpdateProfile changes the profile and caches the row returned by the server.
func (b *Board) UpdateProfile(ctx context.Context, params ProfileParams) (domain.Profile, error) {
	sess, err := b.active()
	if err != nil {
		return domain.Profile{}, b.fail(nil, err)
	}

	resp, err := b.client.UpdateProfileWithResponse(ctx, gen.UpdateProfileJSONRequestBody{
		FullName:  params.FullName,
		AvatarUrl: params.AvatarURL,
	})
	if err != nil {
		return domain.Profile{}, b.fail(sess, err)
	}
	if resp.JSON200 == nil {
		return domain.Profile{}, b.fail(sess, apiError(resp.StatusCode(), resp.JSONDefault))
	}

	profile := fromProfile(*resp.JSON200)
	b.commit(sess, func() { b.profile = &profile })
	return profile, nil
}

// CachedProfile returns the last profile loaded in this session.
func (b *Board) CachedProfile() (domain.Profile, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.profile == nil {
		return domain.Profile{}, false
	}
	return *b.profile, true
}

func fromProfile(p gen.Profile) domain.Profile {
	return domain.Profile{
		ID:        p.Id,
		FullName:  p.FullName,
		AvatarURL: p.AvatarUrl,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
