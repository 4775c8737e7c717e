package usecases

import (
	"context"
	"net/url"
	"strings"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// maxFullNameLength bounds the profile display name.
const maxFullNameLength = 120

// GetProfile defines the interface for the GetProfile use case.
type GetProfile interface {
	Query(ctx context.Context, identity domain.Identity) (domain.Profile, error)
}

// GetProfileImpl is the implementation of the GetProfile use case.
type GetProfileImpl struct {
	repo         domain.ProfileRepository
	timeProvider domain.CurrentTimeProvider
}

// NewGetProfileImpl creates a new instance of GetProfileImpl.
func NewGetProfileImpl(repo domain.ProfileRepository, timeProvider domain.CurrentTimeProvider) GetProfileImpl {
	return GetProfileImpl{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Query returns the identity's profile, creating an empty one on first access.
func (g GetProfileImpl) Query(ctx context.Context, identity domain.Identity) (domain.Profile, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Profile{}, err
	}

	profile, err := getOrCreateProfile(spanCtx, g.repo, g.timeProvider, identity)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Profile{}, err
	}
	return profile, nil
}

func getOrCreateProfile(ctx context.Context, repo domain.ProfileRepository, tp domain.CurrentTimeProvider, identity domain.Identity) (domain.Profile, error) {
	profile, found, err := repo.GetProfile(ctx, identity.UserID)
	if err != nil {
		return domain.Profile{}, err
	}
	if found {
		return profile, nil
	}

	now := tp.Now()
	profile = domain.Profile{
		ID:        identity.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.CreateProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}

	// Another request may have created it first; read back the stored row.
	stored, found, err := repo.GetProfile(ctx, identity.UserID)
	if err != nil {
		return domain.Profile{}, err
	}
	if !found {
		return profile, nil
	}
	return stored, nil
}

// UpdateProfileParams holds a partial profile update. An empty string clears the field.
type UpdateProfileParams struct {
	FullName  *string
	AvatarURL *string
}

// UpdateProfile defines the interface for the UpdateProfile use case.
type UpdateProfile interface {
	Execute(ctx context.Context, identity domain.Identity, params UpdateProfileParams) (domain.Profile, error)
}

// UpdateProfileImpl is the implementation of the UpdateProfile use case.
type UpdateProfileImpl struct {
	repo         domain.ProfileRepository
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateProfileImpl creates a new instance of UpdateProfileImpl.
func NewUpdateProfileImpl(repo domain.ProfileRepository, timeProvider domain.CurrentTimeProvider) UpdateProfileImpl {
	return UpdateProfileImpl{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Execute updates the display name and avatar URL of the identity's profile.
func (u UpdateProfileImpl) Execute(ctx context.Context, identity domain.Identity, params UpdateProfileParams) (domain.Profile, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := identity.Require(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Profile{}, err
	}
	if err := validateUpdateProfileParams(params); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Profile{}, err
	}

	profile, err := getOrCreateProfile(spanCtx, u.repo, u.timeProvider, identity)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Profile{}, err
	}

	if params.FullName != nil {
		profile.FullName = optionalString(*params.FullName)
	}
	if params.AvatarURL != nil {
		profile.AvatarURL = optionalString(*params.AvatarURL)
	}
	profile.UpdatedAt = u.timeProvider.Now()

	if err := u.repo.UpdateProfile(spanCtx, profile); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Profile{}, err
	}
	return profile, nil
}

func validateUpdateProfileParams(params UpdateProfileParams) error {
	if params.FullName != nil && len([]rune(strings.TrimSpace(*params.FullName))) > maxFullNameLength {
		return domain.NewValidationErr("full_name must be at most 120 characters")
	}
	if params.AvatarURL != nil {
		raw := strings.TrimSpace(*params.AvatarURL)
		if raw == "" {
			return nil
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return domain.NewValidationErr("avatar_url must be an absolute http(s) URL")
		}
	}
	return nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// InitProfileUseCases initializes the profile use cases.
type InitProfileUseCases struct {
	Repo         domain.ProfileRepository   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers GetProfile and UpdateProfile in the dependency container.
func (i InitProfileUseCases) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetProfile](NewGetProfileImpl(i.Repo, i.TimeProvider))
	depend.Register[UpdateProfile](NewUpdateProfileImpl(i.Repo, i.TimeProvider))
	return ctx, nil
}
