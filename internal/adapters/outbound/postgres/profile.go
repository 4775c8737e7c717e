package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

var profileFields = []string{
	"id",
	"full_name",
	"avatar_url",
	"created_at",
	"updated_at",
}

// ProfileRepository implements domain.ProfileRepository for Postgres.
type ProfileRepository struct {
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(br squirrel.BaseRunner) ProfileRepository {
	return ProfileRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetProfile retrieves the profile of a user.
func (pr ProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (domain.Profile, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var p domain.Profile
	err := pr.sb.
		Select(profileFields...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(&p.ID, &p.FullName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

// CreateProfile inserts the profile. A concurrent insert of the same profile is ignored.
func (pr ProfileRepository) CreateProfile(ctx context.Context, profile domain.Profile) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := pr.sb.
		Insert("profiles").
		Columns(profileFields...).
		Values(profile.ID, profile.FullName, profile.AvatarURL, profile.CreatedAt, profile.UpdatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// UpdateProfile writes the name and avatar URL.
func (pr ProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := pr.sb.
		Update("profiles").
		Set("full_name", profile.FullName).
		Set("avatar_url", profile.AvatarURL).
		Set("updated_at", profile.UpdatedAt).
		Where(squirrel.Eq{"id": profile.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitProfileRepository registers the ProfileRepository in the dependency container.
type InitProfileRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the repository.
func (ipr InitProfileRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ProfileRepository](NewProfileRepository(ipr.DB))
	return ctx, nil
}
