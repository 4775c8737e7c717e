package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile holds the display information of a user.
// The profile ID is the user ID.
type Profile struct {
	ID        uuid.UUID
	FullName  *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileRepository defines the interface for persisting user profiles.
type ProfileRepository interface {
	// GetProfile retrieves the profile of a user.
	GetProfile(ctx context.Context, id uuid.UUID) (Profile, bool, error)
	// CreateProfile inserts the profile, doing nothing when it already exists.
	CreateProfile(ctx context.Context, profile Profile) error
	// UpdateProfile writes the profile fields.
	UpdateProfile(ctx context.Context, profile Profile) error
}
