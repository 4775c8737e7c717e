package domain

import "github.com/google/uuid"

// Identity is the authenticated user on whose behalf an operation runs.
type Identity struct {
	UserID uuid.UUID
}

// NewIdentity creates an Identity for the given user.
func NewIdentity(userID uuid.UUID) Identity {
	return Identity{UserID: userID}
}

// IsAnonymous reports whether no user is attached to the identity.
func (i Identity) IsAnonymous() bool {
	return i.UserID == uuid.Nil
}

// Require returns an UnauthenticatedErr for anonymous identities.
func (i Identity) Require() error {
	if i.IsAnonymous() {
		return NewUnauthenticatedErr("authentication required")
	}
	return nil
}

// Authorize checks that the identity is allowed to act for ownerID.
func (i Identity) Authorize(ownerID uuid.UUID) error {
	if err := i.Require(); err != nil {
		return err
	}
	if i.UserID != ownerID {
		return NewForbiddenErr("identity does not match the requested user")
	}
	return nil
}
