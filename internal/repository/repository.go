package repository

import (
	"errors"

	"hydromate/internal/domain"
)

// ErrProfileNotFound is returned when an operation requires a profile the
// user has not initialized yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines profile data operations. Update runs its
// mutation while holding that user's entry exclusively, so read-modify-write
// sequences for one user never interleave; operations on different users do
// not contend with each other.
type ProfileRepository interface {
	// Init creates or replaces the user's profile and returns a snapshot.
	Init(userID int64, p domain.Profile) domain.Profile
	// Update mutates an existing profile and returns the resulting
	// snapshot. Returns ErrProfileNotFound for unregistered users.
	Update(userID int64, fn func(*domain.Profile)) (domain.Profile, error)
	// Snapshot returns a copy of the user's profile, or ErrProfileNotFound.
	Snapshot(userID int64) (domain.Profile, error)
	// Exists reports whether the user has an initialized profile.
	Exists(userID int64) bool
	// Count returns the number of initialized profiles.
	Count() int
}
