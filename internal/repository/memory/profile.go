package memory

import (
	"sync"

	"hydromate/internal/domain"
	"hydromate/internal/repository"
)

// entry wraps one user's profile with its own lock. The lock serializes
// read-modify-write sequences for that user without blocking other users.
type entry struct {
	mu      sync.Mutex
	profile domain.Profile
}

// ProfileRepo implements repository.ProfileRepository in memory. Profiles
// live for the process lifetime; nothing is ever evicted.
type ProfileRepo struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

// NewProfileRepo creates an empty in-memory profile repository
func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{entries: make(map[int64]*entry)}
}

// Init creates or replaces the user's profile and returns a snapshot.
func (r *ProfileRepo) Init(userID int64, p domain.Profile) domain.Profile {
	e := r.getOrCreate(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	p.UserID = userID
	e.profile = p
	return snapshot(&e.profile)
}

// Update mutates an existing profile under its entry lock and returns the
// resulting snapshot.
func (r *ProfileRepo) Update(userID int64, fn func(*domain.Profile)) (domain.Profile, error) {
	e := r.get(userID)
	if e == nil {
		return domain.Profile{}, repository.ErrProfileNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.profile)
	return snapshot(&e.profile), nil
}

// Snapshot returns a copy of the user's profile.
func (r *ProfileRepo) Snapshot(userID int64) (domain.Profile, error) {
	e := r.get(userID)
	if e == nil {
		return domain.Profile{}, repository.ErrProfileNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return snapshot(&e.profile), nil
}

// Exists reports whether the user has an initialized profile.
func (r *ProfileRepo) Exists(userID int64) bool {
	return r.get(userID) != nil
}

// Count returns the number of initialized profiles.
func (r *ProfileRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *ProfileRepo) get(userID int64) *entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[userID]
}

func (r *ProfileRepo) getOrCreate(userID int64) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[userID]
	if !ok {
		e = &entry{}
		r.entries[userID] = e
	}
	return e
}

// snapshot copies the profile, detaching PendingFood from the stored value.
func snapshot(p *domain.Profile) domain.Profile {
	out := *p
	if p.PendingFood != nil {
		pf := *p.PendingFood
		out.PendingFood = &pf
	}
	return out
}
