// Package memory implements the in-memory profile store. Entries live for
// the process lifetime; there is no eviction and no persistence.
package memory

import (
	"context"
	"sync"

	"kcalbot/internal/domain"
)

// Store implements domain.ProfileStore backed by a mutex-guarded map.
type Store struct {
	mu       sync.Mutex
	profiles map[int64]*domain.UserProfile
}

// New creates an empty store.
func New() *Store {
	return &Store{profiles: make(map[int64]*domain.UserProfile)}
}

// Ensure interfaces are met.
var _ domain.ProfileStore = (*Store)(nil)

// Get returns a copy of the user's profile, or nil when absent. All writes go
// through Put or Mutate so callers never share the stored value.
func (s *Store) Get(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := clone(p)
	return &cp, nil
}

// Put stores a copy of the profile, overwriting any previous one.
func (s *Store) Put(ctx context.Context, userID int64, p *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := clone(p)
	s.profiles[userID] = &cp
	return nil
}

// Mutate applies fn to the stored profile under the store lock, making the
// read-modify-write atomic with respect to the user's key.
func (s *Store) Mutate(ctx context.Context, userID int64, fn func(*domain.UserProfile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	fn(p)
	return nil
}

func clone(p *domain.UserProfile) domain.UserProfile {
	cp := *p
	cp.LoggedWater = append([]float64(nil), p.LoggedWater...)
	cp.LoggedCalories = append([]float64(nil), p.LoggedCalories...)
	return cp
}
