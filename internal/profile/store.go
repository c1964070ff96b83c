// Package profile is the demo user-profile store: name-keyed records for
// returning visitors, memory-only.
package profile

import (
	"sync"
	"time"
)

// Profile is one saved visitor profile.
type Profile struct {
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Needs     []string  `json:"needs,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a mutex-guarded map of profiles keyed by name.
type Store struct {
	mu       sync.Mutex
	profiles map[string]Profile
	now      func() time.Time
}

// NewStore creates an empty profile store.
func NewStore() *Store {
	return &Store{
		profiles: make(map[string]Profile),
		now:      time.Now,
	}
}

// Get returns the profile for a name.
func (s *Store) Get(name string) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[name]
	return p, ok
}

// Put creates or replaces a profile, stamping UpdatedAt.
func (s *Store) Put(p Profile) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.UpdatedAt = s.now()
	s.profiles[p.Name] = p
	return p
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}
