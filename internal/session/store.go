// Package session implements the case-manager login store: bcrypt-hashed
// users and in-memory session tokens with a TTL.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type sessionEntry struct {
	username  string
	expiresAt time.Time
}

// Store holds users and live sessions. Everything is memory-only and lost
// on restart, which is acceptable for the dashboard demo.
type Store struct {
	mu       sync.Mutex
	users    map[string][]byte // username -> bcrypt hash
	sessions map[string]sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store; sessions live for ttl after login.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		users:    make(map[string][]byte),
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// AddUser registers a case-manager account.
func (s *Store) AddUser(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.users[username] = hash
	s.mu.Unlock()
	return nil
}

// Login checks the credentials and, on success, mints a session token.
func (s *Store) Login(username, password string) (token string, ok bool) {
	s.mu.Lock()
	hash, exists := s.users[username]
	s.mu.Unlock()
	if !exists {
		return "", false
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return "", false
	}

	token = uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = sessionEntry{
		username:  username,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token, true
}

// Lookup resolves a session token to its username. Expired sessions are
// deleted on sight.
func (s *Store) Lookup(token string) (username string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.sessions[token]
	if !exists {
		return "", false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return "", false
	}
	return entry.username, true
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *Store) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
