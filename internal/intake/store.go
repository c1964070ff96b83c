// Package intake holds the capacity-bounded in-memory store of intake-form
// submissions and referrals.
package intake

import (
	"sync"
	"time"
)

// Lifecycle statuses. An intake only ever moves new -> resolved.
const (
	StatusNew      = "new"
	StatusResolved = "resolved"
)

// Record is one submitted intake.
type Record struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Need      string    `json:"need"`
	Details   string    `json:"details"`
	Status    string    `json:"status"`
}

// Store keeps intakes oldest-first up to a hard capacity; once full, the
// oldest record is evicted unconditionally. IDs are sequential and never
// reused, so TotalSeen keeps counting past evictions.
type Store struct {
	mu        sync.Mutex
	records   []Record // index 0 = oldest
	nextID    int
	capacity  int
	totalSeen int
	now       func() time.Time
}

// NewStore creates an empty store with the given capacity.
func NewStore(capacity int) *Store {
	return &Store{
		nextID:   1,
		capacity: capacity,
		now:      time.Now,
	}
}

// Add appends a new intake and returns it.
func (s *Store) Add(name, need, details string) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:        s.nextID,
		CreatedAt: s.now(),
		Name:      name,
		Need:      need,
		Details:   details,
		Status:    StatusNew,
	}
	s.nextID++
	s.totalSeen++

	s.records = append(s.records, rec)
	if len(s.records) > s.capacity {
		s.records = s.records[1:]
	}
	return rec
}

// Resolve marks the intake with the given id resolved. Returns false when
// the id is unknown (including already-evicted ids).
func (s *Store) Resolve(id int) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Status = StatusResolved
			return s.records[i], true
		}
	}
	return Record{}, false
}

// List returns the stored intakes, newest first.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	return out
}

// Len returns the number of currently stored intakes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// TotalSeen returns how many intakes were ever submitted, evicted or not.
func (s *Store) TotalSeen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalSeen
}
