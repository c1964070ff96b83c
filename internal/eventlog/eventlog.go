// Package eventlog implements the in-memory analytics event store: an
// allow-list gated, capacity-bounded, newest-first ring buffer.
package eventlog

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one recorded user action. Never mutated after creation.
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Type      string            `json:"type"`
	Subject   string            `json:"subject"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Event types accepted by the log. The allow-list is the single gate for
// what may be recorded; anything else is silently dropped.
const (
	TypePageView     = "page_view"
	TypeSearch       = "search"
	TypeServiceClick = "service_click"
	TypeTriage       = "triage"
	TypeIntake       = "intake"
	TypeReport       = "report"
	TypeQRScan       = "qr_scan"
)

// DefaultAllowedTypes is the standard allow-list.
func DefaultAllowedTypes() []string {
	return []string{
		TypePageView, TypeSearch, TypeServiceClick,
		TypeTriage, TypeIntake, TypeReport, TypeQRScan,
	}
}

// Log is the bounded event store. Events are kept newest-first; once the
// capacity is reached the oldest entry is evicted unconditionally.
type Log struct {
	mu       sync.Mutex
	events   []Event // index 0 = newest
	capacity int
	allowed  map[string]struct{}
	now      func() time.Time
}

// New creates a log with the given capacity and allow-list.
func New(capacity int, allowedTypes []string) *Log {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}
	return &Log{
		capacity: capacity,
		allowed:  allowed,
		now:      time.Now,
	}
}

// Record appends an event. Returns false (and stores nothing) when the
// type is not on the allow-list.
func (l *Log) Record(eventType, subject string, meta map[string]string) bool {
	if _, ok := l.allowed[eventType]; !ok {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ev := Event{
		ID:        uuid.New().String(),
		Timestamp: l.now(),
		Type:      eventType,
		Subject:   subject,
		Meta:      meta,
	}
	l.events = append([]Event{ev}, l.events...)
	if len(l.events) > l.capacity {
		l.events = l.events[:l.capacity]
	}
	return true
}

// Len returns the number of stored events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// Snapshot returns a newest-first copy of the stored events.
func (l *Log) Snapshot() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// SubjectCount is one entry in the top-clicked ranking.
type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

// Summary aggregates the stored events.
type Summary struct {
	TotalEvents      int            `json:"total_events"`
	CountsByType     map[string]int `json:"counts_by_type"`
	TopClickSubjects []SubjectCount `json:"top_click_subjects"`
}

const topSubjectLimit = 10

// Summarize aggregates every stored event.
func (l *Log) Summarize() Summary {
	return l.summarize(time.Time{})
}

// SummarizeSince aggregates only events strictly newer than cutoff.
func (l *Log) SummarizeSince(cutoff time.Time) Summary {
	return l.summarize(cutoff)
}

func (l *Log) summarize(cutoff time.Time) Summary {
	events := l.Snapshot()

	counts := make(map[string]int)
	clickCounts := make(map[string]int)
	var clickOrder []string // first-encounter order, oldest event first

	// Walk oldest to newest so tie-breaks follow insertion encounter order.
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		if !cutoff.IsZero() && !ev.Timestamp.After(cutoff) {
			continue
		}
		counts[ev.Type]++
		if ev.Type == TypeServiceClick && ev.Subject != "" {
			if _, seen := clickCounts[ev.Subject]; !seen {
				clickOrder = append(clickOrder, ev.Subject)
			}
			clickCounts[ev.Subject]++
		}
	}

	top := make([]SubjectCount, 0, len(clickOrder))
	for _, subject := range clickOrder {
		top = append(top, SubjectCount{Subject: subject, Count: clickCounts[subject]})
	}
	// Stable sort over encounter order, so equal counts keep that order.
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topSubjectLimit {
		top = top[:topSubjectLimit]
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return Summary{
		TotalEvents:      total,
		CountsByType:     counts,
		TopClickSubjects: top,
	}
}
