// Package ratelimit provides a sliding-window rate limiter keyed by
// (scope, client identifier).
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks recent request timestamps per (scope, clientID) bucket.
// All mutation happens under one mutex; the critical section is just the
// prune-and-check, never I/O.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
	now     func() time.Time
}

// New creates an empty limiter.
func New() *Limiter {
	return &Limiter{
		buckets: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow prunes timestamps older than window from the bucket, then admits
// the request (recording its timestamp) only if fewer than maxHits remain.
// A rejected request records nothing.
func (l *Limiter) Allow(scope, clientID string, maxHits int, window time.Duration) bool {
	key := scope + "|" + clientID

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	hits := l.buckets[key]
	// Timestamps are appended in order, so pruning only trims the front.
	start := 0
	for start < len(hits) && !hits[start].After(cutoff) {
		start++
	}
	hits = hits[start:]

	if len(hits) >= maxHits {
		l.buckets[key] = hits
		return false
	}

	l.buckets[key] = append(hits, now)
	return true
}
