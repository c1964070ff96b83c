package catalog

import (
	"strings"
	"sync"
)

// Catalog is an immutable snapshot of the service directory plus the tag of
// the source it was loaded from. It is safe for concurrent readers without
// locking; replacing the snapshot goes through a Holder.
type Catalog struct {
	records   []ServiceRecord
	sourceTag string
}

// New builds a catalog snapshot. The caller must not mutate records after
// handing them over.
func New(records []ServiceRecord, sourceTag string) *Catalog {
	return &Catalog{records: records, sourceTag: sourceTag}
}

// SourceTag reports which loader source produced this snapshot.
func (c *Catalog) SourceTag() string { return c.sourceTag }

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of the underlying record list in catalog order.
func (c *Catalog) Records() []ServiceRecord {
	out := make([]ServiceRecord, len(c.records))
	copy(out, c.records)
	return out
}

// BySlug looks up a single record by its slug.
func (c *Catalog) BySlug(slug string) (ServiceRecord, bool) {
	for _, r := range c.records {
		if r.Slug == slug {
			return r, true
		}
	}
	return ServiceRecord{}, false
}

// Filters holds the parsed query parameters for a catalog search. Zero
// values mean "not requested": empty strings, false booleans, Age == 0.
type Filters struct {
	Query            string
	Type             string
	Neighborhood     string
	WalkInOnly       bool
	Age              int
	LGBTQOnly        bool
	Language         string
	DisabilityAccess string
	TribalOnly       bool
	TribeRunOnly     bool
}

// Search returns every record matching all requested filters, in catalog
// order. Free-text matching goes through synonym expansion; all other
// filters are conjunctive exact-match or boolean gates. Returned records
// are copies and may carry the MinorApplicable annotation.
func (c *Catalog) Search(f Filters) []ServiceRecord {
	qterms := ExpandQueryTerms(f.Query)

	var out []ServiceRecord
	for _, r := range c.records {
		minorNote, ok := matches(&r, f, qterms)
		if !ok {
			continue
		}
		rec := r
		rec.MinorApplicable = minorNote
		out = append(out, rec)
	}
	return out
}

func matches(r *ServiceRecord, f Filters, qterms map[string]struct{}) (minorNote, ok bool) {
	if f.Type != "" && !strings.EqualFold(r.Type, f.Type) {
		return false, false
	}
	if f.Neighborhood != "" && !strings.EqualFold(r.Neighborhood, f.Neighborhood) {
		return false, false
	}
	if f.WalkInOnly && !r.WalkIn {
		return false, false
	}
	if f.LGBTQOnly && !r.LGBTQFriendly {
		return false, false
	}
	if f.TribalOnly && !r.TribalFriendly {
		return false, false
	}
	if f.TribeRunOnly && !r.TribeRun {
		return false, false
	}
	if f.Language != "" && !listContainsFold(r.Languages, f.Language) {
		return false, false
	}
	if f.DisabilityAccess != "" && !listContainsFold(r.DisabilityServices, f.DisabilityAccess) {
		return false, false
	}

	if f.Age > 0 {
		withinMax := r.AgeMax == 0 || f.Age <= r.AgeMax
		switch {
		case r.AgeMin <= f.Age && withinMax:
			// in range
		case f.Age < 18 && r.AgeMin >= 18:
			// Adult-gated record shown to a minor: kept, but annotated.
			minorNote = true
		default:
			return false, false
		}
	}

	if len(qterms) > 0 {
		hay := r.searchText()
		hit := false
		for term := range qterms {
			if strings.Contains(hay, term) {
				hit = true
				break
			}
		}
		if !hit {
			return false, false
		}
	}

	return minorNote, true
}

// listContainsFold reports whether any list entry contains needle,
// case-insensitively.
func listContainsFold(list []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range list {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Holder owns the current catalog snapshot and supports atomic replacement
// when an admin upload or reload produces a new one.
type Holder struct {
	mu      sync.RWMutex
	current *Catalog
}

// NewHolder wraps an initial snapshot.
func NewHolder(c *Catalog) *Holder {
	return &Holder{current: c}
}

// Current returns the active snapshot.
func (h *Holder) Current() *Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Swap replaces the active snapshot.
func (h *Holder) Swap(c *Catalog) {
	h.mu.Lock()
	h.current = c
	h.mu.Unlock()
}
