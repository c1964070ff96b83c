package catalog

import "strings"

// synonymGroups maps a trigger keyword to the terms it expands into.
// A group fires when the raw query contains either the key or any of its
// synonyms as a substring; the whole group is then added to the match set.
var synonymGroups = map[string][]string{
	"id":        {"id", "ids", "identification", "license", "dmv", "birth certificate"},
	"showers":   {"shower", "showers", "hygiene", "laundry"},
	"food":      {"food", "meal", "meals", "groceries", "food bank", "soup"},
	"transport": {"transport", "transportation", "bus", "orca", "transit", "ticket", "pass"},
	"detox":     {"detox", "withdrawal", "sobering", "sobering center"},
	"mental":    {"mental", "counseling", "therapy", "psychiatry", "behavioral"},
}

// ExpandQueryTerms lowercases a free-text query and expands it through the
// synonym table. The result always contains the literal query itself; an
// empty or whitespace-only query returns an empty set.
func ExpandQueryTerms(q string) map[string]struct{} {
	q = strings.ToLower(strings.TrimSpace(q))
	terms := make(map[string]struct{})
	if q == "" {
		return terms
	}
	terms[q] = struct{}{}
	for key, syns := range synonymGroups {
		triggered := strings.Contains(q, key)
		if !triggered {
			for _, s := range syns {
				if strings.Contains(q, s) {
					triggered = true
					break
				}
			}
		}
		if triggered {
			for _, s := range syns {
				terms[s] = struct{}{}
			}
		}
	}
	return terms
}
