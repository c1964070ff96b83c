package catalog

import "strings"

// ServiceRecord is a single entry in the resource directory. Records are
// built once at load time and never mutated afterwards; Search returns
// copies, so the per-query MinorApplicable annotation never leaks back
// into the catalog.
type ServiceRecord struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Hours        string `json:"hours"`
	Notes        string `json:"notes"`

	WalkIn           bool `json:"walk_in"`
	WheelchairAccess bool `json:"wheelchair_access"`
	LGBTQFriendly    bool `json:"lgbtq_friendly"`
	TribalFriendly   bool `json:"tribal_friendly"`
	TribeRun         bool `json:"tribe_run"`

	Beds   int     `json:"beds"`
	AgeMin int     `json:"age_min"`
	AgeMax int     `json:"age_max"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`

	Languages          []string `json:"languages"`
	DisabilityServices []string `json:"disability_services"`
	Services           []string `json:"services"`

	Slug string `json:"slug"`

	// MinorApplicable is set on query results when the caller's age is
	// under 18 and the record is adult-gated (age_min >= 18). The record
	// is still returned so outreach staff can see the referral option.
	MinorApplicable bool `json:"minor_applicable,omitempty"`
}

// DefaultSlug is used when a name reduces to nothing slug-worthy.
const DefaultSlug = "service"

// Slugify derives a URL-safe identifier from a service name: lowercased,
// symbols stripped, words hyphen-joined.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

// searchText builds the lowercased haystack a free-text query is matched
// against: name, notes, type, neighborhood, and the service tag list.
func (r *ServiceRecord) searchText() string {
	parts := make([]string, 0, 4+len(r.Services))
	parts = append(parts, r.Name, r.Notes, r.Type, r.Neighborhood)
	parts = append(parts, r.Services...)
	return strings.ToLower(strings.Join(parts, " "))
}
