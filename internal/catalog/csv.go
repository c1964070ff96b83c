package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SkippedRow describes a CSV row that did not make it into the catalog.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Report is the per-load import outcome: every row is either accepted or
// skipped with a reason. Import is best-effort, never atomic.
type Report struct {
	SourceTag string       `json:"source"`
	Accepted  int          `json:"accepted"`
	Skipped   []SkippedRow `json:"skipped,omitempty"`
}

// ParseCSV reads header-keyed service rows. A row-level problem skips that
// row only; err is non-nil only when the input is not usable CSV at all.
func ParseCSV(r io.Reader) (records []ServiceRecord, skipped []SkippedRow, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}

	line := 1
	for {
		line++
		row, rerr := cr.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			skipped = append(skipped, SkippedRow{Line: line, Reason: rerr.Error()})
			continue
		}

		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := field("name")
		if name == "" {
			skipped = append(skipped, SkippedRow{Line: line, Reason: "missing name"})
			continue
		}

		records = append(records, ServiceRecord{
			Name:               name,
			Type:               field("type"),
			Neighborhood:       field("neighborhood"),
			Address:            field("address"),
			Phone:              field("phone"),
			Website:            field("website"),
			Hours:              field("hours"),
			Notes:              field("notes"),
			WalkIn:             parseBool(field("walk_in")),
			WheelchairAccess:   parseBool(field("wheelchair_access")),
			LGBTQFriendly:      parseBool(field("lgbtq_friendly")),
			TribalFriendly:     parseBool(field("tribal_friendly")),
			TribeRun:           parseBool(field("tribe_run")),
			Beds:               parseInt(field("beds")),
			AgeMin:             parseInt(field("age_min")),
			AgeMax:             parseInt(field("age_max")),
			Lat:                parseFloat(field("lat")),
			Lng:                parseFloat(field("lng")),
			Languages:          splitList(field("languages")),
			DisabilityServices: splitList(field("disability_services")),
			Services:           splitList(field("services")),
			Slug:               Slugify(name),
		})
	}

	return records, skipped, nil
}

// parseBool maps the boolean-like spellings that show up in spreadsheet
// exports to true; anything else is false.
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// parseInt parses a number, falling back to zero on anything malformed.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// splitList splits a pipe-delimited cell into trimmed, non-empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
