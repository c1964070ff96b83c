package api

import (
	"encoding/csv"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/catalog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
)

// parseFilters maps query parameters onto catalog filters. Malformed
// values are neutralized to their zero value, never surfaced as errors.
func parseFilters(q url.Values) catalog.Filters {
	f := catalog.Filters{
		Query:            q.Get("q"),
		Type:             q.Get("type"),
		Neighborhood:     q.Get("neighborhood"),
		Language:         q.Get("language"),
		DisabilityAccess: q.Get("disability"),
		WalkInOnly:       parseFlag(q.Get("walk_in")),
		LGBTQOnly:        parseFlag(q.Get("lgbtq")),
		TribalOnly:       parseFlag(q.Get("tribal")),
		TribeRunOnly:     parseFlag(q.Get("tribe_run")),
	}
	if age, err := strconv.Atoi(q.Get("age")); err == nil && age > 0 {
		f.Age = age
	}
	return f
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// handleListServices implements GET /services.
func (d *Dependencies) handleListServices(w http.ResponseWriter, r *http.Request) {
	f := parseFilters(r.URL.Query())
	cat := d.Catalog.Current()
	items := cat.Search(f)

	if f.Query != "" {
		d.Events.Record(eventlog.TypeSearch, f.Query, nil)
	}

	if items == nil {
		items = []catalog.ServiceRecord{}
	}
	writeJSON(w, http.StatusOK, ServiceListResp{
		Items:  items,
		Count:  len(items),
		Source: cat.SourceTag(),
	})
}

// handleGetService implements GET /services/{slug}.
func (d *Dependencies) handleGetService(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	rec, ok := d.Catalog.Current().BySlug(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: "Service not found"})
		return
	}
	d.Events.Record(eventlog.TypeServiceClick, slug, nil)
	writeJSON(w, http.StatusOK, rec)
}

// handleExportCSV implements GET /export.csv: the current catalog as a
// CSV attachment, same column layout the upload endpoint accepts.
func (d *Dependencies) handleExportCSV(w http.ResponseWriter, _ *http.Request) {
	records := d.Catalog.Current().Records()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="services.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{ //nolint:errcheck
		"name", "type", "neighborhood", "address", "phone", "website", "hours", "notes",
		"walk_in", "wheelchair_access", "lgbtq_friendly", "tribal_friendly", "tribe_run",
		"beds", "age_min", "age_max", "lat", "lng",
		"languages", "disability_services", "services",
	})
	for _, rec := range records {
		cw.Write([]string{ //nolint:errcheck
			rec.Name, rec.Type, rec.Neighborhood, rec.Address, rec.Phone, rec.Website, rec.Hours, rec.Notes,
			formatBool(rec.WalkIn), formatBool(rec.WheelchairAccess), formatBool(rec.LGBTQFriendly),
			formatBool(rec.TribalFriendly), formatBool(rec.TribeRun),
			strconv.Itoa(rec.Beds), strconv.Itoa(rec.AgeMin), strconv.Itoa(rec.AgeMax),
			formatFloat(rec.Lat), formatFloat(rec.Lng),
			strings.Join(rec.Languages, "|"), strings.Join(rec.DisabilityServices, "|"), strings.Join(rec.Services, "|"),
		})
	}
	cw.Flush()
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
