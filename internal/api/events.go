package api

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
)

// handleRecordEvent implements POST /event. Types outside the allow-list
// are silently dropped; the response says so but is never an error.
func (d *Dependencies) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	stored := d.Events.Record(req.Type, req.Name, req.Meta)
	writeJSON(w, http.StatusOK, EventResp{OK: true, Stored: stored})
}

// analytics assembles the summary across the event and intake stores.
// A non-zero windowHours restricts events to the trailing window.
func (d *Dependencies) analytics(windowHours int) AnalyticsResp {
	var s eventlog.Summary
	if windowHours > 0 {
		s = d.Events.SummarizeSince(time.Now().Add(-time.Duration(windowHours) * time.Hour))
	} else {
		s = d.Events.Summarize()
	}
	return AnalyticsResp{
		TotalEvents:      s.TotalEvents,
		CountsByType:     s.CountsByType,
		TopClickSubjects: s.TopClickSubjects,
		TotalIntakes:     d.Intakes.TotalSeen(),
		TotalReports:     s.CountsByType[eventlog.TypeReport],
		CatalogSource:    d.Catalog.Current().SourceTag(),
		WindowHours:      windowHours,
	}
}

// handleAnalytics implements GET /analytics. `?window=24h` switches to the
// trailing-24-hour view; anything else means all stored events.
func (d *Dependencies) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	windowHours := 0
	if r.URL.Query().Get("window") == "24h" {
		windowHours = 24
	}
	writeJSON(w, http.StatusOK, d.analytics(windowHours))
}

// handleDigest implements GET /digest.txt: a plain-text summary of the
// trailing 24 hours, for pasting into a shift-change email.
func (d *Dependencies) handleDigest(w http.ResponseWriter, _ *http.Request) {
	a := d.analytics(24)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Harbor & Vale, last 24h\n")
	fmt.Fprintf(w, "=======================\n")
	fmt.Fprintf(w, "events:  %d\n", a.TotalEvents)
	fmt.Fprintf(w, "intakes: %d (all time)\n", a.TotalIntakes)
	fmt.Fprintf(w, "reports: %d\n\n", a.TotalReports)

	types := make([]string, 0, len(a.CountsByType))
	for t := range a.CountsByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "  %-14s %d\n", t, a.CountsByType[t])
	}

	if len(a.TopClickSubjects) > 0 {
		fmt.Fprintf(w, "\nmost clicked services:\n")
		for i, sc := range a.TopClickSubjects {
			fmt.Fprintf(w, "  %2d. %s (%d)\n", i+1, sc.Subject, sc.Count)
		}
	}
}
