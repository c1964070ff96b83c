package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestRecordEvent_AllowList(t *testing.T) {
	deps := testDeps(t)

	rec := do(deps, http.MethodPost, "/event", "application/json",
		`{"type":"service_click","name":"harbor-free-clinic"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp := decode[EventResp](t, rec); !resp.Stored {
		t.Error("allow-listed event should be stored")
	}

	rec = do(deps, http.MethodPost, "/event", "application/json",
		`{"type":"totally_made_up","name":"x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (silent drop, not an error)", rec.Code)
	}
	if resp := decode[EventResp](t, rec); resp.Stored {
		t.Error("unknown event type must not be stored")
	}

	if deps.Events.Len() != 1 {
		t.Errorf("event log has %d entries, want 1", deps.Events.Len())
	}
}

func TestAnalytics(t *testing.T) {
	deps := testDeps(t)

	do(deps, http.MethodPost, "/event", "application/json", `{"type":"service_click","name":"a"}`)
	do(deps, http.MethodPost, "/event", "application/json", `{"type":"service_click","name":"a"}`)
	do(deps, http.MethodPost, "/event", "application/json", `{"type":"report","name":"camp closure"}`)
	do(deps, http.MethodPost, "/submit_form", "application/x-www-form-urlencoded", "name=Ana&need=housing")

	rec := do(deps, http.MethodGet, "/analytics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decode[AnalyticsResp](t, rec)
	if resp.TotalEvents != 4 { // 3 posted + the intake event
		t.Errorf("TotalEvents = %d, want 4", resp.TotalEvents)
	}
	if resp.TotalIntakes != 1 {
		t.Errorf("TotalIntakes = %d, want 1", resp.TotalIntakes)
	}
	if resp.TotalReports != 1 {
		t.Errorf("TotalReports = %d, want 1", resp.TotalReports)
	}
	if len(resp.TopClickSubjects) != 1 || resp.TopClickSubjects[0].Count != 2 {
		t.Errorf("TopClickSubjects = %v", resp.TopClickSubjects)
	}
	if resp.CatalogSource != "test" {
		t.Errorf("CatalogSource = %q, want test", resp.CatalogSource)
	}
}

func TestAnalytics_WindowedVariant(t *testing.T) {
	deps := testDeps(t)
	do(deps, http.MethodPost, "/event", "application/json", `{"type":"page_view","name":"index"}`)

	rec := do(deps, http.MethodGet, "/analytics?window=24h", "", "")
	resp := decode[AnalyticsResp](t, rec)
	if resp.WindowHours != 24 {
		t.Errorf("WindowHours = %d, want 24", resp.WindowHours)
	}
	if resp.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1 (just recorded)", resp.TotalEvents)
	}
}

func TestDigest(t *testing.T) {
	deps := testDeps(t)
	do(deps, http.MethodPost, "/event", "application/json", `{"type":"service_click","name":"harbor-free-clinic"}`)

	rec := do(deps, http.MethodGet, "/digest.txt", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"last 24h", "service_click", "harbor-free-clinic"} {
		if !strings.Contains(body, want) {
			t.Errorf("digest missing %q:\n%s", want, body)
		}
	}
}
