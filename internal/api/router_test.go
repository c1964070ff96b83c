package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/catalog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/intake"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/profile"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/ratelimit"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/session"
	"go.uber.org/zap"
)

// testDeps builds a fully wired Dependencies over the fallback catalog,
// with a registered case-manager account and a known admin key.
func testDeps(t *testing.T) *Dependencies {
	t.Helper()

	sessions := session.NewStore(time.Hour)
	if err := sessions.AddUser("cm", "letmein"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	return &Dependencies{
		Catalog:       catalog.NewHolder(catalog.New(catalog.FallbackRecords(), "test")),
		Events:        eventlog.New(100, eventlog.DefaultAllowedTypes()),
		Intakes:       intake.NewStore(50),
		Limiter:       ratelimit.New(),
		Sessions:      sessions,
		Profiles:      profile.NewStore(),
		Logger:        zap.NewNop(),
		AdminKey:      "sekrit",
		BaseURL:       "https://harborvale.example",
		TriageMaxHits: 3,
		TriageWindow:  time.Minute,
		EventMaxHits:  100,
		EventWindow:   time.Minute,
	}
}

// do runs one request through the full router.
func do(deps *Dependencies, method, target, contentType, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	router := NewRouter(deps)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	rec := do(testDeps(t), http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode[map[string]bool](t, rec)
	if !body["ok"] {
		t.Errorf("body = %v, want ok=true", body)
	}
}

func TestListServices_FilterAndSearchEvent(t *testing.T) {
	deps := testDeps(t)

	rec := do(deps, http.MethodGet, "/services?q=naloxone&type=Clinic", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decode[ServiceListResp](t, rec)
	if resp.Count != 1 || resp.Items[0].Slug != "harbor-free-clinic" {
		t.Errorf("resp = %+v, want just the clinic", resp)
	}

	// The free-text query should have been recorded as a search event.
	if got := deps.Events.Summarize().CountsByType[eventlog.TypeSearch]; got != 1 {
		t.Errorf("search events = %d, want 1", got)
	}
}

func TestListServices_MalformedValuesNeutralized(t *testing.T) {
	deps := testDeps(t)

	// Non-numeric age and junk boolean must not error or filter anything.
	rec := do(deps, http.MethodGet, "/services?age=abc&walk_in=banana", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decode[ServiceListResp](t, rec)
	if resp.Count != deps.Catalog.Current().Len() {
		t.Errorf("Count = %d, want all %d records", resp.Count, deps.Catalog.Current().Len())
	}
}

func TestGetService(t *testing.T) {
	deps := testDeps(t)

	rec := do(deps, http.MethodGet, "/services/harbor-free-clinic", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if do(deps, http.MethodGet, "/services/unknown-slug", "", "").Code != http.StatusNotFound {
		t.Error("unknown slug should 404")
	}
	// A successful detail fetch counts as a click for analytics.
	if got := deps.Events.Summarize().CountsByType[eventlog.TypeServiceClick]; got != 1 {
		t.Errorf("click events = %d, want 1", got)
	}
}

func TestExportCSV(t *testing.T) {
	deps := testDeps(t)
	rec := do(deps, http.MethodGet, "/export.csv", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != deps.Catalog.Current().Len()+1 {
		t.Errorf("csv has %d lines, want header + %d rows", len(lines), deps.Catalog.Current().Len())
	}
}

func TestPoster(t *testing.T) {
	deps := testDeps(t)

	rec := do(deps, http.MethodGet, "/poster/harbor-free-clinic.png", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if do(deps, http.MethodGet, "/poster/unknown.png", "", "").Code != http.StatusNotFound {
		t.Error("unknown slug should 404")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	deps := testDeps(t)

	if do(deps, http.MethodGet, "/profile/ana", "", "").Code != http.StatusNotFound {
		t.Error("missing profile should 404")
	}

	rec := do(deps, http.MethodPut, "/profile/ana", "application/json",
		`{"contact":"ana@example.org","needs":["housing"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", rec.Code)
	}

	rec = do(deps, http.MethodGet, "/profile/ana", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	p := decode[profile.Profile](t, rec)
	if p.Name != "ana" || p.Contact != "ana@example.org" {
		t.Errorf("profile = %+v", p)
	}
}
