// Package api wires the HTTP surface of the Harbor & Vale directory
// backend. All shared state is injected through Dependencies; handlers
// never touch globals.
package api

import (
	"net/http"
	"time"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/catalog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/intake"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/profile"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/ratelimit"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/session"
	"go.uber.org/zap"
)

// Dependencies holds shared state injected into all HTTP handlers.
type Dependencies struct {
	Catalog  *catalog.Holder
	Events   *eventlog.Log
	Intakes  *intake.Store
	Limiter  *ratelimit.Limiter
	Sessions *session.Store
	Profiles *profile.Store
	Logger   *zap.Logger

	// AdminKey gates the upload endpoints; empty disables them.
	AdminKey string
	// BaseURL is the public origin used for poster QR targets.
	BaseURL string

	// Rate-limit knobs per scope.
	TriageMaxHits int
	TriageWindow  time.Duration
	EventMaxHits  int
	EventWindow   time.Duration
}

// NewRouter builds the HTTP mux with all routes wired up.
func NewRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// Catalog
	mux.HandleFunc("GET /services", deps.handleListServices)
	mux.HandleFunc("GET /services/{slug}", deps.handleGetService)
	mux.HandleFunc("GET /export.csv", deps.handleExportCSV)
	mux.HandleFunc("GET /poster/{slug}", deps.handlePoster)

	// Intake
	mux.HandleFunc("POST /submit_form", deps.handleSubmitForm)
	mux.HandleFunc("POST /referral", deps.handleReferral)
	mux.HandleFunc("POST /intake/{id}/resolve", deps.requireSession(deps.handleResolveIntake))
	mux.HandleFunc("GET /intakes", deps.requireSession(deps.handleListIntakes))

	// Triage (rate-limited per client IP)
	mux.HandleFunc("POST /ai_triage",
		deps.rateLimited("triage", deps.TriageMaxHits, deps.TriageWindow, deps.handleTriage))

	// Events & analytics
	mux.HandleFunc("POST /event",
		deps.rateLimited("event", deps.EventMaxHits, deps.EventWindow, deps.handleRecordEvent))
	mux.HandleFunc("GET /analytics", deps.handleAnalytics)
	mux.HandleFunc("GET /digest.txt", deps.handleDigest)

	// Admin (shared-secret key in query string)
	mux.HandleFunc("POST /admin/upload_csv", deps.requireAdminKey(deps.handleUploadCSV))
	mux.HandleFunc("POST /admin/upload_json", deps.requireAdminKey(deps.handleUploadJSON))

	// Case-manager sessions & dashboard
	mux.HandleFunc("POST /login", deps.handleLogin)
	mux.HandleFunc("POST /logout", deps.handleLogout)
	mux.HandleFunc("GET /dashboard", deps.requireSession(deps.handleDashboard))

	// Demo profiles
	mux.HandleFunc("GET /profile/{name}", deps.handleGetProfile)
	mux.HandleFunc("PUT /profile/{name}", deps.handlePutProfile)

	return corsMiddleware(requestLogging(mux, deps.Logger))
}
