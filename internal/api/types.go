package api

import (
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/catalog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/intake"
)

// ErrorResp is the uniform JSON error body.
type ErrorResp struct {
	Detail string `json:"detail"`
}

// --- GET /services ---

// ServiceListResp wraps a search result.
type ServiceListResp struct {
	Items  []catalog.ServiceRecord `json:"items"`
	Count  int                     `json:"count"`
	Source string                  `json:"source"`
}

// --- POST /ai_triage ---

// TriageRequest is the JSON body for POST /ai_triage.
type TriageRequest struct {
	Message string `json:"message"`
}

// TriageResponse echoes the input alongside the verdict.
type TriageResponse struct {
	Input          string `json:"input"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
}

// --- Intake ---

// IntakeResp acknowledges a form submission or referral.
type IntakeResp struct {
	Status string `json:"status"`
	ID     int    `json:"id"`
}

// ReferralRequest is the JSON body for POST /referral.
type ReferralRequest struct {
	Name       string `json:"name"`
	Need       string `json:"need"`
	Details    string `json:"details,omitempty"`
	ReferredBy string `json:"referred_by,omitempty"`
}

// --- POST /event ---

// EventRequest is the JSON body for POST /event.
type EventRequest struct {
	Type string            `json:"type"`
	Name string            `json:"name"`
	Meta map[string]string `json:"meta,omitempty"`
}

// EventResp reports whether the event passed the allow-list.
type EventResp struct {
	OK     bool `json:"ok"`
	Stored bool `json:"stored"`
}

// --- GET /analytics ---

// AnalyticsResp is the aggregate view over the event and intake stores.
type AnalyticsResp struct {
	TotalEvents      int                     `json:"total_events"`
	CountsByType     map[string]int          `json:"counts_by_type"`
	TopClickSubjects []eventlog.SubjectCount `json:"top_click_subjects"`
	TotalIntakes     int                     `json:"total_intakes"`
	TotalReports     int                     `json:"total_reports"`
	CatalogSource    string                  `json:"catalog_source"`
	WindowHours      int                     `json:"window_hours,omitempty"`
}

// --- Admin upload ---

// UploadResp is the per-load import report returned to the admin.
type UploadResp struct {
	Status string          `json:"status"`
	Report *catalog.Report `json:"report"`
}

// --- Sessions / dashboard ---

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DashboardResp is the case-manager view: analytics plus open intakes.
type DashboardResp struct {
	User      string          `json:"user"`
	Analytics AnalyticsResp   `json:"analytics"`
	Intakes   []intake.Record `json:"intakes"`
}
