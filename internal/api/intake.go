package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
	"go.uber.org/zap"
)

// handleSubmitForm implements POST /submit_form (form-encoded intake).
// Missing fields are substituted with empty strings, never rejected.
func (d *Dependencies) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid form body"})
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	need := strings.TrimSpace(r.PostFormValue("need"))
	details := strings.TrimSpace(r.PostFormValue("details"))

	rec := d.Intakes.Add(name, need, details)
	d.Events.Record(eventlog.TypeIntake, need, nil)
	d.Logger.Info("intake submitted",
		zap.Int("id", rec.ID),
		zap.String("need", need),
	)

	writeJSON(w, http.StatusOK, IntakeResp{Status: "success", ID: rec.ID})
}

// handleReferral implements POST /referral: a JSON intake filed on
// someone's behalf.
func (d *Dependencies) handleReferral(w http.ResponseWriter, r *http.Request) {
	var req ReferralRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}

	details := req.Details
	if req.ReferredBy != "" {
		details = "referred by " + req.ReferredBy + ": " + details
	}
	rec := d.Intakes.Add(req.Name, req.Need, details)
	d.Events.Record(eventlog.TypeIntake, req.Need, map[string]string{"referral": "true"})

	writeJSON(w, http.StatusOK, IntakeResp{Status: "success", ID: rec.ID})
}

// handleResolveIntake implements POST /intake/{id}/resolve (session only).
func (d *Dependencies) handleResolveIntake(w http.ResponseWriter, r *http.Request, user string) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: "Intake not found"})
		return
	}
	rec, ok := d.Intakes.Resolve(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: "Intake not found"})
		return
	}
	d.Logger.Info("intake resolved",
		zap.Int("id", rec.ID),
		zap.String("by", user),
	)
	writeJSON(w, http.StatusOK, rec)
}

// handleListIntakes implements GET /intakes (session only).
func (d *Dependencies) handleListIntakes(w http.ResponseWriter, _ *http.Request, _ string) {
	writeJSON(w, http.StatusOK, d.Intakes.List())
}
