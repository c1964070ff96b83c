package api

import (
	"net/http"
	"strings"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/triage"
)

// handleTriage implements POST /ai_triage. The rate-limit wrapper has
// already admitted this request.
func (d *Dependencies) handleTriage(w http.ResponseWriter, r *http.Request) {
	var req TriageRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "message is required"})
		return
	}

	result := triage.Classify(msg)
	d.Events.Record(eventlog.TypeTriage, result.Category, nil)

	writeJSON(w, http.StatusOK, TriageResponse{
		Input:          msg,
		Category:       result.Category,
		Recommendation: result.Recommendation,
	})
}
