package api

import (
	"net/http"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/profile"
)

// handleGetProfile implements GET /profile/{name}.
func (d *Dependencies) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	p, ok := d.Profiles.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: "Profile not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handlePutProfile implements PUT /profile/{name}: create or replace.
// The path segment wins over any name in the body.
func (d *Dependencies) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := readJSON(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	p.Name = r.PathValue("name")
	if p.Name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "name is required"})
		return
	}
	writeJSON(w, http.StatusOK, d.Profiles.Put(p))
}
