package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// handleLogin implements POST /login. Accepts either a JSON body or a
// classic form post so the demo dashboard page keeps working.
func (d *Dependencies) handleLogin(w http.ResponseWriter, r *http.Request) {
	var username, password string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req LoginRequest
		if err := readJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
			return
		}
		username, password = req.Username, req.Password
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid form body"})
			return
		}
		username = r.PostFormValue("username")
		password = r.PostFormValue("password")
	}

	token, ok := d.Sessions.Login(username, password)
	if !ok {
		d.Logger.Warn("login rejected", zap.String("username", username))
		writeJSON(w, http.StatusUnauthorized, ErrorResp{Detail: "Invalid credentials"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_in", "user": username})
}

// handleLogout implements POST /logout. Always succeeds.
func (d *Dependencies) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		d.Sessions.Logout(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// handleDashboard implements GET /dashboard (session only).
func (d *Dependencies) handleDashboard(w http.ResponseWriter, _ *http.Request, user string) {
	writeJSON(w, http.StatusOK, DashboardResp{
		User:      user,
		Analytics: d.analytics(0),
		Intakes:   d.Intakes.List(),
	})
}
