package api

import (
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// sessionCookie is the cookie carrying the case-manager session token.
const sessionCookie = "hv_session"

// --- JSON helpers ---

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// readJSON decodes a JSON request body into the given pointer.
func readJSON(r *http.Request, v interface{}) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}

// clientIP is the rate-limit key for a request: the first X-Forwarded-For
// hop when behind a proxy, otherwise the remote address host.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// --- Rate limiting ---

// rateLimited wraps a handler with a sliding-window check for one scope.
// Throttled requests get a distinct 429 body and are never passed through.
func (d *Dependencies) rateLimited(scope string, maxHits int, window time.Duration, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Limiter.Allow(scope, clientIP(r), maxHits, window) {
			writeJSON(w, http.StatusTooManyRequests, ErrorResp{Detail: "Too many requests; slow down and try again shortly"})
			return
		}
		next(w, r)
	}
}

// --- Session auth ---

// requireSession gates a handler behind a valid case-manager session and
// passes the username through.
func (d *Dependencies) requireSession(next func(w http.ResponseWriter, r *http.Request, user string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResp{Detail: "Not logged in"})
			return
		}
		user, ok := d.Sessions.Lookup(cookie.Value)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResp{Detail: "Session expired; log in again"})
			return
		}
		next(w, r, user)
	}
}

// --- Admin key gate ---

// requireAdminKey gates a handler behind the shared-secret ?key= query
// parameter. With no key configured the endpoints are disabled outright.
func (d *Dependencies) requireAdminKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.AdminKey == "" {
			writeJSON(w, http.StatusForbidden, ErrorResp{Detail: "Admin endpoints are disabled"})
			return
		}
		key := r.URL.Query().Get("key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(d.AdminKey)) != 1 {
			d.Logger.Warn("admin key rejected", zap.String("client", clientIP(r)))
			writeJSON(w, http.StatusForbidden, ErrorResp{Detail: "Invalid admin key"})
			return
		}
		next(w, r)
	}
}

// --- Request logging ---

func requestLogging(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// --- CORS ---

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
