package handler

import (
	"crypto/subtle"
	"net/http"

	"la-carta/internal/config"
)

// requireRole gates a handler behind a role's shared-secret pair. A role
// with no configured user is treated as open, which is how the optional
// cook role stays disabled by default.
func requireRole(creds config.Credentials) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if creds.User == "" {
				next(w, r)
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok || !equal(user, creds.User) || !equal(pass, creds.Password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="la-carta"`)
				respondError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
				return
			}
			next(w, r)
		}
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
