package middleware

import (
	"crypto/subtle"
	"net/http"

	"nahl/internal/httputil"
)

// AdminTokenHeader carries the shared admin secret for content-creation
// endpoints.
const AdminTokenHeader = "X-Admin-Token"

// AdminToken gates a handler behind a shared-secret header. Comparison is
// constant-time. An empty configured token authorizes nothing, which
// disables the gated endpoints entirely.
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
