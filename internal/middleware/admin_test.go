package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{name: "match", configured: "secret", sent: "secret", wantStatus: http.StatusOK},
		{name: "mismatch", configured: "secret", sent: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "missing header", configured: "secret", sent: "", wantStatus: http.StatusUnauthorized},
		{name: "empty token disables endpoint", configured: "", sent: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/pages", nil)
			if tt.sent != "" {
				req.Header.Set(AdminTokenHeader, tt.sent)
			}

			rec := httptest.NewRecorder()
			AdminToken(tt.configured)(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
