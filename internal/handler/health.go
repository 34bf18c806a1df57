package handler

import (
	"net/http"
	"time"

	"nahl/internal/httputil"
)

// Health is a liveness probe.
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
