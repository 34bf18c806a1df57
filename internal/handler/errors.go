package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"nahl/internal/domain"
	"nahl/internal/httputil"
)

// respondError maps service errors onto HTTP responses. Errors carrying
// their own status pass through; anything else is logged and hidden behind
// a generic 500.
func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	logger.Error("request failed", "error", err)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}

// langParam returns the lang query parameter, defaulting to English.
func langParam(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return "en"
}
