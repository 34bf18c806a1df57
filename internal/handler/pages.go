package handler

import (
	"log/slog"
	"net/http"

	"nahl/internal/httputil"
	"nahl/internal/service"
	"nahl/internal/store"
)

// PagesHandler serves page documents.
type PagesHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(content *service.ContentService, logger *slog.Logger) *PagesHandler {
	return &PagesHandler{
		content: content,
		logger:  logger,
	}
}

// List returns page summaries for a language.
// GET /api/pages?lang=
func (h *PagesHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.content.ListPages(langParam(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, summaries)
}

// Get returns one page document.
// GET /api/pages/{slug}?lang=
func (h *PagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.content.GetPage(langParam(r), r.PathValue("slug"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// Create stores a new page document. Routes to this handler are wrapped in
// the admin-token gate.
// POST /api/pages?lang=
func (h *PagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body store.Document
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lang := langParam(r)
	if err := h.content.CreatePage(lang, body); err != nil {
		respondError(w, h.logger, err)
		return
	}

	slug, _ := body["slug"].(string)
	httputil.RespondJSON(w, http.StatusCreated, map[string]string{
		"status": "created",
		"slug":   slug,
	})
}
