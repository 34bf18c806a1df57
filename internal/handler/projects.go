package handler

import (
	"log/slog"
	"net/http"

	"nahl/internal/httputil"
	"nahl/internal/service"
)

// ProjectsHandler serves project documents.
type ProjectsHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(content *service.ContentService, logger *slog.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		content: content,
		logger:  logger,
	}
}

// List returns project summaries for a language.
// GET /api/projects?lang=
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.content.ListProjects(langParam(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, summaries)
}

// Get returns one project document.
// GET /api/projects/{slug}?lang=
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.content.GetProject(langParam(r), r.PathValue("slug"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
