package handler

import (
	"net/http"

	"nahl/internal/middleware"
)

// Routes wires the HTTP surface onto a ServeMux. Only page creation sits
// behind the admin gate; everything else is public.
func Routes(pages *PagesHandler, projects *ProjectsHandler, contact *ContactHandler, uploads *UploadsHandler, adminToken string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", Health)

	mux.HandleFunc("GET /api/pages", pages.List)
	mux.HandleFunc("GET /api/pages/{slug}", pages.Get)
	mux.Handle("POST /api/pages",
		middleware.AdminToken(adminToken)(http.HandlerFunc(pages.Create)))

	mux.HandleFunc("GET /api/projects", projects.List)
	mux.HandleFunc("GET /api/projects/{slug}", projects.Get)

	mux.HandleFunc("POST /api/contact", contact.Submit)

	mux.HandleFunc("POST /api/uploads", uploads.Upload)
	mux.HandleFunc("GET /uploads/{path...}", uploads.Serve)

	return mux
}
