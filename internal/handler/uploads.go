package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"nahl/internal/httputil"
	"nahl/internal/service"
)

// multipartOverhead is slack on top of the file size limit for the other
// parts and boundaries of the multipart body.
const multipartOverhead = 1 << 20

// UploadsHandler accepts image uploads and serves stored files back.
type UploadsHandler struct {
	uploads *service.UploadService
	dir     string
	logger  *slog.Logger
}

// NewUploadsHandler creates a new uploads handler serving files from dir.
func NewUploadsHandler(uploads *service.UploadService, dir string, logger *slog.Logger) *UploadsHandler {
	return &UploadsHandler{
		uploads: uploads,
		dir:     dir,
		logger:  logger,
	}
}

// Upload stores a single image from the "file" multipart part.
// POST /api/uploads
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxBytes()+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	result, err := h.uploads.Store(header.Filename, header.Size, file)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}

// Serve streams a stored upload or thumbnail. The requested path must
// resolve inside the uploads directory; anything that escapes it is treated
// as not found.
// GET /uploads/{path...}
func (h *UploadsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")

	full := filepath.Join(h.dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(h.dir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		httputil.RespondError(w, http.StatusNotFound, "file not found")
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			h.logger.Warn("upload stat failed", "path", name, "error", err)
		}
		httputil.RespondError(w, http.StatusNotFound, "file not found")
		return
	}

	http.ServeFile(w, r, full)
}
