package service

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nahl/internal/config"
	"nahl/internal/domain"
	"nahl/internal/uploads"

	"github.com/disintegration/imaging"
)

// thumbMaxDim bounds thumbnail dimensions; aspect ratio is preserved and
// images already inside the box are left at their original size.
const thumbMaxDim = 1200

// UploadResult reports where an upload landed. ThumbnailURL is nil when no
// thumbnail was produced.
type UploadResult struct {
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// UploadService validates and stores image uploads and derives best-effort
// thumbnails for formats the registry marks decodable.
type UploadService struct {
	dir      string
	registry *uploads.Registry
	allowed  map[string]bool
	maxBytes int64
	maxMB    int64
	logger   *slog.Logger
}

// NewUploadService creates an upload service. The accepted extension set is
// the intersection of the configured allow-list and the registry.
func NewUploadService(cfg *config.Config, registry *uploads.Registry, logger *slog.Logger) *UploadService {
	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if _, ok := registry.Lookup(ext); ok {
			allowed[ext] = true
		}
	}

	return &UploadService{
		dir:      cfg.UploadsDir,
		registry: registry,
		allowed:  allowed,
		maxBytes: cfg.MaxUploadBytes(),
		maxMB:    cfg.MaxUploadMB,
		logger:   logger,
	}
}

// MaxBytes returns the configured upload size limit in bytes.
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Store validates the file and writes it under the uploads directory as
// {UTC-timestamp}_{sanitized-name}. Nothing is written when validation
// fails. Thumbnailing failures are swallowed; the upload still succeeds.
func (s *UploadService) Store(filename string, size int64, r io.Reader) (*UploadResult, error) {
	if filename == "" {
		return nil, &domain.ValidationError{Message: "no file provided"}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || !s.allowed[ext] {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("file type %q is not allowed", ext),
		}
	}

	if size > s.maxBytes {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("file exceeds the %d MB limit", s.maxMB),
		}
	}

	sanitized := SanitizeFilename(filename)
	if sanitized == "" {
		return nil, &domain.ValidationError{Message: "invalid filename"}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	name := time.Now().UTC().Format("20060102150405") + "_" + sanitized
	path := filepath.Join(s.dir, name)

	if err := s.write(path, r); err != nil {
		return nil, err
	}

	result := &UploadResult{URL: "/uploads/" + name}

	if t, ok := s.registry.Lookup(ext); ok && t.Thumbnail {
		thumbName := "thumb_" + name
		if err := s.thumbnail(path, filepath.Join(s.dir, thumbName)); err != nil {
			s.logger.Debug("thumbnail skipped", "file", name, "error", err)
		} else {
			thumbURL := "/uploads/" + thumbName
			result.ThumbnailURL = &thumbURL
		}
	}

	s.logger.Info("upload stored",
		"file", name,
		"thumbnail", result.ThumbnailURL != nil,
	)

	return result, nil
}

// write streams the upload to disk, enforcing the size limit against the
// actual bytes in case the declared size was wrong.
func (s *UploadService) write(path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	case n > s.maxBytes:
		os.Remove(path)
		return &domain.ValidationError{
			Message: fmt.Sprintf("file exceeds the %d MB limit", s.maxMB),
		}
	case closeErr != nil:
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, closeErr)
	}

	return nil
}

// thumbnail writes an aspect-preserving copy of src bounded to
// thumbMaxDim on both axes.
func (s *UploadService) thumbnail(src, dst string) error {
	img, err := imaging.Open(src)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	if bounds.Dx() > thumbMaxDim || bounds.Dy() > thumbMaxDim {
		img = imaging.Fit(img, thumbMaxDim, thumbMaxDim, imaging.Lanczos)
	}

	return imaging.Save(img, dst)
}

// SanitizeFilename strips directory components and collapses every character
// outside [A-Za-z0-9._-] to '_'. Leading dots are dropped so the result can
// never be hidden or a dot-path. An empty return means the name is unusable.
func SanitizeFilename(filename string) string {
	// Take the last path component for both separator styles.
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}

	var b strings.Builder
	b.Grow(len(filename))
	for _, c := range filename {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}

	name := strings.TrimLeft(b.String(), ".")
	if strings.Trim(name, "._-") == "" {
		return ""
	}
	return name
}
