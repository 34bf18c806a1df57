package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"nahl/internal/domain"
)

// Kind selects a document family within a language directory.
type Kind string

const (
	// KindPage documents live directly under the language directory.
	KindPage Kind = "pages"
	// KindProject documents live under a projects/ subdirectory.
	KindProject Kind = "projects"
)

// Document is a parsed content file. Fields are free-form; the store never
// interprets them beyond JSON well-formedness.
type Document map[string]any

// Entry pairs a document with the slug it was stored under.
type Entry struct {
	Slug     string
	Document Document
}

// DocumentStore reads and writes one JSON file per document under a content
// root, keyed by (kind, language, slug). The filesystem is the sole source
// of truth; every call re-reads disk.
type DocumentStore struct {
	root   string
	logger *slog.Logger
}

// New creates a document store over the given content root.
func New(root string, logger *slog.Logger) *DocumentStore {
	return &DocumentStore{
		root:   root,
		logger: logger,
	}
}

// Get returns the document stored for (kind, lang, slug). A file that is
// absent, unreadable, or not valid JSON yields a NotFoundError.
func (s *DocumentStore) Get(kind Kind, lang, slug string) (Document, error) {
	if err := validateKey(lang, slug); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(kind, lang, slug))
	if err != nil {
		return nil, &domain.NotFoundError{
			Message: fmt.Sprintf("%s '%s' not found", kindNoun(kind), slug),
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Debug("unreadable document",
			"kind", string(kind),
			"lang", lang,
			"slug", slug,
			"error", err,
		)
		return nil, &domain.NotFoundError{
			Message: fmt.Sprintf("%s '%s' not found", kindNoun(kind), slug),
		}
	}

	return doc, nil
}

// List returns every parseable .json document directly under the (kind, lang)
// directory, in directory enumeration order. Files that fail to parse are
// skipped. A missing directory yields an empty list.
func (s *DocumentStore) List(kind Kind, lang string) ([]Entry, error) {
	if err := validateSegment(lang); err != nil {
		return nil, err
	}

	dir := s.dir(kind, lang)
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("list %s/%s: %w", lang, kind, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if de.IsDir() || filepath.Ext(de.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			s.logger.Debug("skipping unreadable file", "file", de.Name(), "error", err)
			continue
		}

		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			s.logger.Debug("skipping corrupt document", "file", de.Name(), "error", err)
			continue
		}

		entries = append(entries, Entry{
			Slug:     strings.TrimSuffix(de.Name(), ".json"),
			Document: doc,
		})
	}

	return entries, nil
}

// Create writes doc as a new pretty-printed JSON file for (kind, lang, slug),
// creating parent directories as needed. An existing file yields a
// ConflictError and is never overwritten; O_EXCL serializes racing creators
// to a single winner.
func (s *DocumentStore) Create(kind Kind, lang, slug string, doc Document) error {
	if err := validateKey(lang, slug); err != nil {
		return err
	}

	dir := s.dir(kind, lang)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	path := s.path(kind, lang, slug)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &domain.ConflictError{
				Message: fmt.Sprintf("%s '%s' already exists", kindNoun(kind), slug),
				Slug:    slug,
			}
		}
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (s *DocumentStore) dir(kind Kind, lang string) string {
	if kind == KindProject {
		return filepath.Join(s.root, lang, "projects")
	}
	return filepath.Join(s.root, lang)
}

func (s *DocumentStore) path(kind Kind, lang, slug string) string {
	return filepath.Join(s.dir(kind, lang), slug+".json")
}

func kindNoun(kind Kind) string {
	if kind == KindProject {
		return "project"
	}
	return "page"
}

// validateKey rejects languages and slugs that could escape the content root.
func validateKey(lang, slug string) error {
	if err := validateSegment(lang); err != nil {
		return err
	}
	return validateSegment(slug)
}

func validateSegment(seg string) error {
	if seg == "" {
		return &domain.ValidationError{Message: "missing path segment"}
	}
	if seg == "." || seg == ".." || strings.ContainsAny(seg, `/\`) {
		return &domain.ValidationError{Message: fmt.Sprintf("invalid path segment %q", seg)}
	}
	return nil
}
