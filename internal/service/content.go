package service

import (
	"log/slog"
	"regexp"

	"nahl/internal/domain"
	"nahl/internal/store"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PageSummary is the listing shape for pages.
type PageSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// ProjectSummary is the listing shape for projects.
type ProjectSummary struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Images  []string `json:"images"`
}

// ContentService exposes page and project documents stored on disk.
type ContentService struct {
	store  *store.DocumentStore
	logger *slog.Logger
}

// NewContentService creates a new content service.
func NewContentService(st *store.DocumentStore, logger *slog.Logger) *ContentService {
	return &ContentService{
		store:  st,
		logger: logger,
	}
}

// GetPage returns the full page document for (lang, slug).
func (s *ContentService) GetPage(lang, slug string) (store.Document, error) {
	return s.store.Get(store.KindPage, lang, slug)
}

// GetProject returns the full project document for (lang, slug).
func (s *ContentService) GetProject(lang, slug string) (store.Document, error) {
	return s.store.Get(store.KindProject, lang, slug)
}

// ListPages returns a summary per page document under the language.
func (s *ContentService) ListPages(lang string) ([]PageSummary, error) {
	entries, err := s.store.List(store.KindPage, lang)
	if err != nil {
		return nil, err
	}

	summaries := make([]PageSummary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, PageSummary{
			Slug:  e.Slug,
			Title: stringField(e.Document, "title"),
		})
	}

	return summaries, nil
}

// ListProjects returns a summary per project document under the language.
func (s *ContentService) ListProjects(lang string) ([]ProjectSummary, error) {
	entries, err := s.store.List(store.KindProject, lang)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, ProjectSummary{
			Slug:    e.Slug,
			Title:   stringField(e.Document, "title"),
			Summary: stringField(e.Document, "summary"),
			Images:  stringsField(e.Document, "images"),
		})
	}

	return summaries, nil
}

// CreatePageRequest carries the slug for a new page; the remaining body
// fields travel separately and are stored verbatim.
type CreatePageRequest struct {
	Slug string
}

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// CreatePage stores body as a new page document under (lang, slug). The slug
// key itself is not persisted; it lives in the filename.
func (s *ContentService) CreatePage(lang string, body store.Document) error {
	slug, _ := body["slug"].(string)
	req := CreatePageRequest{Slug: slug}
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Slug,
			validation.Required.Error("slug is required"),
			validation.Match(slugPattern).Error("slug may only contain letters, digits, '-' and '_'"),
		),
	); err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	doc := make(store.Document, len(body))
	for k, v := range body {
		if k == "slug" {
			continue
		}
		doc[k] = v
	}

	if err := s.store.Create(store.KindPage, lang, slug, doc); err != nil {
		return err
	}

	s.logger.Info("page created",
		"lang", lang,
		"slug", slug,
	)

	return nil
}

func stringField(doc store.Document, key string) string {
	v, _ := doc[key].(string)
	return v
}

func stringsField(doc store.Document, key string) []string {
	raw, _ := doc[key].([]any)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
