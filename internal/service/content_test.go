package service

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"nahl/internal/domain"
	"nahl/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentService(t *testing.T) (*ContentService, string) {
	t.Helper()
	root := t.TempDir()
	logger := slog.New(slog.DiscardHandler)
	return NewContentService(store.New(root, logger), logger), root
}

func seedFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts[:len(parts)-1]...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(parts[len(parts)-1]), 0o644))
}

func TestListPagesSummaries(t *testing.T) {
	svc, root := newContentService(t)
	seedFile(t, root, "en", "about.json", `{"title": "About", "body": "long text"}`)
	seedFile(t, root, "en", "home.json", `{"title": "Home"}`)
	seedFile(t, root, "en", "bad.json", `{"title":`)

	pages, err := svc.ListPages("en")
	require.NoError(t, err)
	require.Len(t, pages, 2)

	bySlug := map[string]PageSummary{}
	for _, p := range pages {
		bySlug[p.Slug] = p
	}
	assert.Equal(t, "About", bySlug["about"].Title)
	assert.Equal(t, "Home", bySlug["home"].Title)
}

func TestListProjectsSummaries(t *testing.T) {
	svc, root := newContentService(t)
	seedFile(t, root, "en", "projects", "site.json",
		`{"title": "Site", "summary": "A site", "images": ["/uploads/a.png", "/uploads/b.png"]}`)
	seedFile(t, root, "en", "projects", "bare.json", `{"title": "Bare"}`)

	projects, err := svc.ListProjects("en")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	bySlug := map[string]ProjectSummary{}
	for _, p := range projects {
		bySlug[p.Slug] = p
	}
	assert.Equal(t, "A site", bySlug["site"].Summary)
	assert.Equal(t, []string{"/uploads/a.png", "/uploads/b.png"}, bySlug["site"].Images)
	assert.Empty(t, bySlug["bare"].Images)
}

func TestCreatePage(t *testing.T) {
	svc, _ := newContentService(t)

	err := svc.CreatePage("en", store.Document{
		"slug":  "about",
		"title": "About",
	})
	require.NoError(t, err)

	doc, err := svc.GetPage("en", "about")
	require.NoError(t, err)
	assert.Equal(t, "About", doc["title"])
	// The slug lives in the filename, not the document.
	assert.NotContains(t, doc, "slug")
}

func TestCreatePageValidation(t *testing.T) {
	svc, _ := newContentService(t)

	tests := []struct {
		name string
		body store.Document
	}{
		{name: "missing slug", body: store.Document{"title": "x"}},
		{name: "empty slug", body: store.Document{"slug": ""}},
		{name: "non-string slug", body: store.Document{"slug": 42}},
		{name: "slug with slash", body: store.Document{"slug": "a/b"}},
		{name: "slug with dots", body: store.Document{"slug": ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreatePage("en", tt.body)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreatePageConflict(t *testing.T) {
	svc, _ := newContentService(t)

	require.NoError(t, svc.CreatePage("en", store.Document{"slug": "about", "title": "v1"}))

	err := svc.CreatePage("en", store.Document{"slug": "about", "title": "v2"})
	require.ErrorIs(t, err, domain.ErrConflict)

	doc, err := svc.GetPage("en", "about")
	require.NoError(t, err)
	assert.Equal(t, "v1", doc["title"])
}
