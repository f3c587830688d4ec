// Package site renders the gallery as an HTML page, either served on
// demand or written out as a static site.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html.tmpl").
		Funcs(sprig.HtmlFuncMap()).
		ParseFS(templateFS, "templates/index.html.tmpl"),
)

// TagButton is one entry of the tag filter row
type TagButton struct {
	Name   string
	Active bool
	Href   string
}

// Page is the data behind one rendered page
type Page struct {
	Title      string
	Theme      models.Theme
	Glyph      string
	ToggleHref string
	Search     string

	// SearchAction is the form target; empty disables the search box
	SearchAction string
	Tags         []TagButton
	Projects     []models.Project
	AllProjects  []models.Project
	Placeholder  string
	LoadError    string
	NoResults    bool
}

// Links decides where the page's controls point
type Links interface {
	// Tag is the target of the button for tag given the current filter
	Tag(state models.FilterState, tag string) string
	// ThemeToggle is the target of the theme toggle; empty renders a
	// plain glyph
	ThemeToggle() string
	// SearchAction is the search form target
	SearchAction() string
}

// NewPage projects a session onto a page
func NewPage(title string, s *gallery.Session, links Links) Page {
	theme := s.Theme()
	page := Page{
		Title:        title,
		Theme:        theme,
		Glyph:        theme.Glyph(),
		ToggleHref:   links.ThemeToggle(),
		Search:       s.Filter().Search,
		SearchAction: links.SearchAction(),
		Projects:     s.Results(),
		AllProjects:  s.Projects(),
		Placeholder:  models.ImagePlaceholder,
		NoResults:    s.NoResults(),
	}

	if s.LoadErr() != nil {
		page.LoadError = gallery.LoadErrorMessage
		return page
	}

	state := s.Filter()
	for _, tag := range s.Catalog().Tags() {
		page.Tags = append(page.Tags, TagButton{
			Name:   tag,
			Active: state.IsActive(tag),
			Href:   links.Tag(state, tag),
		})
	}
	return page
}

// Render writes page as HTML
func Render(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
