package site

import (
	"net/url"

	"github.com/jakoblorz/go-gallery/internal/models"
)

// QueryLinks points controls at the served page, carrying the filter in
// the query string.
type QueryLinks struct {
	// Path is the page path, "/" when empty
	Path string
	// Current is the request URI the theme toggle returns to
	Current string
}

func (l QueryLinks) path() string {
	if l.Path == "" {
		return "/"
	}
	return l.Path
}

// Tag links to the same page with tag toggled
func (l QueryLinks) Tag(state models.FilterState, tag string) string {
	next := models.NewFilterState()
	next.Search = state.Search
	for _, t := range state.SortedActiveTags() {
		next.ToggleTag(t)
	}
	next.ToggleTag(tag)

	return l.path() + EncodeQuery(next)
}

// ThemeToggle links to the toggle endpoint
func (l QueryLinks) ThemeToggle() string {
	q := url.Values{}
	if l.Current != "" {
		q.Set("return", l.Current)
	}
	if len(q) == 0 {
		return ToggleThemePath
	}
	return ToggleThemePath + "?" + q.Encode()
}

// SearchAction submits to the page itself
func (l QueryLinks) SearchAction() string {
	return l.path()
}

// ToggleThemePath is the served theme toggle endpoint
const ToggleThemePath = "/theme/toggle"

// EncodeQuery renders a filter as "?q=..&tag=..", or "" for the empty
// filter. Tags are sorted.
func EncodeQuery(state models.FilterState) string {
	q := url.Values{}
	if state.Search != "" {
		q.Set("q", state.Search)
	}
	for _, tag := range state.SortedActiveTags() {
		q.Add("tag", tag)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// DecodeQuery reads a filter from query values
func DecodeQuery(q url.Values) models.FilterState {
	state := models.NewFilterState()
	state.Search = q.Get("q")
	for _, tag := range q["tag"] {
		if tag == "" || state.IsActive(tag) {
			continue
		}
		state.ToggleTag(tag)
	}
	return state
}

// staticLinks points tag buttons at prerendered per-tag pages. Only one
// tag can be active on a static page.
type staticLinks struct {
	slugs map[string]string
	// prefix is the path from the current page to the site root
	prefix string
}

func (l staticLinks) Tag(state models.FilterState, tag string) string {
	if state.IsActive(tag) {
		return l.prefix + "index.html"
	}
	return l.prefix + "tags/" + l.slugs[tag] + ".html"
}

func (l staticLinks) ThemeToggle() string  { return "" }
func (l staticLinks) SearchAction() string { return "" }
