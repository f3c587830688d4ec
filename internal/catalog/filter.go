// Package catalog holds the pure functions behind the gallery: the
// filter engine and the tag catalog builder.
package catalog

import (
	"strings"

	"github.com/jakoblorz/go-gallery/internal/models"
)

// Filter returns the projects that match both the search text and the
// active tag set, in their original order. The input slice is never
// modified.
func Filter(projects []models.Project, search string, activeTags map[string]struct{}) []models.Project {
	needle := strings.ToLower(search)

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if matchesSearch(p, needle) && MatchesTags(p, activeTags) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterState is Filter applied to a models.FilterState.
func FilterState(projects []models.Project, state models.FilterState) []models.Project {
	return Filter(projects, state.Search, state.ActiveTags())
}

// MatchesSearch reports whether search is a case-insensitive substring of
// the title or the description. Empty search matches everything.
func MatchesSearch(p models.Project, search string) bool {
	return matchesSearch(p, strings.ToLower(search))
}

func matchesSearch(p models.Project, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// MatchesTags reports whether p carries at least one active tag.
// An empty active set matches every project.
func MatchesTags(p models.Project, activeTags map[string]struct{}) bool {
	if len(activeTags) == 0 {
		return true
	}
	for _, tag := range p.Tags {
		if _, ok := activeTags[tag]; ok {
			return true
		}
	}
	return false
}
