package catalog

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/stretchr/testify/require"
)

func tagSet(tags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func ids(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func petProjects() []models.Project {
	return []models.Project{
		{ID: "cat", Title: "Cat Poster", Description: "Screen printed", Link: "#", Tags: []string{"print"}},
		{ID: "dog", Title: "Dog Logo", Description: "Vector mark", Link: "#", Tags: []string{"digital"}},
	}
}

func TestFilter_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		search string
		tags   map[string]struct{}
		want   []string
	}{
		{name: "search only", search: "dog", tags: tagSet(), want: []string{"dog"}},
		{name: "search is case insensitive", search: "DOG", tags: nil, want: []string{"dog"}},
		{name: "search matches description", search: "vector", tags: nil, want: []string{"dog"}},
		{name: "single tag", search: "", tags: tagSet("print"), want: []string{"cat"}},
		{name: "tags are OR-ed", search: "", tags: tagSet("print", "digital"), want: []string{"cat", "dog"}},
		{name: "search AND tags", search: "dog", tags: tagSet("print"), want: []string{}},
		{name: "unknown tag", search: "", tags: tagSet("3d"), want: []string{}},
		{name: "no filter shows all", search: "", tags: tagSet(), want: []string{"cat", "dog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(petProjects(), tt.search, tt.tags)
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, "anything", tagSet("print"))
	require.NotNil(t, got)
	require.Empty(t, got)

	got = Filter([]models.Project{}, "", nil)
	require.Empty(t, got)
}

func TestFilter_UntaggedProjectsNeverMatchActiveTags(t *testing.T) {
	projects := []models.Project{
		{ID: "bare", Title: "Bare", Link: "#"},
		{ID: "tagged", Title: "Tagged", Link: "#", Tags: []string{"print"}},
	}

	require.Equal(t, []string{"bare", "tagged"}, ids(Filter(projects, "", nil)))
	require.Equal(t, []string{"tagged"}, ids(Filter(projects, "", tagSet("print"))))
	require.Empty(t, Filter(projects, "", tagSet("digital")))
}

func TestFilter_DoesNotTouchInput(t *testing.T) {
	projects := petProjects()
	before := ids(projects)

	got := Filter(projects, "cat", nil)
	require.Len(t, got, 1)
	got[0].Title = "changed"

	require.Equal(t, before, ids(projects))
	if diff := cmp.Diff(petProjects(), projects); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestFilterState(t *testing.T) {
	state := models.NewFilterState()
	state.ToggleTag("digital")

	require.Equal(t, []string{"dog"}, ids(FilterState(petProjects(), state)))
}

var (
	propertyTags  = []string{"print", "digital", "3d", "branding", "ux"}
	propertyWords = []string{"poster", "logo", "Cat", "dog", "Mural", "site", "zine"}
)

func randomProjects(r *rand.Rand, n int) []models.Project {
	projects := make([]models.Project, 0, n)
	for i := 0; i < n; i++ {
		var tags []string
		for _, tag := range propertyTags {
			if r.Intn(3) == 0 {
				tags = append(tags, tag)
			}
		}
		projects = append(projects, models.Project{
			ID:          fmt.Sprintf("p%d", i),
			Title:       propertyWords[r.Intn(len(propertyWords))] + " " + propertyWords[r.Intn(len(propertyWords))],
			Description: propertyWords[r.Intn(len(propertyWords))],
			Link:        "#",
			Tags:        tags,
		})
	}
	return projects
}

func randomTags(r *rand.Rand) map[string]struct{} {
	set := tagSet()
	for _, tag := range propertyTags {
		if r.Intn(4) == 0 {
			set[tag] = struct{}{}
		}
	}
	return set
}

func TestFilter_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		projects := randomProjects(r, r.Intn(12))
		search := ""
		if r.Intn(2) == 0 {
			search = propertyWords[r.Intn(len(propertyWords))][:2]
		}
		active := randomTags(r)

		got := Filter(projects, search, active)

		// identity on an empty filter
		require.Equal(t, projects, append([]models.Project{}, Filter(projects, "", nil)...))

		// soundness and completeness, order preserved
		kept := make(map[string]bool, len(got))
		for _, p := range got {
			kept[p.ID] = true
			require.True(t, MatchesSearch(p, search))
			require.True(t, MatchesTags(p, active))
		}
		var expected []string
		for _, p := range projects {
			matches := MatchesSearch(p, search) && MatchesTags(p, active)
			require.Equal(t, matches, kept[p.ID], "round %d project %s", round, p.ID)
			if matches {
				expected = append(expected, p.ID)
			}
		}
		if expected == nil {
			expected = []string{}
		}
		require.Equal(t, expected, ids(got))

		// idempotence
		require.Equal(t, got, Filter(got, search, active))
		require.Equal(t, got, Filter(projects, search, active))
	}
}

func TestMatchesTags_Monotonic(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 100; round++ {
		projects := randomProjects(r, 10)
		active := randomTags(r)
		if len(active) == 0 {
			active["print"] = struct{}{}
		}

		larger := tagSet()
		for tag := range active {
			larger[tag] = struct{}{}
		}
		larger[propertyTags[r.Intn(len(propertyTags))]] = struct{}{}

		for _, p := range projects {
			if MatchesTags(p, active) {
				require.True(t, MatchesTags(p, larger), "enlarging the tag set must not drop %s", p.ID)
			}
		}
	}
}

func TestMatchesTags_FirstTagNarrowsFromAll(t *testing.T) {
	projects := petProjects()

	// empty set matches everything
	for _, p := range projects {
		require.True(t, MatchesTags(p, tagSet()))
	}

	// the first selected tag is the one transition that can shrink the result
	require.Len(t, Filter(projects, "", tagSet()), 2)
	require.Len(t, Filter(projects, "", tagSet("print")), 1)
}
