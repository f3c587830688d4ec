package catalog

import (
	"testing"

	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBuildTagCatalog_FirstSeenOrder(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Tags: []string{"print", "poster"}},
		{ID: "b", Tags: []string{"digital", "print"}},
		{ID: "c"},
		{ID: "d", Tags: []string{"branding", "digital"}},
	}

	c := BuildTagCatalog(projects, OrderFirstSeen)
	require.Equal(t, []string{"print", "poster", "digital", "branding"}, c.Tags())
	require.Equal(t, 4, c.Len())
	require.Equal(t, "digital", c.At(2))
	require.True(t, c.Contains("branding"))
	require.False(t, c.Contains("ux"))
}

func TestBuildTagCatalog_AlphaOrder(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Tags: []string{"print", "poster"}},
		{ID: "b", Tags: []string{"digital", "print"}},
	}

	c := BuildTagCatalog(projects, OrderAlpha)
	require.Equal(t, []string{"digital", "poster", "print"}, c.Tags())
	require.True(t, c.Contains("print"))
}

func TestBuildTagCatalog_UnionWithoutDuplicates(t *testing.T) {
	projects := randomProjectsForCatalog()

	c := BuildTagCatalog(projects, OrderFirstSeen)

	union := make(map[string]bool)
	for _, p := range projects {
		for _, tag := range p.Tags {
			union[tag] = true
		}
	}

	seen := make(map[string]bool)
	for _, tag := range c.Tags() {
		require.False(t, seen[tag], "duplicate tag %s", tag)
		seen[tag] = true
	}
	require.Equal(t, union, seen)
}

func TestBuildTagCatalog_Empty(t *testing.T) {
	c := BuildTagCatalog(nil, OrderFirstSeen)
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Tags())
}

func TestTagCatalog_TagsReturnsCopy(t *testing.T) {
	c := BuildTagCatalog([]models.Project{{ID: "a", Tags: []string{"print"}}}, OrderFirstSeen)
	tags := c.Tags()
	tags[0] = "changed"
	require.Equal(t, []string{"print"}, c.Tags())
}

func TestParseTagOrder(t *testing.T) {
	o, err := ParseTagOrder("")
	require.NoError(t, err)
	require.Equal(t, OrderFirstSeen, o)

	o, err = ParseTagOrder("alpha")
	require.NoError(t, err)
	require.Equal(t, OrderAlpha, o)

	_, err = ParseTagOrder("random")
	require.Error(t, err)
}

func randomProjectsForCatalog() []models.Project {
	return []models.Project{
		{ID: "1", Tags: []string{"ux", "print", "ux"}},
		{ID: "2", Tags: []string{"3d"}},
		{ID: "3", Tags: []string{"print", "branding"}},
		{ID: "4"},
	}
}
