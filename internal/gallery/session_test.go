package gallery

import (
	"errors"
	"testing"

	"github.com/jakoblorz/go-gallery/internal/catalog"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/preferences"
	"github.com/jakoblorz/go-gallery/internal/source"
	"github.com/stretchr/testify/require"
)

func petProjects() []models.Project {
	return []models.Project{
		{ID: "cat", Title: "Cat Poster", Description: "Screen printed", Link: "#", Tags: []string{"print"}},
		{ID: "dog", Title: "Dog Logo", Description: "Vector mark", Link: "#", Tags: []string{"digital"}},
	}
}

func titles(projects []models.Project) []string {
	out := []string{}
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

func boundSession(t *testing.T, projects []models.Project) *Session {
	t.Helper()
	s := NewSession(preferences.NewMemoryStore())
	s.InitTheme()
	s.Bind(projects)
	return s
}

func TestSession_BindShowsEverything(t *testing.T) {
	s := boundSession(t, petProjects())

	require.True(t, s.Bound())
	require.Equal(t, []string{"Cat Poster", "Dog Logo"}, titles(s.Results()))
	require.Equal(t, []string{"print", "digital"}, s.Catalog().Tags())
	require.False(t, s.NoResults())
}

func TestSession_ScenarioA_Search(t *testing.T) {
	s := boundSession(t, petProjects())
	require.NoError(t, s.Dispatch(Search("dog")))
	require.Equal(t, []string{"Dog Logo"}, titles(s.Results()))
}

func TestSession_ScenarioB_SingleTag(t *testing.T) {
	s := boundSession(t, petProjects())
	require.NoError(t, s.Dispatch(ToggleTag("print")))
	require.True(t, s.IsActive("print"))
	require.Equal(t, []string{"Cat Poster"}, titles(s.Results()))
}

func TestSession_ScenarioC_TagsAreOred(t *testing.T) {
	s := boundSession(t, petProjects())
	require.NoError(t, s.Dispatch(ToggleTag("print")))
	require.NoError(t, s.Dispatch(ToggleTag("digital")))
	require.Equal(t, []string{"Cat Poster", "Dog Logo"}, titles(s.Results()))
}

func TestSession_ScenarioD_EmptyProjects(t *testing.T) {
	s := boundSession(t, nil)
	require.True(t, s.NoResults())

	require.NoError(t, s.Dispatch(Search("anything")))
	require.NoError(t, s.Dispatch(ToggleTag("print")))
	require.Empty(t, s.Results())
	require.True(t, s.NoResults())
}

func TestSession_ScenarioE_ToggleTwiceRestores(t *testing.T) {
	s := boundSession(t, petProjects())
	require.NoError(t, s.Dispatch(Search("o")))
	require.NoError(t, s.Dispatch(ToggleTag("digital")))

	beforeTags := s.Filter().SortedActiveTags()
	beforeResults := titles(s.Results())

	require.NoError(t, s.Dispatch(ToggleTag("print")))
	require.NotEqual(t, beforeResults, titles(s.Results()))
	require.NoError(t, s.Dispatch(ToggleTag("print")))

	require.Equal(t, beforeTags, s.Filter().SortedActiveTags())
	require.Equal(t, beforeResults, titles(s.Results()))
}

func TestSession_ScenarioF_LoadFailure(t *testing.T) {
	s := NewSession(preferences.NewMemoryStore())
	s.InitTheme()
	s.Fail(&source.LoadFailure{Source: "projects.json", Err: errors.New("connection refused")})

	require.False(t, s.Bound())
	require.True(t, errors.Is(s.LoadErr(), source.ErrLoadFailure))
	require.Empty(t, s.Projects())
	require.Empty(t, s.Results())
	require.Equal(t, 0, s.Catalog().Len())
	require.False(t, s.NoResults(), "the error message replaces the no-results indicator")

	// controls are inert
	require.NoError(t, s.Dispatch(Search("cat")))
	require.NoError(t, s.Dispatch(ToggleTag("print")))
	require.Empty(t, s.Results())
	require.Empty(t, s.Filter().Search)
	require.False(t, s.IsActive("print"))

	// theme still works
	require.NoError(t, s.Dispatch(ToggleTheme()))
	require.Equal(t, models.ThemeLight, s.Theme())
}

func TestSession_EventsBeforeLoadAreIgnored(t *testing.T) {
	s := NewSession(preferences.NewMemoryStore())

	require.NoError(t, s.Dispatch(Search("cat")))
	require.Empty(t, s.Filter().Search)
	require.False(t, s.NoResults())

	s.Bind(petProjects())
	require.Len(t, s.Results(), 2)
}

func TestSession_ClearFilters(t *testing.T) {
	s := boundSession(t, petProjects())
	require.NoError(t, s.Dispatch(Search("zzz")))
	require.NoError(t, s.Dispatch(ToggleTag("print")))
	require.True(t, s.NoResults())

	require.NoError(t, s.Dispatch(ClearFilters()))
	require.Len(t, s.Results(), 2)
	require.Equal(t, 0, s.Filter().ActiveCount())
}

func TestSession_FilteringNeverMutatesProjects(t *testing.T) {
	projects := petProjects()
	s := boundSession(t, projects)

	require.NoError(t, s.Dispatch(Search("dog")))
	require.NoError(t, s.Dispatch(ToggleTag("print")))

	require.Equal(t, petProjects(), s.Projects())
}

func TestSession_ToggleThemePersists(t *testing.T) {
	store := preferences.NewMemoryStore()
	s := NewSession(store)
	require.Equal(t, models.ThemeDark, s.InitTheme())

	require.NoError(t, s.Dispatch(ToggleTheme()))
	require.Equal(t, models.ThemeLight, s.Theme())
	require.Equal(t, "🌙", s.Theme().Glyph())

	stored, ok, err := store.Get(preferences.ThemeKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", stored)

	// a new session starts from the stored preference
	require.Equal(t, models.ThemeLight, NewSession(store).InitTheme())

	require.NoError(t, s.Dispatch(ToggleTheme()))
	require.Equal(t, models.ThemeDark, s.Theme())
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errors.New("locked") }
func (brokenStore) Set(string, string) error         { return errors.New("locked") }

func TestSession_ThemeStoreFailures(t *testing.T) {
	s := NewSession(brokenStore{})
	require.Equal(t, models.ThemeDark, s.InitTheme())

	err := s.Dispatch(ToggleTheme())
	require.Error(t, err)
	require.Equal(t, models.ThemeLight, s.Theme(), "theme is applied even when it cannot be stored")
}

func TestSession_UnknownEvent(t *testing.T) {
	s := boundSession(t, petProjects())
	err := s.Dispatch(Event{Kind: EventKind(99)})
	require.True(t, errors.Is(err, ErrUnknownEvent))
}

func TestSession_AlphaTagOrder(t *testing.T) {
	s := NewSession(preferences.NewMemoryStore(), WithTagOrder(catalog.OrderAlpha))
	s.Bind(petProjects())
	require.Equal(t, []string{"digital", "print"}, s.Catalog().Tags())
}
