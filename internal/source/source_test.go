package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jakoblorz/go-gallery/internal/entry"
	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/stretchr/testify/require"
)

const projectsJSON = `[
  {"id": "cat", "title": "Cat Poster", "description": "Screen printed", "link": "https://example.com/cat", "tags": ["print"], "image": "img/cat.png"},
  {"id": "dog", "title": "Dog Logo", "description": "Vector mark", "link": "https://example.com/dog", "tags": ["digital"]}
]`

const projectsYAML = `- id: cat
  title: Cat Poster
  description: Screen printed
  link: https://example.com/cat
  image: img/cat.png
  tags: [print]
- id: dog
  title: Dog Logo
  description: Vector mark
  link: https://example.com/dog
  tags: [digital]
`

func expectedProjects() []models.Project {
	return []models.Project{
		{ID: "cat", Title: "Cat Poster", Description: "Screen printed", Link: "https://example.com/cat", Image: "img/cat.png", Tags: []string{"print"}},
		{ID: "dog", Title: "Dog Logo", Description: "Vector mark", Link: "https://example.com/dog", Tags: []string{"digital"}},
	}
}

func TestFile_LoadJSONAndYAML(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/site/projects.json", []byte(projectsJSON))
	fs.AddFile("/site/projects.yml", []byte(projectsYAML))

	for _, path := range []string{"/site/projects.json", "/site/projects.yml"} {
		t.Run(path, func(t *testing.T) {
			projects, err := NewFile(fs, path).Load(context.Background())
			require.NoError(t, err)
			require.Equal(t, expectedProjects(), projects)
		})
	}
}

func TestFile_LoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed json", content: `[{"id": "cat",`, wantErr: "failed to parse json"},
		{name: "not a list", content: `{"id": "cat"}`, wantErr: "failed to parse json"},
		{name: "null", content: `null`, wantErr: "empty or null"},
		{name: "missing title", content: `[{"id": "cat", "link": "#", "tags": []}]`, wantErr: "Project.Title"},
		{name: "duplicate id", content: `[{"id": "a", "title": "A", "link": "#"}, {"id": "a", "title": "B", "link": "#"}]`, wantErr: "duplicate project id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			fs.AddFile("/projects.json", []byte(tt.content))

			projects, err := NewFile(fs, "/projects.json").Load(context.Background())
			require.Nil(t, projects)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrLoadFailure))
			require.Contains(t, err.Error(), tt.wantErr)

			var lf *LoadFailure
			require.True(t, errors.As(err, &lf))
			require.Equal(t, "/projects.json", lf.Source)
		})
	}
}

func TestFile_MissingFile(t *testing.T) {
	_, err := NewFile(filesystem.NewMockFileSystem(), "/projects.json").Load(context.Background())
	require.True(t, errors.Is(err, ErrLoadFailure))
}

func TestDecode_EmptyListIsValid(t *testing.T) {
	projects, err := Decode([]byte(`[]`), FormatJSON)
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestDecode_MissingTagsBecomesEmpty(t *testing.T) {
	projects, err := Decode([]byte(`[{"id": "a", "title": "A", "link": "#"}]`), FormatJSON)
	require.NoError(t, err)
	require.NotNil(t, projects[0].Tags)
}

func TestFormatFromName(t *testing.T) {
	require.Equal(t, FormatYAML, FormatFromName("projects.yaml"))
	require.Equal(t, FormatYAML, FormatFromName("https://x.test/p.YML?raw=1"))
	require.Equal(t, FormatJSON, FormatFromName("projects.json"))
	require.Equal(t, FormatJSON, FormatFromName("https://x.test/api/projects"))
}

func TestDir_Load(t *testing.T) {
	fs := entry.NewDirBuilder("/entries").
		AddEntry("cat", "Cat Poster", "https://example.com/cat", "Screen printed", "print").
		AddEntry("dog", "Dog Logo", "https://example.com/dog", "Vector mark", "digital").
		Build()

	projects, err := NewDir(fs, "/entries").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "cat", projects[0].ID)
	require.Equal(t, "Vector mark", projects[1].Description)
}

func TestDir_DuplicateIDs(t *testing.T) {
	fs := entry.NewDirBuilder("/entries").
		AddEntry("cat", "Cat Poster", "#", "", "print").
		AddRaw("other.md", "---\nid: cat\ntitle: Other\nlink: \"#\"\n---\n").
		Build()

	_, err := NewDir(fs, "/entries").Load(context.Background())
	require.True(t, errors.Is(err, ErrLoadFailure))
	require.Contains(t, err.Error(), "duplicate project id")
}

func TestHTTP_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprint(w, projectsJSON)
		case "/projects.yaml":
			_, _ = fmt.Fprint(w, projectsYAML)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	projects, err := NewHTTP(srv.URL+"/projects.json", srv.Client()).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, expectedProjects(), projects)

	projects, err = NewHTTP(srv.URL+"/projects.yaml", nil).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, expectedProjects(), projects)

	_, err = NewHTTP(srv.URL+"/missing.json", nil).Load(context.Background())
	require.True(t, errors.Is(err, ErrLoadFailure))
	require.Contains(t, err.Error(), "404")
}

func TestHTTP_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, projectsJSON)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTP(srv.URL+"/projects.json", nil).Load(ctx)
	require.True(t, errors.Is(err, ErrLoadFailure))
	require.True(t, errors.Is(err, context.Canceled))
}

type fakeContentClient struct {
	files map[string]string
	calls []string
}

func (f *fakeContentClient) GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	key := fmt.Sprintf("%s/%s/%s@%s", owner, repo, path, ref)
	f.calls = append(f.calls, key)
	content, ok := f.files[key]
	if !ok {
		return nil, fmt.Errorf("404 Not Found")
	}
	return []byte(content), nil
}

func TestGitHub_Load(t *testing.T) {
	client := &fakeContentClient{files: map[string]string{
		"jane/portfolio/data/projects.json@main": projectsJSON,
	}}

	src, err := Open("github:jane/portfolio/data/projects.json@main", Options{GitHub: client})
	require.NoError(t, err)
	require.Equal(t, "github:jane/portfolio/data/projects.json@main", src.String())

	projects, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, expectedProjects(), projects)
	require.Equal(t, []string{"jane/portfolio/data/projects.json@main"}, client.calls)

	missing := NewGitHub(client, GitHubRef{Owner: "jane", Repo: "portfolio", Path: "nope.json"})
	_, err = missing.Load(context.Background())
	require.True(t, errors.Is(err, ErrLoadFailure))
}

func TestParseGitHubRef(t *testing.T) {
	ref, err := ParseGitHubRef("jane/portfolio/a/b/projects.yaml")
	require.NoError(t, err)
	require.Equal(t, GitHubRef{Owner: "jane", Repo: "portfolio", Path: "a/b/projects.yaml"}, ref)

	for _, bad := range []string{"", "jane", "jane/portfolio", "/portfolio/x.json", "jane//x.json"} {
		_, err := ParseGitHubRef(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestOpen(t *testing.T) {
	fs := entry.NewDirBuilder("/entries").Build()
	fs.AddFile("/projects.json", []byte(projectsJSON))
	opts := Options{FS: fs, GitHub: &fakeContentClient{}}

	src, err := Open("/entries", opts)
	require.NoError(t, err)
	require.IsType(t, &Dir{}, src)

	src, err = Open("/projects.json", opts)
	require.NoError(t, err)
	require.IsType(t, &File{}, src)

	src, err = Open("/missing.json", opts)
	require.NoError(t, err)
	require.IsType(t, &File{}, src)

	src, err = Open("https://example.com/projects.json", opts)
	require.NoError(t, err)
	require.IsType(t, &HTTP{}, src)

	_, err = Open("github:jane", opts)
	require.Error(t, err)

	_, err = Open("  ", opts)
	require.Error(t, err)
}

func TestStatic_Load(t *testing.T) {
	projects, err := Static{Projects: expectedProjects()}.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, expectedProjects(), projects)

	_, err = Static{Err: errors.New("offline")}.Load(context.Background())
	require.True(t, errors.Is(err, ErrLoadFailure))
	require.Contains(t, err.Error(), "offline")
}
