package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/jakoblorz/go-gallery/internal/models"
	"golang.org/x/oauth2"
)

// ContentClient reads a single file from a repository.
type ContentClient interface {
	GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error)
}

// GitHubClient implements ContentClient using the GitHub API
type GitHubClient struct {
	client *github.Client
}

// NewGitHubClient creates a client; an empty token means unauthenticated
// access, which is enough for public repositories.
func NewGitHubClient(token string) *GitHubClient {
	if token == "" {
		return &GitHubClient{client: github.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubClient{client: github.NewClient(tc)}
}

// NewGitHubClientFromEnv reads GH_TOKEN, then GITHUB_TOKEN.
func NewGitHubClientFromEnv() *GitHubClient {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	return NewGitHubClient(token)
}

func (c *GitHubClient) GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	file, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get contents of %s: %w", path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode contents of %s: %w", path, err)
	}
	return []byte(content), nil
}

// GitHubRef addresses a data file inside a repository.
type GitHubRef struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

// ParseGitHubRef parses "owner/repo/path/to/projects.json[@ref]".
func ParseGitHubRef(s string) (GitHubRef, error) {
	var ref GitHubRef
	if at := strings.LastIndex(s, "@"); at >= 0 {
		ref.Ref = s[at+1:]
		s = s[:at]
	}

	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return GitHubRef{}, errors.New("expected owner/repo/path[@ref]")
	}
	ref.Owner, ref.Repo, ref.Path = parts[0], parts[1], parts[2]
	return ref, nil
}

func (r GitHubRef) String() string {
	s := fmt.Sprintf("github:%s/%s/%s", r.Owner, r.Repo, r.Path)
	if r.Ref != "" {
		s += "@" + r.Ref
	}
	return s
}

// GitHub loads a data file from a repository.
type GitHub struct {
	client ContentClient
	ref    GitHubRef
}

// NewGitHub creates a GitHub source
func NewGitHub(client ContentClient, ref GitHubRef) *GitHub {
	return &GitHub{client: client, ref: ref}
}

func (g *GitHub) Load(ctx context.Context) ([]models.Project, error) {
	data, err := g.client.GetFileContent(ctx, g.ref.Owner, g.ref.Repo, g.ref.Path, g.ref.Ref)
	if err != nil {
		return nil, fail(g.String(), err)
	}

	projects, err := Decode(data, FormatFromName(g.ref.Path))
	if err != nil {
		return nil, fail(g.String(), err)
	}
	return projects, nil
}

func (g *GitHub) String() string {
	return g.ref.String()
}
