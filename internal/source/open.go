package source

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jakoblorz/go-gallery/internal/filesystem"
)

const githubScheme = "github:"

// Options carries the collaborators Open may need.
type Options struct {
	FS         filesystem.FileSystem
	HTTPClient *http.Client
	GitHub     ContentClient
}

// Open resolves a source location:
//
//	https://example.com/projects.json   HTTP
//	github:owner/repo/projects.json@main GitHub
//	./entries                            directory of markdown entries
//	./projects.json, ./projects.yaml     data file
func Open(location string, opts Options) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("no project source configured")
	}

	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTP(location, opts.HTTPClient), nil

	case strings.HasPrefix(location, githubScheme):
		ref, err := ParseGitHubRef(strings.TrimPrefix(location, githubScheme))
		if err != nil {
			return nil, fmt.Errorf("invalid github source %q: %w", location, err)
		}
		client := opts.GitHub
		if client == nil {
			client = NewGitHubClientFromEnv()
		}
		return NewGitHub(client, ref), nil
	}

	if opts.FS == nil {
		return nil, fmt.Errorf("no filesystem available for %q", location)
	}

	if info, err := opts.FS.Stat(location); err == nil && info.IsDir() {
		return NewDir(opts.FS, location), nil
	}
	// A missing file surfaces as a load failure, not an open error.
	return NewFile(opts.FS, location), nil
}
