// Package source loads the full project list from wherever it lives: a
// JSON or YAML data file, a directory of markdown entries, an HTTP URL,
// or a file in a GitHub repository.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/jakoblorz/go-gallery/internal/models"
)

// ErrLoadFailure is matched by every error a Source returns.
var ErrLoadFailure = errors.New("failed to load projects")

// LoadFailure wraps the network, decoding or validation error behind a
// failed load.
type LoadFailure struct {
	// Source describes where the load was attempted
	Source string
	Err    error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("%s from %s: %v", ErrLoadFailure.Error(), e.Source, e.Err)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLoadFailure) hold for every LoadFailure.
func (e *LoadFailure) Is(target error) bool {
	return target == ErrLoadFailure
}

func fail(source string, err error) error {
	return &LoadFailure{Source: source, Err: err}
}

// Source fetches the full project list once.
type Source interface {
	// Load returns every project in source order, or a *LoadFailure.
	Load(ctx context.Context) ([]models.Project, error)

	// String describes the source for logs and error messages.
	String() string
}

// Static is a Source backed by an in-memory list.
type Static struct {
	Projects []models.Project
	Err      error
}

func (s Static) Load(ctx context.Context) ([]models.Project, error) {
	if s.Err != nil {
		return nil, fail(s.String(), s.Err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fail(s.String(), err)
	}
	out := make([]models.Project, len(s.Projects))
	copy(out, s.Projects)
	return out, nil
}

func (s Static) String() string {
	return "memory"
}
