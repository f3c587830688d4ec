package source

import (
	"context"

	"github.com/jakoblorz/go-gallery/internal/entry"
	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"github.com/jakoblorz/go-gallery/internal/models"
)

// File loads a JSON or YAML data file.
type File struct {
	fs   filesystem.FileSystem
	path string
}

// NewFile creates a File source
func NewFile(fs filesystem.FileSystem, path string) *File {
	return &File{fs: fs, path: path}
}

func (f *File) Load(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, fail(f.String(), err)
	}

	data, err := f.fs.ReadFile(f.path)
	if err != nil {
		return nil, fail(f.String(), err)
	}

	projects, err := Decode(data, FormatFromName(f.path))
	if err != nil {
		return nil, fail(f.String(), err)
	}
	return projects, nil
}

func (f *File) String() string {
	return f.path
}

// Dir loads a directory of markdown entries.
type Dir struct {
	manager *entry.Manager
}

// NewDir creates a Dir source
func NewDir(fs filesystem.FileSystem, dir string) *Dir {
	return &Dir{manager: entry.NewManager(fs, dir)}
}

func (d *Dir) Load(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, fail(d.String(), err)
	}

	projects, err := d.manager.ReadAll()
	if err != nil {
		return nil, fail(d.String(), err)
	}

	if err := models.ValidateProjects(projects); err != nil {
		return nil, fail(d.String(), err)
	}
	return projects, nil
}

func (d *Dir) String() string {
	return d.manager.Dir() + "/"
}
