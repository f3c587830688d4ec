package filesystem

import (
	"io/fs"
)

// FileSystem is the slice of file operations the gallery needs: reading
// project sources, writing new entries, and persisting preferences.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
}
