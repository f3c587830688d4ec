package preferences

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// FileStore keeps preferences in a small YAML document. The whole file is
// rewritten on every Set.
type FileStore struct {
	fs   filesystem.FileSystem
	path string
}

// NewFileStore creates a FileStore at path
func NewFileStore(fs filesystem.FileSystem, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Path returns the backing file
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Get(key string) (string, bool, error) {
	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (f *FileStore) Set(key, value string) error {
	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if !f.fs.Exists(dir) {
		if err := f.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create preferences directory: %w", err)
		}
	}

	if err := f.fs.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func (f *FileStore) read() (map[string]string, error) {
	values := make(map[string]string)
	if !f.fs.Exists(f.path) {
		return values, nil
	}

	data, err := f.fs.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", f.path, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}
