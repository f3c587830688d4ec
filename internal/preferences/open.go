package preferences

import (
	"fmt"
	"io"

	"github.com/jakoblorz/go-gallery/internal/filesystem"
)

// Backend names a Store implementation
type Backend string

const (
	BackendFile   Backend = "file"
	BackendBadger Backend = "badger"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates the Store for backend. The returned Closer must be closed
// when the store is no longer needed.
func Open(backend Backend, fs filesystem.FileSystem, path string) (Store, io.Closer, error) {
	switch backend {
	case BackendFile, "":
		if path == "" {
			return nil, nil, fmt.Errorf("file preference store needs a path")
		}
		return NewFileStore(fs, path), nopCloser{}, nil
	case BackendBadger:
		store, err := OpenBadgerStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case BackendSQLite:
		store, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case BackendMemory:
		return NewMemoryStore(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown preference backend: %s (must be file, badger, sqlite or memory)", backend)
	}
}
