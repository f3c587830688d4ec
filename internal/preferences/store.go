// Package preferences persists small string settings such as the theme.
package preferences

import (
	"fmt"
	"sync"

	"github.com/jakoblorz/go-gallery/internal/models"
)

// ThemeKey is the key the theme preference is stored under
const ThemeKey = "theme"

// Store is a persistent string key-value store.
type Store interface {
	// Get returns the stored value and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// LoadTheme reads the theme preference. Missing or unknown values yield
// the default theme.
func LoadTheme(s Store) (models.Theme, error) {
	value, ok, err := s.Get(ThemeKey)
	if err != nil {
		return models.DefaultTheme, fmt.Errorf("failed to read theme preference: %w", err)
	}
	if !ok {
		return models.DefaultTheme, nil
	}
	return models.ThemeOrDefault(value), nil
}

// SaveTheme writes the theme preference.
func SaveTheme(s Store, theme models.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("refusing to store invalid theme %q", theme)
	}
	if err := s.Set(ThemeKey, theme.String()); err != nil {
		return fmt.Errorf("failed to write theme preference: %w", err)
	}
	return nil
}

// MemoryStore keeps preferences in memory only
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
