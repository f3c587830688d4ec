// Package config resolves gallery settings from defaults, an optional
// gallery.yaml file and GALLERY_* environment variables, in that order.
// Command-line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory
const DefaultFileName = "gallery.yaml"

// Config holds every setting a command may need
type Config struct {
	// Source is the project source location (file, directory, URL, github:)
	Source string `yaml:"source" env:"GALLERY_SOURCE"`

	// Title is shown in page headers
	Title string `yaml:"title" env:"GALLERY_TITLE"`

	// TagOrder is "first-seen" or "alpha"
	TagOrder string `yaml:"tag_order" env:"GALLERY_TAG_ORDER"`

	// PrefsBackend is "file", "badger", "sqlite" or "memory"
	PrefsBackend string `yaml:"prefs_backend" env:"GALLERY_PREFS_BACKEND"`

	// PrefsPath is the preferences file (file, sqlite) or directory (badger)
	PrefsPath string `yaml:"prefs_path" env:"GALLERY_PREFS_PATH"`

	// Addr is the listen address of the served page
	Addr string `yaml:"addr" env:"GALLERY_ADDR"`

	// RateLimit caps served requests per second; 0 disables it
	RateLimit float64 `yaml:"rate_limit" env:"GALLERY_RATE_LIMIT"`

	// OutDir is where the static site is written
	OutDir string `yaml:"out_dir" env:"GALLERY_OUT_DIR"`

	// EntriesDir is where new entries are created
	EntriesDir string `yaml:"entries_dir" env:"GALLERY_ENTRIES_DIR"`

	// LogLevel is a zap level name
	LogLevel string `yaml:"log_level" env:"GALLERY_LOG_LEVEL"`

	// LogFile receives the browser's logs
	LogFile string `yaml:"log_file" env:"GALLERY_LOG_FILE"`
}

// Default returns the built-in settings
func Default() *Config {
	configDir := userConfigDir()

	return &Config{
		Source:       "projects.json",
		Title:        "Portfolio",
		TagOrder:     "first-seen",
		PrefsBackend: "file",
		PrefsPath:    filepath.Join(configDir, "preferences.yaml"),
		Addr:         "127.0.0.1:8080",
		OutDir:       "dist",
		EntriesDir:   "entries",
		LogLevel:     "info",
		LogFile:      filepath.Join(configDir, "gallery.log"),
	}
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".gallery"
	}
	return filepath.Join(dir, "gallery")
}

// Load reads path (if it exists) over the defaults, then applies the
// environment. A missing file is only an error when required is set.
func Load(fs filesystem.FileSystem, path string, required bool) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFileName
	}

	if fs.Exists(path) {
		data, err := fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if required {
		return nil, fmt.Errorf("config file %s not found", path)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
