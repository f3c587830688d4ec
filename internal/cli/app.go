package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/jakoblorz/go-gallery/internal/catalog"
	"github.com/jakoblorz/go-gallery/internal/config"
	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"github.com/jakoblorz/go-gallery/internal/logging"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/preferences"
	"github.com/jakoblorz/go-gallery/internal/source"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const httpTimeout = 30 * time.Second

// Deps are the collaborators commands use. Zero values are replaced with
// real implementations.
type Deps struct {
	Logger     *zap.Logger
	HTTPClient *http.Client
	GitHub     source.ContentClient
}

// globalFlags are the persistent root flags
type globalFlags struct {
	configPath   string
	source       string
	tagOrder     string
	prefsBackend string
	prefsPath    string
	verbose      bool
}

// app is shared by every command of one invocation
type app struct {
	fs    filesystem.FileSystem
	deps  Deps
	flags globalFlags

	cfg    *config.Config
	logger *zap.Logger
}

func newApp(fs filesystem.FileSystem, deps Deps) *app {
	return &app{fs: fs, deps: deps}
}

func (a *app) registerFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "Config file (default gallery.yaml if present)")
	pf.StringVarP(&a.flags.source, "source", "s", "", "Project source: file, entries directory, URL or github:owner/repo/path@ref")
	pf.StringVar(&a.flags.tagOrder, "tag-order", "", "Tag button order: first-seen or alpha")
	pf.StringVar(&a.flags.prefsBackend, "prefs-backend", "", "Preference store: file, badger, sqlite or memory")
	pf.StringVar(&a.flags.prefsPath, "prefs-path", "", "Preference file, sqlite database or badger directory")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")
}

// prepare resolves configuration and the logger. logToFile sends logs
// to the configured log file instead of stderr.
func (a *app) prepare(logToFile bool) error {
	cfg, err := config.Load(a.fs, a.flags.configPath, a.flags.configPath != "")
	if err != nil {
		return err
	}
	override(&cfg.Source, a.flags.source)
	override(&cfg.TagOrder, a.flags.tagOrder)
	override(&cfg.PrefsBackend, a.flags.prefsBackend)
	override(&cfg.PrefsPath, a.flags.prefsPath)
	a.cfg = cfg

	if a.deps.Logger != nil {
		a.logger = a.deps.Logger
		return nil
	}

	opts := logging.Options{Verbose: a.flags.verbose, Level: cfg.LogLevel}
	if logToFile && cfg.LogFile != "" {
		if err := a.fs.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		opts.File = cfg.LogFile
	}
	logger, err := logging.New(opts)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func (a *app) tagOrder() (catalog.TagOrder, error) {
	return catalog.ParseTagOrder(a.cfg.TagOrder)
}

func (a *app) openSource() (source.Source, error) {
	client := a.deps.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: httpTimeout}
	}
	return source.Open(a.cfg.Source, source.Options{
		FS:         a.fs,
		HTTPClient: client,
		GitHub:     a.deps.GitHub,
	})
}

// loadProjects runs the source once. The returned error is a
// *source.LoadFailure when the source itself failed.
func (a *app) loadProjects(ctx context.Context) ([]models.Project, error) {
	src, err := a.openSource()
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Loading projects", zap.Stringer("source", src))
	projects, err := src.Load(ctx)
	if err != nil {
		a.logger.Error("Error loading projects", zap.Stringer("source", src), zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (a *app) openPrefs() (preferences.Store, io.Closer, error) {
	store, closer, err := preferences.Open(preferences.Backend(a.cfg.PrefsBackend), a.fs, a.cfg.PrefsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return store, closer, nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
