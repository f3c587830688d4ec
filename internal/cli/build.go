package cli

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-gallery/internal/preferences"
	"github.com/jakoblorz/go-gallery/internal/site"
	"github.com/jakoblorz/go-gallery/internal/source"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// BuildCommand handles the build command
type BuildCommand struct {
	app    *app
	outDir string
}

// NewBuildCommand creates a new build command
func NewBuildCommand(a *app) *cobra.Command {
	cmd := &BuildCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the gallery as a static site",
		Long: `Renders index.html, projects.json and one page per tag.

The page uses the stored theme preference. When the source cannot be
loaded an index.html carrying the error message is still written and the
command fails.`,
		Example: `  # Build into ./dist
  gallery build

  # Build from a directory of markdown entries
  gallery build --source entries --out public`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.outDir, "out", "o", "", "Output directory (default from config)")

	return cobraCmd
}

// Run executes the build command
func (c *BuildCommand) Run(cmd *cobra.Command, args []string) error {
	if err := c.app.prepare(false); err != nil {
		return err
	}
	defer c.app.sync()

	outDir := c.app.cfg.OutDir
	override(&outDir, c.outDir)

	order, err := c.app.tagOrder()
	if err != nil {
		return err
	}

	prefs, closer, err := c.app.openPrefs()
	if err != nil {
		return err
	}
	defer closer.Close()

	theme, err := preferences.LoadTheme(prefs)
	if err != nil {
		c.app.logger.Warn("Using default theme", zap.Error(err))
	}

	projects, loadErr := c.app.loadProjects(contextOf(cmd))
	if loadErr != nil && !errors.Is(loadErr, source.ErrLoadFailure) {
		return loadErr
	}

	written, err := site.Build(c.app.fs, outDir, projects, loadErr, site.BuildOptions{
		Title:    c.app.cfg.Title,
		Theme:    theme,
		TagOrder: order,
		Logger:   c.app.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, path := range written {
		_, _ = fmt.Fprintf(out, "wrote %s\n", path)
	}

	if loadErr != nil {
		return fmt.Errorf("failed to load projects: %w", loadErr)
	}
	return nil
}
