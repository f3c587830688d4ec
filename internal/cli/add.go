package cli

import (
	"fmt"

	"github.com/jakoblorz/go-gallery/internal/catalog"
	"github.com/jakoblorz/go-gallery/internal/entry"
	"github.com/jakoblorz/go-gallery/internal/preferences"
	"github.com/jakoblorz/go-gallery/internal/tui/add"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AddCommand handles the add command
type AddCommand struct {
	app *app
	dir string
}

// NewAddCommand creates a new add command
func NewAddCommand(a *app) *cobra.Command {
	cmd := &AddCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project entry",
		Long: `Create a new markdown project entry by describing the project and
picking its tags. Entries can be used as a source with --source <dir>.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.dir, "dir", "", "Entries directory (default from config)")

	return cobraCmd
}

// Run executes the add command
func (c *AddCommand) Run(cmd *cobra.Command, args []string) error {
	if err := c.app.prepare(false); err != nil {
		return err
	}
	defer c.app.sync()

	dir := c.app.cfg.EntriesDir
	override(&dir, c.dir)
	manager := entry.NewManager(c.app.fs, dir)

	var existingTags []string
	if c.app.fs.Exists(dir) {
		projects, err := manager.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read existing entries: %w", err)
		}
		existingTags = catalog.BuildTagCatalog(projects, catalog.OrderAlpha).Tags()
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

	flow := add.NewFlow(manager, existingTags, theme)
	result, err := flow.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if result == nil {
		return nil
	}

	c.app.logger.Info("Created entry", zap.String("id", result.Project.ID), zap.String("path", result.Path))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), add.RenderSuccess(result))

	return nil
}
