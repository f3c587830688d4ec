package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/tui/browse"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ErrNotTerminal is returned when browse is run without a terminal
var ErrNotTerminal = errors.New("browse needs an interactive terminal; use 'gallery filter' or 'gallery build' instead")

// BrowseCommand handles the browse command
type BrowseCommand struct {
	app *app
}

// NewBrowseCommand creates a new browse command
func NewBrowseCommand(a *app) *cobra.Command {
	cmd := &BrowseCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the gallery interactively",
		Long: `Opens the interactive gallery: type to search, tab to the tag row and
press space to toggle tags, ctrl+t to switch between dark and light.

Logs are written to the configured log file while the gallery is open.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the browse command
func (c *BrowseCommand) Run(cmd *cobra.Command, args []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return ErrNotTerminal
	}

	if err := c.app.prepare(true); err != nil {
		return err
	}
	defer c.app.sync()

	src, err := c.app.openSource()
	if err != nil {
		return err
	}
	order, err := c.app.tagOrder()
	if err != nil {
		return err
	}
	prefs, closer, err := c.app.openPrefs()
	if err != nil {
		return err
	}
	defer closer.Close()

	session := gallery.NewSession(prefs,
		gallery.WithLogger(c.app.logger),
		gallery.WithTagOrder(order))

	model := browse.NewModel(contextOf(cmd), session, src, browse.Options{
		Title:  c.app.cfg.Title,
		Logger: c.app.logger,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(contextOf(cmd)),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
