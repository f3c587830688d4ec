package cli

import (
	"fmt"

	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/preferences"
	"github.com/spf13/cobra"
)

const themeToggleArg = "toggle"

// ThemeCommand handles the theme command
type ThemeCommand struct {
	app *app
}

// NewThemeCommand creates a new theme command
func NewThemeCommand(a *app) *cobra.Command {
	cmd := &ThemeCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(models.ThemeDark), string(models.ThemeLight), themeToggleArg},
		RunE:      cmd.Run,
	}

	return cobraCmd
}

// Run executes the theme command
func (c *ThemeCommand) Run(cmd *cobra.Command, args []string) error {
	if err := c.app.prepare(false); err != nil {
		return err
	}
	defer c.app.sync()

	prefs, closer, err := c.app.openPrefs()
	if err != nil {
		return err
	}
	defer closer.Close()

	session := gallery.NewSession(prefs, gallery.WithLogger(c.app.logger))
	theme := session.InitTheme()

	if len(args) == 1 {
		switch args[0] {
		case themeToggleArg:
			if err := session.Dispatch(gallery.ToggleTheme()); err != nil {
				return err
			}
		default:
			target, err := models.ParseTheme(args[0])
			if err != nil {
				return err
			}
			if target != theme {
				if err := preferences.SaveTheme(prefs, target); err != nil {
					return err
				}
			}
			session.InitTheme()
		}
	}

	theme = session.Theme()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", theme.Glyph(), theme)
	return nil
}
