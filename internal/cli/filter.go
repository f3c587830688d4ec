package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/preferences"
	"github.com/jakoblorz/go-gallery/internal/source"
	"github.com/jakoblorz/go-gallery/internal/tui"
	"github.com/jakoblorz/go-gallery/internal/tui/browse"
	"github.com/spf13/cobra"
)

// FilterCommand handles the filter command
type FilterCommand struct {
	app    *app
	search string
	tags   []string
	asJSON bool
}

// NewFilterCommand creates a new filter command
func NewFilterCommand(a *app) *cobra.Command {
	cmd := &FilterCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the projects matching a search and tags",
		Long: `Applies the gallery filter once and prints the result.

The search matches title or description, case-insensitively. A project
matches the tags when it has at least one of them. Both must match.`,
		Example: `  # Projects mentioning "poster" tagged print or digital
  gallery filter --search poster --tag print --tag digital

  # JSON output
  gallery filter --tag print --json`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.search, "search", "q", "", "Search text")
	cobraCmd.Flags().StringArrayVarP(&cmd.tags, "tag", "t", nil, "Active tag (repeatable)")
	cobraCmd.Flags().BoolVar(&cmd.asJSON, "json", false, "Output JSON")

	return cobraCmd
}

// Run executes the filter command
func (c *FilterCommand) Run(cmd *cobra.Command, args []string) error {
	if err := c.app.prepare(false); err != nil {
		return err
	}
	defer c.app.sync()

	projects, err := c.app.loadProjects(contextOf(cmd))
	if err != nil {
		if errors.Is(err, source.ErrLoadFailure) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render(gallery.LoadErrorMessage))
		}
		return err
	}

	session := gallery.NewSession(preferences.NewMemoryStore(), gallery.WithLogger(c.app.logger))
	session.Bind(projects)

	if c.search != "" {
		if err := session.Dispatch(gallery.Search(c.search)); err != nil {
			return err
		}
	}
	seen := map[string]bool{}
	for _, tag := range c.tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if err := session.Dispatch(gallery.ToggleTag(tag)); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	results := session.Results()

	if c.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode projects: %w", err)
		}
		return nil
	}

	if session.NoResults() {
		_, _ = fmt.Fprintln(out, browse.NoResultsMessage)
		return nil
	}
	for _, p := range results {
		line := fmt.Sprintf("%s\t%s", p.ID, p.Title)
		if len(p.Tags) > 0 {
			line += "\t[" + strings.Join(p.Tags, ", ") + "]"
		}
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}
