package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jakoblorz/go-gallery/internal/catalog"
	"github.com/spf13/cobra"
)

// TagsCommand handles the tags command
type TagsCommand struct {
	app    *app
	sort   string
	asJSON bool
}

// NewTagsCommand creates a new tags command
func NewTagsCommand(a *app) *cobra.Command {
	cmd := &TagsCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "tags",
		Short: "List the distinct tags of all projects",
		Long: `Lists every tag used by at least one project, in the order the tag
buttons appear (first appearance unless --sort alpha).`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.sort, "sort", "", "Order: first-seen or alpha (default from --tag-order)")
	cobraCmd.Flags().BoolVar(&cmd.asJSON, "json", false, "Output JSON")

	return cobraCmd
}

// Run executes the tags command
func (c *TagsCommand) Run(cmd *cobra.Command, args []string) error {
	if err := c.app.prepare(false); err != nil {
		return err
	}
	defer c.app.sync()

	order, err := c.app.tagOrder()
	if err != nil {
		return err
	}
	if c.sort != "" {
		if order, err = catalog.ParseTagOrder(c.sort); err != nil {
			return err
		}
	}

	projects, err := c.app.loadProjects(contextOf(cmd))
	if err != nil {
		return err
	}

	tags := catalog.BuildTagCatalog(projects, order).Tags()
	out := cmd.OutOrStdout()

	if c.asJSON {
		data, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	for _, tag := range tags {
		_, _ = fmt.Fprintln(out, tag)
	}
	return nil
}
