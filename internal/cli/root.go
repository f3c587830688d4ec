package cli

import (
	"fmt"

	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, deps Deps) *cobra.Command {
	a := newApp(fs, deps)

	rootCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse and publish a filterable portfolio gallery",
		Long: `A portfolio gallery for the terminal and the web.

Projects are loaded from a JSON or YAML file, a directory of markdown
entries, a URL or a file in a GitHub repository. They can be filtered by
free-text search and by tags, browsed interactively, served over HTTP or
built into a static site.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `gallery browse` when no subcommand is provided.
			return (&BrowseCommand{app: a}).Run(cmd, args)
		},
	}
	a.registerFlags(rootCmd)

	rootCmd.AddCommand(NewBrowseCommand(a))
	rootCmd.AddCommand(NewBuildCommand(a))
	rootCmd.AddCommand(NewServeCommand(a))
	rootCmd.AddCommand(NewFilterCommand(a))
	rootCmd.AddCommand(NewTagsCommand(a))
	rootCmd.AddCommand(NewThemeCommand(a))
	rootCmd.AddCommand(NewAddCommand(a))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs, Deps{})

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
