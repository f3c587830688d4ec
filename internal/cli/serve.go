package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jakoblorz/go-gallery/internal/server"
	"github.com/jakoblorz/go-gallery/internal/source"
	"github.com/spf13/cobra"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app       *app
	addr      string
	rateLimit float64
}

// NewServeCommand creates a new serve command
func NewServeCommand(a *app) *cobra.Command {
	cmd := &ServeCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery over HTTP",
		Long: `Loads the projects once and serves the gallery page.

Filters travel in the query string (/?q=poster&tag=print), the theme in a
cookie. /projects.json returns the filtered list, /metrics exposes
Prometheus metrics.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.addr, "addr", "", "Listen address (default from config)")
	cobraCmd.Flags().Float64Var(&cmd.rateLimit, "rate-limit", 0, "Requests per second across all clients, 0 for no limit (default from config)")

	return cobraCmd
}

// Run executes the serve command
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	if err := c.app.prepare(false); err != nil {
		return err
	}
	defer c.app.sync()

	addr := c.app.cfg.Addr
	override(&addr, c.addr)

	rateLimit := c.app.cfg.RateLimit
	if c.rateLimit > 0 {
		rateLimit = c.rateLimit
	}

	order, err := c.app.tagOrder()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed load still serves the error page.
	projects, loadErr := c.app.loadProjects(ctx)
	if loadErr != nil && !errors.Is(loadErr, source.ErrLoadFailure) {
		return loadErr
	}

	srv := server.New(projects, loadErr, server.Options{
		Title:     c.app.cfg.Title,
		TagOrder:  order,
		Logger:    c.app.logger,
		RateLimit: rateLimit,
	})
	return srv.Run(ctx, addr)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
