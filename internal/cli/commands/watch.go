package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/leapgql/internal/introspect"
	"github.com/leapstack-labs/leapgql/internal/watch"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-introspect whenever schema files change",
		Long: `Introspect once, then watch the directory the path pattern is anchored at
and introspect again after matching files are written, created or removed.

Errors in a schema file are reported and watching continues.`,
		Example: `  # Watch schema/**/*.graphql
  leapgql watch

  # Keep the state database up to date
  leapgql watch --save`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save models to the state database")

	return cmd
}

func runWatch(cmd *cobra.Command, save bool) error {
	cmdCtx := NewCommandContext(cmd)
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store introspect.Store
	statePath := ""
	if save {
		s, err := openStore(cmdCtx.Cfg.StatePath)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		store = s
		statePath = cmdCtx.Cfg.StatePath
	}

	run := func(ctx context.Context) error {
		in, err := cmdCtx.newIntrospector(store, false)
		if err != nil {
			return err
		}
		result, err := in.Run(ctx)
		if err != nil {
			cmdCtx.Renderer.Error(err.Error())
			return nil
		}
		return renderIntrospect(cmdCtx.Renderer, result, statePath)
	}

	if err := run(ctx); err != nil {
		return err
	}

	w, err := watch.New(watch.Config{
		Pattern: cmdCtx.Cfg.Path,
		OnChange: func(ctx context.Context, changed []string) error {
			cmdCtx.Logger.Info("schema files changed", "files", changed)
			return run(ctx)
		},
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	cmdCtx.Renderer.Muted("Watching " + cmdCtx.Cfg.Path + " (Ctrl+C to stop)")
	return w.Run(ctx)
}
