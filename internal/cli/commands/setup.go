// Package commands implements the leapgql subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leapgql/internal/cli/config"
	"github.com/leapstack-labs/leapgql/internal/cli/output"
	"github.com/leapstack-labs/leapgql/internal/introspect"
	"github.com/leapstack-labs/leapgql/internal/state"
	"github.com/leapstack-labs/leapgql/pkg/schema"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// getConfig returns the current configuration, or defaults when none was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Path:            config.DefaultPath,
		Encoding:        config.DefaultEncoding,
		DirectiveNaming: config.DefaultNaming,
		StatePath:       config.DefaultStateFile,
		Concurrency:     config.DefaultConcurrency,
		LogLevel:        config.DefaultLogLevel,
		OutputFormat:    config.DefaultOutput,
	}
}

// openStore opens and migrates the state database, creating its directory.
func openStore(statePath string) (*state.SQLiteStore, error) {
	if statePath != ":memory:" {
		stateDir := filepath.Dir(statePath)
		if stateDir != "." && stateDir != "" {
			if err := os.MkdirAll(stateDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create state directory: %w", err)
			}
		}
	}

	store := state.NewSQLiteStore()
	if err := store.Open(statePath); err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize state database: %w", err)
	}
	return store, nil
}

// newIntrospector builds an introspector from the configuration. store may be nil.
func (c *CommandContext) newIntrospector(store introspect.Store, force bool) (*introspect.Introspector, error) {
	return introspect.New(introspect.Config{
		Path:              c.Cfg.Path,
		Encoding:          c.Cfg.Encoding,
		DefaultSourceName: c.Cfg.DefaultSourceName,
		DirectiveNaming:   c.Cfg.DirectiveNaming,
		Observer:          schema.NewLogObserver(c.Logger),
		Concurrency:       c.Cfg.Concurrency,
		Store:             store,
		ForceRefresh:      force,
		Logger:            c.Logger,
	})
}
