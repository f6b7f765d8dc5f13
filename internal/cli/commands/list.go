package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/leapgql/internal/cli/output"
	"github.com/leapstack-labs/leapgql/internal/state"
	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [model]",
		Short: "List models saved in the state database",
		Long: `List the models stored by 'leapgql introspect --save', or show a single
model when its name is given.

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # List all saved models
  leapgql list

  # Show one model
  leapgql list User

  # List as YAML
  leapgql list --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	r := cmdCtx.Renderer

	statePath := cmdCtx.Cfg.StatePath
	if statePath != ":memory:" {
		if _, err := os.Stat(statePath); os.IsNotExist(err) {
			return fmt.Errorf("no state database at %s\nHint: run 'leapgql introspect --save' first", statePath)
		}
	}

	store, err := openStore(statePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if len(args) == 1 {
		m, err := store.GetModel(ctx, args[0])
		if err != nil {
			return err
		}
		return renderList(r, nil, []core.Model{*m})
	}

	files, err := store.ListFiles(ctx)
	if err != nil {
		return err
	}
	models, err := store.ListModels(ctx)
	if err != nil {
		return err
	}
	return renderList(r, files, models)
}

func renderList(r *output.Renderer, files []state.FileRecord, models []core.Model) error {
	out := output.ListOutput{Files: make([]output.FileOutput, len(files)), Models: models}
	for i, f := range files {
		out.Files[i] = output.FileOutput{Path: f.Path, ContentHash: f.ContentHash, Models: f.Models}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeYAML:
		return r.YAML(out)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Models (%d total)", len(models))))
		if len(files) > 0 {
			r.Println("")
			r.Println(output.FormatHeader(2, "Files"))
			r.Println("")
			r.Table([]string{"Path", "Models"}, fileRows(files))
		}
		r.Models(models)
		return nil
	default:
		r.Header(1, fmt.Sprintf("Models (%d total)", len(models)))
		if len(files) > 0 {
			r.Table([]string{"Path", "Models"}, fileRows(files))
		}
		r.Models(models)
		return nil
	}
}

func fileRows(files []state.FileRecord) [][]string {
	rows := make([][]string, len(files))
	for i, f := range files {
		rows[i] = []string{f.Path, fmt.Sprintf("%d", f.Models)}
	}
	return rows
}
