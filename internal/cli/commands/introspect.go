package commands

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/leapgql/internal/cli/output"
	"github.com/leapstack-labs/leapgql/internal/introspect"
	"github.com/spf13/cobra"
)

// NewIntrospectCommand creates the introspect command.
func NewIntrospectCommand() *cobra.Command {
	var save, force bool

	cmd := &cobra.Command{
		Use:   "introspect",
		Short: "Build models from GraphQL schema files",
		Long: `Read every schema file matched by the configured path pattern and print
the models they describe.

With --save, models are stored in the state database and unchanged files
are skipped on the next run. Use --force to re-parse everything.

Output adapts to environment:
  - Terminal: Styled tables
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # Introspect schema/**/*.graphql
  leapgql introspect

  # Use another pattern and a default source
  leapgql introspect --path "api/*.gql" --default-source-name mssql

  # Save to the state database incrementally
  leapgql introspect --save

  # Output as JSON
  leapgql introspect --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIntrospect(cmd, save, force)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save models to the state database")
	cmd.Flags().BoolVar(&force, "force", false, "Ignore stored content hashes (with --save)")

	return cmd
}

func runIntrospect(cmd *cobra.Command, save, force bool) error {
	cmdCtx := NewCommandContext(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

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

	in, err := cmdCtx.newIntrospector(store, force)
	if err != nil {
		return err
	}

	result, err := in.Run(ctx)
	if err != nil {
		return err
	}

	return renderIntrospect(cmdCtx.Renderer, result, statePath)
}

func renderIntrospect(r *output.Renderer, result *introspect.Result, statePath string) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(introspectOutput(result, statePath))
	case output.ModeYAML:
		return r.YAML(introspectOutput(result, statePath))
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Models (%d total)", len(result.Models))))
		r.Println("")
		r.Println(output.FormatKeyValue("Files", fmt.Sprintf("%d", len(result.Files))))
		if statePath != "" {
			r.Println(output.FormatKeyValue("Changed", fmt.Sprintf("%d", result.Changed)))
			r.Println(output.FormatKeyValue("Skipped", fmt.Sprintf("%d", result.Skipped)))
			r.Println(output.FormatKeyValue("Deleted", fmt.Sprintf("%d", result.Deleted)))
			r.Println(output.FormatKeyValue("State Path", statePath))
		}
		r.Models(result.Models)
		return nil
	default:
		r.Header(1, fmt.Sprintf("Models (%d total)", len(result.Models)))
		r.Models(result.Models)
		r.Println("")
		r.Success(result.Summary())
		if statePath != "" {
			r.Muted(fmt.Sprintf("State saved to %s", statePath))
		}
		return nil
	}
}

func introspectOutput(result *introspect.Result, statePath string) output.IntrospectOutput {
	return output.IntrospectOutput{
		Models: result.Models,
		Summary: output.IntrospectSummary{
			Models:     len(result.Models),
			Files:      len(result.Files),
			Changed:    result.Changed,
			Skipped:    result.Skipped,
			Deleted:    result.Deleted,
			DurationMS: result.Duration.Milliseconds(),
			StatePath:  statePath,
		},
	}
}
