package commands

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/leapgql/internal/cli/output"
	"github.com/leapstack-labs/leapgql/internal/state"
	"github.com/spf13/cobra"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	// StateSchema is the newest state database migration this binary applies
	StateSchema int64 `json:"state_schema" yaml:"state_schema"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, gitCommit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Print the leapgql release, the commit it was built from and the
state database schema version it migrates to. Honors --output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schemaVersion, err := state.SchemaVersion()
			if err != nil {
				return err
			}

			info := BuildInfo{
				Version:     version,
				GitCommit:   gitCommit,
				BuildDate:   buildDate,
				GoVersion:   runtime.Version(),
				Platform:    runtime.GOOS + "/" + runtime.GOARCH,
				StateSchema: schemaVersion,
			}
			return renderVersion(NewCommandContext(cmd).Renderer, info)
		},
	}
}

func renderVersion(r *output.Renderer, info BuildInfo) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeYAML:
		return r.YAML(info)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "leapgql v"+info.Version))
		r.Println("")
		r.Println(output.FormatKeyValue("Commit", info.GitCommit))
		r.Println(output.FormatKeyValue("Built", info.BuildDate))
		r.Println(output.FormatKeyValue("Go", info.GoVersion))
		r.Println(output.FormatKeyValue("Platform", info.Platform))
		r.Println(output.FormatKeyValue("State Schema", fmt.Sprintf("%d", info.StateSchema)))
		return nil
	default:
		r.Header(1, "leapgql v"+info.Version)
		r.Muted(fmt.Sprintf("commit %s, built %s", info.GitCommit, info.BuildDate))
		r.Printf("%s %s\n", info.GoVersion, info.Platform)
		r.Printf("state schema v%d\n", info.StateSchema)
		return nil
	}
}
