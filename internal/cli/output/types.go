package output

import "github.com/leapstack-labs/leapgql/pkg/core"

// IntrospectOutput is the JSON / YAML shape of the introspect command.
type IntrospectOutput struct {
	Models  []core.Model      `json:"models" yaml:"models"`
	Summary IntrospectSummary `json:"summary" yaml:"summary"`
}

// IntrospectSummary holds run statistics.
type IntrospectSummary struct {
	Models     int    `json:"models" yaml:"models"`
	Files      int    `json:"files" yaml:"files"`
	Changed    int    `json:"changed" yaml:"changed"`
	Skipped    int    `json:"skipped" yaml:"skipped"`
	Deleted    int    `json:"deleted" yaml:"deleted"`
	DurationMS int64  `json:"duration_ms" yaml:"duration_ms"`
	StatePath  string `json:"state_path,omitempty" yaml:"state_path,omitempty"`
}

// FileOutput describes a stored schema file for the list command.
type FileOutput struct {
	Path        string `json:"path" yaml:"path"`
	ContentHash string `json:"content_hash" yaml:"content_hash"`
	Models      int    `json:"models" yaml:"models"`
}

// ListOutput is the JSON / YAML shape of the list command.
type ListOutput struct {
	Files  []FileOutput `json:"files" yaml:"files"`
	Models []core.Model `json:"models" yaml:"models"`
}
