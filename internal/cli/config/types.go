// Package config provides configuration management for the leapgql CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Path              string `koanf:"path"`
	Encoding          string `koanf:"encoding"`
	DefaultSourceName string `koanf:"default_source_name"`
	DirectiveNaming   string `koanf:"directive_naming"`
	StatePath         string `koanf:"state_path"`
	Concurrency       int    `koanf:"concurrency"`
	Verbose           bool   `koanf:"verbose"`
	LogLevel          string `koanf:"log_level"`
	OutputFormat      string `koanf:"output"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultPath        = "schema/**/*.graphql"
	DefaultEncoding    = "utf8"
	DefaultNaming      = "plain"
	DefaultStateFile   = ".leapgql/state.db"
	DefaultConcurrency = 4
	DefaultLogLevel    = "warn"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "leapgql.yaml"
	ConfigFileNameAlt = "leapgql.yml"
)

// EnvPrefix prefixes environment variable overrides, e.g. LEAPGQL_PATH.
const EnvPrefix = "LEAPGQL_"
