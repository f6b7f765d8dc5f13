package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapgql/internal/loader"
	"github.com/leapstack-labs/leapgql/pkg/schema"
)

// outputModes lists the accepted values of the output key.
var outputModes = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if _, err := loader.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	if _, err := schema.ParseNamingStrategy(c.DirectiveNaming); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.OutputFormat != "" && !contains(outputModes, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (expected one of %s)", c.OutputFormat, strings.Join(outputModes, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
