package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/leapgql/pkg/core"
)

// NamingStrategy resolves a raw directive name into an optional provider and
// the directive name.
type NamingStrategy func(raw string) (provider, name string, err error)

// Naming strategy identifiers accepted by ParseNamingStrategy.
const (
	NamingPlain    = "plain"
	NamingProvider = "provider"
)

// providerNamePattern splits @<provider>_<name> on the first underscore.
var providerNamePattern = regexp.MustCompile(`(?i)^([^_]+)_(.+)$`)

// PlainNaming uses the raw name as the directive name, without provider.
func PlainNaming(raw string) (string, string, error) {
	return "", raw, nil
}

// ProviderNaming splits raw names of the form <provider>_<name>.
func ProviderNaming(raw string) (string, string, error) {
	matches := providerNamePattern.FindStringSubmatch(raw)
	if matches == nil {
		return "", "", core.NewError(core.KindInvalidDirectiveName, raw,
			"unknown directive @%s, correct format is @<provider>_<name>", raw)
	}
	return matches[1], matches[2], nil
}

// ParseNamingStrategy returns the strategy registered under name.
// An empty name selects plain naming.
func ParseNamingStrategy(name string) (NamingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NamingPlain:
		return PlainNaming, nil
	case NamingProvider:
		return ProviderNaming, nil
	default:
		return nil, fmt.Errorf("unknown directive naming %q (expected %s or %s)", name, NamingPlain, NamingProvider)
	}
}
