package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// parseSDL parses a schema document for tests.
func parseSDL(t *testing.T, sdl string) *ast.SchemaDocument {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "test.graphql", Input: sdl})
	require.NoError(t, err, "failed to parse test schema")
	return doc
}

// firstDefinition parses sdl and returns its first type definition.
func firstDefinition(t *testing.T, sdl string) *ast.Definition {
	t.Helper()
	doc := parseSDL(t, sdl)
	require.NotEmpty(t, doc.Definitions, "expected at least one definition")
	return doc.Definitions[0]
}
