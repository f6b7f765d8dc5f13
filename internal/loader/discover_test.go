package loader

import (
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/leapgql/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"schema/simple-model.graphql":   "type A { id: ID }",
		"schema/simple-other.graphql":   "type B { id: ID }",
		"schema/complex.gql":            "type C { id: ID }",
		"schema/nested/deep.graphql":    "type D { id: ID }",
		"schema/nested/notes.txt":       "ignore me",
		"other/outside.graphql":         "type E { id: ID }",
		"schema/nested/more/x.graphql":  "type F { id: ID }",
		"schema/nested/more/readme.md":  "ignore me",
		"schema/nested/more/y.graphqls": "type G { id: ID }",
	})
	return dir
}

func rel(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestDiscover(t *testing.T) {
	dir := setupTree(t)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "single file",
			pattern: "schema/simple-model.graphql",
			want:    []string{"schema/simple-model.graphql"},
		},
		{
			name:    "star stays in segment",
			pattern: "schema/simple-*.graphql",
			want:    []string{"schema/simple-model.graphql", "schema/simple-other.graphql"},
		},
		{
			name:    "double star matches zero or more directories",
			pattern: "schema/**/*.graphql",
			want: []string{
				"schema/nested/deep.graphql",
				"schema/nested/more/x.graphql",
				"schema/simple-model.graphql",
				"schema/simple-other.graphql",
			},
		},
		{
			name:    "alternatives",
			pattern: "schema/*.{graphql,gql}",
			want:    []string{"schema/complex.gql", "schema/simple-model.graphql", "schema/simple-other.graphql"},
		},
		{
			name:    "no match",
			pattern: "schema/*.json",
			want:    []string{},
		},
		{
			name:    "missing file",
			pattern: "schema/missing.graphql",
			want:    []string{},
		},
		{
			name:    "missing root",
			pattern: "nowhere/*.graphql",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Discover(filepath.Join(dir, filepath.FromSlash(tt.pattern)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, dir, got))
		})
	}
}

func TestDiscover_Errors(t *testing.T) {
	_, err := Discover("  ")
	assert.Error(t, err)
}

func TestStaticPrefix(t *testing.T) {
	tests := map[string]string{
		"*.graphql":             ".",
		"schema/*.graphql":      "schema",
		"schema/a/**/*.graphql": "schema/a",
		"/abs/dir/x?.gql":       "/abs/dir",
		"/*.gql":                "/",
	}
	for pattern, want := range tests {
		assert.Equal(t, want, staticPrefix(pattern), pattern)
	}
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher("schema/**/*.graphql")
	require.NoError(t, err)
	assert.Equal(t, "schema", m.Root())
	assert.True(t, m.Match("schema/user.graphql"))
	assert.True(t, m.Match("schema/a/b/user.graphql"))
	assert.True(t, m.Match("./schema/user.graphql"))
	assert.False(t, m.Match("schema/user.gql"))
	assert.False(t, m.Match("other/user.graphql"))

	literal, err := NewMatcher("schema/user.graphql")
	require.NoError(t, err)
	assert.Equal(t, "schema", literal.Root())
	assert.True(t, literal.Match("schema/user.graphql"))
	assert.False(t, literal.Match("schema/post.graphql"))

	bare, err := NewMatcher("schema.graphql")
	require.NoError(t, err)
	assert.Equal(t, ".", bare.Root())
	assert.False(t, bare.Recursive())
}

func TestMatcher_Recursive(t *testing.T) {
	tests := map[string]bool{
		"schema.graphql":           false,
		"schema/user.graphql":      false,
		"*.graphql":                false,
		"schema/*.graphql":         false,
		"/*.gql":                   false,
		"schema/*/user.graphql":    true,
		"schema/**/*.graphql":      true,
		"**/*.graphql":             true,
		"schema/{a,b/c}/*.graphql": true,
	}
	for pattern, want := range tests {
		m, err := NewMatcher(pattern)
		require.NoError(t, err, pattern)
		assert.Equal(t, want, m.Recursive(), pattern)
	}
}
