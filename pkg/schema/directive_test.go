package schema

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestDeserializeDirective_PlainNaming(t *testing.T) {
	d := New(Options{})

	tests := []struct {
		name string
		sdl  string
		want core.Directive
	}{
		{
			name: "without args",
			sdl:  `type Test @custom { id: ID! }`,
			want: core.Directive{Name: "custom", Args: map[string]core.Value{}},
		},
		{
			name: "string arg",
			sdl:  `type Test @custom(value: "test") { id: ID! }`,
			want: core.Directive{Name: "custom", Args: map[string]core.Value{"value": core.StringValue("test")}},
		},
		{
			name: "object arg",
			sdl:  `type Test @custom(value: {test: 1}) { id: ID! }`,
			want: core.Directive{Name: "custom", Args: map[string]core.Value{
				"value": core.ObjectValue(map[string]core.Value{"test": core.IntValue(1)}),
			}},
		},
		{
			name: "underscore kept in name",
			sdl:  `type Test @mssql_table(name: "tests") { id: ID! }`,
			want: core.Directive{Name: "mssql_table", Args: map[string]core.Value{"name": core.StringValue("tests")}},
		},
		{
			name: "repeated argument keeps last",
			sdl:  `type Test @custom(value: 1, value: 2) { id: ID! }`,
			want: core.Directive{Name: "custom", Args: map[string]core.Value{"value": core.IntValue(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := firstDefinition(t, tt.sdl)
			got, err := d.DeserializeDirective(def.Directives[0])
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeserializeDirective_ProviderNaming(t *testing.T) {
	d := New(Options{Naming: ProviderNaming})

	def := firstDefinition(t, `type Test @mssql_column_name(value: "id") @SQL_Index { id: ID! }`)

	got, err := d.DeserializeDirective(def.Directives[0])
	require.NoError(t, err)
	assert.Equal(t, core.Directive{
		Provider: "mssql",
		Name:     "column_name",
		Args:     map[string]core.Value{"value": core.StringValue("id")},
	}, got)

	got, err = d.DeserializeDirective(def.Directives[1])
	require.NoError(t, err)
	assert.Equal(t, "SQL", got.Provider)
	assert.Equal(t, "Index", got.Name)
}

func TestDeserializeDirective_ProviderNamingRejectsPlainName(t *testing.T) {
	d := New(Options{Naming: ProviderNaming})

	for _, sdl := range []string{
		`type Test @custom { id: ID! }`,
		`type Test @_custom { id: ID! }`,
		`type Test @custom_ { id: ID! }`,
	} {
		def := firstDefinition(t, sdl)
		_, err := d.DeserializeDirective(def.Directives[0])
		require.Error(t, err, sdl)
		assert.True(t, errors.Is(err, core.ErrInvalidDirectiveName), sdl)
		assert.Contains(t, err.Error(), "@<provider>_<name>")
	}
}

func TestDeserializeDirective_ArgumentValueError(t *testing.T) {
	d := New(Options{})
	def := firstDefinition(t, `type Test @custom(value: [1, 2]) { id: ID! }`)
	def.Directives[0].Arguments[0].Value.Children[1].Value.Kind = ast.Variable

	_, err := d.DeserializeDirective(def.Directives[0])
	assert.True(t, errors.Is(err, core.ErrUnsupportedValueKind))
}
