package schema

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserializeModel_NonNullField(t *testing.T) {
	d := New(Options{DefaultSourceName: "mssql"})
	def := firstDefinition(t, `type Test { id: ID! }`)

	got, err := d.DeserializeModel(def)
	require.NoError(t, err)
	assert.Equal(t, core.Model{
		Name:       "Test",
		Source:     "mssql",
		Directives: []core.Directive{},
		Fields: []core.Field{
			{Name: "id", Type: core.PrimitiveType(core.PrimitiveUUID), NonNull: true, Collection: false, Directives: []core.Directive{}},
		},
	}, got)
}

func TestDeserializeModel_ModelDirectiveWithListArg(t *testing.T) {
	d := New(Options{DefaultSourceName: "mssql"})
	def := firstDefinition(t, `type Test @custom(value:[1]) { id: ID }`)

	got, err := d.DeserializeModel(def)
	require.NoError(t, err)
	assert.Equal(t, []core.Directive{
		{Name: "custom", Args: map[string]core.Value{"value": core.ListValue(core.IntValue(1))}},
	}, got.Directives)

	require.Len(t, got.Fields, 1)
	assert.False(t, got.Fields[0].NonNull)
	assert.False(t, got.Fields[0].Collection)
	assert.Equal(t, core.PrimitiveType(core.PrimitiveUUID), got.Fields[0].Type)
}

func TestDeserializeModel_Source(t *testing.T) {
	tests := []struct {
		name          string
		defaultSource string
		sdl           string
		wantSource    string
		wantErr       bool
		errContains   string
	}{
		{
			name:          "default source",
			defaultSource: "mssql",
			sdl:           `type Test { id: ID }`,
			wantSource:    "mssql",
		},
		{
			name:       "source directive",
			sdl:        `type Test @source(name: "postgres") { id: ID }`,
			wantSource: "postgres",
		},
		{
			name:          "source directive wins over default",
			defaultSource: "mssql",
			sdl:           `type Test @source(name: "postgres") { id: ID }`,
			wantSource:    "postgres",
		},
		{
			name:        "missing source",
			sdl:         `type Test { id: ID }`,
			wantErr:     true,
			errContains: "source not declared in model Test",
		},
		{
			name:          "source directive without name",
			defaultSource: "mssql",
			sdl:           `type Test @source { id: ID }`,
			wantErr:       true,
			errContains:   `requires a "name" argument`,
		},
		{
			name:        "source name must be a string",
			sdl:         `type Test @source(name: 1) { id: ID }`,
			wantErr:     true,
			errContains: "must be a string, got IntValue",
		},
		{
			name:        "empty source name",
			sdl:         `type Test @source(name: "") { id: ID }`,
			wantErr:     true,
			errContains: "source not declared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(Options{DefaultSourceName: tt.defaultSource})

			got, err := d.DeserializeModel(firstDefinition(t, tt.sdl))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, core.ErrMissingSource))
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestDeserializeModel_SourceDirectiveKeptOnModel(t *testing.T) {
	d := New(Options{})
	def := firstDefinition(t, `type Test @source(name: "mssql") @custom { id: ID @source(name: "x") }`)

	got, err := d.DeserializeModel(def)
	require.NoError(t, err)

	require.Len(t, got.Directives, 2)
	assert.Equal(t, core.Directive{
		Name: "source",
		Args: map[string]core.Value{"name": core.StringValue("mssql")},
	}, got.Directives[0])
	assert.Equal(t, "custom", got.Directives[1].Name)

	assert.Empty(t, got.Fields[0].Directives)
}

func TestDeserializeModel_FieldOrderAndRelations(t *testing.T) {
	d := New(Options{DefaultSourceName: "mssql"})
	def := firstDefinition(t, `
		type Post {
			id: ID!
			title: String!
			rating: Float
			published: Boolean!
			createdAt: Date
			cover: Buffer
			views: Int
			author: User!
			tags: [Tag!]!
		}
	`)

	got, err := d.DeserializeModel(def)
	require.NoError(t, err)

	names := make([]string, 0, len(got.Fields))
	for _, f := range got.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "title", "rating", "published", "createdAt", "cover", "views", "author", "tags"}, names)

	tags, ok := got.Field("tags")
	require.True(t, ok)
	assert.True(t, tags.NonNull)
	assert.True(t, tags.Collection)
	assert.Equal(t, core.ReferenceType("Tag", "mssql"), tags.Type)

	assert.Equal(t, []string{"User", "Tag"}, got.References())
}

func TestDeserializeModel_InvalidDefinitionKind(t *testing.T) {
	d := New(Options{DefaultSourceName: "mssql"})

	for _, sdl := range []string{
		`interface Node { id: ID! }`,
		`input Filter { id: ID }`,
		`enum Role { ADMIN USER }`,
	} {
		_, err := d.DeserializeModel(firstDefinition(t, sdl))
		require.Error(t, err, sdl)
		assert.True(t, errors.Is(err, core.ErrInvalidDefinitionKind), sdl)
		assert.Contains(t, err.Error(), "expected ObjectTypeDefinition")
	}

	_, err := d.DeserializeModel(nil)
	assert.True(t, errors.Is(err, core.ErrInvalidDefinitionKind))
}

func TestDeserializeModel_ProviderNamingAppliesToSourceDirective(t *testing.T) {
	// the model directive list is unfiltered, so @source must satisfy the strategy too
	d := New(Options{Naming: ProviderNaming})
	def := firstDefinition(t, `type Test @source(name: "mssql") { id: ID }`)

	_, err := d.DeserializeModel(def)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidDirectiveName))
	assert.Contains(t, err.Error(), "model Test")
}
