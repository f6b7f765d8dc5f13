package schema

import (
	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/vektah/gqlparser/v2/ast"
)

// DeserializeModel builds a model from an object type definition.
//
// The model source comes from @source(name: "...") when present, otherwise
// from the default source name. Fields keep document order. The model's own
// directive list is unfiltered and includes the source directive.
func (d *Deserializer) DeserializeModel(def *ast.Definition) (core.Model, error) {
	if def == nil {
		return core.Model{}, core.NewError(core.KindInvalidDefinition, "<nil>",
			"invalid definition node: expected ObjectTypeDefinition")
	}
	if def.Kind != ast.Object {
		kind := definitionKindName(def.Kind)
		return core.Model{}, core.NewError(core.KindInvalidDefinition, kind,
			"invalid definition node: expected ObjectTypeDefinition and received %s", kind)
	}

	source, err := d.resolveSource(def)
	if err != nil {
		return core.Model{}, err
	}

	fields := make([]core.Field, 0, len(def.Fields))
	for _, node := range def.Fields {
		field, err := d.DeserializeField(node)
		if err != nil {
			return core.Model{}, withModel(err, def.Name)
		}
		fields = append(fields, field)
	}

	directives, err := d.deserializeDirectives(def.Directives)
	if err != nil {
		return core.Model{}, withModel(err, def.Name)
	}

	return core.Model{
		Name:       def.Name,
		Source:     source,
		Fields:     fields,
		Directives: directives,
	}, nil
}

// resolveSource reads the source directive, falling back to the default.
// A present source directive is authoritative: its name argument must be a
// non-empty string literal.
func (d *Deserializer) resolveSource(def *ast.Definition) (string, error) {
	directive := def.Directives.ForName(SourceDirective)
	if directive == nil {
		if d.defaultSource == "" {
			return "", core.NewError(core.KindMissingSource, def.Name, "source not declared in model %s", def.Name)
		}
		return d.defaultSource, nil
	}

	arg := directive.Arguments.ForName(SourceArgument)
	if arg == nil || arg.Value == nil {
		return "", core.NewError(core.KindMissingSource, def.Name,
			"source not declared in model %s: @%s requires a %q argument", def.Name, SourceDirective, SourceArgument)
	}
	if arg.Value.Kind != ast.StringValue && arg.Value.Kind != ast.BlockValue {
		return "", core.NewError(core.KindMissingSource, def.Name,
			"source not declared in model %s: @%s(%s:) must be a string, got %s",
			def.Name, SourceDirective, SourceArgument, valueKindName(arg.Value.Kind))
	}
	if arg.Value.Raw == "" {
		return "", core.NewError(core.KindMissingSource, def.Name, "source not declared in model %s", def.Name)
	}
	return arg.Value.Raw, nil
}

// withModel prefixes a core error message with the model it occurred in.
func withModel(err error, name string) error {
	if e, ok := err.(*core.Error); ok {
		return &core.Error{Kind: e.Kind, Subject: e.Subject, Message: "model " + name + ": " + e.Message}
	}
	return err
}

func definitionKindName(kind ast.DefinitionKind) string {
	switch kind {
	case ast.Object:
		return "ObjectTypeDefinition"
	case ast.Interface:
		return "InterfaceTypeDefinition"
	case ast.Union:
		return "UnionTypeDefinition"
	case ast.Enum:
		return "EnumTypeDefinition"
	case ast.Scalar:
		return "ScalarTypeDefinition"
	case ast.InputObject:
		return "InputObjectTypeDefinition"
	default:
		return string(kind)
	}
}
