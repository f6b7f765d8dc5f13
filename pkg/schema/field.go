package schema

import (
	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/vektah/gqlparser/v2/ast"
)

// DeserializeField builds a field from a field definition node.
// The reserved source directive is never part of a field's directives.
func (d *Deserializer) DeserializeField(node *ast.FieldDefinition) (core.Field, error) {
	if node == nil || node.Type == nil {
		return core.Field{}, core.NewError(core.KindInvalidDefinition, fieldName(node),
			"invalid definition node: expected FieldDefinition")
	}

	info, err := ResolveFieldType(node.Type)
	if err != nil {
		return core.Field{}, withField(err, node.Name)
	}

	directives, err := d.deserializeDirectives(node.Directives, SourceDirective)
	if err != nil {
		return core.Field{}, withField(err, node.Name)
	}

	return core.Field{
		Name:       node.Name,
		Type:       d.MapScalar(info.Leaf),
		NonNull:    info.NonNull,
		Collection: info.Collection,
		Directives: directives,
	}, nil
}

func fieldName(node *ast.FieldDefinition) string {
	if node == nil {
		return "<nil>"
	}
	return node.Name
}

// withField prefixes a core error message with the field it occurred in.
func withField(err error, name string) error {
	if e, ok := err.(*core.Error); ok {
		return &core.Error{Kind: e.Kind, Subject: e.Subject, Message: "field " + name + ": " + e.Message}
	}
	return err
}
