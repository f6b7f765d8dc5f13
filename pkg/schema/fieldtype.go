package schema

import (
	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/vektah/gqlparser/v2/ast"
)

// scalarPrimitives maps SDL scalar names to model primitives.
var scalarPrimitives = map[string]core.Primitive{
	"String":  core.PrimitiveString,
	"Int":     core.PrimitiveInt,
	"Boolean": core.PrimitiveBoolean,
	"Float":   core.PrimitiveFloat,
	"Date":    core.PrimitiveDate,
	"ID":      core.PrimitiveUUID,
	"Buffer":  core.PrimitiveBuffer,
}

// FieldTypeInfo is the result of unwrapping a field type.
type FieldTypeInfo struct {
	NonNull    bool
	Collection bool
	// Leaf is the named type left after removing the wrappers
	Leaf string
}

// LookupPrimitive returns the primitive for a built-in scalar name.
func LookupPrimitive(name string) (core.Primitive, bool) {
	p, ok := scalarPrimitives[name]
	return p, ok
}

// ResolveFieldType unwraps a field type in a fixed order:
//
//  1. an outer non-null wrapper sets NonNull
//  2. a list wrapper sets Collection; a non-null wrapper on the element is
//     removed and its nullability discarded
//  3. what remains must be a named type
//
// Anything else, such as a nested list, fails with UnexpectedTypeShape.
func ResolveFieldType(node *ast.Type) (FieldTypeInfo, error) {
	if node == nil {
		return FieldTypeInfo{}, core.NewError(core.KindUnexpectedTypeShape, "<nil>", "field type is missing")
	}

	var info FieldTypeInfo
	t := node

	t, info.NonNull = unwrapNonNull(t)
	t, info.Collection = unwrapList(t)
	if info.Collection {
		t, _ = unwrapNonNull(t)
	}

	if !isNamed(t) {
		return FieldTypeInfo{}, core.NewError(core.KindUnexpectedTypeShape, node.String(),
			"expected named type, list of named type or their non-null forms, got %s", node.String())
	}

	info.Leaf = t.NamedType
	return info, nil
}

// MapScalar maps a named type to a primitive, or to a reference to the model
// of that name. References carry the default source name provisionally.
func (d *Deserializer) MapScalar(name string) core.FieldType {
	if p, ok := LookupPrimitive(name); ok {
		return core.PrimitiveType(p)
	}
	return core.ReferenceType(name, d.defaultSource)
}

// unwrapNonNull strips a non-null wrapper.
func unwrapNonNull(t *ast.Type) (*ast.Type, bool) {
	if t == nil || !t.NonNull {
		return t, false
	}
	inner := *t
	inner.NonNull = false
	return &inner, true
}

// unwrapList strips a nullable list wrapper.
func unwrapList(t *ast.Type) (*ast.Type, bool) {
	if t == nil || t.NonNull || t.Elem == nil {
		return t, false
	}
	return t.Elem, true
}

func isNamed(t *ast.Type) bool {
	return t != nil && !t.NonNull && t.Elem == nil && t.NamedType != ""
}
