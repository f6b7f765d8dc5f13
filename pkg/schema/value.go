package schema

import (
	"errors"
	"math"
	"strconv"

	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/vektah/gqlparser/v2/ast"
)

// DeserializeValue converts a literal value node into a core.Value.
//
// Boolean, enum and string literals keep their raw text (enums are not
// distinguished from strings). Int and float literals are parsed base 10.
// Object fields are keyed by name with the last duplicate winning.
func DeserializeValue(node *ast.Value) (core.Value, error) {
	if node == nil {
		return core.Value{}, core.NewError(core.KindUnsupportedValue, "<nil>", "value node is missing")
	}

	switch node.Kind {
	case ast.BooleanValue:
		return core.BoolValue(node.Raw == "true"), nil
	case ast.EnumValue, ast.StringValue, ast.BlockValue:
		return core.StringValue(node.Raw), nil
	case ast.FloatValue:
		return parseFloatLiteral(node.Raw)
	case ast.IntValue:
		i, err := strconv.ParseInt(node.Raw, 10, 64)
		if err != nil {
			// Out of int64 range: keep the magnitude as a float
			return parseFloatLiteral(node.Raw)
		}
		return core.IntValue(i), nil
	case ast.NullValue:
		return core.NullValue(), nil
	case ast.ObjectValue:
		return deserializeObjectValue(node)
	case ast.ListValue:
		return deserializeListValue(node)
	default:
		kind := valueKindName(node.Kind)
		return core.Value{}, core.NewError(core.KindUnsupportedValue, kind, "value type %s not implemented", kind)
	}
}

func deserializeObjectValue(node *ast.Value) (core.Value, error) {
	fields := make(map[string]core.Value, len(node.Children))
	for _, child := range node.Children {
		v, err := DeserializeValue(child.Value)
		if err != nil {
			return core.Value{}, err
		}
		fields[child.Name] = v
	}
	return core.ObjectValue(fields), nil
}

func deserializeListValue(node *ast.Value) (core.Value, error) {
	elems := make([]core.Value, 0, len(node.Children))
	for _, child := range node.Children {
		v, err := DeserializeValue(child.Value)
		if err != nil {
			return core.Value{}, err
		}
		elems = append(elems, v)
	}
	return core.ListValue(elems...), nil
}

func parseFloatLiteral(raw string) (core.Value, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return core.Value{}, core.NewError(core.KindUnsupportedValue, raw, "invalid numeric literal %q", raw)
	}
	// Underflow rounds to zero; overflow has no finite representation.
	if math.IsInf(f, 0) {
		return core.Value{}, core.NewError(core.KindUnsupportedValue, raw, "numeric literal %s is out of float64 range", raw)
	}
	return core.FloatValue(f), nil
}

func valueKindName(kind ast.ValueKind) string {
	switch kind {
	case ast.Variable:
		return "Variable"
	case ast.IntValue:
		return "IntValue"
	case ast.FloatValue:
		return "FloatValue"
	case ast.StringValue:
		return "StringValue"
	case ast.BlockValue:
		return "BlockValue"
	case ast.BooleanValue:
		return "BooleanValue"
	case ast.NullValue:
		return "NullValue"
	case ast.EnumValue:
		return "EnumValue"
	case ast.ListValue:
		return "ListValue"
	case ast.ObjectValue:
		return "ObjectValue"
	default:
		return "ValueKind(" + strconv.Itoa(int(kind)) + ")"
	}
}
