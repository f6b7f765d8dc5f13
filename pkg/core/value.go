package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

// Value kinds. They mirror the literal grammar of the schema language.
const (
	ValueNull ValueKind = iota
	ValueBoolean
	ValueString
	ValueInt
	ValueFloat
	ValueList
	ValueObject
)

// String returns the name of the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueNull:
		return "null"
	case ValueBoolean:
		return "boolean"
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueList:
		return "list"
	case ValueObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a deserialized literal: null, boolean, string (enum literals
// included), integer, float, list or object. The zero Value is null.
type Value struct {
	kind ValueKind
	b    bool
	s    string
	i    int64
	f    float64
	list []Value
	obj  map[string]Value
}

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: ValueBoolean, b: b} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: ValueString, s: s} }

// IntValue returns an integer value.
func IntValue(i int64) Value { return Value{kind: ValueInt, i: i} }

// FloatValue returns a float value.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, f: f} }

// ListValue returns a list holding the given elements in order.
func ListValue(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: ValueList, list: elems}
}

// ObjectValue returns an object value. A nil map yields an empty object.
func ObjectValue(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: ValueObject, obj: fields}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == ValueNull }

// Bool returns the boolean payload.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == ValueBoolean }

// Str returns the string payload.
func (v Value) Str() (string, bool) { return v.s, v.kind == ValueString }

// Int returns the integer payload.
func (v Value) Int() (int64, bool) { return v.i, v.kind == ValueInt }

// Float returns the float payload.
func (v Value) Float() (float64, bool) { return v.f, v.kind == ValueFloat }

// List returns the list elements.
func (v Value) List() ([]Value, bool) { return v.list, v.kind == ValueList }

// Object returns the object fields.
func (v Value) Object() (map[string]Value, bool) { return v.obj, v.kind == ValueObject }

// Interface converts v into plain Go values: nil, bool, string, int64,
// float64, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case ValueBoolean:
		return v.b
	case ValueString:
		return v.s
	case ValueInt:
		return v.i
	case ValueFloat:
		return v.f
	case ValueList:
		out := make([]any, len(v.list))
		for i, elem := range v.list {
			out[i] = elem.Interface()
		}
		return out
	case ValueObject:
		out := make(map[string]any, len(v.obj))
		for k, elem := range v.obj {
			out[k] = elem.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders v in schema literal syntax. Object keys are sorted.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case ValueNull:
		sb.WriteString("null")
	case ValueBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case ValueString:
		sb.WriteString(strconv.Quote(v.s))
	case ValueInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case ValueFloat:
		sb.WriteString(formatFloat(v.f))
	case ValueList:
		sb.WriteByte('[')
		for i, elem := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			elem.write(sb)
		}
		sb.WriteByte(']')
	case ValueObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			v.obj[k].write(sb)
		}
		sb.WriteByte('}')
	}
}

// MarshalJSON encodes v as the matching JSON value. Floats always carry a
// fraction or exponent so they decode back as floats.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueNull:
		return []byte("null"), nil
	case ValueBoolean:
		return json.Marshal(v.b)
	case ValueString:
		return json.Marshal(v.s)
	case ValueInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case ValueFloat:
		if _, err := json.Marshal(v.f); err != nil {
			return nil, err
		}
		return []byte(formatFloat(v.f)), nil
	case ValueList:
		return json.Marshal(v.list)
	case ValueObject:
		return json.Marshal(v.obj)
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.kind)
	}
}

// UnmarshalJSON decodes any JSON value. Numbers without a fraction or
// exponent decode as integers when they fit in int64.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	out, err := valueFromJSON(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// MarshalYAML encodes v through its plain Go representation.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

func valueFromJSON(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(x), nil
	case string:
		return StringValue(x), nil
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return IntValue(i), nil
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		return FloatValue(f), nil
	case []any:
		elems := make([]Value, 0, len(x))
		for _, item := range x {
			elem, err := valueFromJSON(item)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, elem)
		}
		return ListValue(elems...), nil
	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, item := range x {
			elem, err := valueFromJSON(item)
			if err != nil {
				return Value{}, err
			}
			fields[k] = elem
		}
		return ObjectValue(fields), nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON value %T", raw)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
