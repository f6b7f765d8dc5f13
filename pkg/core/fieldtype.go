package core

import (
	"encoding/json"
	"fmt"
)

// Primitive is one of the built-in scalar kinds understood by the data model.
type Primitive string

// Primitive constants.
const (
	PrimitiveString  Primitive = "string"
	PrimitiveInt     Primitive = "int"
	PrimitiveBoolean Primitive = "boolean"
	PrimitiveFloat   Primitive = "float"
	PrimitiveDate    Primitive = "date"
	PrimitiveUUID    Primitive = "uuid"
	PrimitiveBuffer  Primitive = "buffer"
)

// Primitives lists every primitive in declaration order.
var Primitives = []Primitive{
	PrimitiveString,
	PrimitiveInt,
	PrimitiveBoolean,
	PrimitiveFloat,
	PrimitiveDate,
	PrimitiveUUID,
	PrimitiveBuffer,
}

// Valid reports whether p belongs to the closed primitive set.
func (p Primitive) Valid() bool {
	for _, known := range Primitives {
		if p == known {
			return true
		}
	}
	return false
}

// Reference names another model. It is a weak, string-keyed relation:
// the referenced model is never resolved or validated.
type Reference struct {
	Model string `json:"model" yaml:"model"`
	// Source is the data source the referenced model is expected to live in.
	// It is provisional: it carries the configured default source name and is
	// not reconciled against the target model.
	Source string `json:"source" yaml:"source"`
}

// FieldType is the resolved leaf type of a field: either a Primitive or a
// Reference. Exactly one of the two is set.
type FieldType struct {
	Primitive Primitive
	Reference *Reference
}

// PrimitiveType returns a FieldType holding a primitive.
func PrimitiveType(p Primitive) FieldType {
	return FieldType{Primitive: p}
}

// ReferenceType returns a FieldType referencing another model.
func ReferenceType(model, source string) FieldType {
	return FieldType{Reference: &Reference{Model: model, Source: source}}
}

// IsReference reports whether the type is a relation to another model.
func (t FieldType) IsReference() bool {
	return t.Reference != nil
}

// String returns the primitive tag, or the referenced model name.
func (t FieldType) String() string {
	if t.Reference != nil {
		return t.Reference.Model
	}
	return string(t.Primitive)
}

// MarshalJSON encodes a primitive as its tag and a reference as an object.
func (t FieldType) MarshalJSON() ([]byte, error) {
	if t.Reference != nil {
		return json.Marshal(t.Reference)
	}
	return json.Marshal(string(t.Primitive))
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		p := Primitive(tag)
		if !p.Valid() {
			return fmt.Errorf("unknown primitive %q", tag)
		}
		*t = FieldType{Primitive: p}
		return nil
	}

	var ref Reference
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("invalid field type: %w", err)
	}
	if ref.Model == "" {
		return fmt.Errorf("invalid field type: reference without model")
	}
	*t = FieldType{Reference: &ref}
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (t FieldType) MarshalYAML() (interface{}, error) {
	if t.Reference != nil {
		return t.Reference, nil
	}
	return string(t.Primitive), nil
}
