package core

// Model represents one object type of a schema document.
// Models are built fresh per parse and never mutated afterwards.
type Model struct {
	// Name is the object type name, unique within a document
	Name string `json:"name" yaml:"name"`
	// Source identifies the data source the model is mapped to
	Source string `json:"source" yaml:"source"`
	// Fields in declaration order
	Fields []Field `json:"fields" yaml:"fields"`
	// Directives in declaration order, including the reserved source directive
	Directives []Directive `json:"directives" yaml:"directives"`
}

// Field represents a single field of a model.
//
// NonNull and Collection describe the outer wrappers only: the nullability of
// list elements ([T!]) is not tracked.
type Field struct {
	Name       string      `json:"name" yaml:"name"`
	Type       FieldType   `json:"type" yaml:"type"`
	NonNull    bool        `json:"nonNull" yaml:"nonNull"`
	Collection bool        `json:"collection" yaml:"collection"`
	Directives []Directive `json:"directives" yaml:"directives"`
}

// Directive is a deserialized @name(...) annotation.
type Directive struct {
	// Provider is only set when the directive naming strategy splits
	// <provider>_<name> annotation names.
	Provider string           `json:"provider,omitempty" yaml:"provider,omitempty"`
	Name     string           `json:"name" yaml:"name"`
	Args     map[string]Value `json:"args" yaml:"args"`
}

// Field returns the field with the given name.
func (m *Model) Field(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Directive returns the first directive with the given name.
func (m *Model) Directive(name string) (Directive, bool) {
	return findDirective(m.Directives, name)
}

// Directive returns the first directive with the given name.
func (f *Field) Directive(name string) (Directive, bool) {
	return findDirective(f.Directives, name)
}

// References returns the names of the models referenced by relation fields,
// in field order and without duplicates.
func (m *Model) References() []string {
	var refs []string
	seen := make(map[string]struct{})
	for _, f := range m.Fields {
		ref := f.Type.Reference
		if ref == nil {
			continue
		}
		if _, ok := seen[ref.Model]; ok {
			continue
		}
		seen[ref.Model] = struct{}{}
		refs = append(refs, ref.Model)
	}
	return refs
}

func findDirective(directives []Directive, name string) (Directive, bool) {
	for _, d := range directives {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}
