package schema

import (
	"sort"

	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/vektah/gqlparser/v2/ast"
)

// DeserializeDocument builds one model per object type definition of doc, in
// document order. Any other top-level definition fails the whole document with
// UnsupportedDefinitionKind; no partial result is returned.
//
// path identifies the document for the observer only.
func (d *Deserializer) DeserializeDocument(path string, doc *ast.SchemaDocument) ([]core.Model, error) {
	d.observer.FileStarted(path)

	if doc == nil {
		return []core.Model{}, nil
	}

	if kind, ok := firstUnsupported(doc); ok {
		return nil, core.NewError(core.KindUnsupportedDefinition, kind, "unsupported definition type: %s", kind)
	}

	models := make([]core.Model, 0, len(doc.Definitions))
	for _, def := range doc.Definitions {
		m, err := d.DeserializeModel(def)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	for _, m := range models {
		d.observer.ModelProduced(path, m)
	}

	return models, nil
}

// unsupported is a top-level definition that cannot become a model.
type unsupported struct {
	kind   string
	offset int
}

// firstUnsupported returns the kind of the earliest top-level definition that
// is not an object type definition.
func firstUnsupported(doc *ast.SchemaDocument) (string, bool) {
	var found []unsupported

	for _, def := range doc.Definitions {
		if def.Kind != ast.Object {
			found = append(found, unsupported{definitionKindName(def.Kind), offset(def.Position)})
		}
	}
	for _, def := range doc.Extensions {
		found = append(found, unsupported{extensionKindName(def.Kind), offset(def.Position)})
	}
	for _, def := range doc.Directives {
		found = append(found, unsupported{"DirectiveDefinition", offset(def.Position)})
	}
	for _, def := range doc.Schema {
		found = append(found, unsupported{"SchemaDefinition", offset(def.Position)})
	}
	for _, def := range doc.SchemaExtension {
		found = append(found, unsupported{"SchemaExtension", offset(def.Position)})
	}

	if len(found) == 0 {
		return "", false
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].offset < found[j].offset })
	return found[0].kind, true
}

func offset(pos *ast.Position) int {
	if pos == nil {
		return 0
	}
	return pos.Start
}

func extensionKindName(kind ast.DefinitionKind) string {
	switch kind {
	case ast.Object:
		return "ObjectTypeExtension"
	case ast.Interface:
		return "InterfaceTypeExtension"
	case ast.Union:
		return "UnionTypeExtension"
	case ast.Enum:
		return "EnumTypeExtension"
	case ast.Scalar:
		return "ScalarTypeExtension"
	case ast.InputObject:
		return "InputObjectTypeExtension"
	default:
		return string(kind) + "Extension"
	}
}
