package schema

import (
	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/vektah/gqlparser/v2/ast"
)

// DeserializeDirective converts an annotation node into a core.Directive.
// The raw name goes through the configured naming strategy; arguments are
// keyed by name and a repeated name overwrites the earlier value.
func (d *Deserializer) DeserializeDirective(node *ast.Directive) (core.Directive, error) {
	if node == nil {
		return core.Directive{}, core.NewError(core.KindInvalidDefinition, "<nil>", "directive node is missing")
	}

	provider, name, err := d.naming(node.Name)
	if err != nil {
		return core.Directive{}, err
	}

	args := make(map[string]core.Value, len(node.Arguments))
	for _, arg := range node.Arguments {
		v, err := DeserializeValue(arg.Value)
		if err != nil {
			return core.Directive{}, err
		}
		args[arg.Name] = v
	}

	return core.Directive{
		Provider: provider,
		Name:     name,
		Args:     args,
	}, nil
}

// deserializeDirectives converts a directive list, skipping reserved names.
func (d *Deserializer) deserializeDirectives(list ast.DirectiveList, skip ...string) ([]core.Directive, error) {
	out := make([]core.Directive, 0, len(list))
	for _, node := range list {
		if node != nil && isReserved(node.Name, skip) {
			continue
		}
		directive, err := d.DeserializeDirective(node)
		if err != nil {
			return nil, err
		}
		out = append(out, directive)
	}
	return out, nil
}

func isReserved(name string, reserved []string) bool {
	for _, r := range reserved {
		if name == r {
			return true
		}
	}
	return false
}
