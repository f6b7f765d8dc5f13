package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/leapgql/pkg/core"
)

// FormatDirective renders a directive in schema syntax.
func FormatDirective(d core.Directive) string {
	name := d.Name
	if d.Provider != "" {
		name = d.Provider + "_" + d.Name
	}
	if len(d.Args) == 0 {
		return "@" + name
	}

	keys := make([]string, 0, len(d.Args))
	for k := range d.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, len(keys))
	for i, k := range keys {
		args[i] = k + ": " + d.Args[k].String()
	}
	return fmt.Sprintf("@%s(%s)", name, strings.Join(args, ", "))
}

// FormatFieldType renders a field's type with its wrappers, e.g. [Post]!.
func FormatFieldType(f core.Field) string {
	s := f.Type.String()
	if f.Collection {
		s = "[" + s + "]"
	}
	if f.NonNull {
		s += "!"
	}
	return s
}

func formatDirectives(list []core.Directive) string {
	parts := make([]string, len(list))
	for i, d := range list {
		parts[i] = FormatDirective(d)
	}
	return strings.Join(parts, " ")
}

func fieldRows(m core.Model) [][]string {
	rows := make([][]string, len(m.Fields))
	for i, f := range m.Fields {
		rows[i] = []string{f.Name, FormatFieldType(f), formatDirectives(f.Directives)}
	}
	return rows
}

var fieldHeader = []string{"Field", "Type", "Directives"}

// Models renders models in text or markdown mode.
func (r *Renderer) Models(models []core.Model) {
	if r.EffectiveMode() == ModeMarkdown {
		r.modelsMarkdown(models)
		return
	}
	r.modelsText(models)
}

func (r *Renderer) modelsText(models []core.Model) {
	for _, m := range models {
		r.Println("")
		r.Println(r.styles.Header2.Render(m.Name) + " " + r.styles.Muted.Render("("+m.Source+")"))
		if len(m.Directives) > 0 {
			r.Println(r.styles.Muted.Render("  " + formatDirectives(m.Directives)))
		}
		if len(m.Fields) > 0 {
			r.Table(fieldHeader, fieldRows(m))
		}
	}
}

func (r *Renderer) modelsMarkdown(models []core.Model) {
	for _, m := range models {
		r.Println("")
		r.Println(FormatHeader(2, m.Name))
		r.Println("")
		r.Println(FormatKeyValue("Source", m.Source))
		if len(m.Directives) > 0 {
			r.Println(FormatKeyValue("Directives", "`"+formatDirectives(m.Directives)+"`"))
		}
		if len(m.Fields) > 0 {
			r.Println("")
			r.Table(fieldHeader, fieldRows(m))
		}
	}
}
