package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/parser"
)

// setEntries covers spec.md §4.3.4's set-theory operators: membership and
// subset relations bind at PrecSetRelation, the set-algebra operations
// (union, intersection, difference) bind tighter at PrecSetOperation, per
// spec.md §4.2's precedence table.
func setEntries() []*dictionary.Entry {
	rels := []struct {
		triggers []string
		name     string
	}{
		{[]string{`\in`}, "Element"},
		{[]string{`\notin`}, "NotElement"},
		{[]string{`\subset`}, "Subset"},
		{[]string{`\subseteq`}, "SubsetEqual"},
		{[]string{`\supset`}, "Superset"},
		{[]string{`\supseteq`}, "SupersetEqual"},
	}

	var out []*dictionary.Entry
	for _, r := range rels {
		for _, t := range r.triggers {
			out = append(out, infixNoneEntry(t, r.name, parser.PrecSetRelation))
		}
	}

	// Cartesian product deliberately does not claim "\times": that trigger
	// already produces Multiply (arithmetic.go) and a dictionary trigger
	// bucket only ever dispatches its most-recently-registered entry, so a
	// second "\times" here would silently shadow ordinary multiplication.
	ops := []struct {
		triggers []string
		name     string
		assoc    dictionary.Associativity
	}{
		{[]string{`\cup`}, "Union", dictionary.AssocAny},
		{[]string{`\cap`}, "Intersection", dictionary.AssocAny},
		{[]string{`\setminus`}, "SetMinus", dictionary.AssocLeft},
	}
	for _, o := range ops {
		for _, t := range o.triggers {
			out = append(out, infixEntry(t, o.name, parser.PrecSetOperation, o.assoc))
		}
	}

	return out
}
