package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

func infixNoneEntry(trigger, name string, prec int) *dictionary.Entry {
	n := name
	return &dictionary.Entry{
		Kind:          dictionary.KindInfix,
		Name:          n,
		LatexTrigger:  []string{trigger},
		Precedence:    prec,
		PrecedenceSet: true,
		Associativity: dictionary.AssocNone,
		ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
			return parser.ParseGenericInfix(ctx, lhs, n, prec, dictionary.AssocNone)
		},
	}
}

// relationEntries covers spec.md §4.3.4's relational operators (equality,
// ordering, congruence) at PrecRelation, non-associative so that "a < b < c"
// is flagged per spec.md §4.3.1's chained-comparison diagnostic rather than
// silently accepted as (Less (Less a b) c).
func relationEntries() []*dictionary.Entry {
	rels := []struct {
		triggers []string
		name     string
	}{
		{[]string{"="}, "Equal"},
		{[]string{`\neq`, `\ne`}, "NotEqual"},
		{[]string{"<"}, "Less"},
		{[]string{">"}, "Greater"},
		{[]string{`\leq`, `\le`}, "LessEqual"},
		{[]string{`\geq`, `\ge`}, "GreaterEqual"},
		{[]string{`\ll`}, "MuchLess"},
		{[]string{`\gg`}, "MuchGreater"},
		{[]string{`\approx`}, "Approximately"},
		{[]string{`\sim`}, "Similar"},
		{[]string{`\propto`}, "Proportional"},
	}

	var out []*dictionary.Entry
	for _, r := range rels {
		for _, t := range r.triggers {
			out = append(out, infixNoneEntry(t, r.name, parser.PrecRelation))
		}
	}

	out = append(out, &dictionary.Entry{
		Kind:          dictionary.KindInfix,
		Name:          "Congruent",
		LatexTrigger:  []string{`\equiv`},
		Precedence:    parser.PrecRelation,
		PrecedenceSet: true,
		Associativity: dictionary.AssocNone,
		ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
			return parser.ParseCongruence(ctx, lhs, parser.PrecRelation)
		},
	})

	// Congruent has no trigger of its own beyond the infix entry above —
	// \equiv builds either the two-operand or, when a trailing
	// \pmod{m}/\bmod m follows, the three-operand shape. Both share this
	// Serialize slot, distinguished by arity. Note this is the math
	// congruence relation, distinct from logical equivalence (\iff,
	// \leftrightarrow), which is registered separately as "Equivalent".
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindExpression, Name: "Congruent",
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			base := s.Wrap(e.Op(0), parser.PrecRelation) + ` \equiv ` + s.Wrap(e.Op(1), parser.PrecRelation)
			if e.Arity() < 3 {
				return base
			}
			return base + ` \pmod{` + s.Wrap(e.Op(2), parser.PrecLowest) + `}`
		},
	})

	return out
}
