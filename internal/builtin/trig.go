package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

// trigEntries registers every command in parser.TrigCommandNames as a
// KindPrefix entry dispatching to the shared parser.ParseTrig handler
// (spec.md §4.3.6): one dictionary entry per spelling, but a single parse
// strategy shared across all of them.
func trigEntries() []*dictionary.Entry {
	var out []*dictionary.Entry
	for cmd, name := range parser.TrigCommandNames {
		c, n := cmd, name
		out = append(out, &dictionary.Entry{
			Kind:          dictionary.KindPrefix,
			Name:          n,
			LatexTrigger:  []string{c},
			Precedence:    parser.PrecFunctionCall,
			PrecedenceSet: true,
			Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
				return parser.ParseTrig(ctx, c)
			},
			// Only covers the plain Apply(Sin, arg) shape: ParseTrig's
			// prime-derivative and ^{-1} wrapping instead route through the
			// "Derivative"/"InverseFunction" entries' own Serialize, since
			// those wrap the trig symbol as a non-symbol application head.
			Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
				if e.Arity() == 0 {
					return c
				}
				return c + "(" + s.WrapArguments(e) + ")"
			},
		})
	}

	// InverseFunction has no trigger of its own — ParseTrig builds it
	// directly when it sees ^{-1} following a trig command — this entry
	// exists purely to give \sin^{-1}(x)-style expressions a Serialize slot.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindFunction, Name: "InverseFunction",
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			return s.WrapShort(e.Op(0)) + `^{-1}`
		},
	})

	return out
}
