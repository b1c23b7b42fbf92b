package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

// logicEntries covers spec.md §4.3.7's propositional connectives, each at
// the precedence spec.md §4.2's table assigns so that, e.g., "a \land b
// \lor c" groups as "(a \land b) \lor c" without an explicit grouping.
func logicEntries() []*dictionary.Entry {
	out := []*dictionary.Entry{
		infixEntry(`\land`, "And", parser.PrecAnd, dictionary.AssocAny),
		infixEntry(`\wedge`, "And", parser.PrecAnd, dictionary.AssocAny),
		infixEntry(`\lor`, "Or", parser.PrecOr, dictionary.AssocAny),
		infixEntry(`\vee`, "Or", parser.PrecOr, dictionary.AssocAny),
		infixEntry(`\oplus`, "Xor", parser.PrecXorNandNor, dictionary.AssocAny),
		infixEntry(`\to`, "Implies", parser.PrecImplies, dictionary.AssocRight),
		infixEntry(`\implies`, "Implies", parser.PrecImplies, dictionary.AssocRight),
		infixEntry(`\iff`, "Equivalent", parser.PrecEquivalent, dictionary.AssocAny),
		infixEntry(`\leftrightarrow`, "Equivalent", parser.PrecEquivalent, dictionary.AssocAny),
	}

	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindPrefix, Name: "Not",
		LatexTrigger: []string{`\neg`}, Precedence: parser.PrecNot, PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericPrefix(ctx, "Not", parser.PrecNot)
		},
	})
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindPrefix, Name: "NotLnot",
		LatexTrigger: []string{`\lnot`}, Precedence: parser.PrecNot, PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericPrefix(ctx, "Not", parser.PrecNot)
		},
	})

	return out
}
