package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

func infixEntry(trigger, name string, prec int, assoc dictionary.Associativity) *dictionary.Entry {
	n := name
	a := assoc
	return &dictionary.Entry{
		Kind:          dictionary.KindInfix,
		Name:          n,
		LatexTrigger:  []string{trigger},
		Precedence:    prec,
		PrecedenceSet: true,
		Associativity: a,
		ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
			return parser.ParseGenericInfix(ctx, lhs, n, prec, a)
		},
	}
}

func prefixEntry(trigger, name string, prec int) *dictionary.Entry {
	n := name
	return &dictionary.Entry{
		Kind:          dictionary.KindPrefix,
		Name:          n + "Prefix",
		LatexTrigger:  []string{trigger},
		Precedence:    prec,
		PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericPrefix(ctx, n, prec)
		},
	}
}

// arithmeticEntries covers spec.md §4.3.1's scenario-1 operator set: the
// four basic operations (with every LaTeX spelling of multiplication and
// division), unary sign, exponentiation (handled by the sigil-triggered
// superscript fallback in script.go, not here), factorial, and \sqrt.
func arithmeticEntries() []*dictionary.Entry {
	out := []*dictionary.Entry{
		infixEntry("+", "Add", parser.PrecAddition, dictionary.AssocAny),
		infixEntry("-", "Subtract", parser.PrecAddition, dictionary.AssocLeft),
		infixEntry("*", "Multiply", parser.PrecMultiplication, dictionary.AssocAny),
		{
			Kind: dictionary.KindPrefix, Name: "NegatePrefix",
			LatexTrigger: []string{"-"}, Precedence: parser.PrecNegate, PrecedenceSet: true,
			Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
				return parser.ParseGenericPrefix(ctx, "Negate", parser.PrecNegate)
			},
		},
		prefixEntry("+", "Identity", parser.PrecNegate),
	}

	for _, sp := range []string{`\times`, `\cdot`} {
		out = append(out, infixEntry(sp, "Multiply", parser.PrecMultiplication, dictionary.AssocAny))
	}
	for _, sp := range []string{"/", `\div`} {
		out = append(out, infixEntry(sp, "Divide", parser.PrecDivision, dictionary.AssocLeft))
	}
	out = append(out, infixEntry(`\pm`, "PlusMinus", parser.PrecAddition, dictionary.AssocLeft))
	out = append(out, infixEntry(`\mp`, "MinusPlus", parser.PrecAddition, dictionary.AssocLeft))

	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindPostfix, Name: "Factorial",
		LatexTrigger: []string{"!"}, Precedence: parser.PrecPostfix, PrecedenceSet: true,
		ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
			return parser.ParseGenericPostfix(lhs, "Factorial")
		},
	})

	out = append(out, &dictionary.Entry{
		Kind:         dictionary.KindFunction,
		Name:         "Sqrt",
		LatexTrigger: []string{`\sqrt`},
		Arguments:    dictionary.ArgumentsEnclosure,
		Parse:        parseSqrt,
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			return `\sqrt{` + s.Wrap(e.Op(0), parser.PrecLowest) + `}`
		},
	})
	// Root has no trigger of its own — \sqrt[n]{x} constructs it directly
	// (parseSqrt above) rather than dispatching through the dictionary —
	// this entry exists purely to give it a Serialize slot.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindFunction, Name: "Root",
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			return `\sqrt[` + s.WrapShort(e.Op(1)) + `]{` + s.Wrap(e.Op(0), parser.PrecLowest) + `}`
		},
	})

	// \frac is a prefix construct: it opens its own two argument groups
	// rather than taking a left operand. Registered after "/" so it wins
	// the Divide name's serialize slot (spec.md §4.2 last-wins policy),
	// since \frac{a}{b} is the more natural LaTeX rendering of a division.
	out = append(out, &dictionary.Entry{
		Kind:          dictionary.KindPrefix,
		Name:          "Divide",
		LatexTrigger:  []string{`\frac`},
		Precedence:    parser.PrecFunctionCall,
		PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseFraction(ctx)
		},
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			return `\frac{` + s.Wrap(e.Op(0), parser.PrecLowest) + `}{` + s.Wrap(e.Op(1), parser.PrecLowest) + `}`
		},
	})

	return out
}

// parseSqrt implements the optional-degree form \sqrt[n]{x} alongside the
// plain \sqrt{x} (spec.md §4.1). The bracketed degree is consumed as a
// generic group since "[" is a plain literal token, not a matchfix one,
// between \sqrt and its mandatory radicand.
func parseSqrt(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
	p, ok := ctx.(*parser.Parser)
	if !ok {
		return nil
	}

	var degree *expr.Expression
	if p.Optional(token.KindLiteral, "[") {
		degree = p.ParseExpression(parser.PrecLowest)
		p.Optional(token.KindLiteral, "]")
	}

	radicand := p.ParseGroupOrAtom()
	if radicand == nil {
		radicand = expr.MissingOperand()
	}

	if degree != nil {
		return expr.ApplyName("Root", radicand, degree)
	}
	return expr.ApplyName("Sqrt", radicand)
}
