package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

// miscEntries covers the remaining baseline constructs: the generic "^"/"_"
// sigil fallback (spec.md §4.3.3), degree/DMS notation (spec.md §4.3.9),
// the implicit-argument elementary functions, and bare-symbol function
// application (f(x)) for any identifier the dictionary has no dedicated
// entry for.
func miscEntries() []*dictionary.Entry {
	out := []*dictionary.Entry{
		{
			Kind: dictionary.KindInfix, Name: "Power",
			LatexTrigger: []string{"^"},
			ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
				return parser.ParseSuperscript(ctx, lhs)
			},
			Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
				return s.Wrap(e.Op(0), dictionary.SigilPrecedence) + "^{" + s.Wrap(e.Op(1), parser.PrecLowest) + "}"
			},
		},
		{
			// "**" is the one non-LaTeX convenience this dictionary
			// recognizes for Power, rejected under parser.Options.Strict
			// (spec.md §6). Unlike the "^" sigil it carries an ordinary
			// precedence since it is a plain two-character trigger, not a
			// sigil trigger.
			Kind: dictionary.KindInfix, Name: "Power",
			LatexTrigger:  []string{"*", "*"},
			Precedence:    parser.PrecSigil,
			PrecedenceSet: true,
			Associativity: dictionary.AssocLeft,
			ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
				p, ok := ctx.(*parser.Parser)
				if !ok {
					return nil
				}
				if p.ParserOptions().Strict {
					return nil
				}
				return parser.ParseSuperscript(ctx, lhs)
			},
			Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
				return s.Wrap(e.Op(0), dictionary.SigilPrecedence) + "^{" + s.Wrap(e.Op(1), parser.PrecLowest) + "}"
			},
		},
		{
			Kind: dictionary.KindInfix, Name: "Subscript",
			LatexTrigger: []string{"_"},
			ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
				return parser.ParseSubscript(ctx, lhs)
			},
			Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
				return s.Wrap(e.Op(0), dictionary.SigilPrecedence) + "_{" + s.Wrap(e.Op(1), parser.PrecLowest) + "}"
			},
		},
	}

	for _, sp := range []string{"°", `\circ`} {
		out = append(out, &dictionary.Entry{
			Kind: dictionary.KindPostfix, Name: "Quantity",
			LatexTrigger: []string{sp}, Precedence: parser.PrecPostfix, PrecedenceSet: true,
			ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
				return parser.ParseDegrees(ctx, lhs)
			},
			// Only covers the plain "n°" shape dms.go's single-term return
			// takes; the arc-minute/arc-second combination wraps multiple
			// Quantity terms in an Add with no DMS marker to recover at
			// render time, so it serializes as an ordinary sum instead of
			// "12°34'56\"".
			Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
				return serializeQuantity(s, e)
			},
		})
	}

	for _, f := range []string{`\ln`, `\exp`} {
		cmd := f
		name := capitalize(cmd[1:])
		out = append(out, &dictionary.Entry{
			Kind: dictionary.KindFunction, Name: name,
			LatexTrigger: []string{cmd}, Arguments: dictionary.ArgumentsImplicit,
			Precedence: parser.PrecFunctionCall, PrecedenceSet: true,
			Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
				return parser.ParseGenericFunctionImplicit(ctx, name, parser.PrecMultiplication)
			},
		})
	}

	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindFunction, Name: "Log",
		LatexTrigger: []string{`\log`}, Arguments: dictionary.ArgumentsImplicit,
		Precedence: parser.PrecFunctionCall, PrecedenceSet: true,
		Parse:     parseLog,
		Serialize: serializeLog,
	})

	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindPostfix, Name: "Apply",
		LatexTrigger: []string{"("}, Precedence: parser.PrecFunctionCall, PrecedenceSet: true,
		ParseInfix: parseSymbolApplication,
	})

	return out
}

// parseLog implements \log and its subscripted-base form \log_b x,
// defaulting to base 10 when no subscript is present.
func parseLog(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
	p, ok := ctx.(*parser.Parser)
	if !ok {
		return nil
	}

	base := expr.IntegerFromInt64(10)
	if p.Optional(token.KindLiteral, "_") {
		if b := p.ParseGroupOrAtom(); b != nil {
			base = b
		}
	}

	arg := p.ParseExpression(parser.PrecMultiplication)
	if arg == nil {
		return expr.ApplyName("Log", base)
	}
	return expr.ApplyName("Log", arg, base)
}

// serializeQuantity renders one (Quantity, value, unit) term with the
// glyph matching dms.go's unit string.
func serializeQuantity(s dictionary.Serializer, e *expr.Expression) string {
	value := e.Op(0)
	unit, _ := e.Op(1).StringValue()
	glyph := "°"
	switch unit {
	case "arcmin":
		glyph = "'"
	case "arcsec":
		glyph = `"`
	}
	return s.Wrap(value, parser.PrecFunctionCall) + glyph
}

// isBaseTen reports whether base is the literal integer 10, letting
// serializeLog omit the default base's subscript.
func isBaseTen(base *expr.Expression) bool {
	n, ok := base.IntegerValue()
	return ok && n.Int64() == 10
}

// serializeLog reconstructs \log / \log_b from parseLog's two shapes: a
// bare base-only application (no argument was found after \log) and the
// ordinary (Log, arg, base) call.
func serializeLog(s dictionary.Serializer, e *expr.Expression) string {
	if e.Arity() == 1 {
		base := e.Op(0)
		if isBaseTen(base) {
			return `\log`
		}
		return `\log_{` + s.WrapShort(base) + `}`
	}
	arg, base := e.Op(0), e.Op(1)
	prefix := `\log`
	if !isBaseTen(base) {
		prefix += `_{` + s.WrapShort(base) + `}`
	}
	return prefix + " " + s.WrapShort(arg)
}

// parseSymbolApplication wraps an identifier with no dedicated dictionary
// entry ("f(x)") as an Apply of that symbol's name to the parenthesized
// argument list — the generic counterpart to the named-function entries
// the rest of this package registers. It declines (returns nil) for any
// lhs that isn't a bare Symbol, leaving the "(" for implicit-multiplication
// handling instead (e.g. "2(3)").
func parseSymbolApplication(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
	name := lhs.SymbolName()
	if name == "" {
		return nil
	}
	ops, ok := parser.ParseMatchfixBody(ctx, []string{")"})
	if !ok {
		return nil
	}
	return expr.ApplyName(name, ops...)
}
