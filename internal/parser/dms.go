package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/token"
)

// ParseDegrees implements spec.md §4.3.9: after a postfix ° or ^\circ, the
// parser opportunistically consumes arc-minutes (n') and arc-seconds (m"),
// producing a sum of Quantity terms. The ' and " tokens are only ever
// reinterpreted as angular units here, directly after a degree symbol;
// everywhere else they remain available for prime/derivative syntax
// (trig.go's primeSpellings).
func ParseDegrees(ctx dictionary.ParseContext, lhs *expr.Expression) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}

	terms := []*expr.Expression{quantity(lhs, "deg")}

	if minutes, ok := p.consumeDMSComponent("'"); ok {
		terms = append(terms, quantity(minutes, "arcmin"))
		if seconds, ok := p.consumeDMSComponent(`"`); ok {
			terms = append(terms, quantity(seconds, "arcsec"))
		}
	}

	if len(terms) == 1 {
		return terms[0]
	}
	return expr.ApplyName("Add", terms...)
}

func quantity(value *expr.Expression, unit string) *expr.Expression {
	return expr.ApplyName("Quantity", value, expr.String(unit))
}

// consumeDMSComponent parses a number immediately followed by marker
// ("'" for arc-minutes, `"` for arc-seconds).
func (p *Parser) consumeDMSComponent(marker string) (*expr.Expression, bool) {
	if p.cur.Current().Kind != token.KindNumber {
		return nil, false
	}
	if p.cur.Peek(1).Text != marker {
		return nil, false
	}
	n := p.parseNumberLiteral()
	p.cur = p.cur.Advance() // consume marker
	return n, true
}

// ParseCongruence implements spec.md §4.3.10: \equiv parses with one
// lookahead — if the parsed right-hand side is itself followed by
// \pmod{m} or \bmod m, the whole thing becomes (Congruent, lhs, rhs, m);
// otherwise it is the two-operand (Congruent, lhs, rhs), modulus unstated.
func ParseCongruence(ctx dictionary.ParseContext, lhs *expr.Expression, precedence int) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}

	rhs := p.ParseExpression(precedence)
	if rhs == nil {
		rhs = expr.MissingOperand()
	}

	if p.Optional(token.KindCommand, `\pmod`) {
		m := p.ParseGroupOrAtom()
		if m == nil {
			m = expr.MissingOperand()
		}
		return expr.ApplyName("Congruent", lhs, rhs, m)
	}
	if p.Optional(token.KindCommand, `\bmod`) {
		m := p.ParseExpression(PrecMultiplication)
		if m == nil {
			m = expr.MissingOperand()
		}
		return expr.ApplyName("Congruent", lhs, rhs, m)
	}

	return expr.ApplyName("Congruent", lhs, rhs)
}
