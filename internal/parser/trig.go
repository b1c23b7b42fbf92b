package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/token"
)

// TrigCommandNames maps every recognized trigger command (including
// hyperbolic and inverse-prefixed variants) to its canonical MathJSON
// operator name, per spec.md §4.3.6 step 1. Declared here (rather than in
// internal/builtin) because both the dictionary-entry construction and
// ParseTrig's own matchfix-style lookahead ("stop when the next token is
// another trig command") need it.
var TrigCommandNames = map[string]string{
	`\sin`: "Sin", `\cos`: "Cos", `\tan`: "Tan",
	`\cot`: "Cot", `\sec`: "Sec", `\csc`: "Csc",
	`\sinh`: "Sinh", `\cosh`: "Cosh", `\tanh`: "Tanh",
	`\coth`: "Coth", `\sech`: "Sech", `\csch`: "Csch",
	`\arcsin`: "Arcsin", `\arccos`: "Arccos", `\arctan`: "Arctan",
	`\arccot`: "Arccot", `\arcsec`: "Arcsec", `\arccsc`: "Arccsc",
	`\arcsinh`: "Arsinh", `\arccosh`: "Arcosh", `\arctanh`: "Artanh",
}

// primeSpellings are the postfix derivative markers a trig application may
// carry (spec.md §4.3.6 step 2).
var primeSpellings = map[string]bool{
	"'": true, `\prime`: true, `\doubleprime`: true,
}

// ParseTrig implements spec.md §4.3.6, shared across every trigonometric
// and hyperbolic function (including their inverses): prime-postfix
// derivative markers, an optional `^{-1}`-or-numeric exponent, and an
// implicit argument that stops before another trig command so that
// `\cos a \sin b` parses as `(Cos a)(Sin b)`, never `\cos(a \sin b)`.
func ParseTrig(ctx dictionary.ParseContext, commandText string) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}

	name, known := TrigCommandNames[commandText]
	if !known {
		return nil
	}
	fn := expr.Symbol(name)

	derivativeOrder := 0
	for p.primeFollows() {
		p.cur = p.cur.Advance()
		derivativeOrder++
	}
	if derivativeOrder > 0 {
		fn = expr.ApplyName("Derivative", fn, expr.IntegerFromInt64(int64(derivativeOrder)))
	}

	var exponent *expr.Expression
	isInverse := false
	if p.Optional(token.KindLiteral, "^") {
		if p.matchesInverseExponent() {
			p.consumeInverseExponent()
			isInverse = true
		} else {
			exponent = p.ParseGroupOrAtom()
		}
	}

	appliedFn := fn
	if isInverse {
		appliedFn = expr.ApplyName("InverseFunction", fn)
	}

	var args []*expr.Expression
	if !p.nextIsTrigCommand() {
		if arg := p.ParseExpression(PrecMultiplication); arg != nil {
			args = append(args, arg)
		}
	}

	applied := expr.Apply(appliedFn, args...)
	if exponent != nil {
		return expr.ApplyName("Power", applied, exponent)
	}
	return applied
}

func (p *Parser) primeFollows() bool {
	cur := p.cur.Current()
	return (cur.Kind == token.KindLiteral || cur.Kind == token.KindCommand) && primeSpellings[cur.Text]
}

// matchesInverseExponent checks for the four-token "{", "-", "1", "}"
// (or unbraced "-1") spelling of ^{-1} without consuming anything.
func (p *Parser) matchesInverseExponent() bool {
	if p.cur.Current().Is(token.KindGroupOpen, token.GroupOpen) {
		return p.cur.Peek(1).Text == "-" && p.cur.Peek(2).Text == "1" &&
			p.cur.Peek(3).Is(token.KindGroupClose, token.GroupClose)
	}
	return p.cur.Current().Text == "-" && p.cur.Peek(1).Text == "1"
}

func (p *Parser) consumeInverseExponent() {
	if p.cur.Current().Is(token.KindGroupOpen, token.GroupOpen) {
		p.cur = p.cur.AdvanceN(4)
		return
	}
	p.cur = p.cur.AdvanceN(2)
}

func (p *Parser) nextIsTrigCommand() bool {
	cur := p.cur.Current()
	if cur.Kind != token.KindCommand {
		return false
	}
	_, known := TrigCommandNames[cur.Text]
	return known
}
