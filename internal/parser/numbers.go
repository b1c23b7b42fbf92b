package parser

import (
	"math/big"
	"strconv"

	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/langerrors"
	"github.com/latexmath/latexmath/internal/token"
)

// parseNumberLiteral reads a KindNumber token and, per options.ParseNumbers,
// any following decimal-separator-and-fraction, emitting an Integer or
// Float expression (spec.md §4.3.1 scenario 1: "\frac{1}{2} + 3x^2" needs
// "3" to parse as a plain Integer feeding into Multiply).
//
// ParseNumbersNever turns off numeric interpretation entirely: the digit
// run becomes a String literal instead, letting a host application treat
// all numerals as opaque tokens.
func (p *Parser) parseNumberLiteral() *expr.Expression {
	cur := p.cur.Current()

	if p.opts.ParseNumbers == ParseNumbersNever {
		p.cur = p.cur.Advance()
		return expr.String(cur.Text)
	}

	intPart := cur.Text
	p.cur = p.cur.Advance()

	sep := p.opts.DecimalSeparator
	if sep == 0 {
		sep = '.'
	}

	if p.cur.Current().Kind == token.KindLiteral && p.cur.Current().Text == string(sep) &&
		p.cur.Peek(1).Kind == token.KindNumber {
		p.cur = p.cur.Advance() // consume separator
		fracPart := p.cur.Current().Text
		p.cur = p.cur.Advance()
		return p.makeFloat(cur, intPart+"."+fracPart)
	}

	switch p.opts.ParseNumbers {
	case ParseNumbersDecimal:
		return p.makeFloat(cur, intPart)
	default: // auto, rational: bare digit runs are exact integers
		n, ok := new(big.Int).SetString(intPart, 10)
		if !ok {
			p.addErrorf(langerrors.CodeInvalidNumber, cur.Pos, "invalid number literal %q", intPart)
			return expr.Error("invalid-number", expr.String(intPart))
		}
		return expr.Integer(n)
	}
}

func (p *Parser) makeFloat(cur token.Token, text string) *expr.Expression {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.addErrorf(langerrors.CodeInvalidNumber, cur.Pos, "invalid number literal %q", text)
		return expr.Error("invalid-number", expr.String(text))
	}
	return expr.Float(v)
}
