package parser

import (
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/langerrors"
	"github.com/latexmath/latexmath/internal/token"
)

// ParseGroupOrAtom parses the payload of a sigil (superscript, subscript,
// or any construct keyed on a following `{...}` or single token): a braced
// group parses its contents as a full expression at the lowest precedence;
// a bare token parses as exactly one primary (spec.md §4.3.3).
func (p *Parser) ParseGroupOrAtom() *expr.Expression {
	p.skipSpace()
	if p.cur.Is(token.KindGroupOpen, token.GroupOpen) {
		p.cur = p.cur.Advance()
		inner := p.ParseExpression(PrecLowest)
		p.skipSpace()
		if p.cur.Is(token.KindGroupClose, token.GroupClose) {
			p.cur = p.cur.Advance()
		} else {
			p.addErrorf(langerrors.CodeExpectedCloseDelim, p.cur.Position(), "expected closing brace")
		}
		if inner == nil {
			return expr.MissingOperand()
		}
		return inner
	}
	return p.parsePrefixOrPrimary()
}

// PeekGroupOrAtomText returns the plain text of a single-token payload
// without consuming it, or "" if the payload is a braced group (multi-token
// payloads have no single spelling). Used by constructs that need to
// recognize a specific short payload, e.g. `^{-1}` or `^c`, before
// committing to a full sub-parse.
func (p *Parser) PeekGroupOrAtomText(offset int) string {
	t := p.Peek(offset)
	if t.Kind == token.KindGroupOpen {
		return ""
	}
	return t.Text
}
