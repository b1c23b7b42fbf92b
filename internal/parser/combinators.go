// Combinator helpers mirroring the teacher's internal/parser/combinators.go
// shape (Optional/Many/SeparatedList/Between/Choice), adapted from a
// mutable curToken/peekToken parser onto this package's cursor-holding
// Parser.
package parser

import "github.com/latexmath/latexmath/internal/token"

// Optional consumes the current token if it has the given kind and text,
// reporting whether it did.
func (p *Parser) Optional(kind token.Kind, text string) bool {
	p.skipSpace()
	if p.cur.Is(kind, text) {
		p.cur = p.cur.Advance()
		return true
	}
	return false
}

// Choice consumes the current token if its text is any of options,
// returning the matched text and true, or ("", false).
func (p *Parser) Choice(kind token.Kind, options ...string) (string, bool) {
	p.skipSpace()
	cur := p.cur.Current()
	if cur.Kind != kind {
		return "", false
	}
	for _, o := range options {
		if cur.Text == o {
			p.cur = p.cur.Advance()
			return o, true
		}
	}
	return "", false
}

// Many repeatedly applies parseFn until it returns false, returning the
// number of successful applications.
func (p *Parser) Many(parseFn func() bool) int {
	count := 0
	for parseFn() {
		count++
	}
	return count
}

// SeparatedList parses zero or more items separated by a fixed separator
// token, stopping when the separator is no longer found. It does not
// consume a terminator — callers check for that themselves, matching the
// teacher's SeparatorConfig pattern but simplified to this grammar's one
// real separator (the comma).
func (p *Parser) SeparatedList(sepKind token.Kind, sepText string, parseItem func() bool) int {
	count := 0
	if parseItem() {
		count++
	} else {
		return count
	}
	for p.Optional(sepKind, sepText) {
		if !parseItem() {
			break
		}
		count++
	}
	return count
}
