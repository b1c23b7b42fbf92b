// Package parser implements the Pratt (precedence-climbing) parser
// described in spec.md §4.3: it consumes a token.Token stream against an
// IndexedDictionary and produces a MathJSON expr.Expression, never a Go
// error — structural failures are materialized in-band as (Error, …)
// sentinels (spec.md §7).
//
// The core loop is adapted from the teacher's internal/parser cursor-based
// design (TokenCursor, Mark/ResetTo) generalized from a fixed Pascal
// grammar to a data-driven one: where the teacher dispatches on a switch
// over lexer.TokenType, this parser dispatches on dictionary lookups keyed
// by a fixed-window peek (spec.md §9).
package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/langerrors"
	"github.com/latexmath/latexmath/internal/scope"
	"github.com/latexmath/latexmath/internal/token"
	"github.com/latexmath/latexmath/internal/tokenizer"
)

// Parser holds the mutable state of one parse invocation: a cursor over the
// token stream, a lexical scope stack, an accumulated diagnostic bag, and
// the resolved options. Per spec.md §5 a Parser is never shared across
// goroutines; the IndexedDictionary it reads from is immutable and may be.
type Parser struct {
	dict   *dictionary.IndexedDictionary
	cur    *TokenCursor
	scope  *scope.Stack
	errs   *langerrors.Bag
	opts   Options
	source string
}

// Parse tokenizes latex and parses a single expression against dict,
// returning the resulting expression (or nil on total parse failure, i.e.
// no tokens at all) together with any diagnostics accumulated along the
// way (spec.md §7: diagnostics are advisory, not fatal — the returned
// expression tree is always well-formed MathJSON even when diags is
// non-empty).
func Parse(latex string, dict *dictionary.IndexedDictionary, opts Options) (*expr.Expression, *langerrors.Bag) {
	p := &Parser{
		dict:   dict,
		cur:    NewTokenCursor(tokenizer.Tokenize(latex)),
		scope:  scope.NewStack(),
		errs:   &langerrors.Bag{},
		opts:   opts,
		source: latex,
	}

	if p.cur.IsEOF() {
		return nil, p.errs
	}

	result := p.ParseExpression(PrecLowest)
	if result == nil {
		return nil, p.errs
	}

	p.skipSpace()
	if !p.cur.IsEOF() {
		p.addErrorf(langerrors.CodeTrailingInput, p.cur.Position(),
			"unexpected trailing input %q", p.cur.Current().Text)
	}

	return result, p.errs
}

// Dictionary returns the dictionary this parse is running against.
func (p *Parser) Dictionary() *dictionary.IndexedDictionary { return p.dict }

// ParserOptions returns the resolved options for this parse.
func (p *Parser) ParserOptions() Options { return p.opts }

// Scope returns the lexical scope stack, for constructs (quantifiers, big
// operators) that push and pop frames around a sub-parse.
func (p *Parser) Scope() *scope.Stack { return p.scope }

// Errors returns the diagnostic bag accumulated so far.
func (p *Parser) Errors() *langerrors.Bag { return p.errs }

// Peek implements dictionary.ParseContext: the token n positions ahead of
// the cursor.
func (p *Parser) Peek(n int) token.Token { return p.cur.Peek(n) }

// Advance implements dictionary.ParseContext: consumes and returns the
// current token.
func (p *Parser) Advance() token.Token {
	t := p.cur.Current()
	p.cur = p.cur.Advance()
	return t
}

// Mark saves the cursor position for backtracking (spec.md §9, "bounded
// retry").
func (p *Parser) Mark() Mark { return p.cur.Mark() }

// ResetTo restores a previously saved cursor position.
func (p *Parser) ResetTo(m Mark) { p.cur = p.cur.ResetTo(m) }

// Source returns the original LaTeX input, for diagnostic rendering.
func (p *Parser) Source() string { return p.source }

func (p *Parser) addErrorf(code langerrors.Code, pos token.Position, format string, args ...any) {
	p.errs.Addf(code, pos, p.source, format, args...)
}

// skipSpace advances past any run of KindSpace tokens. Visual space is
// preserved by the tokenizer (spec.md §4.1) but is not itself meaningful to
// the grammar unless a construct specifically inspects it (none here does).
func (p *Parser) skipSpace() {
	for p.cur.Current().Kind == token.KindSpace {
		p.cur = p.cur.Advance()
	}
}

// ParseExpression is the core precedence-climbing loop (spec.md §4.3.1),
// and also satisfies dictionary.ParseContext so entries' Parse/ParseInfix
// callbacks can recurse into it.
func (p *Parser) ParseExpression(minPrec int) *expr.Expression {
	p.skipSpace()
	lhs := p.parsePrefixOrPrimary()
	if lhs == nil {
		return nil
	}

	for {
		p.skipSpace()

		entry, triggerLen := p.selectContinuation(lhs != nil)
		if entry == nil {
			if rhs, ok := p.tryImplicitMultiplication(lhs, minPrec); ok {
				lhs = rhs
				continue
			}
			return lhs
		}
		if entry.Precedence < minPrec {
			return lhs
		}

		preTrigger := p.Mark()
		trigger := p.cur.Current()
		p.cur = p.cur.AdvanceN(triggerLen)

		next := entry.ParseInfix(p, lhs, trigger)
		if next == nil {
			// The entry declined (used by sigil fallbacks and similar
			// constructs that recognize their trigger but reject the
			// payload); treat as if nothing matched and stop, leaving the
			// trigger tokens unconsumed for the caller.
			p.ResetTo(preTrigger)
			return lhs
		}
		lhs = next

		if entry.Associativity == dictionary.AssocNone {
			p.rejectRepeatedNonAssociative(entry)
		}
	}
}

// selectContinuation finds the best-matching infix or postfix entry at the
// cursor, trying the longest trigger window first and falling back to
// shorter windows (spec.md §9's "fixed-window peek... longest matching
// prefix"). haveLhs gates whether infix entries (which require a left
// operand) are even considered, per spec.md §4.3.1: "the parser attempts
// infix only when lhs ≠ null at that position" — always true here since
// ParseExpression never calls selectContinuation without first obtaining a
// non-nil lhs, but the parameter documents the rule's origin.
func (p *Parser) selectContinuation(haveLhs bool) (*dictionary.Entry, int) {
	maxLen := p.dict.Lookahead()
	if maxLen < 1 {
		maxLen = 1
	}

	for length := maxLen; length >= 1; length-- {
		window := p.cur.PeekWindow(length)
		if len(window) < length {
			continue
		}
		trigger := tokenTexts(window)

		if haveLhs {
			if cands := p.dict.TriggersFor(dictionary.KindInfix, trigger); len(cands) > 0 {
				return cands[0], length
			}
		}
		if cands := p.dict.TriggersFor(dictionary.KindPostfix, trigger); len(cands) > 0 {
			return cands[0], length
		}
	}
	return nil, 0
}

func tokenTexts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

// rejectRepeatedNonAssociative emits a diagnostic (but does not abort
// parsing) when a `none`-associativity operator is immediately followed by
// another occurrence of itself at the same precedence, e.g. `a < b < c`
// when `<` is declared non-associative (spec.md §4.3.1).
func (p *Parser) rejectRepeatedNonAssociative(entry *dictionary.Entry) {
	maxLen := p.dict.Lookahead()
	for length := maxLen; length >= 1; length-- {
		window := p.cur.PeekWindow(length)
		if len(window) < length {
			continue
		}
		cands := p.dict.TriggersFor(dictionary.KindInfix, tokenTexts(window))
		for _, c := range cands {
			if c == entry {
				p.addErrorf(langerrors.CodeNonAssociative, p.cur.Position(),
					"operator %q is non-associative and cannot be chained", entry.Name)
				return
			}
		}
	}
}

// tryImplicitMultiplication speculatively attempts to parse another primary
// as the right-hand side of an invisible multiplication (`3x`, `2\sin x`,
// `(a)(b)`), the juxtaposition rule every LaTeX math parser needs since
// LaTeX has no required multiplication glyph. It succeeds only if
// multiplication's precedence clears minPrec and a primary genuinely
// follows; otherwise the cursor is left untouched.
func (p *Parser) tryImplicitMultiplication(lhs *expr.Expression, minPrec int) (*expr.Expression, bool) {
	if PrecMultiplication < minPrec {
		return nil, false
	}

	mark := p.Mark()
	rhs := p.ParseExpression(PrecMultiplication + 1)
	if rhs == nil {
		p.ResetTo(mark)
		return nil, false
	}
	return expr.FoldAssociative("Multiply", lhs, rhs), true
}

// parsePrefixOrPrimary parses one atom: a number, a symbol, a prefix
// operator application, a matchfix-delimited group, or one of the named
// dedicated constructs (trig functions, big operators, quantifiers,
// fractions) the builtin dictionary wires through KindPrefix/KindFunction
// entries with a Parse callback.
func (p *Parser) parsePrefixOrPrimary() *expr.Expression {
	p.skipSpace()

	cur := p.cur.Current()
	switch cur.Kind {
	case token.KindEOF:
		return nil

	case token.KindNumber:
		return p.parseNumberLiteral()

	case token.KindGroupOpen:
		// A bare brace group with no triggering command in front of it is
		// transparent grouping: { x + 1 } parses as x + 1.
		p.cur = p.cur.Advance()
		inner := p.ParseExpression(PrecLowest)
		p.skipSpace()
		if !p.cur.Is(token.KindGroupClose, token.GroupClose) {
			p.addErrorf(langerrors.CodeExpectedCloseDelim, p.cur.Position(), "expected closing brace")
			return inner
		}
		p.cur = p.cur.Advance()
		if inner == nil {
			return expr.MissingOperand()
		}
		return inner
	}

	if candidates, length := p.selectMatchfixOpen(); len(candidates) > 0 {
		return p.parseMatchfix(candidates, length)
	}

	if entry, length := p.selectPrefix(); entry != nil {
		trigger := p.cur.Current()
		p.cur = p.cur.AdvanceN(length)
		result := entry.Parse(p, trigger)
		if result != nil {
			return result
		}
		// A declining prefix handler (e.g. a function entry whose name
		// didn't actually match the following shape) falls through to the
		// default symbol/unexpected-token handling below.
	}

	if sym, ok := p.tryParseSymbolTrigger(); ok {
		return sym
	}

	return p.parseDefaultAtom()
}

// selectMatchfixOpen checks whether the upcoming tokens form a registered
// matchfix opening trigger, trying the longest window first.
func (p *Parser) selectMatchfixOpen() ([]*dictionary.Entry, int) {
	maxLen := p.dict.Lookahead()
	for length := maxLen; length >= 1; length-- {
		window := p.cur.PeekWindow(length)
		if len(window) < length {
			continue
		}
		cands := p.dict.MatchfixCandidates(tokenTexts(window))
		if len(cands) > 0 {
			return cands, length
		}
	}
	return nil, 0
}

// selectPrefix finds the longest-matching KindPrefix (or KindFunction,
// which uses the same trigger tables via its LatexTrigger) entry at the
// cursor.
func (p *Parser) selectPrefix() (*dictionary.Entry, int) {
	maxLen := p.dict.Lookahead()
	for length := maxLen; length >= 1; length-- {
		window := p.cur.PeekWindow(length)
		if len(window) < length {
			continue
		}
		trigger := tokenTexts(window)
		if cands := p.dict.TriggersFor(dictionary.KindPrefix, trigger); len(cands) > 0 {
			return cands[0], length
		}
		if cands := p.dict.TriggersFor(dictionary.KindFunction, trigger); len(cands) > 0 {
			return cands[0], length
		}
		if cands := p.dict.TriggersFor(dictionary.KindSymbol, trigger); len(cands) > 0 {
			return cands[0], length
		}
		if cands := p.dict.TriggersFor(dictionary.KindExpression, trigger); len(cands) > 0 {
			return cands[0], length
		}
	}
	return nil, 0
}

// tryParseSymbolTrigger recognizes a bare multi-letter identifier spelled
// as consecutive single-letter literal tokens (e.g. "gcd" as three KindLiteral
// tokens) and matches it against the dictionary's identifier-shaped
// SymbolTrigger table.
func (p *Parser) tryParseSymbolTrigger() (*expr.Expression, bool) {
	cur := p.cur.Current()
	if cur.Kind != token.KindLiteral || !isIdentLetter(cur.Text) {
		return nil, false
	}

	mark := p.Mark()
	name := ""
	c := p.cur
	for c.Current().Kind == token.KindLiteral && isIdentLetter(c.Current().Text) {
		name += c.Current().Text
		c = c.Advance()
	}

	for len(name) > 0 {
		if cands := p.dict.SymbolTrigger(name); len(cands) > 0 {
			p.cur = p.cur.AdvanceN(len([]rune(name)))
			return cands[0].Parse(p, token.Token{Kind: token.KindLiteral, Text: name, Pos: cur.Pos}), true
		}
		name = name[:len(name)-1]
	}

	p.ResetTo(mark)
	return nil, false
}

func isIdentLetter(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// parseDefaultAtom handles whatever the dictionary has no entry for: a
// single-letter variable, or an unexpected token materialized as an
// (Error, 'unexpected-token') sentinel (spec.md §7).
func (p *Parser) parseDefaultAtom() *expr.Expression {
	cur := p.cur.Current()

	switch cur.Kind {
	case token.KindLiteral:
		if isIdentLetter(cur.Text) {
			p.cur = p.cur.Advance()
			return expr.Symbol(cur.Text)
		}
	case token.KindCommand:
		// An unrecognized command still becomes a symbol named after its
		// spelling minus the backslash, so a parse never needs to fail
		// outright over a dictionary gap (spec.md §7).
		p.cur = p.cur.Advance()
		return expr.Symbol(cur.Text[1:])
	}

	return p.unexpectedToken(cur)
}

func (p *Parser) unexpectedToken(tok token.Token) *expr.Expression {
	if p.opts.ParseUnexpectedToken != nil {
		if e := p.opts.ParseUnexpectedToken(nil, p); e != nil {
			return e
		}
	}
	p.cur = p.cur.Advance()
	p.addErrorf(langerrors.CodeUnexpectedToken, tok.Pos, "unexpected token %q", tok.Text)
	return expr.Error("unexpected-token", expr.String(tok.Text))
}
