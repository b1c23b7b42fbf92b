package parser

import (
	"strings"

	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/token"
)

// parseMatchfix implements spec.md §4.3.2: try each candidate entry
// registered for this opening trigger in order (standard pairs first, per
// the dictionary's bucket sort), backtracking to the opening delimiter
// between attempts. If every candidate's Parse callback declines (returns
// nil — e.g. the Iverson bracket only accepts a relational body), fall
// back to a generic Delimiter capturing the body's raw token text.
func (p *Parser) parseMatchfix(candidates []*dictionary.Entry, openLen int) *expr.Expression {
	mark := p.Mark()
	openTrigger := p.cur.Current()

	for _, cand := range candidates {
		p.ResetTo(mark)
		p.cur = p.cur.AdvanceN(openLen)
		if result := cand.Parse(p, openTrigger); result != nil {
			return result
		}
	}

	p.ResetTo(mark)
	return p.parseGenericDelimiter(candidates, openLen)
}

// ParseMatchfixBody parses a comma-separated sequence of expressions at the
// lowest precedence, stopping when the literal closeTrigger token sequence
// is found and consuming it. It is the shared machinery every matchfix
// dictionary entry's Parse callback calls into (spec.md §9: a small set of
// builtin parse strategies rather than bespoke closures per bracket kind).
// ok is false, with the cursor left exactly where it started, if closeTrigger
// is never found — the caller backtracks to try the next candidate.
func ParseMatchfixBody(ctx dictionary.ParseContext, closeTrigger []string) (ops []*expr.Expression, ok bool) {
	p, isParser := ctx.(*Parser)
	if !isParser {
		return nil, false
	}

	mark := p.Mark()

	if p.matchesCloseTrigger(closeTrigger) {
		p.consumeCloseTrigger(closeTrigger)
		return nil, true
	}

	for {
		p.skipSpace()
		item := p.ParseExpression(PrecLowest)
		if item == nil {
			item = expr.MissingOperand()
		}
		ops = append(ops, item)

		p.skipSpace()
		if p.matchesCloseTrigger(closeTrigger) {
			p.consumeCloseTrigger(closeTrigger)
			return ops, true
		}
		if p.Optional(token.KindLiteral, ",") {
			continue
		}
		p.ResetTo(mark)
		return nil, false
	}
}

func (p *Parser) matchesCloseTrigger(trigger []string) bool {
	window := p.cur.PeekWindow(len(trigger))
	if len(window) < len(trigger) {
		return false
	}
	for i, t := range trigger {
		if window[i].Text != t {
			return false
		}
	}
	return true
}

func (p *Parser) consumeCloseTrigger(trigger []string) {
	p.cur = p.cur.AdvanceN(len(trigger))
}

// parseGenericDelimiter handles the case where every registered candidate
// declined: it scans forward to the first candidate's close trigger (or
// EOF), capturing the raw text in between, and emits a (Delimiter, open,
// close, body) application whose body is an opaque String — there is no
// well-formed sub-parse to offer, only verbatim preservation (spec.md
// §4.3.2).
func (p *Parser) parseGenericDelimiter(candidates []*dictionary.Entry, openLen int) *expr.Expression {
	open := strings.Join(tokenTexts(p.cur.PeekWindow(openLen)), "")
	p.cur = p.cur.AdvanceN(openLen)

	var closeTrigger []string
	if len(candidates) > 0 {
		closeTrigger = candidates[0].CloseTrigger
	}

	var bodyTokens []token.Token
	const maxScan = 4096
	for i := 0; i < maxScan; i++ {
		if p.cur.IsEOF() {
			break
		}
		if len(closeTrigger) > 0 && p.matchesCloseTrigger(closeTrigger) {
			break
		}
		bodyTokens = append(bodyTokens, p.cur.Current())
		p.cur = p.cur.Advance()
	}

	closeText := ""
	if len(closeTrigger) > 0 && p.matchesCloseTrigger(closeTrigger) {
		closeText = strings.Join(closeTrigger, "")
		p.consumeCloseTrigger(closeTrigger)
	}

	body := strings.Join(tokenTexts(bodyTokens), " ")
	return expr.ApplyName("Delimiter", expr.String(open), expr.String(closeText), expr.String(body))
}
