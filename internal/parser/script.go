package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
)

// ParseSuperscript and ParseSubscript are the generic fallback for a bare
// `^` or `_` sigil once no more specific sigil-triggered entry matched
// (spec.md §4.3.3): they parse a braced group or single-token payload and
// emit (Power, lhs, payload) / (Subscript, lhs, payload).
func ParseSuperscript(ctx dictionary.ParseContext, lhs *expr.Expression) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}
	payload := p.ParseGroupOrAtom()
	if payload == nil {
		payload = expr.MissingOperand()
	}
	return expr.ApplyName("Power", lhs, payload)
}

func ParseSubscript(ctx dictionary.ParseContext, lhs *expr.Expression) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}
	payload := p.ParseGroupOrAtom()
	if payload == nil {
		payload = expr.MissingOperand()
	}
	return expr.ApplyName("Subscript", lhs, payload)
}
