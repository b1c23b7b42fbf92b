package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/token"
)

// ParseQuantifier implements spec.md §4.3.7: \forall / \exists / \exists!
// and their negations. head is the MathJSON symbol to apply ("ForAll",
// "Exists", "NotExists", …).
func ParseQuantifier(ctx dictionary.ParseContext, head string) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}

	bound := p.ParseExpression(PrecFunctionCall)
	if bound == nil {
		bound = expr.MissingOperand()
	}

	if elem, isSet := p.parseQuantifierSetMembership(bound); isSet {
		bound = elem
	}

	p.skipSpace()
	p.consumeQuantifierSeparator()

	p.scope.Push(true)
	defer p.scope.Pop()
	if name := bound.SymbolName(); name != "" {
		p.scope.Define(name)
	} else if bound.HeadName() == "Element" {
		if name := bound.Op(0).SymbolName(); name != "" {
			p.scope.Define(name)
		}
	}

	bodyPrec := PrecLowest
	if p.opts.QuantifierScope == QuantifierTight {
		bodyPrec = PrecAnd + 1
	}
	body := p.ParseExpression(bodyPrec)
	if body == nil {
		body = expr.MissingOperand()
	}

	return expr.ApplyName(head, bound, body)
}

// parseQuantifierSetMembership recognizes a trailing "\in S" after the
// bound variable, producing an Element node rather than leaving it as a
// relational expression (spec.md §4.3.4 step 4's Element convention
// applies equally to quantifier binders).
func (p *Parser) parseQuantifierSetMembership(bound *expr.Expression) (*expr.Expression, bool) {
	if bound.HeadName() == "Element" {
		return bound, true
	}
	p.skipSpace()
	if p.Optional(token.KindCommand, `\in`) {
		set := p.ParseExpression(PrecSetRelation + 1)
		if set == nil {
			set = expr.MissingOperand()
		}
		return expr.ApplyName("Element", bound, set), true
	}
	return bound, false
}

// consumeQuantifierSeparator accepts any of the separator spellings spec.md
// §4.3.7 lists between the binder and the body: comma, "\mid", ":", ".",
// or nothing at all if the body is itself parenthesized.
func (p *Parser) consumeQuantifierSeparator() {
	p.skipSpace()
	switch {
	case p.Optional(token.KindLiteral, ","):
	case p.Optional(token.KindCommand, `\mid`):
	case p.Optional(token.KindLiteral, ":"):
	case p.Optional(token.KindLiteral, "."):
	}
}
