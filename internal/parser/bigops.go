package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/token"
)

// BigOperatorKind distinguishes Sum/Product from Integrate, since only
// integrals hunt for trailing differentials (spec.md §4.3.4 step 6).
type BigOperatorKind int

const (
	BigOperatorSum BigOperatorKind = iota
	BigOperatorProduct
	BigOperatorIntegrate
)

// differentialSpellings are the recognized forms of "d<var>" that mark an
// integral's bound variable (spec.md §4.3.4 step 6).
var differentialSpellings = map[string]bool{
	"d":               true,
	`\operatorname{d}`: true,
	`\mathrm{d}`:      true,
	`\differentialD`:  true,
}

// ParseBigOperator implements spec.md §4.3.4: \sum, \prod, \int (and the
// repeated integral forms) push a fresh scope, consume subscript/
// superscript bound specifications in either order, parse the body at
// multiplication precedence, extract index tuples from the subscript, and
// — for integrals — locate and strip a trailing differential.
//
// head names the MathJSON symbol to apply ("Sum", "Product", "Integrate").
func ParseBigOperator(ctx dictionary.ParseContext, head string, kind BigOperatorKind) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}

	p.scope.Push(false)
	defer p.scope.Pop()

	var sub, sup *expr.Expression
	for i := 0; i < 2; i++ {
		p.skipSpace()
		switch {
		case sub == nil && p.Optional(token.KindLiteral, "_"):
			sub = p.ParseGroupOrAtom()
		case sup == nil && p.Optional(token.KindLiteral, "^"):
			sup = p.ParseGroupOrAtom()
		default:
			i = 2 // neither sigil present; stop
		}
	}

	body := p.ParseExpression(PrecMultiplication)
	if body == nil {
		body = expr.MissingOperand()
	}

	var differentialVars []*expr.Expression
	if kind == BigOperatorIntegrate {
		body, differentialVars = stripDifferentials(body)
	}

	// For Sum/Product, sub/sup carry the named index and its bounds. For
	// Integrate, sub/sup (when present, e.g. \int_0^1) are the bare
	// numeric limits with no named variable of their own — the bound
	// variable instead comes from the trailing differential — so a single
	// found differential merges into the bounds tuple as (Tuple, var, lo,
	// hi) rather than the two being reported as separate operands.
	tuples := indexTuplesFromBounds(sub, sup)
	switch {
	case len(tuples) == 1 && len(differentialVars) == 1:
		bounds := tuples[0].Ops()
		varSym := differentialVars[0].Op(0)
		tuples = []*expr.Expression{expr.ApplyName("Tuple", append([]*expr.Expression{varSym}, bounds...)...)}
	default:
		tuples = append(tuples, differentialVars...)
	}

	args := append([]*expr.Expression{body}, tuples...)
	return expr.ApplyName(head, args...)
}

// indexTuplesFromBounds builds the (Tuple, index[, lo[, hi]]) / Element
// operands spec.md §4.3.4 steps 4-5 describe from the subscript and
// superscript payloads. Multiple simultaneous indices (comma-separated
// subscript) pair positionally with comma-separated superscript bounds.
func indexTuplesFromBounds(sub, sup *expr.Expression) []*expr.Expression {
	if sub == nil {
		return nil
	}

	subs := attachScopeFilterCondition(splitCommaList(sub))
	sups := splitCommaList(sup)

	out := make([]*expr.Expression, 0, len(subs))
	for i, s := range subs {
		var hi *expr.Expression
		if i < len(sups) {
			hi = sups[i]
		}
		out = append(out, indexTupleFromOne(s, hi))
	}
	return out
}

// splitCommaList flattens a (List, a, b, …) comma group
// into its elements, or returns [e] for a single expression, or nil for a
// nil input.
func splitCommaList(e *expr.Expression) []*expr.Expression {
	if e == nil {
		return nil
	}
	if e.HeadName() == "List" {
		return e.Ops()
	}
	return []*expr.Expression{e}
}

// relationalHeads identifies a condition expression eligible to attach to
// a preceding Element as its scope-filtering fourth operand (spec.md
// §4.3.4 step 4's last bullet).
var relationalHeads = map[string]bool{
	"Equal": true, "NotEqual": true,
	"Greater": true, "GreaterEqual": true, "Less": true, "LessEqual": true,
}

// attachScopeFilterCondition implements "Element immediately followed by a
// relational condition -> attach the condition as a fourth operand of
// Element": when a comma-separated subscript's first item is an Element
// and the next is a bare relational expression, fold them into one
// scope-filtered comprehension rather than two simultaneous indices.
func attachScopeFilterCondition(items []*expr.Expression) []*expr.Expression {
	if len(items) < 2 || items[0].HeadName() != "Element" || items[0].Arity() != 2 {
		return items
	}
	cond := items[1]
	if !relationalHeads[cond.HeadName()] {
		return items
	}
	elem := items[0]
	merged := expr.ApplyName("Element", elem.Op(0), elem.Op(1), cond)
	return append([]*expr.Expression{merged}, items[2:]...)
}

// indexTupleFromOne converts one subscript index specification (bare
// symbol, equality, equality-with-range, inequality, or set-membership)
// into the Tuple/Element operand spec.md §4.3.4 step 4 describes.
func indexTupleFromOne(idx, hi *expr.Expression) *expr.Expression {
	switch idx.HeadName() {
	case "Equal":
		lo := idx.Op(1)
		name := idx.Op(0)
		if lo.HeadName() == "Range" {
			return expr.ApplyName("Tuple", name, lo.Op(0), lo.Op(1))
		}
		if hi != nil {
			return expr.ApplyName("Tuple", name, lo, hi)
		}
		return expr.ApplyName("Tuple", name, lo)
	case "GreaterEqual", "LessEqual", "Greater", "Less":
		name := idx.Op(0)
		if hi != nil {
			return expr.ApplyName("Tuple", name, idx.Op(1), hi)
		}
		return expr.ApplyName("Tuple", name, idx.Op(1))
	case "Element":
		return idx
	default:
		if hi != nil {
			return expr.ApplyName("Tuple", idx, hi)
		}
		return expr.ApplyName("Tuple", idx)
	}
}

// stripDifferentials walks body's common wrapper heads (Add, Multiply,
// Delimiter, Divide, Negate) looking for a trailing differential factor
// such as "dx", "\,dx", or the numerator of a \frac{dx}{x} division
// (spec.md §4.3.4 step 6). It returns the body with the differential
// removed and one (Tuple, var) operand per differential found.
func stripDifferentials(body *expr.Expression) (*expr.Expression, []*expr.Expression) {
	switch body.HeadName() {
	case "Multiply":
		ops := body.Ops()

		// FoldAssociative flattens implicit multiplication, so "x^2 \, dx"
		// arrives as the flat (Multiply, x^2, d, x) rather than a nested
		// (Multiply, x^2, (Multiply, d, x)): look for the "d", "<var>"
		// factors sitting next to each other anywhere in the flat list
		// before falling back to the single-factor shapes below.
		for i := 0; i < len(ops)-1; i++ {
			head := ops[i].SymbolName()
			if !differentialSpellings[head] {
				continue
			}
			v := ops[i+1].SymbolName()
			if v == "" {
				continue
			}
			rest := append(append([]*expr.Expression{}, ops[:i]...), ops[i+2:]...)
			return multiplyRemainder(rest), []*expr.Expression{expr.ApplyName("Tuple", expr.Symbol(v))}
		}

		for i := len(ops) - 1; i >= 0; i-- {
			if v, ok := asDifferentialVar(ops[i]); ok {
				rest := append(append([]*expr.Expression{}, ops[:i]...), ops[i+1:]...)
				return multiplyRemainder(rest), []*expr.Expression{expr.ApplyName("Tuple", expr.Symbol(v))}
			}
		}
	case "Add":
		ops := body.Ops()
		var vars []*expr.Expression
		var kept []*expr.Expression
		for _, op := range ops {
			if v, ok := asDifferentialVar(op); ok {
				vars = append(vars, expr.ApplyName("Tuple", expr.Symbol(v)))
				continue
			}
			r, innerVars := stripDifferentials(op)
			if len(innerVars) > 0 {
				vars = append(vars, innerVars...)
				kept = append(kept, r)
				continue
			}
			kept = append(kept, op)
		}
		if len(vars) > 0 {
			var remainder *expr.Expression
			if len(kept) == 1 {
				remainder = kept[0]
			} else {
				remainder = expr.ApplyName("Add", kept...)
			}
			return remainder, vars
		}
	case "Delimiter":
		// Opaque verbatim capture — nothing to strip.
	case "Divide":
		if v, ok := asDifferentialVar(body.Op(0)); ok {
			return body.Op(1), []*expr.Expression{expr.ApplyName("Tuple", expr.Symbol(v))}
		}
		r, vars := stripDifferentials(body.Op(0))
		if len(vars) > 0 {
			return expr.ApplyName("Divide", r, body.Op(1)), vars
		}
	case "Negate":
		r, vars := stripDifferentials(body.Op(0))
		if len(vars) > 0 {
			return expr.ApplyName("Negate", r), vars
		}
	}
	return body, nil
}

// multiplyRemainder rebuilds the Multiply body left after a differential
// factor (or pair) has been stripped out of its operand list.
func multiplyRemainder(rest []*expr.Expression) *expr.Expression {
	switch len(rest) {
	case 0:
		return expr.IntegerFromInt64(1)
	case 1:
		return rest[0]
	default:
		return expr.ApplyName("Multiply", rest...)
	}
}

// asDifferentialVar recognizes "dx" spelled as (Multiply, d, x) or as the
// bare symbol "dx", reporting the bound variable name.
func asDifferentialVar(e *expr.Expression) (string, bool) {
	if e.HeadName() == "Multiply" && e.Arity() == 2 {
		if head := e.Op(0).SymbolName(); differentialSpellings[head] {
			if v := e.Op(1).SymbolName(); v != "" {
				return v, true
			}
		}
	}
	if sym := e.SymbolName(); len(sym) > 1 && sym[0] == 'd' {
		return sym[1:], true
	}
	return "", false
}
