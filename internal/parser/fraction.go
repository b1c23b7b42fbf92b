package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
)

// ParseFraction implements spec.md §4.3.5: \frac{A}{B} is ordinarily
// (Divide, A, B), but recognizes two special Leibniz-notation shapes —
// partial derivatives and ordinary derivatives/integrals-by-substitution —
// before falling back to plain division.
func ParseFraction(ctx dictionary.ParseContext) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}

	num := p.ParseGroupOrAtom()
	den := p.ParseGroupOrAtom()
	if num == nil {
		num = expr.MissingOperand()
	}
	if den == nil {
		den = expr.MissingOperand()
	}

	if result := recognizePartialDerivative(p, num, den); result != nil {
		return result
	}
	if result := recognizeOrdinaryDerivative(p, num, den); result != nil {
		return result
	}

	return expr.ApplyName("Divide", num, den)
}

// recognizePartialDerivative handles \frac{\partial f}{\partial x} and
// higher-order \frac{\partial^2 f}{\partial x \partial y} forms: numerator
// head PartialDerivative paired with a denominator that is itself (or a
// product of) PartialDerivative markers.
func recognizePartialDerivative(p *Parser, num, den *expr.Expression) *expr.Expression {
	if num.HeadName() != "PartialDerivative" {
		return nil
	}
	fn := num.Op(0)

	var vars []*expr.Expression
	switch {
	case den.HeadName() == "PartialDerivative":
		vars = append(vars, den.Op(0))
	case den.HeadName() == "Multiply":
		for _, op := range den.Ops() {
			if op.HeadName() == "PartialDerivative" {
				vars = append(vars, op.Op(0))
			}
		}
	default:
		return nil
	}
	if len(vars) == 0 {
		return nil
	}

	degree := expr.IntegerFromInt64(int64(len(vars)))
	return expr.ApplyName("PartialDerivative", fn, expr.ApplyName("List", vars...), degree)
}

// recognizeOrdinaryDerivative handles \frac{d}{dx} f(x) (Leibniz notation
// for an ordinary derivative): the numerator is a bare differential marker
// and the denominator is "d<var>"; the expression immediately following
// the fraction is parsed as the function body.
func recognizeOrdinaryDerivative(p *Parser, num, den *expr.Expression) *expr.Expression {
	numName := num.SymbolName()
	if numName == "" || !differentialSpellings[numName] {
		return nil
	}
	v, ok := asDifferentialVar(den)
	if !ok {
		return nil
	}

	fn := p.ParseExpression(PrecMultiplication)
	if fn == nil {
		fn = expr.MissingOperand()
	}
	return expr.ApplyName("D", fn, expr.Symbol(v))
}
