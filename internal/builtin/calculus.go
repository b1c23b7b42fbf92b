package builtin

import (
	"fmt"
	"strings"

	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

// calculusEntries covers spec.md §4.3.4 and §4.3.5: the big operators
// (\sum, \prod, the four integral spellings) and \partial, the marker
// fraction.go's recognizePartialDerivative looks for in \frac's numerator.
func calculusEntries() []*dictionary.Entry {
	bigOps := []struct {
		trigger string
		head    string
		kind    parser.BigOperatorKind
	}{
		{`\sum`, "Sum", parser.BigOperatorSum},
		{`\prod`, "Product", parser.BigOperatorProduct},
		{`\int`, "Integrate", parser.BigOperatorIntegrate},
		{`\iint`, "Integrate", parser.BigOperatorIntegrate},
		{`\iiint`, "Integrate", parser.BigOperatorIntegrate},
		{`\oint`, "Integrate", parser.BigOperatorIntegrate},
	}

	var out []*dictionary.Entry
	for _, b := range bigOps {
		head, kind, trig := b.head, b.kind, b.trigger
		out = append(out, &dictionary.Entry{
			Kind:          dictionary.KindPrefix,
			Name:          head, // last-registered spelling wins the serialize slot
			LatexTrigger:  []string{trig},
			Precedence:    parser.PrecFunctionCall,
			PrecedenceSet: true,
			Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
				return parser.ParseBigOperator(ctx, head, kind)
			},
			Serialize: serializeBigOperator(trig),
		})
	}

	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindPrefix, Name: "PartialDerivative",
		LatexTrigger: []string{`\partial`}, Precedence: parser.PrecNegate, PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericPrefix(ctx, "PartialDerivative", parser.PrecNegate)
		},
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			if e.Arity() >= 3 {
				return serializePartialFraction(s, e)
			}
			return `\partial ` + s.WrapShort(e.Op(0))
		},
	})

	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindPrefix, Name: "Gradient",
		LatexTrigger: []string{`\nabla`}, Precedence: parser.PrecNegate, PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericPrefix(ctx, "Gradient", parser.PrecNegate)
		},
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			return `\nabla ` + s.WrapShort(e.Op(0))
		},
	})

	// Postfix prime: f'(x) is an ordinary derivative of order 1 (stacked
	// primes raise the order), applying to whatever symbol/application
	// precedes it. Shares the "Derivative" name with the order wrapping
	// trig.go's ParseTrig builds for e.g. \sin'(x), so either spelling
	// serves as the round-trip's Serialize representative.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindPostfix, Name: "Derivative",
		LatexTrigger: []string{"'"}, Precedence: parser.PrecPostfix, PrecedenceSet: true,
		ParseInfix: func(ctx dictionary.ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression {
			if lhs.HeadName() == "Derivative" {
				if n, ok := lhs.Op(1).IntegerValue(); ok {
					return expr.ApplyName("Derivative", lhs.Op(0), expr.IntegerFromInt64(n.Int64()+1))
				}
			}
			return expr.ApplyName("Derivative", lhs, expr.IntegerFromInt64(1))
		},
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			order := 1
			if n, ok := e.Op(1).IntegerValue(); ok {
				order = int(n.Int64())
			}
			primes := ""
			for i := 0; i < order; i++ {
				primes += "'"
			}
			return s.WrapShort(e.Op(0)) + primes
		},
	})

	// D is the ordinary Leibniz-notation derivative \frac{d}{dx} f(x)
	// (fraction.go's recognizeOrdinaryDerivative); it has no trigger of
	// its own since \frac already owns the "d/dx" spelling.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindFunction, Name: "D",
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			return `\frac{d}{d` + s.WrapShort(e.Op(1)) + `} ` + s.WrapShort(e.Op(0))
		},
	})

	return out
}

// serializeBigOperator reconstructs a \sum/\prod/\int-family application
// built by bigops.go's ParseBigOperator, mirroring its index-tuple and
// differential-stripping logic in reverse.
func serializeBigOperator(trig string) dictionary.SerializeFn {
	return func(s dictionary.Serializer, e *expr.Expression) string {
		body := e.Op(0)
		tuples := e.Ops()[1:]
		if e.HeadName() == "Integrate" {
			return serializeIntegral(s, trig, body, tuples)
		}
		return serializeSumProduct(s, trig, body, tuples)
	}
}

// indexPiece renders one index-tuple operand as its subscript/superscript
// pieces: a bare name, "name=lo", "name=lo" with a separate "hi" superscript,
// or "name \in set[, condition]" for an Element binder.
func indexPiece(s dictionary.Serializer, t *expr.Expression) (sub, sup string) {
	if t.HeadName() == "Element" {
		sub = s.WrapShort(t.Op(0)) + `\in ` + s.WrapShort(t.Op(1))
		if t.Arity() >= 3 {
			sub += ", " + s.WrapShort(t.Op(2))
		}
		return sub, ""
	}
	switch t.Arity() {
	case 1:
		return s.WrapShort(t.Op(0)), ""
	case 2:
		return s.WrapShort(t.Op(0)) + "=" + s.WrapShort(t.Op(1)), ""
	default:
		return s.WrapShort(t.Op(0)) + "=" + s.WrapShort(t.Op(1)), s.WrapShort(t.Op(2))
	}
}

func serializeSumProduct(s dictionary.Serializer, trig string, body *expr.Expression, tuples []*expr.Expression) string {
	var subs, sups []string
	for _, t := range tuples {
		sub, sup := indexPiece(s, t)
		if sub != "" {
			subs = append(subs, sub)
		}
		if sup != "" {
			sups = append(sups, sup)
		}
	}
	out := trig
	if len(subs) > 0 {
		out += "_{" + strings.Join(subs, ", ") + "}"
	}
	if len(sups) > 0 {
		out += "^{" + strings.Join(sups, ", ") + "}"
	}
	return out + " " + s.WrapShort(body)
}

// serializeIntegral reconstructs an \int-family expression. A trailing
// operand is treated as the bounds tuple when it has arity 2+: either the
// bare "(Tuple, lo, hi)" of \int_0^1 with no differential, or the
// "(Tuple, var, lo, hi)" ParseBigOperator builds when it merges the one
// differential into the bounds, whose var is written back as \,d<var>.
// Everything else is a differential variable. This misreads a lower-bound-only integral (an
// arity-1 bounds tuple with no upper limit) as a differential instead, an
// accepted gap since \int_a (no upper bound) without a matching \int^b is
// not a form bigops.go's own parser distinguishes from a bare differential
// either.
func serializeIntegral(s dictionary.Serializer, trig string, body *expr.Expression, tuples []*expr.Expression) string {
	var bounds *expr.Expression
	var diffVars []*expr.Expression
	for _, t := range tuples {
		if bounds == nil && t.Arity() >= 2 {
			bounds = t
			continue
		}
		diffVars = append(diffVars, t)
	}

	out := trig
	if bounds != nil {
		lo, hi := bounds.Op(0), bounds.Op(1)
		if bounds.Arity() >= 3 {
			lo, hi = bounds.Op(1), bounds.Op(2)
			diffVars = append(diffVars, expr.ApplyName("Tuple", bounds.Op(0)))
		}
		out += "_{" + s.WrapShort(lo) + "}^{" + s.WrapShort(hi) + "}"
	}
	out += " " + s.WrapShort(body)
	for _, v := range diffVars {
		out += `\,d` + s.WrapShort(v.Op(0))
	}
	return out
}

// serializePartialFraction renders the three-operand PartialDerivative
// shape fraction.go's recognizePartialDerivative builds for any degree:
// (PartialDerivative, fn, (List, var…), degree).
func serializePartialFraction(s dictionary.Serializer, e *expr.Expression) string {
	fn := e.Op(0)
	vars := e.Op(1).Ops()
	degree := len(vars)

	num := `\partial`
	if degree > 1 {
		num = fmt.Sprintf(`\partial^%d`, degree)
	}
	den := ""
	for _, v := range vars {
		den += `\partial ` + s.WrapShort(v)
	}
	return fmt.Sprintf(`\frac{%s}{%s} %s`, num, den, s.WrapShort(fn))
}
