// SampleRange supplements spec.md §1's remark that a parsed expression "is
// evaluated through the interval library during plotting": it walks an
// expr.Expression tree built from this repo's own small arithmetic/
// elementary/trig dictionary entries and evaluates it over a partition of
// an input range, producing the per-sample enclosures a plotting
// collaborator would then hull into a drawable envelope. It deliberately
// does not reach into general symbolic evaluation — only the closed set of
// operator names this package itself defines arithmetic for.
package interval

import (
	"github.com/latexmath/latexmath/internal/expr"
)

// SampleRange evaluates e, treating the symbol named varName as the free
// variable, at n evenly spaced points across [lo, hi] (n >= 2; endpoints
// included), returning one Result per sample.
func SampleRange(e *expr.Expression, varName string, lo, hi float64, n int) []Result {
	if n < 2 {
		n = 2
	}
	out := make([]Result, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		out[i] = evalAt(e, varName, Value(x, x))
	}
	return out
}

// evalAt interprets e at a single sample point, where x is the point
// enclosure standing in for the free variable. Any head name this package
// doesn't define interval arithmetic for yields Entire(), the sound answer
// for "could be anything" rather than a guess.
func evalAt(e *expr.Expression, varName string, x Result) Result {
	if e == nil {
		return Entire()
	}

	switch e.Kind() {
	case expr.KindSymbol:
		if e.SymbolName() == varName {
			return x
		}
		return Entire()
	case expr.KindInteger:
		if v, ok := e.IntegerValue(); ok {
			f := float64(v.Int64())
			return Value(f, f)
		}
		return Entire()
	case expr.KindFloat:
		if f, ok := e.Float64(); ok {
			return Value(f, f)
		}
		return Entire()
	case expr.KindRational:
		num, den, ok := e.RationalParts()
		if !ok {
			return Entire()
		}
		nf, df := float64(num.Int64()), float64(den.Int64())
		if df == 0 {
			return Empty()
		}
		return Value(nf/df, nf/df)
	case expr.KindApply:
		return evalApply(e, varName, x)
	default:
		return Entire()
	}
}

func evalApply(e *expr.Expression, varName string, x Result) Result {
	args := func(i int) Result { return evalAt(e.Op(i), varName, x) }

	switch e.HeadName() {
	case "Add":
		acc := args(0)
		for i := 1; i < e.Arity(); i++ {
			acc = Add(acc, args(i))
		}
		return acc
	case "Subtract":
		if e.Arity() != 2 {
			return Entire()
		}
		return Sub(args(0), args(1))
	case "Multiply":
		acc := args(0)
		for i := 1; i < e.Arity(); i++ {
			acc = Mul(acc, args(i))
		}
		return acc
	case "Divide":
		if e.Arity() != 2 {
			return Entire()
		}
		return Div(args(0), args(1))
	case "Negate":
		return Neg(args(0))
	case "Identity":
		return args(0)
	case "Power":
		if e.Arity() != 2 {
			return Entire()
		}
		if n, ok := e.Op(1).IntegerValue(); ok {
			return Pow(args(0), int(n.Int64()))
		}
		if f, ok := e.Op(1).Float64(); ok {
			return PowF(args(0), f)
		}
		return Entire()
	case "Sqrt":
		return Sqrt(args(0))
	case "Root":
		if e.Arity() != 2 {
			return Entire()
		}
		if n, ok := e.Op(1).IntegerValue(); ok && n.Int64() != 0 {
			return PowF(args(0), 1/float64(n.Int64()))
		}
		return Entire()
	case "Ln":
		return Ln(args(0))
	case "Exp":
		return Exp(args(0))
	case "Log":
		if e.Arity() == 2 {
			if isBaseTen(e.Op(1)) {
				return Log10(args(0))
			}
			return Div(Ln(args(0)), Ln(args(1)))
		}
		return Log10(args(0))
	case "Abs":
		return Abs(args(0))
	case "Sin":
		return Sin(args(0))
	case "Cos":
		return Cos(args(0))
	case "Tan":
		return Tan(args(0))
	case "Cot":
		return Cot(args(0))
	case "Sinh":
		return Sinh(args(0))
	case "Cosh":
		return Cosh(args(0))
	case "Tanh":
		return Tanh(args(0))
	case "Arcsin":
		return Asin(args(0))
	case "Arccos":
		return Acos(args(0))
	case "Arctan":
		return Atan(args(0))
	default:
		return Entire()
	}
}

// isBaseTen reports whether base is the literal integer 10; duplicated
// from internal/builtin (unexported there) since this package can't import
// a dictionary-layer helper without an import cycle.
func isBaseTen(base *expr.Expression) bool {
	n, ok := base.IntegerValue()
	return ok && n.Int64() == 10
}
