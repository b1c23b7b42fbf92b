// Elementary functions generalize internal/interp/builtins/math_advanced.go's
// scalar float64 -> float64 roster to sound interval enclosures: each
// checks the function's natural domain against the input bounds before
// calling the underlying math.* routine, clipping to Partial or collapsing
// to Empty exactly as a scalar caller would return a domain error.
package interval

import "math"

// Sqrt implements interval square root (domain x >= 0).
func Sqrt(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	switch {
	case hi < 0:
		return Empty()
	case lo < 0:
		return Partial(0, math.Sqrt(hi), "lo")
	default:
		return Value(math.Sqrt(lo), math.Sqrt(hi))
	}
}

// Ln implements interval natural log (domain x > 0, with an unbounded
// asymptote as x -> 0+).
func Ln(a Result) Result {
	return logLike(a, math.Log)
}

// Log10 implements interval base-10 log.
func Log10(a Result) Result {
	return logLike(a, math.Log10)
}

// Log2 implements interval base-2 log.
func Log2(a Result) Result {
	return logLike(a, math.Log2)
}

func logLike(a Result, f func(float64) float64) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	switch {
	case hi <= 0:
		return Empty()
	case lo <= 0:
		return Partial(math.Inf(-1), f(hi), "lo")
	default:
		return Value(f(lo), f(hi))
	}
}

// Exp implements interval exponentiation (monotonic increasing, domain all
// reals).
func Exp(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	return Value(math.Exp(lo), math.Exp(hi))
}

// Pow implements integer-exponent interval power, honoring the even/odd
// parity rule: an even exponent folds negative inputs onto the positive
// side (so [-2,1]^2 = [0,4], not [-4,4]), an odd exponent preserves sign
// and monotonicity directly.
func Pow(a Result, n int) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if n == 0 {
		return Value(1, 1)
	}
	if n < 0 {
		return Reciprocal(Pow(a, -n))
	}
	if n%2 == 1 {
		return Value(math.Pow(lo, float64(n)), math.Pow(hi, float64(n)))
	}
	// even exponent: monotonic on each side of 0, so the enclosure is
	// bounded by the corner magnitudes, with 0 included whenever the input
	// straddles it.
	magLo, magHi := math.Abs(lo), math.Abs(hi)
	if magLo > magHi {
		magLo, magHi = magHi, magLo
	}
	if lo <= 0 && hi >= 0 {
		return Value(0, math.Max(math.Pow(math.Abs(lo), float64(n)), math.Pow(hi, float64(n))))
	}
	return Value(math.Pow(magLo, float64(n)), math.Pow(magHi, float64(n)))
}

// PowF implements real-exponent interval power for a non-negative base
// (domain a >= 0, generalizing Sqrt's clipping rule to an arbitrary
// exponent).
func PowF(a Result, p float64) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	switch {
	case hi < 0:
		return Empty()
	case lo < 0:
		return Partial(0, math.Pow(hi, p), "lo")
	default:
		v1, v2 := math.Pow(lo, p), math.Pow(hi, p)
		if v1 > v2 {
			v1, v2 = v2, v1
		}
		return Value(v1, v2)
	}
}

// Abs implements interval absolute value.
func Abs(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	switch {
	case lo >= 0:
		return a
	case hi <= 0:
		return Value(-hi, -lo)
	default:
		return Value(0, math.Max(-lo, hi))
	}
}

// Sign implements interval sign, hulling every value the input can reach:
// a strict straddle of zero widens to [-1,1]; touching zero from exactly
// one side yields [0,1] or [-1,0].
func Sign(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	switch {
	case hi < 0:
		return Value(-1, -1)
	case lo > 0:
		return Value(1, 1)
	case lo == 0 && hi == 0:
		return Value(0, 0)
	case lo == 0:
		return Value(0, 1)
	case hi == 0:
		return Value(-1, 0)
	default:
		return Value(-1, 1)
	}
}

// stepDiscontinuity is the common shape of Floor/Ceil/Round: f is a step
// function, constant between jump points. Per spec.md §4.5, the enclosure
// is built by comparing the function value at lo and hi: if they agree,
// f is constant across the whole range and [f(lo), f(hi)] is exact; if
// they differ, the range straddles a jump and the sound result is
// Singular at the nearest crossing point, tagged with the one-sided
// continuity the step function keeps there (named scenario: floor on
// [0.5,1.5] is singular{at: 1, continuity: "right"}).
//
// A degenerate point input sitting exactly on a jump still has one
// well-defined scalar value, so it returns a plain Value rather than
// Singular even though the points immediately to either side of it
// disagree.
func stepDiscontinuity(a Result, f func(float64) float64, crossing func(lo, hi float64) float64) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if lo == hi {
		return Value(f(lo), f(lo))
	}
	flo, fhi := f(lo), f(hi)
	if flo == fhi {
		return Value(flo, fhi)
	}
	at := crossing(lo, hi)
	continuity := "left"
	if f(at) == fhi {
		continuity = "right"
	}
	return Singular(at, continuity)
}

// nextIntegerAbove returns the smallest integer strictly greater than lo —
// the shared crossing point for Floor and Ceil, which both jump at every
// integer (Floor picks up the new value there, Ceil still holds the old
// one).
func nextIntegerAbove(lo, hi float64) float64 {
	return math.Floor(lo) + 1
}

// nextHalfIntegerAbove returns the smallest x of the form n+0.5 strictly
// greater than lo — the crossing point Round jumps at.
func nextHalfIntegerAbove(lo, hi float64) float64 {
	return math.Floor(lo-0.5) + 1.5
}

// Floor implements interval floor.
func Floor(a Result) Result {
	return stepDiscontinuity(a, math.Floor, nextIntegerAbove)
}

// Ceil implements interval ceiling.
func Ceil(a Result) Result {
	return stepDiscontinuity(a, math.Ceil, nextIntegerAbove)
}

// Round implements interval rounding (half away from zero, matching
// math.Round).
func Round(a Result) Result {
	return stepDiscontinuity(a, math.Round, nextHalfIntegerAbove)
}

// Fract implements interval fractional part (x - floor(x)): a sawtooth
// that resets to 0 at every integer. A degenerate point input has one
// well-defined value; a range that crosses an integer boundary is
// Singular there rather than hulled to [0,1), matching the same
// jump-discontinuity contract Floor/Ceil/Round follow (spec.md §4.5):
// fract is right-continuous, since fract(n) = 0 agrees with the segment
// starting at n rather than the one ending there.
func Fract(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	f := func(x float64) float64 { return x - math.Floor(x) }
	if lo == hi {
		return Value(f(lo), f(lo))
	}
	if math.Floor(lo) == math.Floor(hi) {
		return Value(f(lo), f(hi))
	}
	return Singular(nextIntegerAbove(lo, hi), "right")
}

// Min implements interval minimum, taken elementwise.
func Min(a, b Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	blo, bhi, ok := bounds(b)
	if !ok {
		return b
	}
	return Value(math.Min(alo, blo), math.Min(ahi, bhi))
}

// Max implements interval maximum, taken elementwise.
func Max(a, b Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	blo, bhi, ok := bounds(b)
	if !ok {
		return b
	}
	return Value(math.Max(alo, blo), math.Max(ahi, bhi))
}

// Mod implements interval modulus against a (possibly itself interval-
// valued) divisor. The period used to bound the result is the single value
// max(|lo|,|hi|) of the divisor. For a divisor that is not a single point
// the result can therefore omit values reached with a smaller divisor:
// 5 mod [2,3] gives [2,2], although 5 mod 2 is 1.
func Mod(a, m Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	mlo, mhi, ok := bounds(m)
	if !ok {
		return m
	}
	if mlo == 0 && mhi == 0 {
		return Empty()
	}
	period := math.Max(math.Abs(mlo), math.Abs(mhi))

	if alo == ahi && mlo == mhi {
		v := math.Mod(alo, mlo)
		return Value(v, v)
	}
	if ahi-alo >= period {
		return Value(0, period)
	}
	lo := math.Mod(alo, period)
	if lo < 0 {
		lo += period
	}
	hi := lo + (ahi - alo)
	if hi > period {
		return Value(0, period)
	}
	return Value(lo, hi)
}
