// Trigonometric functions generalize internal/interp/builtins/math_trig.go's
// scalar roster (Sin, Cos, Tan, ArcSin, ArcCos, ArcTan, ArcTan2, CoTan, ...)
// to sound interval enclosures via containsExtremum: rather than trusting
// monotonicity between the two endpoints (wrong whenever a
// maximum/minimum/pole falls strictly inside the interval), each function
// checks whether the relevant family of critical points intersects the
// input range first.
package interval

import "math"

// containsExtremum reports whether base + k*period, for some integer k,
// falls within [lo, hi].
func containsExtremum(lo, hi, base, period float64) bool {
	if period <= 0 {
		return false
	}
	k := math.Ceil((lo - base) / period)
	x := base + k*period
	return x <= hi
}

// nearestCriticalPoint returns the smallest base+k*period at or after lo,
// used to report a Singular pole's location.
func nearestCriticalPoint(lo, base, period float64) float64 {
	k := math.Ceil((lo - base) / period)
	return base + k*period
}

// Sin implements interval sine.
func Sin(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if hi-lo >= 2*math.Pi {
		return Value(-1, 1)
	}
	slo, shi := math.Sin(lo), math.Sin(hi)
	vlo, vhi := math.Min(slo, shi), math.Max(slo, shi)
	if containsExtremum(lo, hi, math.Pi/2, 2*math.Pi) {
		vhi = 1
	}
	if containsExtremum(lo, hi, -math.Pi/2, 2*math.Pi) {
		vlo = -1
	}
	return Value(vlo, vhi)
}

// Cos implements interval cosine.
func Cos(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if hi-lo >= 2*math.Pi {
		return Value(-1, 1)
	}
	clo, chi := math.Cos(lo), math.Cos(hi)
	vlo, vhi := math.Min(clo, chi), math.Max(clo, chi)
	if containsExtremum(lo, hi, 0, 2*math.Pi) {
		vhi = 1
	}
	if containsExtremum(lo, hi, math.Pi, 2*math.Pi) {
		vlo = -1
	}
	return Value(vlo, vhi)
}

// Tan implements interval tangent. A pole (pi/2 + k*pi) strictly inside the
// input makes the function unbounded on both sides at once, reported as
// Singular; the magnitude-based fallback below catches poles containsExtremum
// can miss due to floating-point drift at the endpoints themselves.
func Tan(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if containsExtremum(lo, hi, math.Pi/2, math.Pi) {
		return Singular(nearestCriticalPoint(lo, math.Pi/2, math.Pi), "")
	}
	tlo, thi := math.Tan(lo), math.Tan(hi)
	if math.Abs(tlo) > 1e10 && math.Abs(thi) > 1e10 && (tlo > 0) != (thi > 0) {
		return Singular(nearestCriticalPoint(lo, math.Pi/2, math.Pi), "")
	}
	if tlo > thi {
		return Entire()
	}
	return Value(tlo, thi)
}

// Cot implements interval cotangent (poles at k*pi, monotonic decreasing
// between them).
func Cot(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if containsExtremum(lo, hi, 0, math.Pi) {
		return Singular(nearestCriticalPoint(lo, 0, math.Pi), "")
	}
	clo, chi := 1/math.Tan(lo), 1/math.Tan(hi)
	if clo < chi {
		return Entire()
	}
	return Value(chi, clo)
}

// Asin implements interval arcsine (domain [-1,1], monotonic increasing).
func Asin(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if hi < -1 || lo > 1 {
		return Empty()
	}
	clo, chi := math.Max(lo, -1), math.Min(hi, 1)
	if lo < -1 || hi > 1 {
		side := "lo"
		if hi > 1 {
			side = "hi"
		}
		return Partial(math.Asin(clo), math.Asin(chi), side)
	}
	return Value(math.Asin(clo), math.Asin(chi))
}

// Acos implements interval arccosine (domain [-1,1], monotonic decreasing).
func Acos(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if hi < -1 || lo > 1 {
		return Empty()
	}
	clo, chi := math.Max(lo, -1), math.Min(hi, 1)
	if lo < -1 || hi > 1 {
		side := "lo"
		if hi > 1 {
			side = "hi"
		}
		return Partial(math.Acos(chi), math.Acos(clo), side)
	}
	return Value(math.Acos(chi), math.Acos(clo))
}

// Atan implements interval arctangent (domain all reals, monotonic
// increasing, range bounded by (-pi/2, pi/2)).
func Atan(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	return Value(math.Atan(lo), math.Atan(hi))
}

// Atan2 implements interval two-argument arctangent. When the y-by-x
// bounding box contains the origin, or straddles the negative x-axis with
// y spanning both signs, the result wraps across the +-pi branch cut and
// the only sound enclosure is the full range; this is a documented
// approximation rather than a tight bound in that case.
func Atan2(y, x Result) Result {
	ylo, yhi, ok := bounds(y)
	if !ok {
		return y
	}
	xlo, xhi, ok := bounds(x)
	if !ok {
		return x
	}

	if xlo <= 0 && xhi >= 0 && ylo <= 0 && yhi >= 0 {
		return Value(-math.Pi, math.Pi)
	}
	if xlo < 0 && ylo < 0 && yhi > 0 {
		return Value(-math.Pi, math.Pi)
	}

	corners := [4]float64{
		math.Atan2(ylo, xlo), math.Atan2(ylo, xhi),
		math.Atan2(yhi, xlo), math.Atan2(yhi, xhi),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	return Value(lo, hi)
}

// Sinh implements interval hyperbolic sine (monotonic increasing).
func Sinh(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	return Value(math.Sinh(lo), math.Sinh(hi))
}

// Cosh implements interval hyperbolic cosine (minimum 1 at x=0).
func Cosh(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if lo <= 0 && hi >= 0 {
		return Value(1, math.Max(math.Cosh(lo), math.Cosh(hi)))
	}
	clo, chi := math.Cosh(lo), math.Cosh(hi)
	if clo > chi {
		clo, chi = chi, clo
	}
	return Value(clo, chi)
}

// Tanh implements interval hyperbolic tangent (monotonic increasing,
// bounded by (-1,1)).
func Tanh(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	return Value(math.Tanh(lo), math.Tanh(hi))
}
