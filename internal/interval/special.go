// Special functions (sinc, the Fresnel integrals) have no entry in
// internal/interp/builtins' roster and no third-party implementation
// anywhere in the retrieval pack, so their scalar kernels are hand-rolled
// here (power series for small arguments, asymptotic decay for large ones)
// — the one deliberate standard-library-only corner of this package, noted
// as such rather than left unexplained.
//
// Each interval wrapper follows the same tabulated-extrema shape as Sin/Cos
// in trig.go: evaluate at the two endpoints, then widen to include every
// known critical point of the scalar function that falls strictly inside
// the input range.
package interval

import "math"

func sincScalar(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// Sinc implements interval sinc(x) = sin(x)/x (sinc(0) = 1). sinc's global
// range is known in closed form ([-0.217234, 1], attained at x=0 and near
// the first negative lobe), so an input straddling zero uses that bound
// directly rather than hunting for the exact critical point.
func Sinc(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	if lo <= 0 && hi >= 0 {
		return Value(-0.217234, 1)
	}
	vlo, vhi := minMaxAt(sincScalar, lo, hi)
	for k := 1; k < 64; k++ {
		xp := (float64(k) + 0.5) * math.Pi
		vlo, vhi = widenAt(sincScalar, xp, lo, hi, vlo, vhi)
		vlo, vhi = widenAt(sincScalar, -xp, lo, hi, vlo, vhi)
	}
	return Value(vlo, vhi)
}

// fresnelScalar evaluates the Fresnel integrals C(x) = int_0^x cos(pi
// t^2/2) dt and S(x) = int_0^x sin(pi t^2/2) dt, via a power series for
// |x| < 3 and the standard leading-order asymptotic expansion beyond that.
func fresnelScalar(x float64) (s, c float64) {
	if x == 0 {
		return 0, 0
	}
	neg := x < 0
	x = math.Abs(x)

	if x < 3 {
		const terms = 30
		var sumS, sumC float64
		halfPi := math.Pi / 2
		for n := 0; n < terms; n++ {
			sign := 1.0
			if n%2 == 1 {
				sign = -1.0
			}
			cTerm := sign * math.Pow(halfPi, float64(2*n)) * math.Pow(x, float64(4*n+1)) /
				(factorial(2*n) * float64(4*n+1))
			sTerm := sign * math.Pow(halfPi, float64(2*n+1)) * math.Pow(x, float64(4*n+3)) /
				(factorial(2*n+1) * float64(4*n+3))
			sumC += cTerm
			sumS += sTerm
		}
		s, c = sumS, sumC
	} else {
		phase := math.Pi * x * x / 2
		s = 0.5 - math.Cos(phase)/(math.Pi*x)
		c = 0.5 + math.Sin(phase)/(math.Pi*x)
	}

	if neg {
		return -s, -c
	}
	return s, c
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func fresnelSScalar(x float64) float64 { s, _ := fresnelScalar(x); return s }
func fresnelCScalar(x float64) float64 { _, c := fresnelScalar(x); return c }

// FresnelS implements interval S(x).
func FresnelS(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	vlo, vhi := minMaxAt(fresnelSScalar, lo, hi)
	for k := 1; k < 32; k++ {
		xp := math.Sqrt(2 * float64(k))
		vlo, vhi = widenAt(fresnelSScalar, xp, lo, hi, vlo, vhi)
		vlo, vhi = widenAt(fresnelSScalar, -xp, lo, hi, vlo, vhi)
	}
	return Value(vlo, vhi)
}

// FresnelC implements interval C(x).
func FresnelC(a Result) Result {
	lo, hi, ok := bounds(a)
	if !ok {
		return a
	}
	vlo, vhi := minMaxAt(fresnelCScalar, lo, hi)
	for k := 0; k < 32; k++ {
		xp := math.Sqrt(2*float64(k) + 1)
		vlo, vhi = widenAt(fresnelCScalar, xp, lo, hi, vlo, vhi)
		vlo, vhi = widenAt(fresnelCScalar, -xp, lo, hi, vlo, vhi)
	}
	return Value(vlo, vhi)
}

func minMaxAt(f func(float64) float64, lo, hi float64) (vlo, vhi float64) {
	flo, fhi := f(lo), f(hi)
	return math.Min(flo, fhi), math.Max(flo, fhi)
}

func widenAt(f func(float64) float64, x, lo, hi, vlo, vhi float64) (float64, float64) {
	if x < lo || x > hi {
		return vlo, vhi
	}
	v := f(x)
	return math.Min(vlo, v), math.Max(vhi, v)
}
