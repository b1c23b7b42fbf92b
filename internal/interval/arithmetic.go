package interval

import "math"

// bounds extracts r's enclosure, reporting ok=false for Empty/Entire/
// Singular so callers can propagate those tags unchanged (spec.md §4.5).
func bounds(r Result) (lo, hi float64, ok bool) {
	return r.Bounds()
}

// Add implements interval addition: [a,b]+[c,d] = [a+c, b+d].
func Add(a, b Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	blo, bhi, ok := bounds(b)
	if !ok {
		return b
	}
	return Value(alo+blo, ahi+bhi)
}

// Sub implements interval subtraction: [a,b]-[c,d] = [a-d, b-c].
func Sub(a, b Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	blo, bhi, ok := bounds(b)
	if !ok {
		return b
	}
	return Value(alo-bhi, ahi-blo)
}

// Neg implements interval negation: -[a,b] = [-b,-a].
func Neg(a Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	return Value(-ahi, -alo)
}

// Mul implements interval multiplication by taking the min/max of the four
// corner products — correct regardless of each operand's sign class.
func Mul(a, b Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	blo, bhi, ok := bounds(b)
	if !ok {
		return b
	}
	p1, p2, p3, p4 := alo*blo, alo*bhi, ahi*blo, ahi*bhi
	lo := math.Min(math.Min(p1, p2), math.Min(p3, p4))
	hi := math.Max(math.Max(p1, p2), math.Max(p3, p4))
	return Value(lo, hi)
}

// Div implements interval division, dispatching on the divisor's sign class
// (spec.md §4.5): strictly one-signed divisors reduce to a reciprocal
// multiply; a divisor straddling zero is Singular (a pole inside the
// input); a divisor touching zero from exactly one side produces a
// Partial enclosure open toward infinity; [0,0] is Empty.
func Div(a, b Result) Result {
	alo, ahi, ok := bounds(a)
	if !ok {
		return a
	}
	blo, bhi, ok := bounds(b)
	if !ok {
		return b
	}

	switch {
	case blo == 0 && bhi == 0:
		return Empty()

	case blo > 0 || bhi < 0:
		return Mul(Value(alo, ahi), Value(1/bhi, 1/blo))

	case blo < 0 && bhi > 0:
		return Singular(0, "")

	case blo == 0: // b = [0, bhi], bhi > 0
		switch {
		case alo >= 0:
			return Partial(alo/bhi, math.Inf(1), "hi")
		case ahi <= 0:
			return Partial(math.Inf(-1), ahi/bhi, "lo")
		default:
			return Entire()
		}

	default: // bhi == 0, b = [blo, 0], blo < 0
		switch {
		case alo >= 0:
			return Partial(math.Inf(-1), alo/blo, "lo")
		case ahi <= 0:
			return Partial(ahi/blo, math.Inf(1), "hi")
		default:
			return Entire()
		}
	}
}

// Reciprocal is Div(Value(1,1), a).
func Reciprocal(a Result) Result {
	return Div(Value(1, 1), a)
}
