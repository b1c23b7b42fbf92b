// Three-valued comparisons and piecewise hulling (spec.md §8/§9): an
// interval comparison is only ever definitely true or definitely false
// when the two enclosures don't overlap; anywhere the ranges overlap the
// true scalar comparison could go either way depending on which point
// within each interval was meant, so the honest answer is Maybe rather
// than an arbitrary pick.
package interval

// Less reports whether a < b: True iff a's range is entirely below b's,
// False iff a's range is entirely at or above b's, Maybe otherwise.
func Less(a, b Result) Tri {
	alo, ahi, aok := a.Bounds()
	blo, bhi, bok := b.Bounds()
	if !aok || !bok {
		return TriMaybe
	}
	switch {
	case ahi < blo:
		return TriTrue
	case alo >= bhi:
		return TriFalse
	default:
		return TriMaybe
	}
}

// Greater reports whether a > b.
func Greater(a, b Result) Tri {
	return Less(b, a)
}

// LessEqual reports whether a <= b.
func LessEqual(a, b Result) Tri {
	alo, ahi, aok := a.Bounds()
	blo, bhi, bok := b.Bounds()
	if !aok || !bok {
		return TriMaybe
	}
	switch {
	case ahi <= blo:
		return TriTrue
	case alo > bhi:
		return TriFalse
	default:
		return TriMaybe
	}
}

// GreaterEqual reports whether a >= b.
func GreaterEqual(a, b Result) Tri {
	return LessEqual(b, a)
}

// Equal reports whether a == b: True only when both are the same
// degenerate point, False when the ranges don't overlap at all, Maybe
// whenever they overlap without both collapsing to one shared point.
func Equal(a, b Result) Tri {
	alo, ahi, aok := a.Bounds()
	blo, bhi, bok := b.Bounds()
	if !aok || !bok {
		return TriMaybe
	}
	if ahi < blo || bhi < alo {
		return TriFalse
	}
	if alo == ahi && blo == bhi && alo == blo {
		return TriTrue
	}
	return TriMaybe
}

// NotEqual reports whether a != b.
func NotEqual(a, b Result) Tri {
	return Equal(a, b).Not()
}

// Case pairs a branch condition with the Result it would contribute,
// evaluated in order as a piecewise definition's clauses.
type Case struct {
	Cond  Tri
	Value Result
}

// Piecewise evaluates an ordered list of (condition, value) clauses plus a
// default, mirroring how a scalar piecewise picks its first matching
// branch. A clause whose condition is definitely True short-circuits,
// unless an earlier clause was only Maybe true — in that case the branch
// actually taken at any concrete point is ambiguous, so the sound answer
// hulls every clause that could possibly apply (spec.md §4.5).
func Piecewise(cases []Case, def Result) Result {
	var acc Result
	has := false

	for _, c := range cases {
		switch c.Cond {
		case TriFalse:
			continue
		case TriTrue:
			if !has {
				return c.Value
			}
			return unionResults(acc, c.Value)
		default: // TriMaybe
			if !has {
				acc, has = c.Value, true
			} else {
				acc = unionResults(acc, c.Value)
			}
		}
	}
	if !has {
		return def
	}
	return unionResults(acc, def)
}
