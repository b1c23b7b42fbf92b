// Package interval implements sound outward-rounded-in-spirit real interval
// arithmetic (spec.md §4.5): arithmetic, elementary and transcendental
// functions, and three-valued comparisons over bounded enclosures, intended
// as the evaluation backend a plotting collaborator drives against parsed
// expressions. Bounds are computed with ordinary IEEE-754 float64 math, not
// claimed to be bit-exact outward-rounded — sound to the accuracy of the
// host math library, matching the function roster (Sin/Cos/Tan/ArcSin/.../
// Sqrt/Ln/Log/Pow/Floor/Ceil/Round) internal/interp/builtins/math_trig.go
// and math_advanced.go implement for scalars.
package interval

import "math"

// Kind tags the five shapes a Result can take (spec.md §3's Interval result
// tagged union).
type Kind int

const (
	KindInterval Kind = iota
	KindEmpty
	KindEntire
	KindSingular
	KindPartial
)

func (k Kind) String() string {
	switch k {
	case KindInterval:
		return "interval"
	case KindEmpty:
		return "empty"
	case KindEntire:
		return "entire"
	case KindSingular:
		return "singular"
	case KindPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Result is the tagged union every interval.Package operation returns: a
// plain bounded enclosure, or one of the error/exception tags spec.md §3
// names. Fields outside the active Kind are zero.
type Result struct {
	kind Kind
	lo   float64
	hi   float64

	// at is the pole/discontinuity location for KindSingular.
	at float64
	// continuity is "left" or "right" for a KindSingular jump discontinuity
	// (floor/ceil/round/fract/mod), or "" for a true pole (tan, 1/x).
	continuity string
	// domainClipped names which bound ("lo" or "hi") was clipped to the
	// function's natural domain for KindPartial.
	domainClipped string
}

// Value builds a plain bounded enclosure. An inverted pair (lo > hi) is
// swapped into order rather than rejected.
func Value(lo, hi float64) Result {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Result{kind: KindInterval, lo: lo, hi: hi}
}

// Empty reports no value in the domain satisfies the operation (e.g. 0/0).
func Empty() Result { return Result{kind: KindEmpty} }

// Entire reports the result could be any real number.
func Entire() Result { return Result{kind: KindEntire, lo: math.Inf(-1), hi: math.Inf(1)} }

// Singular reports a pole or jump discontinuity inside the input interval.
// continuity is "left"/"right" for a one-sided jump, or "" for a true pole.
func Singular(at float64, continuity string) Result {
	return Result{kind: KindSingular, at: at, continuity: continuity}
}

// Partial builds a sound-but-incomplete enclosure: the domain was clipped
// (side is "lo" or "hi", or "" when not applicable) to exclude inputs
// outside the function's natural domain.
func Partial(lo, hi float64, side string) Result {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Result{kind: KindPartial, lo: lo, hi: hi, domainClipped: side}
}

func (r Result) Kind() Kind { return r.kind }

// Bounds reports r's enclosure and whether one exists (true for
// KindInterval and KindPartial, false otherwise).
func (r Result) Bounds() (lo, hi float64, ok bool) {
	if r.kind == KindInterval || r.kind == KindPartial {
		return r.lo, r.hi, true
	}
	return 0, 0, false
}

func (r Result) At() float64 { return r.at }

func (r Result) Continuity() string { return r.continuity }

func (r Result) DomainClipped() string { return r.domainClipped }

// Contains reports whether x lies within a bounded Result's enclosure.
func (r Result) Contains(x float64) bool {
	lo, hi, ok := r.Bounds()
	return ok && x >= lo && x <= hi
}

// Tri is the three-valued comparison result (spec.md §9): never collapsed
// to a two-valued bit, since "maybe" carries information a bool can't.
type Tri int

const (
	TriFalse Tri = iota
	TriTrue
	TriMaybe
)

func (t Tri) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "maybe"
	}
}

// Not computes tri-valued negation: Maybe negates to Maybe.
func (t Tri) Not() Tri {
	switch t {
	case TriTrue:
		return TriFalse
	case TriFalse:
		return TriTrue
	default:
		return TriMaybe
	}
}

// And is idempotent and short-circuits to False as soon as either operand
// is False, per spec.md §8's three-valued comparison laws.
func (t Tri) And(other Tri) Tri {
	if t == TriFalse || other == TriFalse {
		return TriFalse
	}
	if t == TriTrue && other == TriTrue {
		return TriTrue
	}
	return TriMaybe
}

// Or mirrors And: True as soon as either operand is True.
func (t Tri) Or(other Tri) Tri {
	if t == TriTrue || other == TriTrue {
		return TriTrue
	}
	if t == TriFalse && other == TriFalse {
		return TriFalse
	}
	return TriMaybe
}

// unionResults (spec.md §4.5's piecewise hull) returns the smallest bounded
// Result enclosing both a and b, propagating Empty/Entire/Singular as-is
// when either side isn't a plain bounded interval.
func unionResults(a, b Result) Result {
	alo, ahi, aok := a.Bounds()
	if !aok {
		return a
	}
	blo, bhi, bok := b.Bounds()
	if !bok {
		return b
	}
	return Value(math.Min(alo, blo), math.Max(ahi, bhi))
}
