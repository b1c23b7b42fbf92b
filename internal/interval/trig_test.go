package interval

import (
	"math"
	"testing"
)

func TestSinContainsMaximum(t *testing.T) {
	r := Sin(Value(0, math.Pi))
	lo, hi, ok := r.Bounds()
	if !ok {
		t.Fatalf("expected bounded result, got %s", r.Kind())
	}
	if math.Abs(hi-1) > 1e-9 {
		t.Errorf("expected max 1 (pi/2 inside range), got hi=%g", hi)
	}
	if lo < -1e-9 {
		t.Errorf("expected lo close to 0 at the endpoints, got %g", lo)
	}
}

func TestCosFullPeriodIsFullRange(t *testing.T) {
	r := Cos(Value(0, 3*math.Pi))
	boundsEqual(t, r, -1, 1)
}

func TestTanPoleIsSingular(t *testing.T) {
	r := Tan(Value(0, math.Pi))
	if r.Kind() != KindSingular {
		t.Errorf("got kind %s, want singular (pi/2 inside range)", r.Kind())
	}
}

func TestTanNoPoleIsBounded(t *testing.T) {
	r := Tan(Value(0, 1))
	if r.Kind() != KindInterval {
		t.Errorf("got kind %s, want interval", r.Kind())
	}
}

func TestAsinOutOfDomainIsEmpty(t *testing.T) {
	if Asin(Value(2, 3)).Kind() != KindEmpty {
		t.Error("expected Empty for a domain entirely outside [-1,1]")
	}
}

func TestAsinClipsPartialDomain(t *testing.T) {
	r := Asin(Value(-2, 0))
	if r.Kind() != KindPartial {
		t.Errorf("got kind %s, want partial", r.Kind())
	}
}

func TestAtan2OriginInsideIsFullRange(t *testing.T) {
	r := Atan2(Value(-1, 1), Value(-1, 1))
	boundsEqual(t, r, -math.Pi, math.Pi)
}

func TestAtan2DisjointQuadrant(t *testing.T) {
	r := Atan2(Value(1, 2), Value(1, 2))
	lo, hi, ok := r.Bounds()
	if !ok {
		t.Fatalf("expected bounded result, got %s", r.Kind())
	}
	if lo < 0 || hi > math.Pi/2 {
		t.Errorf("expected result within first quadrant, got [%g, %g]", lo, hi)
	}
}
