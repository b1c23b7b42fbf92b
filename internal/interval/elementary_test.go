package interval

import (
	"math"
	"testing"
)

func TestFloor(t *testing.T) {
	t.Run("constant across the range is exact", func(t *testing.T) {
		boundsEqual(t, Floor(Value(1.2, 1.8)), 1, 1)
	})
	t.Run("range straddling a jump is singular", func(t *testing.T) {
		r := Floor(Value(0.5, 1.5))
		if r.Kind() != KindSingular {
			t.Fatalf("got kind %s, want singular", r.Kind())
		}
		if r.At() != 1 || r.Continuity() != "right" {
			t.Errorf("got singular{at: %g, continuity: %q}, want singular{at: 1, continuity: \"right\"}", r.At(), r.Continuity())
		}
	})
	t.Run("degenerate point on a jump is a plain value", func(t *testing.T) {
		boundsEqual(t, Floor(Value(1, 1)), 1, 1)
	})
}

func TestCeil(t *testing.T) {
	t.Run("range straddling a jump is singular", func(t *testing.T) {
		r := Ceil(Value(0.5, 1.5))
		if r.Kind() != KindSingular {
			t.Fatalf("got kind %s, want singular", r.Kind())
		}
		if r.At() != 1 || r.Continuity() != "left" {
			t.Errorf("got singular{at: %g, continuity: %q}, want singular{at: 1, continuity: \"left\"}", r.At(), r.Continuity())
		}
	})
}

func TestRound(t *testing.T) {
	t.Run("range straddling a positive half-integer is singular", func(t *testing.T) {
		r := Round(Value(1.2, 1.8))
		if r.Kind() != KindSingular {
			t.Fatalf("got kind %s, want singular", r.Kind())
		}
		if r.At() != 1.5 || r.Continuity() != "right" {
			t.Errorf("got singular{at: %g, continuity: %q}, want singular{at: 1.5, continuity: \"right\"}", r.At(), r.Continuity())
		}
	})
	t.Run("range straddling a negative half-integer is left-continuous", func(t *testing.T) {
		r := Round(Value(-1.8, -1.2))
		if r.Kind() != KindSingular {
			t.Fatalf("got kind %s, want singular", r.Kind())
		}
		if r.Continuity() != "left" {
			t.Errorf("got continuity %q, want \"left\"", r.Continuity())
		}
	})
}

func TestFract(t *testing.T) {
	t.Run("within one integer segment is exact", func(t *testing.T) {
		boundsEqual(t, Fract(Value(1.2, 1.8)), 0.2, 0.8)
	})
	t.Run("spanning an integer crossing is singular", func(t *testing.T) {
		r := Fract(Value(0.5, 1.5))
		if r.Kind() != KindSingular {
			t.Fatalf("got kind %s, want singular", r.Kind())
		}
		if r.At() != 1 || r.Continuity() != "right" {
			t.Errorf("got singular{at: %g, continuity: %q}, want singular{at: 1, continuity: \"right\"}", r.At(), r.Continuity())
		}
	})
	t.Run("degenerate point on an integer is a plain value", func(t *testing.T) {
		boundsEqual(t, Fract(Value(2, 2)), 0, 0)
	})
}

func TestDivTouchesZeroFromAboveIsTightAtTheNumeratorsLowBound(t *testing.T) {
	// b = [0,1]: minimizing x/y over x in [2,4], y in (0,1] means the
	// smallest numerator over the largest denominator, 2/1 = 2.
	r := Div(Value(2, 4), Value(0, 1))
	lo, hi, _ := r.Bounds()
	if lo != 2 || !math.IsInf(hi, 1) {
		t.Errorf("got [%g, %g], want [2, +inf]", lo, hi)
	}
}

func TestDivTouchesZeroFromBelowIsTightAtTheNumeratorsLowBound(t *testing.T) {
	// b = [-1,0]: as y sweeps from -1 up to 0-, x/y (x in [2,4], both
	// positive numerator over a negative denominator shrinking toward 0)
	// is closest to zero at x=2, y=-1 (2/-1 = -2) and diverges to -inf as
	// y->0-.
	r := Div(Value(2, 4), Value(-1, 0))
	lo, hi, _ := r.Bounds()
	if !math.IsInf(lo, -1) || hi != -2 {
		t.Errorf("got [%g, %g], want [-inf, -2]", lo, hi)
	}
}
