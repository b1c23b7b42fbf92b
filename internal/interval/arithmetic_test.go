package interval

import (
	"math"
	"testing"
)

func boundsEqual(t *testing.T, r Result, wantLo, wantHi float64) {
	t.Helper()
	lo, hi, ok := r.Bounds()
	if !ok {
		t.Fatalf("expected bounded result, got kind %s", r.Kind())
	}
	const eps = 1e-9
	if math.Abs(lo-wantLo) > eps || math.Abs(hi-wantHi) > eps {
		t.Errorf("got [%g, %g], want [%g, %g]", lo, hi, wantLo, wantHi)
	}
}

func TestAdd(t *testing.T) {
	boundsEqual(t, Add(Value(1, 2), Value(3, 4)), 4, 6)
}

func TestSub(t *testing.T) {
	boundsEqual(t, Sub(Value(1, 2), Value(3, 4)), -3, -2)
}

func TestMul(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Result
		lo, hi     float64
	}{
		{"positive * positive", Value(1, 2), Value(3, 4), 3, 8},
		{"negative * positive", Value(-2, -1), Value(3, 4), -8, -3},
		{"straddling * positive", Value(-1, 2), Value(2, 3), -3, 6},
		{"straddling * straddling", Value(-1, 2), Value(-3, 1), -6, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boundsEqual(t, Mul(tt.a, tt.b), tt.lo, tt.hi)
		})
	}
}

func TestDiv(t *testing.T) {
	t.Run("positive divisor", func(t *testing.T) {
		boundsEqual(t, Div(Value(4, 6), Value(2, 4)), 1, 3)
	})
	t.Run("negative divisor", func(t *testing.T) {
		boundsEqual(t, Div(Value(4, 6), Value(-4, -2)), -3, -1)
	})
	t.Run("straddles zero is singular", func(t *testing.T) {
		r := Div(Value(1, 2), Value(-1, 1))
		if r.Kind() != KindSingular {
			t.Errorf("got kind %s, want singular", r.Kind())
		}
	})
	t.Run("division by the zero point is empty", func(t *testing.T) {
		r := Div(Value(1, 2), Value(0, 0))
		if r.Kind() != KindEmpty {
			t.Errorf("got kind %s, want empty", r.Kind())
		}
	})
	t.Run("touches zero from above is partial", func(t *testing.T) {
		r := Div(Value(1, 2), Value(0, 1))
		if r.Kind() != KindPartial {
			t.Errorf("got kind %s, want partial", r.Kind())
		}
		lo, hi, _ := r.Bounds()
		if lo != 1 || !math.IsInf(hi, 1) {
			t.Errorf("got [%g, %g], want [1, +inf]", lo, hi)
		}
	})
	t.Run("propagates empty operand", func(t *testing.T) {
		if Div(Empty(), Value(1, 2)).Kind() != KindEmpty {
			t.Error("expected Empty to propagate")
		}
	})
}

func TestPow(t *testing.T) {
	t.Run("even exponent straddling zero folds to nonnegative", func(t *testing.T) {
		boundsEqual(t, Pow(Value(-2, 1), 2), 0, 4)
	})
	t.Run("odd exponent preserves sign", func(t *testing.T) {
		boundsEqual(t, Pow(Value(-2, 1), 3), -8, 1)
	})
	t.Run("zero exponent", func(t *testing.T) {
		boundsEqual(t, Pow(Value(5, 10), 0), 1, 1)
	})
}

func TestSqrt(t *testing.T) {
	t.Run("fully negative is empty", func(t *testing.T) {
		if Sqrt(Value(-4, -1)).Kind() != KindEmpty {
			t.Error("expected Empty")
		}
	})
	t.Run("straddles zero clips to partial", func(t *testing.T) {
		r := Sqrt(Value(-4, 4))
		if r.Kind() != KindPartial {
			t.Errorf("got kind %s, want partial", r.Kind())
		}
		boundsEqual(t, r, 0, 2)
	})
	t.Run("fully nonnegative", func(t *testing.T) {
		boundsEqual(t, Sqrt(Value(4, 9)), 2, 3)
	})
}
