package interval

import "testing"

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Result
		want Tri
	}{
		{"disjoint true", Value(1, 2), Value(3, 4), TriTrue},
		{"disjoint false", Value(3, 4), Value(1, 2), TriFalse},
		{"overlapping maybe", Value(1, 3), Value(2, 4), TriMaybe},
		{"touching boundary false", Value(2, 3), Value(1, 2), TriFalse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b); got != tt.want {
				t.Errorf("Less() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	t.Run("same degenerate point", func(t *testing.T) {
		if got := Equal(Value(2, 2), Value(2, 2)); got != TriTrue {
			t.Errorf("got %s, want true", got)
		}
	})
	t.Run("disjoint ranges", func(t *testing.T) {
		if got := Equal(Value(1, 2), Value(3, 4)); got != TriFalse {
			t.Errorf("got %s, want false", got)
		}
	})
	t.Run("overlapping non-degenerate", func(t *testing.T) {
		if got := Equal(Value(1, 3), Value(2, 4)); got != TriMaybe {
			t.Errorf("got %s, want maybe", got)
		}
	})
}

func TestTriAndOr(t *testing.T) {
	if TriTrue.And(TriMaybe) != TriMaybe {
		t.Error("True AND Maybe should be Maybe")
	}
	if TriFalse.And(TriMaybe) != TriFalse {
		t.Error("False AND Maybe should short-circuit to False")
	}
	if TriTrue.Or(TriMaybe) != TriTrue {
		t.Error("True OR Maybe should short-circuit to True")
	}
	if TriFalse.Or(TriMaybe) != TriMaybe {
		t.Error("False OR Maybe should be Maybe")
	}
}

func TestPiecewiseDefiniteBranchShortCircuits(t *testing.T) {
	r := Piecewise([]Case{
		{Cond: TriFalse, Value: Value(1, 1)},
		{Cond: TriTrue, Value: Value(2, 2)},
		{Cond: TriTrue, Value: Value(99, 99)},
	}, Value(0, 0))
	boundsEqual(t, r, 2, 2)
}

func TestPiecewiseMaybeHullsCandidates(t *testing.T) {
	r := Piecewise([]Case{
		{Cond: TriMaybe, Value: Value(1, 2)},
		{Cond: TriMaybe, Value: Value(5, 6)},
	}, Value(0, 0))
	boundsEqual(t, r, 0, 6)
}

func TestPiecewiseNoMatchUsesDefault(t *testing.T) {
	r := Piecewise([]Case{
		{Cond: TriFalse, Value: Value(1, 2)},
	}, Value(7, 7))
	boundsEqual(t, r, 7, 7)
}
