package interval

import (
	"testing"

	"github.com/latexmath/latexmath/internal/expr"
)

func TestSampleRangeLinear(t *testing.T) {
	// x + 1, sampled at x = 0, 1, 2
	e := expr.ApplyName("Add", expr.Symbol("x"), expr.IntegerFromInt64(1))
	results := SampleRange(e, "x", 0, 2, 3)
	if len(results) != 3 {
		t.Fatalf("got %d samples, want 3", len(results))
	}
	want := []float64{1, 2, 3}
	for i, r := range results {
		boundsEqual(t, r, want[i], want[i])
	}
}

func TestSampleRangeUnknownOperatorIsEntire(t *testing.T) {
	e := expr.ApplyName("SomeUnsupportedHead", expr.Symbol("x"))
	results := SampleRange(e, "x", 0, 1, 2)
	for _, r := range results {
		if r.Kind() != KindEntire {
			t.Errorf("got kind %s, want entire", r.Kind())
		}
	}
}

func TestSampleRangeSquare(t *testing.T) {
	// x^2 sampled at x = -1, 0, 1
	e := expr.ApplyName("Power", expr.Symbol("x"), expr.IntegerFromInt64(2))
	results := SampleRange(e, "x", -1, 1, 3)
	want := []float64{1, 0, 1}
	for i, r := range results {
		boundsEqual(t, r, want[i], want[i])
	}
}
