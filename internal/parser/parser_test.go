package parser_test

import (
	"testing"

	"github.com/latexmath/latexmath/internal/builtin"
	"github.com/latexmath/latexmath/internal/parser"
)

func parseOK(t *testing.T, latex string) string {
	t.Helper()
	dict := builtin.Default(func(err error) { t.Logf("dictionary warning: %v", err) })
	e, diags := parser.Parse(latex, dict, parser.DefaultOptions())
	if !diags.Empty() {
		t.Fatalf("unexpected diagnostics for %q: %s", latex, diags.Error())
	}
	return e.String()
}

func TestParseArithmeticPrecedence(t *testing.T) {
	tests := []struct {
		latex string
		want  string
	}{
		{"1 + 2 * 3", "(Add 1 (Multiply 2 3))"},
		{"(1 + 2) * 3", "(Multiply (Add 1 2) 3)"},
		{"2^{3+1}", "(Power 2 (Add 3 1))"},
		{"-2^2", "(Power (Negate 2) 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.latex, func(t *testing.T) {
			if got := parseOK(t, tt.latex); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.latex, got, tt.want)
			}
		})
	}
}

func TestParseFraction(t *testing.T) {
	got := parseOK(t, `\frac{1}{2}`)
	want := "(Divide 1 2)"
	if got != want {
		t.Errorf("Parse(frac) = %q, want %q", got, want)
	}
}

func TestParseMatchfixTuple(t *testing.T) {
	got := parseOK(t, "(1, 2, 3)")
	want := "(Tuple 1 2 3)"
	if got != want {
		t.Errorf("Parse(tuple) = %q, want %q", got, want)
	}
}

func TestParseMissingOperandRecoversWithErrorSentinel(t *testing.T) {
	dict := builtin.Default(func(error) {})
	e, _ := parser.Parse("1 +", dict, parser.DefaultOptions())
	if e == nil {
		t.Fatal("Parse(\"1 +\") should still return a well-formed tree, not nil")
	}
	if e.HeadName() != "Add" {
		t.Fatalf("Parse(\"1 +\") head = %q, want Add", e.HeadName())
	}
	if !e.Op(1).IsError() {
		t.Errorf("missing right-hand operand should recover as an Error sentinel, got %s", e.Op(1).String())
	}
}

func TestParseUnbalancedGroupDiagnostic(t *testing.T) {
	dict := builtin.Default(func(error) {})
	_, diags := parser.Parse(`\frac{1}{2`, dict, parser.DefaultOptions())
	if diags.Empty() {
		t.Error("Parse() should report a diagnostic for an unclosed group")
	}
}

func TestDoubleStarIsAPowerConvenience(t *testing.T) {
	got := parseOK(t, "2**3")
	want := "(Power 2 3)"
	if got != want {
		t.Errorf("Parse(\"2**3\") = %q, want %q", got, want)
	}
}

func TestParseIntegralStripsDifferential(t *testing.T) {
	got := parseOK(t, `\int_0^1 x^2 \, dx`)
	want := "(Integrate (Power x 2) (Tuple x 0 1))"
	if got != want {
		t.Errorf("Parse(integral) = %q, want %q", got, want)
	}
}

func TestParseStrictRejectsDoubleStarPower(t *testing.T) {
	dict := builtin.Default(func(error) {})
	opts := parser.DefaultOptions()
	opts.Strict = true
	_, diags := parser.Parse("2**3", dict, opts)
	if diags.Empty() {
		t.Error("strict mode should reject \"**\" as a power operator")
	}
}
