package serializer

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/latexmath/latexmath/internal/builtin"
	"github.com/latexmath/latexmath/internal/parser"
)

func roundTrip(t *testing.T, latex string, opts Options) string {
	t.Helper()
	dict := builtin.Default(func(err error) { t.Logf("dictionary warning: %v", err) })
	e, diags := parser.Parse(latex, dict, parser.DefaultOptions())
	if !diags.Empty() {
		t.Fatalf("unexpected parse diagnostics for %q: %s", latex, diags.Error())
	}
	return Serialize(e, dict, opts)
}

func TestSerializePretty(t *testing.T) {
	tests := []struct {
		name  string
		latex string
		want  string
	}{
		{"simple sum", "1 + 2", "1 + 2"},
		{"fraction round trips as frac", `\frac{1}{2}`, `\frac{1}{2}`},
		{"division becomes frac under pretty style", "1 / 2", `\frac{1}{2}`},
		{"power needs no parens for atom base", "x^2", "x^{2}"},
		{"sum base needs parens under power", "(x+1)^2", "(x + 1)^{2}"},
		{"sqrt", `\sqrt{x}`, `\sqrt{x}`},
		{"nth root", `\sqrt[3]{x}`, `\sqrt[3]{x}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, tt.latex, DefaultOptions())
			if got != tt.want {
				t.Errorf("Serialize(%q) = %q, want %q", tt.latex, got, tt.want)
			}
		})
	}
}

func TestSerializeStrictUsesSlashFraction(t *testing.T) {
	got := roundTrip(t, `\frac{1}{2}`, StrictOptions())
	want := "1/2"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeGoldenFixtures(t *testing.T) {
	fixtures := []string{
		`\sum_{i=1}^{n} i^2`,
		`\int_a^b f(x) \, dx`,
		`\forall x \in \mathbb{R}, x^2 \geq 0`,
		`a \equiv b \pmod{m}`,
		`\sin^{-1}(x)`,
		`\sin'(x)`,
	}
	for _, latex := range fixtures {
		t.Run(latex, func(t *testing.T) {
			got := roundTrip(t, latex, DefaultOptions())
			snaps.MatchSnapshot(t, "serialized", got)
		})
	}
}
