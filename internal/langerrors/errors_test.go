package langerrors

import (
	"strings"
	"testing"

	"github.com/latexmath/latexmath/internal/token"
)

func TestDiagnosticError(t *testing.T) {
	d := New(CodeUnexpectedToken, token.Position{Offset: 3, Column: 3}, "unexpected token", "1+*2")
	got := d.Error()
	if !strings.Contains(got, string(CodeUnexpectedToken)) {
		t.Errorf("Error() = %q, want it to mention %s", got, CodeUnexpectedToken)
	}
	if !strings.Contains(got, "1+*2") {
		t.Errorf("Error() = %q, want it to include the source excerpt", got)
	}
	if !strings.Contains(got, "unexpected token") {
		t.Errorf("Error() = %q, want it to include the message", got)
	}
}

func TestDiagnosticFormatWithoutSource(t *testing.T) {
	d := New(CodeMissingOperand, token.Position{Column: 1}, "missing operand", "")
	got := d.Format(false)
	if strings.Contains(got, "|") {
		t.Errorf("Format() = %q, should omit the source-line excerpt when Source is empty", got)
	}
}

func TestDiagnosticFormatColor(t *testing.T) {
	d := New(CodeInvalidNumber, token.Position{Column: 0}, "bad number", "1.2.3")
	got := d.Format(true)
	if !strings.Contains(got, "\033[") {
		t.Errorf("Format(true) = %q, want ANSI escape codes", got)
	}
}

func TestFormatDiagnosticsEmpty(t *testing.T) {
	if got := FormatDiagnostics(nil, false); got != "" {
		t.Errorf("FormatDiagnostics(nil) = %q, want empty string", got)
	}
}

func TestFormatDiagnosticsSingle(t *testing.T) {
	d := New(CodeTrailingInput, token.Position{Column: 2}, "trailing input", "1+2)")
	got := FormatDiagnostics([]*Diagnostic{d}, false)
	if got != d.Format(false) {
		t.Errorf("FormatDiagnostics() for one diagnostic should equal its own Format()")
	}
}

func TestFormatDiagnosticsMultiple(t *testing.T) {
	d1 := New(CodeUnexpectedToken, token.Position{Column: 1}, "first", "x")
	d2 := New(CodeNoPrefixParse, token.Position{Column: 2}, "second", "y")
	got := FormatDiagnostics([]*Diagnostic{d1, d2}, false)
	if !strings.Contains(got, "2 diagnostic(s)") {
		t.Errorf("FormatDiagnostics() = %q, want a count header", got)
	}
	if !strings.Contains(got, "[1 of 2]") || !strings.Contains(got, "[2 of 2]") {
		t.Errorf("FormatDiagnostics() = %q, want numbered entries", got)
	}
}

func TestBag(t *testing.T) {
	var b Bag
	if !b.Empty() {
		t.Fatal("a fresh Bag should be empty")
	}

	b.Addf(CodeNonAssociative, token.Position{Column: 4}, "a-b-c", "operator %s is non-associative", "-")
	if b.Empty() {
		t.Fatal("Bag should not be empty after Addf")
	}
	if len(b.Items()) != 1 {
		t.Fatalf("Items() has %d entries, want 1", len(b.Items()))
	}
	if !strings.Contains(b.Items()[0].Message, "non-associative") {
		t.Errorf("Addf() message = %q", b.Items()[0].Message)
	}
	if !strings.Contains(b.Error(), "non-associative") {
		t.Errorf("Bag.Error() = %q", b.Error())
	}

	b.Add(New(CodeDictionaryValidation, token.Position{}, "bad entry", ""))
	if len(b.Items()) != 2 {
		t.Fatalf("Items() has %d entries, want 2", len(b.Items()))
	}
}
