// Package langerrors provides error formatting utilities for the LaTeX
// parser and dictionary. It formats diagnostics with source context and a
// caret pointing at the offending column, adapted from the teacher's
// internal/errors.CompilerError. Unlike a multi-line program source, a
// LaTeX math string is conventionally single-line, so there is no
// line-context variant here — only the one source line a Diagnostic ever
// has.
package langerrors

import (
	"fmt"
	"strings"

	"github.com/latexmath/latexmath/internal/token"
)

// Code identifies a diagnostic's kind for programmatic matching, mirroring
// the teacher's internal/parser string-constant Code fields.
type Code string

// Code constants enumerate the error kinds spec.md §7 describes.
const (
	CodeUnexpectedToken      Code = "E_UNEXPECTED_TOKEN"
	CodeExpectedCloseDelim   Code = "E_EXPECTED_CLOSE_DELIMITER"
	CodeInvalidNumber        Code = "E_INVALID_NUMBER"
	CodeMissingOperand       Code = "E_MISSING_OPERAND"
	CodeNoPrefixParse        Code = "E_NO_PREFIX_PARSE"
	CodeNonAssociative       Code = "E_NON_ASSOCIATIVE"
	CodeDictionaryValidation Code = "E_DICTIONARY_VALIDATION"
	CodeTrailingInput        Code = "E_TRAILING_INPUT"
)

// Diagnostic represents a single parser or dictionary error with position
// and source context.
type Diagnostic struct {
	Code    Code
	Message string
	Source  string
	Pos     token.Position
}

// New creates a Diagnostic.
func New(code Code, pos token.Position, message, source string) *Diagnostic {
	return &Diagnostic{Code: code, Pos: pos, Message: message, Source: source}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format formats the diagnostic with a source-line excerpt and caret. If
// color is true, ANSI color codes are used for terminal output.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s at column %d\n", d.Code, d.Pos.Column)

	if d.Source != "" {
		const prefix = "    | "
		sb.WriteString(prefix)
		sb.WriteString(d.Source)
		sb.WriteString("\n")

		caret := d.Pos.Column - 1
		if caret < 0 {
			caret = 0
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+caret))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// FormatDiagnostics formats multiple diagnostics, numbering them when there
// is more than one.
func FormatDiagnostics(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostic(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d of %d]\n", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// Bag accumulates diagnostics emitted during one parse call, the way the
// teacher's parser accumulates p.Errors().
type Bag struct {
	items []*Diagnostic
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d *Diagnostic) { b.items = append(b.items, d) }

// Addf builds and appends a Diagnostic in one call.
func (b *Bag) Addf(code Code, pos token.Position, source, format string, args ...any) {
	b.Add(New(code, pos, fmt.Sprintf(format, args...), source))
}

// Items returns the accumulated diagnostics in emission order.
func (b *Bag) Items() []*Diagnostic { return b.items }

// Empty reports whether no diagnostics were recorded.
func (b *Bag) Empty() bool { return len(b.items) == 0 }

// Error implements the error interface so a Bag can be returned directly
// where a single error is expected.
func (b *Bag) Error() string { return FormatDiagnostics(b.items, false) }
