package parser

import "github.com/latexmath/latexmath/internal/expr"

// ParseNumbers controls how the tokenizer's digit runs become number
// expressions (spec.md §6).
type ParseNumbers string

const (
	ParseNumbersAuto     ParseNumbers = "auto"
	ParseNumbersNever    ParseNumbers = "never"
	ParseNumbersRational ParseNumbers = "rational"
	ParseNumbersDecimal  ParseNumbers = "decimal"
)

// QuantifierScope selects how far a quantifier's body extends (spec.md
// §4.3.7).
type QuantifierScope string

const (
	QuantifierTight QuantifierScope = "tight"
	QuantifierLoose QuantifierScope = "loose"
)

// RepeatingDecimal selects the notation a repeating-decimal literal is
// rendered/recognized in (spec.md §6). The parser does not read this
// setting and does not recognize repeating-decimal forms.
type RepeatingDecimal string

const (
	RepeatingDecimalAuto        RepeatingDecimal = "auto"
	RepeatingDecimalParenthesis RepeatingDecimal = "parenthesis"
	RepeatingDecimalVinculum    RepeatingDecimal = "vinculum"
	RepeatingDecimalDots        RepeatingDecimal = "dots"
	RepeatingDecimalArc         RepeatingDecimal = "arc"
)

// Options carries the parser's external configuration surface (spec.md §6).
// A zero Options is not meaningful; use DefaultOptions. The parser reads
// Strict, DecimalSeparator, ParseNumbers, QuantifierScope and
// ParseUnexpectedToken; the other fields are carried but do not affect
// parsing.
type Options struct {
	// Strict rejects the non-LaTeX "**" spelling of power, the one such
	// convenience in the builtin dictionary. "=>" has no entry and is not
	// read as implication in either mode.
	Strict    bool
	SkipSpace bool

	DecimalSeparator    rune
	DigitGroupSeparator string

	ParseNumbers ParseNumbers

	PositiveInfinity string
	NegativeInfinity string
	NotANumber       string

	RepeatingDecimal RepeatingDecimal

	QuantifierScope QuantifierScope

	// TimeDerivativeVariable names the variable whose Leibniz derivative
	// \frac{d}{dt} is recognized as a time derivative (default "t"). The
	// parser does not read this field.
	TimeDerivativeVariable string

	// ImaginaryUnit is the symbol name produced for the LaTeX spelling of i
	// (default "ImaginaryUnit"). The parser does not read this field.
	ImaginaryUnit string

	// GetSymbolType, when non-nil, lets the host resolve an identifier's
	// declared type (e.g. "function" vs "variable") to disambiguate
	// `f(x)` as application vs implicit multiplication. The parser does
	// not call it.
	GetSymbolType func(id string) string

	// HasSubscriptEvaluate reports whether id's subscript form (x_n) should
	// be parsed as indexed access rather than a compound identifier. The
	// parser does not call it.
	HasSubscriptEvaluate func(id string) bool

	// ParseUnexpectedToken is consulted before the parser falls back to
	// emitting an (Error, 'unexpected-token') sentinel; returning non-nil
	// overrides the default.
	ParseUnexpectedToken func(lhs *expr.Expression, p *Parser) *expr.Expression
}

// DefaultOptions returns the conventional option set: lenient (non-strict),
// spaces skipped, automatic number parsing, loose quantifier scoping.
func DefaultOptions() Options {
	return Options{
		Strict:                 false,
		SkipSpace:              true,
		DecimalSeparator:       '.',
		ParseNumbers:           ParseNumbersAuto,
		PositiveInfinity:       `\infty`,
		NegativeInfinity:       `-\infty`,
		NotANumber:             `\mathrm{NaN}`,
		RepeatingDecimal:       RepeatingDecimalAuto,
		QuantifierScope:        QuantifierLoose,
		TimeDerivativeVariable: "t",
		ImaginaryUnit:          "ImaginaryUnit",
	}
}
