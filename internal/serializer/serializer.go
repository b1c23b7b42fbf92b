// Package serializer renders a MathJSON expr.Expression back to LaTeX
// (spec.md §4.4), the inverse of internal/parser. Most dictionary entries
// need no bespoke rendering at all: Serializer's generic fallback
// reconstructs a rendering directly from an Entry's Kind, LatexTrigger, and
// Precedence — the same data-driven design spec.md §9 asks the parser
// side to use. Only constructs whose custom Parse callback produces a
// shape the generic fallback can't reverse (big operators, \sqrt[n]{},
// quantifier binders, intervals, …) register a custom Serialize callback,
// grounded file-for-file on the corresponding internal/parser helper.
package serializer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
)

// Serializer holds the immutable configuration (dictionary + style options)
// and the mutable recursion depth used for Level(). One Serializer is
// built per top-level Serialize call and threaded through every recursive
// Wrap/render, mirroring the Parser's one-invocation lifetime (spec.md §5).
type Serializer struct {
	dict  *dictionary.IndexedDictionary
	opts  Options
	level int
}

// Serialize renders e as LaTeX against dict's registered entries, per opts.
func Serialize(e *expr.Expression, dict *dictionary.IndexedDictionary, opts Options) string {
	s := &Serializer{dict: dict, opts: opts}
	return s.render(e, PrecLowest)
}

// Level reports the current recursion depth, satisfying
// dictionary.Serializer — used by entries that render differently near
// the root than nested (none currently do, but the hook exists per
// spec.md §4.4's interface).
func (s *Serializer) Level() int { return s.level }

// Wrap renders e, parenthesizing it if its own precedence is lower than
// ctxPrecedence (spec.md §4.4).
func (s *Serializer) Wrap(e *expr.Expression, ctxPrecedence int) string {
	child := s.render(e, ctxPrecedence)
	if s.needsParens(e, ctxPrecedence) {
		return s.parenthesize(child)
	}
	return child
}

// WrapShort renders e at PrecFunctionCall, for the common case of a
// sigil's or function's single-token/tight-binding payload.
func (s *Serializer) WrapShort(e *expr.Expression) string {
	return s.Wrap(e, PrecFunctionCall)
}

// WrapArguments renders e's operands as a comma-joined argument list
// (spec.md §4.4), used by KindFunction-style Serialize callbacks.
func (s *Serializer) WrapArguments(e *expr.Expression) string {
	ops := e.Ops()
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = s.render(op, PrecLowest)
	}
	return strings.Join(parts, ", ")
}

// SerializeSymbol renders a bare identifier, honoring the dictionary's
// registered spelling if one is indexed under that name, else falling
// back to the identifier text itself (spec.md §4.4).
func (s *Serializer) SerializeSymbol(id string) string {
	entry := s.dict.Lookup(id)
	if entry == nil {
		return id
	}
	if entry.Serialize != nil {
		return entry.Serialize(s, expr.Symbol(id))
	}
	if len(entry.LatexTrigger) > 0 {
		return strings.Join(entry.LatexTrigger, "")
	}
	return id
}

func (s *Serializer) parenthesize(inner string) string {
	if s.opts.Group == GroupExplicit {
		return `\left(` + inner + `\right)`
	}
	return "(" + inner + ")"
}

// render dispatches on e's Kind, consulting the dictionary entry (if any)
// registered under its head name for KindApply expressions.
func (s *Serializer) render(e *expr.Expression, ctxPrecedence int) string {
	if e == nil {
		return ""
	}
	s.level++
	defer func() { s.level-- }()

	switch e.Kind() {
	case expr.KindSymbol:
		return s.SerializeSymbol(e.SymbolName())
	case expr.KindInteger:
		v, _ := e.IntegerValue()
		return v.String()
	case expr.KindFloat:
		f, _ := e.Float64()
		return formatFloat(f)
	case expr.KindRational:
		num, den, _ := e.RationalParts()
		return s.renderFraction(num.String(), den.String())
	case expr.KindComplex:
		re, im, _ := e.ComplexParts()
		return formatComplex(re, im)
	case expr.KindString:
		str, _ := e.StringValue()
		return str
	case expr.KindError:
		if d := e.ErrorDetail(); d != nil {
			return s.render(d, ctxPrecedence)
		}
		return "?"
	case expr.KindDict:
		return "" // structural metadata, not math — no LaTeX rendering
	case expr.KindApply:
		return s.renderApply(e, ctxPrecedence)
	default:
		return "?"
	}
}

func (s *Serializer) renderFraction(num, den string) string {
	if s.opts.Fraction == FractionInlineSlash {
		return num + "/" + den
	}
	return fmt.Sprintf(`\frac{%s}{%s}`, num, den)
}

func (s *Serializer) renderApply(e *expr.Expression, ctxPrecedence int) string {
	name := e.HeadName()
	if name == "" {
		// A non-symbol head (an applied lambda-like value) has no
		// dictionary entry to consult; fall back to a bare call shape.
		return s.render(e.Head(), PrecFunctionCall) + "(" + s.WrapArguments(e) + ")"
	}

	entry := s.dict.Lookup(name)
	if entry != nil && entry.Serialize != nil {
		return entry.Serialize(s, e)
	}
	if entry != nil {
		return s.renderGeneric(entry, e)
	}
	return s.renderUnknown(name, e)
}

// renderGeneric reconstructs LaTeX straight from an Entry's Kind,
// LatexTrigger, Precedence, and Associativity, with no bespoke callback —
// the default path for the large majority of entries (spec.md §9).
func (s *Serializer) renderGeneric(entry *dictionary.Entry, e *expr.Expression) string {
	trigger := entryGlyph(entry)

	switch entry.Kind {
	case dictionary.KindSymbol:
		return trigger

	case dictionary.KindPrefix:
		if e.Arity() == 0 {
			return trigger
		}
		return trigger + " " + s.Wrap(e.Op(0), entry.Precedence)

	case dictionary.KindPostfix:
		return s.Wrap(e.Op(0), entry.Precedence) + trigger

	case dictionary.KindInfix:
		return s.renderInfix(entry, e, trigger)

	case dictionary.KindMatchfix:
		open := strings.Join(entry.OpenTrigger, "")
		closeSpelling := strings.Join(entry.CloseTrigger, "")
		return open + s.WrapArguments(e) + closeSpelling

	case dictionary.KindFunction:
		if entry.Arguments == dictionary.ArgumentsImplicit {
			if e.Arity() == 0 {
				return trigger
			}
			return trigger + " " + s.Wrap(e.Op(0), entry.Precedence)
		}
		return trigger + "(" + s.WrapArguments(e) + ")"

	default:
		return s.renderUnknown(entry.Name, e)
	}
}

func (s *Serializer) renderInfix(entry *dictionary.Entry, e *expr.Expression, trigger string) string {
	ops := e.Ops()
	if len(ops) == 0 {
		return trigger
	}
	if len(ops) == 1 {
		return s.Wrap(ops[0], entry.Precedence)
	}

	left := entry.Precedence
	right := entry.Precedence
	switch entry.Associativity {
	case dictionary.AssocLeft:
		right = entry.Precedence + 1
	case dictionary.AssocRight:
		left = entry.Precedence + 1
	}

	parts := make([]string, len(ops))
	for i, op := range ops {
		p := entry.Precedence
		switch {
		case i == 0:
			p = left
		case i == len(ops)-1:
			p = right
		}
		parts[i] = s.Wrap(op, p)
	}
	return strings.Join(parts, " "+trigger+" ")
}

// renderUnknown is the final fallback for an application whose head has no
// dictionary entry at all: a generic \operatorname call, which always
// round-trips through the tokenizer/parser even though it wasn't how the
// input was originally spelled (spec.md §7: never fail outright).
func (s *Serializer) renderUnknown(name string, e *expr.Expression) string {
	return fmt.Sprintf(`\operatorname{%s}(%s)`, name, s.WrapArguments(e))
}

// entryGlyph picks the single spelling to print for an entry with more
// than one registered synonym (e.g. \leq vs \le): the first LatexTrigger
// spelling, joined, or the SymbolTrigger if the entry has no LatexTrigger
// at all.
func entryGlyph(entry *dictionary.Entry) string {
	if len(entry.LatexTrigger) > 0 {
		return strings.Join(entry.LatexTrigger, "")
	}
	if entry.SymbolTrigger != "" {
		return entry.SymbolTrigger
	}
	return entry.Name
}

// needsParens reports whether e, rendered in a context requiring at least
// ctxPrecedence, needs explicit grouping. Atoms (symbols, numbers) and
// matchfix/function applications (already self-delimiting) never do;
// every other application needs parens exactly when its own operator
// binds looser than the context demands.
func (s *Serializer) needsParens(e *expr.Expression, ctxPrecedence int) bool {
	if e.Kind() != expr.KindApply {
		return false
	}
	entry := s.dict.Lookup(e.HeadName())
	if entry == nil {
		return false
	}
	switch entry.Kind {
	case dictionary.KindMatchfix, dictionary.KindFunction, dictionary.KindSymbol:
		return false
	}
	return entry.Precedence < ctxPrecedence
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatComplex(re, im float64) string {
	imagUnit := formatFloat(im)
	if im == 1 {
		imagUnit = ""
	} else if im == -1 {
		imagUnit = "-"
	}
	if re == 0 {
		return imagUnit + "i"
	}
	sign := "+"
	shown := im
	if im < 0 {
		sign = "-"
		shown = -im
	}
	unit := formatFloat(shown)
	if shown == 1 {
		unit = ""
	}
	return fmt.Sprintf("%s %s %si", formatFloat(re), sign, unit)
}
