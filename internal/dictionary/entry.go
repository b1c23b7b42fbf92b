// Package dictionary implements the indexed dictionary of operator and
// construct definitions described in spec.md §3–§4.2: the data-driven
// configuration surface the parser and serializer consult to resolve
// LaTeX's inherent grammar ambiguity.
//
// An Entry is a plain record: its Kind field selects which trigger table
// the dictionary indexes it under, and its behavior comes from its Parse,
// ParseInfix and Serialize callbacks, which the builtin entries mostly
// point at shared internal/parser helpers.
package dictionary

import (
	"fmt"

	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/token"
)

// Kind discriminates the construct a dictionary Entry defines.
type Kind uint8

const (
	KindSymbol Kind = iota
	KindExpression
	KindFunction
	KindPrefix
	KindPostfix
	KindInfix
	KindMatchfix
	KindEnvironment
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindExpression:
		return "expression"
	case KindFunction:
		return "function"
	case KindPrefix:
		return "prefix"
	case KindPostfix:
		return "postfix"
	case KindInfix:
		return "infix"
	case KindMatchfix:
		return "matchfix"
	case KindEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// Associativity controls how an infix entry recurses and folds (spec.md
// §4.3.1).
type Associativity uint8

const (
	AssocNone Associativity = iota
	AssocLeft
	AssocRight
	AssocAny
)

// Arguments selects, for KindFunction entries, whether arguments require
// explicit parentheses (Enclosure) or bind at multiplication precedence
// as an implicit tail (Implicit), spec.md §3.
type Arguments uint8

const (
	ArgumentsEnclosure Arguments = iota
	ArgumentsImplicit
)

// ParseContext is the minimal surface a custom parse callback needs: the
// ability to parse a sub-expression at a given minimum precedence and to
// read the trigger token that activated the entry. The parser package
// implements this interface; dictionary only depends on it, never the
// other way around, so that dictionary has no import cycle on parser.
type ParseContext interface {
	ParseExpression(minPrec int) *expr.Expression
	Peek(n int) token.Token
	Advance() token.Token
}

// PrefixParseFn parses a prefix/symbol/matchfix construct; it receives the
// trigger token already consumed.
type PrefixParseFn func(ctx ParseContext, trigger token.Token) *expr.Expression

// InfixParseFn parses an infix/postfix construct given the already-parsed
// left operand and the trigger token.
type InfixParseFn func(ctx ParseContext, lhs *expr.Expression, trigger token.Token) *expr.Expression

// SerializeFn emits LaTeX for an application whose head matches Entry.Name.
// The Serializer interface it receives is declared below, in this package,
// and implemented by package serializer, which avoids an import cycle.
type SerializeFn func(s Serializer, e *expr.Expression) string

// Serializer is the minimal surface a SerializeFn needs.
type Serializer interface {
	Wrap(e *expr.Expression, ctxPrecedence int) string
	WrapShort(e *expr.Expression) string
	WrapArguments(e *expr.Expression) string
	SerializeSymbol(id string) string
	Level() int
}

// Entry is one record of the indexed dictionary (spec.md §3).
type Entry struct {
	Kind Kind

	// Name is the MathJSON identifier this definition produces/consumes.
	// Several entries may share a name (and a trigger); Lookup returns the
	// last entry indexed under a name.
	Name string

	// LatexTrigger is the token sequence that activates the definition.
	LatexTrigger []string
	// SymbolTrigger is an identifier-shaped LaTeX token, e.g. "gcd".
	SymbolTrigger string

	// OpenTrigger/CloseTrigger are used by KindMatchfix.
	OpenTrigger  []string
	CloseTrigger []string

	// Precedence is an integer in [0, 10000]; higher binds tighter.
	// Required for prefix/postfix/infix unless the trigger begins with
	// '^' or '_' (spec.md §4.2), in which case it is fixed at 720.
	Precedence int
	// PrecedenceSet records whether Precedence was explicitly supplied,
	// distinguishing "unset" from "explicitly zero".
	PrecedenceSet bool

	Associativity Associativity
	Arguments     Arguments

	Parse     PrefixParseFn
	ParseInfix InfixParseFn
	Serialize SerializeFn
}

// SigilPrecedence is the fixed precedence assigned to any prefix/infix/
// postfix entry whose trigger begins with '^' or '_' (spec.md §4.2, §4.3.3).
const SigilPrecedence = 720

// isSigilTrigger reports whether trigger begins with the superscript or
// subscript sigil, per the synonymization rule in spec.md §4.2.
func isSigilTrigger(trigger []string) bool {
	return len(trigger) > 0 && (trigger[0] == "^" || trigger[0] == "_")
}

// validationError is a lightweight description of a rejected entry,
// reported out-of-band via the OnErrorFunc passed to Index (spec.md §7:
// "Dictionary validation -> warning signal... entry is skipped but
// indexing continues").
type validationError struct {
	entry   *Entry
	message string
}

func (v validationError) Error() string {
	name := v.entry.Name
	if name == "" {
		name = fmt.Sprintf("<trigger %v>", v.entry.LatexTrigger)
	}
	return fmt.Sprintf("dictionary entry %q: %s", name, v.message)
}

// validate checks the structural rules from spec.md §4.2 and returns a
// non-nil error describing the first violation found, or nil if e is
// well-formed. It does not mutate e.
func validate(e *Entry) error {
	if e.Serialize != nil && e.Name == "" {
		return validationError{e, "has a serialize handler but no name"}
	}

	switch e.Kind {
	case KindSymbol, KindExpression, KindFunction, KindPrefix, KindPostfix,
		KindInfix, KindMatchfix, KindEnvironment:
		// permitted
	default:
		return validationError{e, fmt.Sprintf("invalid kind %d", e.Kind)}
	}

	if e.Name != "" && !isValidIdentifier(e.Name) {
		return validationError{e, fmt.Sprintf("invalid MathJSON identifier %q", e.Name)}
	}
	if e.SymbolTrigger != "" && !isValidIdentifier(e.SymbolTrigger) {
		return validationError{e, fmt.Sprintf("invalid symbolTrigger %q", e.SymbolTrigger)}
	}

	if e.Kind == KindMatchfix {
		if len(e.OpenTrigger) == 0 || len(e.CloseTrigger) == 0 {
			return validationError{e, "matchfix entry requires both openTrigger and closeTrigger"}
		}
	}

	if e.Kind == KindInfix || e.Kind == KindPrefix || e.Kind == KindPostfix {
		sigil := isSigilTrigger(e.LatexTrigger)
		if sigil {
			if e.PrecedenceSet {
				return validationError{e, "precedence must not be specified for ^/_ triggers"}
			}
		} else if !e.PrecedenceSet {
			return validationError{e, "infix/prefix/postfix entry requires a precedence"}
		}
	}

	if e.Kind != KindMatchfix && e.Kind != KindEnvironment {
		if len(e.LatexTrigger) == 0 && e.SymbolTrigger == "" && e.Name == "" {
			return validationError{e, "lacks both a trigger and a name"}
		}
	}

	return nil
}

// isValidIdentifier reports whether s is a legal MathJSON identifier: a
// Unicode letter or underscore followed by letters, digits, or underscores
// (spec.md §4.2).
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentStart(r) && !isDigitRune(r) {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || isUnicodeLetter(r)
}
