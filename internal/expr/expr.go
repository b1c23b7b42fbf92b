// Package expr implements the MathJSON expression value described in
// spec.md §3: a recursive sum type representing a symbol, a number, a
// string literal, a function application, a tagged dictionary, or an
// error sentinel.
//
// Rather than the interface-per-node-type AST the teacher (DWScript) uses
// for its Pascal grammar, Expression follows spec.md §9's "tagged-variant
// dispatch" guidance and is implemented as a single struct with a private
// kind tag and private payload fields, mirroring the Kind+constructor
// design of the teacher's internal/jsonvalue.Value.
package expr

import (
	"fmt"
	"math/big"
)

// Kind discriminates the variant an Expression holds.
type Kind uint8

const (
	// KindSymbol is a bare identifier such as x or Pi.
	KindSymbol Kind = iota
	// KindFloat is a machine double.
	KindFloat
	// KindInteger is an arbitrary-precision integer.
	KindInteger
	// KindRational is a numerator/denominator pair of arbitrary-precision
	// integers, kept unreduced until a caller asks for a canonical form.
	KindRational
	// KindComplex is a real/imaginary pair of float64s.
	KindComplex
	// KindString is a string literal.
	KindString
	// KindApply is a function application (head, op1, …, opN).
	KindApply
	// KindDict is a tagged dictionary — a structural record used for
	// configuration payloads (e.g. metadata), not evaluated as math.
	KindDict
	// KindError is the (Error, kind, detail?) sentinel.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	case KindRational:
		return "Rational"
	case KindComplex:
		return "Complex"
	case KindString:
		return "String"
	case KindApply:
		return "Apply"
	case KindDict:
		return "Dictionary"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Expression is the MathJSON value. The zero value is not meaningful; use
// one of the constructors below.
type Expression struct {
	kind Kind

	sym string // KindSymbol, KindError (error kind string)

	f64 float64  // KindFloat, KindComplex (real part)
	im  float64  // KindComplex (imaginary part)
	bi  *big.Int // KindInteger, KindRational (numerator)
	den *big.Int // KindRational (denominator)
	str string   // KindString

	head *Expression   // KindApply
	ops  []*Expression  // KindApply operands
	dict map[string]*Expression // KindDict

	detail *Expression // KindError optional detail operand
}

// Symbol constructs a bare identifier expression.
func Symbol(name string) *Expression { return &Expression{kind: KindSymbol, sym: name} }

// Float constructs a machine-double number expression.
func Float(v float64) *Expression { return &Expression{kind: KindFloat, f64: v} }

// Integer constructs an arbitrary-precision integer expression.
func Integer(v *big.Int) *Expression { return &Expression{kind: KindInteger, bi: v} }

// IntegerFromInt64 is a convenience constructor for small integers.
func IntegerFromInt64(v int64) *Expression {
	return &Expression{kind: KindInteger, bi: big.NewInt(v)}
}

// Rational constructs a rational-number expression; num/den are kept
// unreduced (canonicalization is the evaluator's job, out of scope here).
func Rational(num, den *big.Int) *Expression {
	return &Expression{kind: KindRational, bi: num, den: den}
}

// Complex constructs a complex-number expression from real/imaginary
// float64 parts.
func Complex(re, im float64) *Expression {
	return &Expression{kind: KindComplex, f64: re, im: im}
}

// String constructs a string-literal expression.
func String(s string) *Expression { return &Expression{kind: KindString, str: s} }

// Apply constructs a function-application expression (head, operands…).
// Per spec.md §3, an application never has zero positional form distinct
// from a bare symbol: Apply(head) with zero operands still produces a
// KindApply node (e.g. representing a niladic function call), while a
// symbol used on its own is constructed with Symbol, not Apply.
func Apply(head *Expression, operands ...*Expression) *Expression {
	ops := make([]*Expression, len(operands))
	copy(ops, operands)
	return &Expression{kind: KindApply, head: head, ops: ops}
}

// ApplyName is shorthand for Apply(Symbol(name), operands...).
func ApplyName(name string, operands ...*Expression) *Expression {
	return Apply(Symbol(name), operands...)
}

// Dictionary constructs a tagged structural-record expression.
func Dictionary(fields map[string]*Expression) *Expression {
	return &Expression{kind: KindDict, dict: fields}
}

// MissingOperand is the (Error, 'missing') sentinel materialized whenever
// an operand could not be parsed (spec.md §4.3.1, §7).
func MissingOperand() *Expression {
	return &Expression{kind: KindError, sym: "missing"}
}

// Error constructs an (Error, kind, detail?) sentinel expression.
func Error(kind string, detail *Expression) *Expression {
	return &Expression{kind: KindError, sym: kind, detail: detail}
}

// Kind reports the variant this Expression holds.
func (e *Expression) Kind() Kind {
	if e == nil {
		return KindError
	}
	return e.kind
}

// IsError reports whether e is an (Error, …) sentinel.
func (e *Expression) IsError() bool { return e != nil && e.kind == KindError }

// ErrorKind returns the error-kind string for an (Error, …) expression, or
// "" otherwise.
func (e *Expression) ErrorKind() string {
	if e.IsError() {
		return e.sym
	}
	return ""
}

// ErrorDetail returns the optional detail operand of an (Error, …)
// expression, or nil.
func (e *Expression) ErrorDetail() *Expression {
	if e.IsError() {
		return e.detail
	}
	return nil
}

// SymbolName returns the identifier text for a KindSymbol expression, or
// "" otherwise.
func (e *Expression) SymbolName() string {
	if e != nil && e.kind == KindSymbol {
		return e.sym
	}
	return ""
}

// IsSymbol reports whether e is the symbol named name.
func (e *Expression) IsSymbol(name string) bool {
	return e != nil && e.kind == KindSymbol && e.sym == name
}

// Float64 returns the numeric value of e as a float64. It is defined for
// KindFloat, KindInteger, KindRational (as num/den), and the real part of
// KindComplex; it returns (0, false) for anything else.
func (e *Expression) Float64() (float64, bool) {
	if e == nil {
		return 0, false
	}
	switch e.kind {
	case KindFloat:
		return e.f64, true
	case KindInteger:
		f := new(big.Float).SetInt(e.bi)
		v, _ := f.Float64()
		return v, true
	case KindRational:
		if e.den.Sign() == 0 {
			return 0, false
		}
		r := new(big.Rat).SetFrac(e.bi, e.den)
		v, _ := new(big.Float).SetRat(r).Float64()
		return v, true
	case KindComplex:
		return e.f64, true
	default:
		return 0, false
	}
}

// Head returns the head of a KindApply expression, or nil otherwise.
func (e *Expression) Head() *Expression {
	if e != nil && e.kind == KindApply {
		return e.head
	}
	return nil
}

// HeadName returns the head's symbol name for a KindApply expression whose
// head is itself a symbol, or "" otherwise.
func (e *Expression) HeadName() string {
	return e.Head().SymbolName()
}

// Arity returns the number of operands of a KindApply expression, or 0.
func (e *Expression) Arity() int {
	if e != nil && e.kind == KindApply {
		return len(e.ops)
	}
	return 0
}

// Op returns the i'th operand (0-based) of a KindApply expression, or nil
// if out of range or e is not an application.
func (e *Expression) Op(i int) *Expression {
	if e == nil || e.kind != KindApply || i < 0 || i >= len(e.ops) {
		return nil
	}
	return e.ops[i]
}

// Ops returns a defensive copy of the operand slice of a KindApply
// expression, or nil.
func (e *Expression) Ops() []*Expression {
	if e == nil || e.kind != KindApply {
		return nil
	}
	out := make([]*Expression, len(e.ops))
	copy(out, e.ops)
	return out
}

// DictGet returns the field named key of a KindDict expression, or nil.
func (e *Expression) DictGet(key string) *Expression {
	if e == nil || e.kind != KindDict {
		return nil
	}
	return e.dict[key]
}

// IsValid reports the structural invariant from spec.md §8.1: every
// application has arity >= 0 and every operand is itself non-nil.
func (e *Expression) IsValid() bool {
	if e == nil {
		return false
	}
	if e.kind != KindApply {
		return true
	}
	if e.head == nil {
		return false
	}
	for _, op := range e.ops {
		if op == nil || !op.IsValid() {
			return false
		}
	}
	return true
}

// String renders a debug form of e: "sym", numbers in decimal, and
// applications as (Head op1 op2 …). It is not a LaTeX serialization — see
// package serializer for that.
func (e *Expression) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.kind {
	case KindSymbol:
		return e.sym
	case KindFloat:
		return fmt.Sprintf("%g", e.f64)
	case KindInteger:
		return e.bi.String()
	case KindRational:
		return fmt.Sprintf("%s/%s", e.bi.String(), e.den.String())
	case KindComplex:
		return fmt.Sprintf("%g+%gi", e.f64, e.im)
	case KindString:
		return fmt.Sprintf("%q", e.str)
	case KindError:
		if e.detail != nil {
			return fmt.Sprintf("(Error %s %s)", e.sym, e.detail.String())
		}
		return fmt.Sprintf("(Error %s)", e.sym)
	case KindDict:
		return "(Dictionary …)"
	case KindApply:
		s := "(" + e.head.String()
		for _, op := range e.ops {
			s += " " + op.String()
		}
		return s + ")"
	default:
		return "?"
	}
}

// IntegerValue returns the *big.Int payload of a KindInteger expression,
// or (nil, false) otherwise.
func (e *Expression) IntegerValue() (*big.Int, bool) {
	if e != nil && e.kind == KindInteger {
		return e.bi, true
	}
	return nil, false
}

// RationalParts returns the numerator and denominator of a KindRational
// expression, or (nil, nil, false) otherwise.
func (e *Expression) RationalParts() (num, den *big.Int, ok bool) {
	if e != nil && e.kind == KindRational {
		return e.bi, e.den, true
	}
	return nil, nil, false
}

// ComplexParts returns the real and imaginary parts of a KindComplex
// expression, or (0, 0, false) otherwise.
func (e *Expression) ComplexParts() (re, im float64, ok bool) {
	if e != nil && e.kind == KindComplex {
		return e.f64, e.im, true
	}
	return 0, 0, false
}

// StringValue returns the text payload of a KindString expression, or
// ("", false) otherwise.
func (e *Expression) StringValue() (string, bool) {
	if e != nil && e.kind == KindString {
		return e.str, true
	}
	return "", false
}

// Equal reports structural equality between two expressions — used by
// foldAssociativeOperator idempotence checks and by tests. Floats compare
// by value (not bit pattern), so NaN != NaN as IEEE-754 dictates.
func Equal(a, b *Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindSymbol:
		return a.sym == b.sym
	case KindFloat:
		return a.f64 == b.f64
	case KindInteger:
		return a.bi.Cmp(b.bi) == 0
	case KindRational:
		return a.bi.Cmp(b.bi) == 0 && a.den.Cmp(b.den) == 0
	case KindComplex:
		return a.f64 == b.f64 && a.im == b.im
	case KindString:
		return a.str == b.str
	case KindError:
		if a.sym != b.sym {
			return false
		}
		return Equal(a.detail, b.detail)
	case KindApply:
		if !Equal(a.head, b.head) || len(a.ops) != len(b.ops) {
			return false
		}
		for i := range a.ops {
			if !Equal(a.ops[i], b.ops[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(a.dict) != len(b.dict) {
			return false
		}
		for k, v := range a.dict {
			if !Equal(v, b.dict[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
