package parser

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
)

// This file holds the small set of builtin parse strategies spec.md §9
// names as the replacement for per-entry closures: generic symbol, prefix,
// postfix, infix (left/right/any), matchfix-simple, function-enclosure,
// and function-implicit. internal/builtin wires these into dictionary
// entries for every operator/function that needs no bespoke behavior;
// trig.go, bigops.go, fraction.go, quantifiers.go, and dms.go remain the
// dedicated handlers for the constructs spec.md calls out as genuinely
// special-cased.

// ParseGenericSymbol produces a bare symbol expression; used for dictionary
// entries whose trigger is a symbol or constant spelling (\pi, \infty, …).
func ParseGenericSymbol(name string) *expr.Expression {
	return expr.Symbol(name)
}

// ParseGenericPrefix parses one operand at precedence and applies opName to
// it — e.g. unary Negate, Not.
func ParseGenericPrefix(ctx dictionary.ParseContext, opName string, precedence int) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}
	operand := p.ParseExpression(precedence)
	if operand == nil {
		operand = expr.MissingOperand()
	}
	return expr.ApplyName(opName, operand)
}

// ParseGenericPostfix applies opName to the already-parsed left operand, no
// further input consumed — e.g. factorial.
func ParseGenericPostfix(lhs *expr.Expression, opName string) *expr.Expression {
	return expr.ApplyName(opName, lhs)
}

// ParseGenericInfix implements spec.md §4.3.1's associativity rules for a
// plain binary (or n-ary, for AssocAny) operator.
func ParseGenericInfix(ctx dictionary.ParseContext, lhs *expr.Expression, opName string, precedence int, assoc dictionary.Associativity) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}

	minPrec := precedence
	if assoc == dictionary.AssocLeft || assoc == dictionary.AssocNone {
		minPrec = precedence + 1
	}

	rhs := p.ParseExpression(minPrec)
	if rhs == nil {
		rhs = expr.MissingOperand()
	}

	if assoc == dictionary.AssocAny {
		return expr.FoldAssociative(opName, lhs, rhs)
	}
	return expr.ApplyName(opName, lhs, rhs)
}

// ParseGenericMatchfixSimple parses a comma-separated body between the
// already-consumed open trigger and closeTrigger, applying headName to the
// resulting operands (spec.md §4.3.2). Used for the common tuple/list/set
// bracket pairs that need no further validation of their contents.
func ParseGenericMatchfixSimple(ctx dictionary.ParseContext, headName string, closeTrigger []string) *expr.Expression {
	ops, ok := ParseMatchfixBody(ctx, closeTrigger)
	if !ok {
		return nil
	}
	return expr.ApplyName(headName, ops...)
}

// ParseGenericFunctionEnclosure parses a parenthesized argument list
// (f(a, b, …)) applying name to the operands, for KindFunction entries with
// ArgumentsEnclosure.
func ParseGenericFunctionEnclosure(ctx dictionary.ParseContext, name string, closeTrigger []string) *expr.Expression {
	ops, ok := ParseMatchfixBody(ctx, closeTrigger)
	if !ok {
		return nil
	}
	return expr.ApplyName(name, ops...)
}

// ParseGenericFunctionImplicit parses one implicit argument at precedence
// (no enclosing parentheses required), for KindFunction entries with
// ArgumentsImplicit — e.g. \ln x.
func ParseGenericFunctionImplicit(ctx dictionary.ParseContext, name string, precedence int) *expr.Expression {
	p, ok := ctx.(*Parser)
	if !ok {
		return nil
	}
	arg := p.ParseExpression(precedence)
	if arg == nil {
		return expr.ApplyName(name)
	}
	return expr.ApplyName(name, arg)
}
