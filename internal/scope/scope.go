// Package scope implements the lexical-scope stack the parser pushes and
// pops around quantifier bodies and big-operator index variables (spec.md
// §3, §4.3.4, §4.3.7, §9). Matchfix bodies get no frame of their own.
//
// The chain-of-enclosed-tables design is adapted from the teacher's
// internal/semantic.SymbolTable (a compile-time symbol table for
// DWScript's Pascal-like scoping), generalized here from typed variable
// declarations to the parser's much smaller need: knowing which
// identifiers are bound locally (so `i` in `\sum_i` doesn't leak into the
// enclosing scope) and whether the current frame is inside a quantifier
// body (so a bare `P(x)` can be recognized as `(Predicate, P, x)` even
// when P was never declared, per spec.md §4.3.7).
package scope

// Symbol records that name is bound in some enclosing frame. The parser
// doesn't need type information the way the teacher's compile-time symbol
// table does — only presence, for pollution-avoidance checks (spec.md §8,
// invariant 4).
type Symbol struct {
	Name string
}

// Table is one lexical frame. A Table with a nil outer is the global
// frame.
type Table struct {
	symbols     map[string]*Symbol
	outer       *Table
	inQuantifier bool
}

// NewTable creates a fresh, unenclosed (global) frame.
func NewTable() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// NewEnclosedTable creates a frame nested inside outer.
func NewEnclosedTable(outer *Table) *Table {
	return &Table{symbols: make(map[string]*Symbol), outer: outer}
}

// Define binds name in this frame only — it never touches an outer frame,
// which is precisely what makes big-operator index variables and
// quantifier-bound variables not leak (spec.md §8, invariant 4).
func (t *Table) Define(name string) {
	t.symbols[name] = &Symbol{Name: name}
}

// Resolve walks outward through the enclosing chain and reports whether
// name is bound anywhere in scope.
func (t *Table) Resolve(name string) (*Symbol, bool) {
	if t == nil {
		return nil, false
	}
	if sym, ok := t.symbols[name]; ok {
		return sym, true
	}
	return t.outer.Resolve(name)
}

// InQuantifier reports whether this frame (or an enclosing one) was
// pushed as a quantifier body (spec.md §4.3.7).
func (t *Table) InQuantifier() bool {
	for s := t; s != nil; s = s.outer {
		if s.inQuantifier {
			return true
		}
	}
	return false
}

// Stack is the parser's mutable view onto the current chain of frames —
// one parse invocation owns exactly one Stack (spec.md §3, "Parser
// state"; spec.md §5, "no global mutable state... local to one parse").
type Stack struct {
	top *Table
}

// NewStack creates a Stack with a single global frame.
func NewStack() *Stack {
	return &Stack{top: NewTable()}
}

// Push enters a new nested frame. quantifier marks the frame as a
// quantifier body, enabling bare-predicate-application recognition for
// its and its descendants' duration (spec.md §4.3.7).
func (s *Stack) Push(quantifier bool) {
	t := NewEnclosedTable(s.top)
	t.inQuantifier = quantifier
	s.top = t
}

// Pop leaves the current frame, discarding any symbols it defined. Popping
// the global frame is a no-op: a parse invocation never pops past its
// initial frame.
func (s *Stack) Pop() {
	if s.top.outer != nil {
		s.top = s.top.outer
	}
}

// Define binds name in the current (innermost) frame.
func (s *Stack) Define(name string) { s.top.Define(name) }

// Resolve reports whether name is bound anywhere in the current chain.
func (s *Stack) Resolve(name string) (*Symbol, bool) { return s.top.Resolve(name) }

// InQuantifier reports whether the current frame is (transitively) a
// quantifier body.
func (s *Stack) InQuantifier() bool { return s.top.InQuantifier() }

// Depth returns the number of nested frames, the global frame counting as
// depth 1. Used by tests asserting push/pop balance.
func (s *Stack) Depth() int {
	n := 0
	for t := s.top; t != nil; t = t.outer {
		n++
	}
	return n
}
