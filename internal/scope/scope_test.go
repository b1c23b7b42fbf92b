package scope

import "testing"

func TestTableDefineAndResolve(t *testing.T) {
	tbl := NewTable()
	tbl.Define("x")

	if _, ok := tbl.Resolve("x"); !ok {
		t.Error("Resolve(\"x\") should find a name defined in this frame")
	}
	if _, ok := tbl.Resolve("y"); ok {
		t.Error("Resolve(\"y\") should not find an undefined name")
	}
}

func TestEnclosedTableResolvesOuter(t *testing.T) {
	outer := NewTable()
	outer.Define("n")
	inner := NewEnclosedTable(outer)
	inner.Define("i")

	if _, ok := inner.Resolve("n"); !ok {
		t.Error("inner frame should resolve names bound in an outer frame")
	}
	if _, ok := outer.Resolve("i"); ok {
		t.Error("outer frame should not see names bound only in the inner frame")
	}
}

func TestInQuantifierPropagatesThroughChain(t *testing.T) {
	outer := NewTable()
	quant := &Table{symbols: map[string]*Symbol{}, outer: outer, inQuantifier: true}
	nested := NewEnclosedTable(quant)

	if outer.InQuantifier() {
		t.Error("the global frame should not report InQuantifier")
	}
	if !quant.InQuantifier() {
		t.Error("a frame pushed as a quantifier body should report InQuantifier")
	}
	if !nested.InQuantifier() {
		t.Error("a frame nested inside a quantifier body should inherit InQuantifier")
	}
}

func TestStackPushPopDefineResolve(t *testing.T) {
	s := NewStack()
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 for a fresh stack", s.Depth())
	}

	s.Define("x")
	s.Push(true)
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2 after Push", s.Depth())
	}
	if !s.InQuantifier() {
		t.Error("InQuantifier() should be true right after Push(true)")
	}

	s.Define("i")
	if _, ok := s.Resolve("i"); !ok {
		t.Error("Resolve(\"i\") should find a name defined in the pushed frame")
	}
	if _, ok := s.Resolve("x"); !ok {
		t.Error("Resolve(\"x\") should still find a name from the outer frame")
	}

	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 after Pop", s.Depth())
	}
	if _, ok := s.Resolve("i"); ok {
		t.Error("\"i\" should not leak past Pop — index variables must not pollute the enclosing scope")
	}
	if s.InQuantifier() {
		t.Error("InQuantifier() should be false after popping back to the global frame")
	}
}

func TestStackPopNeverPassesGlobalFrame(t *testing.T) {
	s := NewStack()
	s.Pop()
	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 — popping the global frame must be a no-op", s.Depth())
	}
}
