package expr

import (
	"math/big"
	"testing"
)

func TestConstructorsAndAccessors(t *testing.T) {
	t.Run("symbol", func(t *testing.T) {
		s := Symbol("x")
		if s.Kind() != KindSymbol || s.SymbolName() != "x" || !s.IsSymbol("x") {
			t.Fatalf("unexpected symbol: %#v", s)
		}
	})
	t.Run("float", func(t *testing.T) {
		f := Float(3.5)
		v, ok := f.Float64()
		if !ok || v != 3.5 {
			t.Fatalf("Float64() = %v, %v", v, ok)
		}
	})
	t.Run("integer", func(t *testing.T) {
		i := IntegerFromInt64(7)
		bi, ok := i.IntegerValue()
		if !ok || bi.Int64() != 7 {
			t.Fatalf("IntegerValue() = %v, %v", bi, ok)
		}
		v, ok := i.Float64()
		if !ok || v != 7 {
			t.Fatalf("Float64() = %v, %v", v, ok)
		}
	})
	t.Run("rational", func(t *testing.T) {
		r := Rational(big.NewInt(1), big.NewInt(2))
		num, den, ok := r.RationalParts()
		if !ok || num.Int64() != 1 || den.Int64() != 2 {
			t.Fatalf("RationalParts() = %v %v %v", num, den, ok)
		}
		v, ok := r.Float64()
		if !ok || v != 0.5 {
			t.Fatalf("Float64() = %v, %v", v, ok)
		}
	})
	t.Run("rational with zero denominator is not a float", func(t *testing.T) {
		r := Rational(big.NewInt(1), big.NewInt(0))
		if _, ok := r.Float64(); ok {
			t.Error("expected Float64() to fail for a zero denominator")
		}
	})
}

func TestApply(t *testing.T) {
	e := ApplyName("Add", IntegerFromInt64(1), IntegerFromInt64(2))
	if e.Kind() != KindApply {
		t.Fatalf("Kind() = %s, want Apply", e.Kind())
	}
	if e.HeadName() != "Add" {
		t.Fatalf("HeadName() = %q, want Add", e.HeadName())
	}
	if e.Arity() != 2 {
		t.Fatalf("Arity() = %d, want 2", e.Arity())
	}
	if v, _ := e.Op(0).Float64(); v != 1 {
		t.Errorf("Op(0) = %v, want 1", v)
	}
	if e.Op(2) != nil {
		t.Error("Op(2) out of range should be nil")
	}
	ops := e.Ops()
	ops[0] = IntegerFromInt64(99)
	if v, _ := e.Op(0).Float64(); v != 1 {
		t.Error("Ops() should return a defensive copy")
	}
}

func TestErrorSentinel(t *testing.T) {
	missing := MissingOperand()
	if !missing.IsError() || missing.ErrorKind() != "missing" {
		t.Fatalf("MissingOperand() = %#v", missing)
	}
	if missing.ErrorDetail() != nil {
		t.Error("MissingOperand() should have no detail")
	}

	detail := String("context")
	withDetail := Error("domain", detail)
	if withDetail.ErrorDetail() != detail {
		t.Error("Error() should preserve its detail operand")
	}
}

func TestIsValid(t *testing.T) {
	t.Run("nil is invalid", func(t *testing.T) {
		var e *Expression
		if e.IsValid() {
			t.Error("nil expression should be invalid")
		}
	})
	t.Run("symbol is valid", func(t *testing.T) {
		if !Symbol("x").IsValid() {
			t.Error("bare symbol should be valid")
		}
	})
	t.Run("apply with nil operand is invalid", func(t *testing.T) {
		e := Apply(Symbol("Add"), IntegerFromInt64(1), nil)
		if e.IsValid() {
			t.Error("application with a nil operand should be invalid")
		}
	})
	t.Run("apply with nil head is invalid", func(t *testing.T) {
		e := Apply(nil, IntegerFromInt64(1))
		if e.IsValid() {
			t.Error("application with a nil head should be invalid")
		}
	})
	t.Run("nested valid application", func(t *testing.T) {
		inner := ApplyName("Negate", IntegerFromInt64(1))
		outer := ApplyName("Add", inner, IntegerFromInt64(2))
		if !outer.IsValid() {
			t.Error("nested valid application should be valid")
		}
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		e    *Expression
		want string
	}{
		{"symbol", Symbol("x"), "x"},
		{"integer", IntegerFromInt64(42), "42"},
		{"string", String("hi"), `"hi"`},
		{"apply", ApplyName("Add", IntegerFromInt64(1), IntegerFromInt64(2)), "(Add 1 2)"},
		{"missing operand", MissingOperand(), "(Error missing)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDictionary(t *testing.T) {
	d := Dictionary(map[string]*Expression{"unit": String("m")})
	if d.Kind() != KindDict {
		t.Fatalf("Kind() = %s, want Dictionary", d.Kind())
	}
	if got := d.DictGet("unit"); got.SymbolName() != "" || got.Kind() != KindString {
		t.Errorf("DictGet(\"unit\") = %#v", got)
	}
	if d.DictGet("missing") != nil {
		t.Error("DictGet() for an absent key should be nil")
	}
}

func TestFoldAssociative(t *testing.T) {
	t.Run("flattens matching heads on both sides", func(t *testing.T) {
		lhs := ApplyName("Add", IntegerFromInt64(1), IntegerFromInt64(2))
		rhs := ApplyName("Add", IntegerFromInt64(3), IntegerFromInt64(4))
		got := FoldAssociative("Add", lhs, rhs)
		if got.Arity() != 4 {
			t.Fatalf("Arity() = %d, want 4", got.Arity())
		}
	})
	t.Run("wraps non-matching operands as-is", func(t *testing.T) {
		got := FoldAssociative("Add", IntegerFromInt64(1), IntegerFromInt64(2))
		if got.Arity() != 2 {
			t.Fatalf("Arity() = %d, want 2", got.Arity())
		}
	})
	t.Run("idempotent on its own output", func(t *testing.T) {
		first := FoldAssociative("Add", IntegerFromInt64(1), IntegerFromInt64(2))
		second := FoldAssociative("Add", first, IntegerFromInt64(3))
		if second.Arity() != 3 {
			t.Fatalf("Arity() = %d, want 3", second.Arity())
		}
	})
}
