package expr

// FoldAssociative implements the n-ary flattening spec.md §4.3.1 assigns to
// `any`-associativity operators: each operand whose head is name
// contributes its own operands, and any other operand is kept whole, so
// the result is one flat application instead of two nested binary ones.
// Folding that result with a further operand stays flat:
// FoldAssociative("Add", (Add 1 2), 3) gives (Add 1 2 3).
func FoldAssociative(name string, lhs, rhs *Expression) *Expression {
	var flat []*Expression

	if lhs.HeadName() == name {
		flat = append(flat, lhs.Ops()...)
	} else {
		flat = append(flat, lhs)
	}

	if rhs.HeadName() == name {
		flat = append(flat, rhs.Ops()...)
	} else {
		flat = append(flat, rhs)
	}

	return ApplyName(name, flat...)
}
