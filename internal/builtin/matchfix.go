package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

// matchfixEntries covers spec.md §4.3.2's bracket-pair resolution: the
// standard grouping/tuple/list/set trio, interval notation sharing the "("
// and "[" open buckets with the tuple/list pair (resolved by the
// dictionary's standard-pairs-first ordering, spec.md §3), absolute value,
// norm, and the Iverson bracket (which must be tried before the plain List
// entry registered for the same "[" "]" pair, since it declines whenever
// its body isn't a single relational expression).
func matchfixEntries() []*dictionary.Entry {
	var out []*dictionary.Entry

	// "(" ")" — a comma-free single-item body is transparent grouping;
	// more than one item becomes a Tuple.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "Tuple",
		OpenTrigger: []string{"("}, CloseTrigger: []string{")"},
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			ops, ok := parser.ParseMatchfixBody(ctx, []string{")"})
			if !ok {
				return nil
			}
			if len(ops) == 1 {
				return ops[0]
			}
			return expr.ApplyName("Tuple", ops...)
		},
	})

	// "(" "]" / "[" ")" — half-open intervals, sharing the "(" and "["
	// open buckets alongside Tuple/List (tried after them, since they are
	// mixed pairs and the dictionary sorts standard pairs first).
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "Interval",
		OpenTrigger: []string{"("}, CloseTrigger: []string{"]"},
		Parse:     intervalParse("]", false, true),
		Serialize: serializeInterval,
	})
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "Interval",
		OpenTrigger: []string{"["}, CloseTrigger: []string{")"},
		Parse:     intervalParse(")", true, false),
		Serialize: serializeInterval,
	})

	// "[" "]" — Iverson bracket tried first (declines unless its body is a
	// single relational expression), falling through to the plain List.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "Boole",
		OpenTrigger: []string{"["}, CloseTrigger: []string{"]"},
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			ops, ok := parser.ParseMatchfixBody(ctx, []string{"]"})
			if !ok || len(ops) != 1 || !isRelational(ops[0]) {
				return nil
			}
			return expr.ApplyName("Boole", ops[0])
		},
		Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
			return "[" + s.Wrap(e.Op(0), parser.PrecLowest) + "]"
		},
	})
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "List",
		OpenTrigger: []string{"["}, CloseTrigger: []string{"]"},
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericMatchfixSimple(ctx, "List", []string{"]"})
		},
	})

	// "{" "}" — Set.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "Set",
		OpenTrigger: []string{token.GroupOpen}, CloseTrigger: []string{token.GroupClose},
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericMatchfixSimple(ctx, "Set", []string{token.GroupClose})
		},
	})

	// "|" "|" — absolute value (single operand only; declines otherwise so
	// malformed input falls through to the generic Delimiter capture).
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "Abs",
		OpenTrigger: []string{"|"}, CloseTrigger: []string{"|"},
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			ops, ok := parser.ParseMatchfixBody(ctx, []string{"|"})
			if !ok || len(ops) != 1 {
				return nil
			}
			return expr.ApplyName("Abs", ops[0])
		},
	})

	// "\Vert"/"\lVert"/"\rVert"/"||" — norm.
	out = append(out, &dictionary.Entry{
		Kind: dictionary.KindMatchfix, Name: "Norm",
		OpenTrigger: []string{"||"}, CloseTrigger: []string{"||"},
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			ops, ok := parser.ParseMatchfixBody(ctx, []string{"||"})
			if !ok || len(ops) != 1 {
				return nil
			}
			return expr.ApplyName("Norm", ops[0])
		},
	})

	return out
}

// serializeInterval reconstructs "(" / "[" ... "]" / ")" from an Interval
// application's trailing True/False closedness markers, shared by both the
// open-closed and closed-open entries since the closedness is carried in
// the data rather than which entry produced it.
func serializeInterval(s dictionary.Serializer, e *expr.Expression) string {
	open := "("
	if e.Op(2).IsSymbol("True") {
		open = "["
	}
	closeSpelling := ")"
	if e.Op(3).IsSymbol("True") {
		closeSpelling = "]"
	}
	return open + s.Wrap(e.Op(0), parser.PrecLowest) + ", " + s.Wrap(e.Op(1), parser.PrecLowest) + closeSpelling
}

func intervalParse(closeTrigger string, lowClosed, highClosed bool) dictionary.PrefixParseFn {
	return func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
		ops, ok := parser.ParseMatchfixBody(ctx, []string{closeTrigger})
		if !ok || len(ops) != 2 {
			return nil
		}
		return expr.ApplyName("Interval", ops[0], ops[1],
			expr.Symbol(boolName(lowClosed)), expr.Symbol(boolName(highClosed)))
	}
}

func boolName(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// isRelational reports whether e's head is a relational comparison,
// qualifying it as an Iverson-bracket body (spec.md §4.3.2).
func isRelational(e *expr.Expression) bool {
	switch e.HeadName() {
	case "Equal", "NotEqual", "Less", "LessEqual", "Greater", "GreaterEqual", "Element", "And", "Or", "Not":
		return true
	}
	return false
}
