package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

// quantifierEntries covers spec.md §4.3.7: \forall, \exists, \exists!, and
// \nexists, each dispatching to parser.ParseQuantifier.
func quantifierEntries() []*dictionary.Entry {
	quants := []struct {
		trigger string
		head    string
	}{
		{`\forall`, "ForAll"},
		{`\exists`, "Exists"},
		{`\nexists`, "NotExists"},
	}

	var out []*dictionary.Entry
	for _, q := range quants {
		head, trig := q.head, q.trigger
		out = append(out, &dictionary.Entry{
			Kind:          dictionary.KindPrefix,
			Name:          head,
			LatexTrigger:  []string{trig},
			Precedence:    parser.PrecQuantifier,
			PrecedenceSet: true,
			Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
				return parser.ParseQuantifier(ctx, head)
			},
			Serialize: serializeQuantifier(trig),
		})
	}

	// "\exists!" (unique existence) is its own two-token trigger, tried
	// before the plain "\exists" entry's single-token trigger since the
	// parser always tries the longest matching window first.
	out = append(out, &dictionary.Entry{
		Kind:          dictionary.KindPrefix,
		Name:          "ExistsUnique",
		LatexTrigger:  []string{`\exists`, "!"},
		Precedence:    parser.PrecQuantifier,
		PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseQuantifier(ctx, "ExistsUnique")
		},
		Serialize: serializeQuantifier(`\exists!`),
	})

	return out
}

// serializeQuantifier reconstructs "<trig> bound, body" from the
// (head, bound, body) shape parser.ParseQuantifier builds, where bound is
// either a bare symbol or an Element(sym, set) membership.
func serializeQuantifier(trig string) dictionary.SerializeFn {
	return func(s dictionary.Serializer, e *expr.Expression) string {
		bound, body := e.Op(0), e.Op(1)
		return trig + " " + s.Wrap(bound, parser.PrecLowest) + ", " + s.Wrap(body, parser.PrecLowest)
	}
}
