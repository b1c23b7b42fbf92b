package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/token"
)

// greekLetters maps every \lower and \Upper Greek command to its canonical
// MathJSON symbol name. LaTeX spells the symbol differently from its name
// ("\alpha" vs. "alpha") so every letter needs its own entry rather than
// falling through to the generic command-becomes-symbol default (spec.md
// §4.1's symbol table).
var greekLetters = map[string]string{
	`\alpha`: "alpha", `\beta`: "beta", `\gamma`: "gamma", `\delta`: "delta",
	`\epsilon`: "epsilon", `\varepsilon`: "varepsilon", `\zeta`: "zeta",
	`\eta`: "eta", `\theta`: "theta", `\vartheta`: "vartheta", `\iota`: "iota",
	`\kappa`: "kappa", `\lambda`: "lambda", `\mu`: "mu", `\nu`: "nu",
	`\xi`: "xi", `\pi`: "pi", `\varpi`: "varpi", `\rho`: "rho",
	`\varrho`: "varrho", `\sigma`: "sigma", `\varsigma`: "varsigma",
	`\tau`: "tau", `\upsilon`: "upsilon", `\phi`: "phi", `\varphi`: "varphi",
	`\chi`: "chi", `\psi`: "psi", `\omega`: "omega",
	`\Gamma`: "Gamma", `\Delta`: "Delta", `\Theta`: "Theta", `\Lambda`: "Lambda",
	`\Xi`: "Xi", `\Pi`: "Pi", `\Sigma`: "Sigma", `\Upsilon`: "Upsilon",
	`\Phi`: "Phi", `\Psi`: "Psi", `\Omega`: "Omega",
}

// mathConstants maps the remaining reserved symbol spellings spec.md §4.1
// names: named constants, set-theory tokens, and calculus markers that
// read as a bare symbol rather than an operator.
var mathConstants = map[string]string{
	`\infty`: "infty", `\emptyset`: "emptyset", `\varnothing`: "emptyset",
	`\hbar`: "hbar", `\ell`: "ell", `\aleph`: "aleph",
	`\Re`: "Re", `\Im`: "Im", `\imaginaryI`: "ImaginaryUnit",
	`\top`: "True", `\bot`: "False",
}

// blackboardSets maps the bare letter inside \mathbb{X} to its named
// number-set symbol (spec.md §4.1).
var blackboardSets = map[string]string{
	"R": "Reals", "N": "Naturals", "Z": "Integers", "Q": "Rationals", "C": "ComplexNumbers",
}

func symbolEntries() []*dictionary.Entry {
	var out []*dictionary.Entry
	for cmd, name := range greekLetters {
		out = append(out, symbolEntry(cmd, name))
	}
	for cmd, name := range mathConstants {
		out = append(out, symbolEntry(cmd, name))
	}

	// Blackboard-bold set names parse via the "Blackboard" prefix entry
	// below rather than a LatexTrigger of their own (ParseGenericSymbol
	// there returns the bare symbol directly), so each needs its own
	// name-only entry purely to give \mathbb{R}-style notation a Serialize
	// slot: SerializeSymbol looks entries up by the symbol's own name.
	for letter, name := range blackboardSets {
		l := letter
		out = append(out, &dictionary.Entry{
			Kind: dictionary.KindSymbol, Name: name,
			Serialize: func(s dictionary.Serializer, e *expr.Expression) string {
				return `\mathbb{` + l + `}`
			},
		})
	}

	// "gcd", "lcm", etc. are spelled as plain identifier letters (no
	// backslash) and so resolve through the dictionary's SymbolTrigger
	// table rather than LatexTrigger (spec.md §4.1).
	out = append(out, &dictionary.Entry{
		Kind:         dictionary.KindPrefix,
		Name:         "Blackboard",
		LatexTrigger: []string{`\mathbb`, token.GroupOpen},
		Precedence:    dictionary.SigilPrecedence,
		PrecedenceSet: true,
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			letter := ctx.Peek(0).Text
			if name, ok := blackboardSets[letter]; ok {
				ctx.Advance() // letter
				if ctx.Peek(0).Kind == token.KindGroupClose {
					ctx.Advance()
				}
				return parser.ParseGenericSymbol(name)
			}
			if ctx.Peek(0).Kind == token.KindGroupClose {
				ctx.Advance()
				return expr.Symbol("Blackboard" + letter)
			}
			return expr.Symbol("Blackboard" + letter)
		},
	})

	for _, name := range []string{"gcd", "lcm", "min", "max", "sup", "inf", "det", "dim", "deg"} {
		n := name
		out = append(out, &dictionary.Entry{
			Kind:          dictionary.KindFunction,
			Name:          capitalize(n),
			SymbolTrigger: n,
			Arguments:     dictionary.ArgumentsEnclosure,
			Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
				return parser.ParseGenericFunctionEnclosure(ctx, capitalize(n), []string{")"})
			},
		})
	}
	return out
}

func symbolEntry(cmd, name string) *dictionary.Entry {
	n := name
	return &dictionary.Entry{
		Kind:         dictionary.KindSymbol,
		Name:         n,
		LatexTrigger: []string{cmd},
		Parse: func(ctx dictionary.ParseContext, trigger token.Token) *expr.Expression {
			return parser.ParseGenericSymbol(n)
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
