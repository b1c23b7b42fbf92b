package serializer

// Style selects the overall verbosity of the emitted LaTeX: Pretty prefers
// the more conventional mathematical typesetting (\frac, \sqrt) where
// Strict prefers the more literal/unambiguous spelling (a/b, a^{1/2})
// that round-trips through the parser without relying on its special-case
// recognizers (spec.md §4.4).
type Style string

const (
	StylePretty Style = "pretty"
	StyleStrict Style = "strict"
)

// FractionStyle selects how Divide is rendered.
type FractionStyle string

const (
	FractionCommand     FractionStyle = "frac"  // \frac{a}{b}
	FractionInlineSlash FractionStyle = "slash" // a/b
)

// RootStyle selects how Sqrt/Root are rendered.
type RootStyle string

const (
	RootCommand      RootStyle = "sqrt"  // \sqrt{a}, \sqrt[n]{a}
	RootPowerFraction RootStyle = "power" // a^{1/n}
)

// GroupStyle selects whether a sub-expression lower in precedence than its
// context is wrapped in bare "( )" or in explicit \left(...\right).
type GroupStyle string

const (
	GroupImplicit GroupStyle = "implicit" // ( ... )
	GroupExplicit GroupStyle = "explicit" // \left( ... \right)
)

// NumericSetStyle selects how the named number sets (Reals, Integers, …)
// are rendered.
type NumericSetStyle string

const (
	NumericSetBlackboard NumericSetStyle = "blackboard" // \mathbb{R}
	NumericSetWords      NumericSetStyle = "words"      // \mathrm{Reals}
)

// Options bundles every style-selector axis spec.md §4.4 names.
type Options struct {
	Style      Style
	Fraction   FractionStyle
	Root       RootStyle
	Group      GroupStyle
	NumericSet NumericSetStyle
}

// DefaultOptions returns the conventional pretty-printing configuration:
// \frac, \sqrt, bare parens, blackboard number sets.
func DefaultOptions() Options {
	return Options{
		Style:      StylePretty,
		Fraction:   FractionCommand,
		Root:       RootCommand,
		Group:      GroupImplicit,
		NumericSet: NumericSetBlackboard,
	}
}

// StrictOptions returns the unambiguous round-trip-oriented configuration.
func StrictOptions() Options {
	return Options{
		Style:      StyleStrict,
		Fraction:   FractionInlineSlash,
		Root:       RootPowerFraction,
		Group:      GroupExplicit,
		NumericSet: NumericSetWords,
	}
}
