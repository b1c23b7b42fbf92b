package dictionary

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalizeIdentifier applies Unicode NFC normalization to an entry's Name
// and SymbolTrigger before the dictionary validates and indexes it, so that
// visually identical math letters with different combining-mark
// decompositions (e.g. an accented variable written as a precomposed
// rune vs. base+combining-accent) compare equal. golang.org/x/text is one
// of the two teacher dependencies the distilled spec doesn't name
// directly (see SPEC_FULL.md's Domain Stack ledger); this is its home.
func normalizeIdentifier(s string) string {
	return norm.NFC.String(s)
}

func isUnicodeLetter(r rune) bool { return unicode.IsLetter(r) }

func isDigitRune(r rune) bool { return unicode.IsDigit(r) }
