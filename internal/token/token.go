// Package token defines the atomic lexical unit produced by the tokenizer
// and consumed by the dictionary and parser.
package token

import "fmt"

// Kind classifies a Token. Unlike a conventional lexer, the tokenizer does
// not try to classify commands by meaning (that's the dictionary's job) —
// it only distinguishes the handful of shapes LaTeX source can take.
type Kind uint8

const (
	// KindEOF marks the end of the token stream.
	KindEOF Kind = iota
	// KindCommand is a backslash-command such as \frac or \sum, including
	// an optional trailing star (\begin*).
	KindCommand
	// KindGroupOpen is the synthetic "<{>" token standing for a brace group.
	KindGroupOpen
	// KindGroupClose is the synthetic "<}>" token.
	KindGroupClose
	// KindLiteral is a single character: a letter or punctuation character
	// that isn't itself a command (digits form KindNumber tokens).
	KindLiteral
	// KindNumber is a contiguous run of digits (and, during number
	// parsing, separators) recognized at tokenize time as a unit.
	KindNumber
	// KindSpace is a "visual space" token: a LaTeX spacing command or the
	// "~" tie, preserved so the parser can opt into consuming it. Plain
	// whitespace produces no token.
	KindSpace
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindCommand:
		return "Command"
	case KindGroupOpen:
		return "GroupOpen"
	case KindGroupClose:
		return "GroupClose"
	case KindLiteral:
		return "Literal"
	case KindNumber:
		return "Number"
	case KindSpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// Position locates a token in the original LaTeX source string. Columns
// and offsets are rune counts, not byte counts — LaTeX source is routinely
// full of multi-byte Unicode math letters (𝑥, Δ, …).
type Position struct {
	Offset int // 1-based rune offset from the start of input (equal to Column)
	Column int // 1-based rune column (LaTeX math strings are single-line)
}

// Token is the atomic unit the parser consumes. Text holds the printable
// spelling: "\frac", "<{>", "<}>", "x", "2", etc. Commands keep their
// leading backslash in Text so the dictionary can key directly on it.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// String renders the token the way diagnostics and debug dumps show it.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Pos.Column)
}

// Is reports whether t has the given kind and exact text.
func (t Token) Is(k Kind, text string) bool {
	return t.Kind == k && t.Text == text
}

// GroupOpen and GroupClose are the canonical spellings of the synthetic
// brace-group tokens described in spec.md §3.
const (
	GroupOpen  = "<{>"
	GroupClose = "<}>"
)

// EOF is the sentinel token returned once the stream is exhausted.
var EOF = Token{Kind: KindEOF, Text: ""}
