package tokenizer

import "testing"

func kindsAndText(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, tok := range toks {
		out[i] = Token{Kind: tok.Kind, Text: tok.Text}
	}
	return out
}

func TestTokenizeBasicShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			"digits form one token",
			"123",
			[]Token{{Kind: KindNumber, Text: "123"}},
		},
		{
			"command",
			`\frac`,
			[]Token{{Kind: KindCommand, Text: `\frac`}},
		},
		{
			"starred command",
			`\begin*`,
			[]Token{{Kind: KindCommand, Text: `\begin*`}},
		},
		{
			"single-char escape is a visual space",
			`\,`,
			[]Token{{Kind: KindSpace, Text: `\,`}},
		},
		{
			"group delimiters",
			"{x}",
			[]Token{
				{Kind: KindGroupOpen, Text: GroupOpen},
				{Kind: KindLiteral, Text: "x"},
				{Kind: KindGroupClose, Text: GroupClose},
			},
		},
		{
			"tilde is a visual space literal",
			"1~2",
			[]Token{
				{Kind: KindNumber, Text: "1"},
				{Kind: KindSpace, Text: "~"},
				{Kind: KindNumber, Text: "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kindsAndText(Tokenize(tt.input))
			if len(got) != len(tt.want)+1 {
				t.Fatalf("Tokenize(%q) produced %d tokens (incl. EOF), want %d", tt.input, len(got), len(tt.want)+1)
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("token %d = %+v, want %+v", i, got[i], w)
				}
			}
			if got[len(got)-1].Kind != KindEOF {
				t.Error("Tokenize() should always terminate with a KindEOF token")
			}
		})
	}
}

func TestTokenizeSkipsPlainWhitespace(t *testing.T) {
	got := Tokenize("1  2")
	if len(got) != 3 {
		t.Fatalf("Tokenize(\"1  2\") = %d tokens, want 3 (two numbers + EOF)", len(got))
	}
	if got[0].Text != "1" || got[1].Text != "2" {
		t.Errorf("unexpected tokens: %+v", got)
	}
}

func TestCountTokens(t *testing.T) {
	if n := CountTokens(`\frac{1}{2}`); n != 7 {
		t.Errorf("CountTokens(\\frac{1}{2}) = %d, want 7", n)
	}
	if n := CountTokens(""); n != 0 {
		t.Errorf("CountTokens(\"\") = %d, want 0", n)
	}
}

func TestTokensToStringRoundTrip(t *testing.T) {
	tests := []string{
		"123",
		`\frac{1}{2}`,
		`x+y`,
		`\sin x`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			toks := Tokenize(in)
			got := TokensToString(toks)
			if got != in {
				t.Errorf("TokensToString(Tokenize(%q)) = %q, want %q", in, got, in)
			}
		})
	}
}

func TestTokensToStringDropsInsignificantWhitespace(t *testing.T) {
	got := TokensToString(Tokenize("1  +  2"))
	want := "1+2"
	if got != want {
		t.Errorf("TokensToString() = %q, want %q", got, want)
	}
}

func TestUnicodeRuneAccounting(t *testing.T) {
	// "Δ" is multi-byte in UTF-8; the tokenizer must still see it as one
	// rune forming one literal token, not split into stray bytes.
	got := Tokenize("Δx")
	if len(got) != 3 {
		t.Fatalf("Tokenize(\"Δx\") = %d tokens, want 3", len(got))
	}
	if got[0].Kind != KindLiteral || got[0].Text != "Δ" {
		t.Errorf("first token = %+v, want a single Δ literal", got[0])
	}
	if got[1].Kind != KindLiteral || got[1].Text != "x" {
		t.Errorf("second token = %+v, want a single x literal", got[1])
	}
	if got[1].Pos.Column <= got[0].Pos.Column {
		t.Errorf("column must advance by rune, not byte: %d then %d", got[0].Pos.Column, got[1].Pos.Column)
	}
}
