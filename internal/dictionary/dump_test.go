package dictionary

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestDumpGolden(t *testing.T) {
	entries := []*Entry{
		{Kind: KindSymbol, Name: "Pi", LatexTrigger: []string{`\pi`}},
		{
			Kind: KindInfix, Name: "Add", LatexTrigger: []string{"+"},
			Precedence: 300, PrecedenceSet: true, Associativity: AssocAny,
		},
		{
			Kind: KindMatchfix, Name: "Tuple",
			OpenTrigger: []string{"("}, CloseTrigger: []string{")"},
		},
	}
	dict := Index(entries, func(err error) { t.Fatalf("unexpected indexing error: %v", err) })
	snaps.MatchSnapshot(t, "dump", dict.Dump())
}

func TestValidateRejectsEntryWithNeitherTriggerNorName(t *testing.T) {
	var gotErr error
	Index([]*Entry{{Kind: KindSymbol}}, func(err error) { gotErr = err })
	if gotErr == nil {
		t.Error("expected a validation error for an entry with no trigger and no name")
	}
}
