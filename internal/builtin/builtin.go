// Package builtin assembles the default IndexedDictionary spec.md assumes
// every conforming implementation ships (spec.md §3's "the dictionary may
// be extended, but a baseline set of entries... is presupposed"). Each file
// in this package groups one family of entries (numbers and symbols,
// arithmetic, relations and logic, sets, matchfix brackets, calculus, trig,
// quantifiers); builtin.go wires them together and calls dictionary.Index.
//
// Every Parse/ParseInfix callback here closes over the internal/parser
// helpers (ParseGenericPrefix, ParseBigOperator, ParseTrig, …) rather than
// hand-rolling construct-specific logic, per spec.md §9's "small set of
// builtin parse strategies" redesign note.
package builtin

import (
	"github.com/latexmath/latexmath/internal/dictionary"
)

// DefaultEntries assembles the complete baseline entry list, unindexed —
// exposed so a caller can merge in supplementary entries (e.g. loaded via
// dictionary.LoadEntriesYAML) before calling dictionary.Index itself.
func DefaultEntries() []*dictionary.Entry {
	var entries []*dictionary.Entry
	entries = append(entries, symbolEntries()...)
	entries = append(entries, arithmeticEntries()...)
	entries = append(entries, relationEntries()...)
	entries = append(entries, logicEntries()...)
	entries = append(entries, setEntries()...)
	entries = append(entries, matchfixEntries()...)
	entries = append(entries, calculusEntries()...)
	entries = append(entries, trigEntries()...)
	entries = append(entries, quantifierEntries()...)
	entries = append(entries, miscEntries()...)
	return entries
}

// Default builds and indexes the complete baseline dictionary. onError, if
// non-nil, receives a diagnostic for every entry validate() rejects —
// indexing continues regardless (spec.md §7).
func Default(onError dictionary.OnErrorFunc) *dictionary.IndexedDictionary {
	return dictionary.Index(DefaultEntries(), onError)
}
