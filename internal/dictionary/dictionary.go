package dictionary

import (
	"sort"
)

// IndexedDictionary is the assembled, validated, and indexed collection of
// Entry records described in spec.md §3–§4.2.
type IndexedDictionary struct {
	ids  map[string]*Entry // name -> entry, last-wins on duplicate name
	defs []*Entry          // insertion order, for diagnostics

	byLatexTrigger  map[Kind]map[string][]*Entry // kind -> trigger key -> LIFO stack
	bySymbolTrigger map[string][]*Entry

	matchfixByOpen map[string][]*Entry

	lookahead int // max trigger length in tokens, for the fixed-window peek
}

// OnErrorFunc receives a diagnostic for each entry index() rejects. Indexing
// continues past a rejection (spec.md §7: dictionary validation is a
// warning, not fatal).
type OnErrorFunc func(err error)

// delimiterSynonyms expands the shorthand single-character delimiter
// spellings into every LaTeX spelling that should share one entry
// (spec.md §4.2).
var delimiterSynonyms = map[string][]string{
	"(":  {"("},
	")":  {")"},
	"[":  {"[", `\lbrack`, `\[`},
	"]":  {"]", `\rbrack`, `\]`},
	"{":  {`\{`, `\lbrace`},
	"}":  {`\}`, `\rbrace`},
	"<":  {`\langle`, "<"},
	">":  {`\rangle`, ">"},
	"|":  {"|", `\vert`, `\lvert`, `\rvert`},
	"||": {`\Vert`, `\lVert`, `\rVert`, "||"},
}

// standardPairs lists the complementary open/close pairs that must sort
// ahead of mixed pairs in matchfixByOpen buckets (spec.md §3, §4.3.2): the
// common `()`/`[]`/`{}` tuple case should resolve in O(1) before the
// library falls through to interval notation like `(]`/`[)`.
var standardPairs = map[string]bool{
	"()": true,
	"[]": true,
	"{}": true,
}

func triggerKey(trigger []string) string {
	key := ""
	for _, t := range trigger {
		key += t + "\x00"
	}
	return key
}

func pairKey(open, close []string) string {
	o, c := "", ""
	if len(open) > 0 {
		o = open[len(open)-1]
	}
	if len(close) > 0 {
		c = close[0]
	}
	// Map synonym spellings (\lbrack, \rbrace, …) back to their shorthand
	// so that e.g. \lbrack/\rbrack also counts as the standard "[]" pair.
	for short, syns := range delimiterSynonyms {
		for _, s := range syns {
			if s == o {
				o = short
			}
			if s == c {
				c = short
			}
		}
	}
	return o + c
}

// Index assembles entries into an IndexedDictionary. Entries that fail
// validate() are skipped (reported through onError if non-nil) rather than
// aborting the whole index operation.
func Index(entries []*Entry, onError OnErrorFunc) *IndexedDictionary {
	d := &IndexedDictionary{
		ids:             make(map[string]*Entry),
		byLatexTrigger:  make(map[Kind]map[string][]*Entry),
		bySymbolTrigger: make(map[string][]*Entry),
		matchfixByOpen:  make(map[string][]*Entry),
	}

	for _, e := range entries {
		expanded := expandSynonyms(e)
		for _, ee := range expanded {
			d.insert(ee, onError)
		}
	}

	d.sortMatchfixBuckets()
	return d
}

// expandSynonyms implements spec.md §4.2's synonymization rules: an
// infix/prefix/postfix entry triggered on [^X] or [_X] registers a
// parallel braced-group trigger, and matchfix entries whose open/close
// triggers use the shorthand delimiter spellings expand to every LaTeX
// spelling of that delimiter.
func expandSynonyms(e *Entry) []*Entry {
	out := []*Entry{e}

	if (e.Kind == KindInfix || e.Kind == KindPrefix || e.Kind == KindPostfix) &&
		len(e.LatexTrigger) == 2 && isSigilTrigger(e.LatexTrigger) {
		sigil, x := e.LatexTrigger[0], e.LatexTrigger[1]
		braced := *e
		braced.LatexTrigger = []string{sigil, "<{>", x, "<}>"}
		out = append(out, &braced)
	}

	if e.Kind == KindMatchfix {
		openSpellings := expandDelimiter(e.OpenTrigger)
		closeSpellings := expandDelimiter(e.CloseTrigger)
		if len(openSpellings) > 1 || len(closeSpellings) > 1 {
			out = out[:0]
			for _, o := range openSpellings {
				for _, c := range closeSpellings {
					clone := *e
					clone.OpenTrigger = []string{o}
					clone.CloseTrigger = []string{c}
					out = append(out, &clone)
				}
			}
		}
	}

	return out
}

func expandDelimiter(trigger []string) []string {
	if len(trigger) != 1 {
		return trigger
	}
	if syns, ok := delimiterSynonyms[trigger[0]]; ok {
		return syns
	}
	return trigger
}

func (d *IndexedDictionary) insert(e *Entry, onError OnErrorFunc) {
	e.Name = normalizeIdentifier(e.Name)
	e.SymbolTrigger = normalizeIdentifier(e.SymbolTrigger)
	if err := validate(e); err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}

	if isSigilTrigger(e.LatexTrigger) {
		e.Precedence = SigilPrecedence
	}

	d.defs = append(d.defs, e)

	if e.Name != "" {
		d.ids[e.Name] = e // last-wins, per spec.md §4.2 name-conflict policy
	}

	switch e.Kind {
	case KindMatchfix:
		key := triggerKey(e.OpenTrigger)
		d.matchfixByOpen[key] = append(d.matchfixByOpen[key], e)
		if n := len(e.OpenTrigger); n > d.lookahead {
			d.lookahead = n
		}
	default:
		if e.SymbolTrigger != "" {
			d.bySymbolTrigger[e.SymbolTrigger] = append(d.bySymbolTrigger[e.SymbolTrigger], e)
		}
		if len(e.LatexTrigger) > 0 {
			if d.byLatexTrigger[e.Kind] == nil {
				d.byLatexTrigger[e.Kind] = make(map[string][]*Entry)
			}
			key := triggerKey(e.LatexTrigger)
			d.byLatexTrigger[e.Kind][key] = append(d.byLatexTrigger[e.Kind][key], e)
			if n := len(e.LatexTrigger); n > d.lookahead {
				d.lookahead = n
			}
		}
	}
}

// sortMatchfixBuckets orders each matchfixByOpen bucket so that standard
// complementary pairs `()`, `[]`, `{}` precede mixed pairs like `(]`/`[)`
// (spec.md §3, §4.3.2 rationale: interval notation coexists with tuples
// and lists, and the common case should resolve first).
func (d *IndexedDictionary) sortMatchfixBuckets() {
	for open, bucket := range d.matchfixByOpen {
		b := bucket
		sort.SliceStable(b, func(i, j int) bool {
			pi := standardPairs[pairKey(b[i].OpenTrigger, b[i].CloseTrigger)]
			pj := standardPairs[pairKey(b[j].OpenTrigger, b[j].CloseTrigger)]
			if pi == pj {
				return false
			}
			return pi
		})
		d.matchfixByOpen[open] = b
	}
}

// Lookup returns the entry registered under name, or nil.
func (d *IndexedDictionary) Lookup(name string) *Entry { return d.ids[name] }

// Defs returns the insertion-ordered list of indexed entries, used for
// diagnostics (spec.md §3).
func (d *IndexedDictionary) Defs() []*Entry {
	out := make([]*Entry, len(d.defs))
	copy(out, d.defs)
	return out
}

// Lookahead returns the maximum trigger length in tokens across all
// indexed entries, i.e. the fixed window the parser must peek (spec.md §9).
func (d *IndexedDictionary) Lookahead() int {
	if d.lookahead == 0 {
		return 1
	}
	return d.lookahead
}

// TriggersFor returns the LIFO candidate stack (most-recently-registered
// first) of kind-specific entries whose LatexTrigger equals trigger.
func (d *IndexedDictionary) TriggersFor(kind Kind, trigger []string) []*Entry {
	m := d.byLatexTrigger[kind]
	if m == nil {
		return nil
	}
	bucket := m[triggerKey(trigger)]
	return reversed(bucket)
}

// SymbolTrigger returns the LIFO candidate stack for an identifier-shaped
// trigger such as "gcd".
func (d *IndexedDictionary) SymbolTrigger(name string) []*Entry {
	return reversed(d.bySymbolTrigger[name])
}

// MatchfixCandidates returns the matchfix entries registered for the given
// opening-delimiter trigger, standard pairs first, in O(1).
func (d *IndexedDictionary) MatchfixCandidates(open []string) []*Entry {
	return d.matchfixByOpen[triggerKey(open)]
}

// reversed returns a copy of s in reverse order, giving later-registered
// definitions priority (LIFO), per spec.md §3/§4.2.
func reversed(s []*Entry) []*Entry {
	out := make([]*Entry, len(s))
	for i, e := range s {
		out[len(s)-1-i] = e
	}
	return out
}
