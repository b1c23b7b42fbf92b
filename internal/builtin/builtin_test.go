package builtin

import "testing"

func TestDefaultIndexesWithoutErrors(t *testing.T) {
	var errs []error
	dict := Default(func(err error) { errs = append(errs, err) })
	if len(errs) != 0 {
		t.Fatalf("Default() reported %d validation errors, want 0: %v", len(errs), errs)
	}
	if dict.Lookup("Add") == nil {
		t.Error("Default() dictionary should have an Add entry")
	}
}

func TestDefaultEntriesIsReusable(t *testing.T) {
	a := DefaultEntries()
	b := DefaultEntries()
	if len(a) != len(b) {
		t.Fatalf("DefaultEntries() produced %d and %d entries across two calls, want matching counts", len(a), len(b))
	}
}

// TestCongruentNotEquivalentCollision guards the fix for the \equiv /
// \iff name collision: both used to register under the name "Equivalent",
// and since dictionary indexing is last-wins by name, a congruence
// expression produced by \equiv would silently pick up \iff's serialize
// spelling. They must now resolve to distinct dictionary entries.
func TestCongruentNotEquivalentCollision(t *testing.T) {
	dict := Default(func(err error) { t.Logf("dictionary warning: %v", err) })

	equivalent := dict.Lookup("Equivalent")
	if equivalent == nil {
		t.Fatal("Default() dictionary should have an Equivalent entry for \\iff/\\leftrightarrow")
	}
	if len(equivalent.LatexTrigger) == 0 ||
		(equivalent.LatexTrigger[0] != `\iff` && equivalent.LatexTrigger[0] != `\leftrightarrow`) {
		t.Errorf("Equivalent entry trigger = %v, want one of the logical-biconditional spellings", equivalent.LatexTrigger)
	}

	congruent := dict.Lookup("Congruent")
	if congruent == nil {
		t.Fatal("Default() dictionary should have a Congruent entry for \\equiv")
	}
	if congruent.Serialize == nil {
		t.Error("Congruent entry should carry a Serialize handler")
	}
}
