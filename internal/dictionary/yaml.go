package dictionary

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// yamlEntry mirrors Entry's data fields (not its callbacks — YAML-sourced
// entries can only describe declarative shape, not parse/serialize
// behavior) for loading supplementary dictionary definitions from a
// document, per SPEC_FULL.md's Domain Stack note: "the indexed dictionary
// is itself a configuration surface" given a concrete external-data form.
type yamlEntry struct {
	Kind          string   `yaml:"kind"`
	Name          string   `yaml:"name"`
	LatexTrigger  []string `yaml:"latexTrigger"`
	SymbolTrigger string   `yaml:"symbolTrigger"`
	OpenTrigger   []string `yaml:"openTrigger"`
	CloseTrigger  []string `yaml:"closeTrigger"`
	Precedence    *int     `yaml:"precedence"`
	Associativity string   `yaml:"associativity"`
}

var kindFromYAML = map[string]Kind{
	"symbol":      KindSymbol,
	"expression":  KindExpression,
	"function":    KindFunction,
	"prefix":      KindPrefix,
	"postfix":     KindPostfix,
	"infix":       KindInfix,
	"matchfix":    KindMatchfix,
	"environment": KindEnvironment,
}

var assocFromYAML = map[string]Associativity{
	"":      AssocNone,
	"none":  AssocNone,
	"left":  AssocLeft,
	"right": AssocRight,
	"any":   AssocAny,
}

// LoadEntriesYAML parses a YAML document of dictionary entries, returning
// plain (parse/serialize-less) Entry records suitable for merging with a
// code-defined builtin set before calling Index. Entries with a kind not
// in kindFromYAML are rejected with an error: unlike index()-time
// validation, a malformed document is a load-time failure, since it
// usually indicates a typo a human should see immediately rather than a
// silently-skipped definition.
func LoadEntriesYAML(doc []byte) ([]*Entry, error) {
	var raw []yamlEntry
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("dictionary: parsing YAML entries: %w", err)
	}

	out := make([]*Entry, 0, len(raw))
	for i, re := range raw {
		kind, ok := kindFromYAML[re.Kind]
		if !ok {
			return nil, fmt.Errorf("dictionary: entry %d: unknown kind %q", i, re.Kind)
		}
		assoc, ok := assocFromYAML[re.Associativity]
		if !ok {
			return nil, fmt.Errorf("dictionary: entry %d (%s): unknown associativity %q", i, re.Name, re.Associativity)
		}
		e := &Entry{
			Kind:          kind,
			Name:          re.Name,
			LatexTrigger:  re.LatexTrigger,
			SymbolTrigger: re.SymbolTrigger,
			OpenTrigger:   re.OpenTrigger,
			CloseTrigger:  re.CloseTrigger,
			Associativity: assoc,
		}
		if re.Precedence != nil {
			e.Precedence = *re.Precedence
			e.PrecedenceSet = true
		}
		out = append(out, e)
	}
	return out, nil
}
