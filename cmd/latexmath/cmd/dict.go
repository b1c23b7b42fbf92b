package cmd

import (
	"fmt"
	"os"

	"github.com/latexmath/latexmath/internal/builtin"
	"github.com/latexmath/latexmath/internal/dictionary"
	"github.com/spf13/cobra"
	"github.com/tidwall/match"
)

var (
	dictYAMLPath string
	dictFilter   string
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Dump or validate the LaTeX dictionary",
	Long: `Dump the built-in dictionary (trigger tables, precedence,
associativity) grouped by entry kind, optionally merging in
supplementary entries loaded from a YAML file.

Examples:
  latexmath dict
  latexmath dict --load extra-entries.yaml
  latexmath dict --filter 'Arc*'`,
	RunE: runDict,
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.Flags().StringVar(&dictYAMLPath, "load", "", "merge supplementary entries from this YAML file before dumping")
	dictCmd.Flags().StringVar(&dictFilter, "filter", "", "only dump entries whose name matches this glob pattern")
}

func runDict(cmd *cobra.Command, args []string) error {
	entries := builtin.DefaultEntries()

	if dictYAMLPath != "" {
		doc, err := os.ReadFile(dictYAMLPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", dictYAMLPath, err)
		}
		extra, err := dictionary.LoadEntriesYAML(doc)
		if err != nil {
			return fmt.Errorf("loading %s: %w", dictYAMLPath, err)
		}
		entries = append(entries, extra...)
	}

	if dictFilter != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if match.Match(e.Name, dictFilter) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	dict := dictionary.Index(entries, func(err error) {
		fmt.Fprintf(os.Stderr, "dictionary warning: %v\n", err)
	})
	fmt.Println(dict.Dump())
	return nil
}
