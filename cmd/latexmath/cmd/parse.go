package cmd

import (
	"fmt"
	"os"

	"github.com/latexmath/latexmath/internal/builtin"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExprFlag string
	parseJSON     bool
	parsePretty   bool
	parseStrict   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [latex]",
	Short: "Parse a LaTeX math string into a MathJSON expression",
	Long: `Parse a LaTeX math string and print the resulting expression,
either in its default tree form or as MathJSON (--json).

Examples:
  latexmath parse '\frac{1}{2} + x^2'
  latexmath parse --json '\sum_{i=1}^{n} i'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExprFlag, "eval", "e", "", "parse this LaTeX string instead of the positional argument")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print as MathJSON shorthand")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "pretty-print the MathJSON (implies --json)")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "reject non-LaTeX conveniences (\"**\" for power)")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(parseExprFlag, args)
	if err != nil {
		return err
	}

	dict := builtin.Default(func(err error) {
		fmt.Fprintf(os.Stderr, "dictionary warning: %v\n", err)
	})

	opts := parser.DefaultOptions()
	opts.Strict = parseStrict

	result, diags := parser.Parse(input, dict, opts)
	if !diags.Empty() {
		fmt.Fprint(os.Stderr, diags.Error())
		fmt.Fprintln(os.Stderr)
	}

	printParsed(result)
	return nil
}

func printParsed(e *expr.Expression) {
	switch {
	case parsePretty:
		fmt.Println(expr.ToJSONPretty(e))
	case parseJSON:
		fmt.Println(expr.ToJSON(e))
	default:
		fmt.Println(e.String())
	}
}
