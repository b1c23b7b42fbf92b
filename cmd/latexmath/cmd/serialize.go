package cmd

import (
	"fmt"
	"os"

	"github.com/latexmath/latexmath/internal/builtin"
	"github.com/latexmath/latexmath/internal/expr"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/latexmath/latexmath/internal/serializer"
	"github.com/spf13/cobra"
)

var (
	serializeExprFlag string
	serializeFromJSON  bool
	serializeStrict    bool
)

var serializeCmd = &cobra.Command{
	Use:   "serialize [latex|json]",
	Short: "Parse (or decode MathJSON) and re-render as LaTeX",
	Long: `Round-trip a LaTeX math string through the parser and back out
through the serializer, or render a MathJSON document (--from-json)
directly as LaTeX.

Examples:
  latexmath serialize '\dfrac{1}{2}'
  latexmath serialize --from-json '["Add", "x", 1]'
  latexmath serialize --strict '\frac{1}{2}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSerialize,
}

func init() {
	rootCmd.AddCommand(serializeCmd)
	serializeCmd.Flags().StringVarP(&serializeExprFlag, "eval", "e", "", "serialize this input instead of the positional argument")
	serializeCmd.Flags().BoolVar(&serializeFromJSON, "from-json", false, "treat the input as a MathJSON document rather than LaTeX")
	serializeCmd.Flags().BoolVar(&serializeStrict, "strict", false, "use the unambiguous round-trip-oriented rendering style")
}

func runSerialize(cmd *cobra.Command, args []string) error {
	input, err := readInput(serializeExprFlag, args)
	if err != nil {
		return err
	}

	dict := builtin.Default(func(err error) {
		fmt.Fprintf(os.Stderr, "dictionary warning: %v\n", err)
	})

	var e *expr.Expression
	if serializeFromJSON {
		e, err = expr.FromJSON(input)
		if err != nil {
			return fmt.Errorf("decoding MathJSON: %w", err)
		}
	} else {
		result, parseDiags := parser.Parse(input, dict, parser.DefaultOptions())
		if !parseDiags.Empty() {
			fmt.Fprint(os.Stderr, parseDiags.Error())
			fmt.Fprintln(os.Stderr)
		}
		e = result
	}

	opts := serializer.DefaultOptions()
	if serializeStrict {
		opts = serializer.StrictOptions()
	}
	fmt.Println(serializer.Serialize(e, dict, opts))
	return nil
}
