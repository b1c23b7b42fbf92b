package cmd

import (
	"fmt"
	"os"

	"github.com/latexmath/latexmath/internal/builtin"
	"github.com/latexmath/latexmath/internal/interval"
	"github.com/latexmath/latexmath/internal/parser"
	"github.com/spf13/cobra"
)

var (
	intervalExprFlag string
	intervalVar      string
	intervalLo       float64
	intervalHi       float64
	intervalSamples  int
)

var intervalCmd = &cobra.Command{
	Use:   "interval [latex]",
	Short: "Evaluate a parsed expression over a sampled range via interval arithmetic",
	Long: `Parse a LaTeX math expression in one free variable and evaluate
it, through the sound interval-arithmetic backend, at evenly spaced
sample points across [--lo, --hi] — the same sampling a plotting
collaborator would drive.

Only the closed set of arithmetic/elementary/trig operators
internal/interval defines are understood; anything else evaluates to
"entire" (could be any real number).

Example:
  latexmath interval --var x --lo -1 --hi 1 --samples 5 '\sin(x) + x^2'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInterval,
}

func init() {
	rootCmd.AddCommand(intervalCmd)
	intervalCmd.Flags().StringVarP(&intervalExprFlag, "eval", "e", "", "evaluate this LaTeX string instead of the positional argument")
	intervalCmd.Flags().StringVar(&intervalVar, "var", "x", "name of the free variable")
	intervalCmd.Flags().Float64Var(&intervalLo, "lo", 0, "range lower bound")
	intervalCmd.Flags().Float64Var(&intervalHi, "hi", 1, "range upper bound")
	intervalCmd.Flags().IntVar(&intervalSamples, "samples", 10, "number of evenly spaced sample points")
}

func runInterval(cmd *cobra.Command, args []string) error {
	input, err := readInput(intervalExprFlag, args)
	if err != nil {
		return err
	}

	dict := builtin.Default(func(err error) {
		fmt.Fprintf(os.Stderr, "dictionary warning: %v\n", err)
	})

	e, diags := parser.Parse(input, dict, parser.DefaultOptions())
	if !diags.Empty() {
		fmt.Fprint(os.Stderr, diags.Error())
		fmt.Fprintln(os.Stderr)
	}

	results := interval.SampleRange(e, intervalVar, intervalLo, intervalHi, intervalSamples)
	step := (intervalHi - intervalLo) / float64(len(results)-1)
	for i, r := range results {
		x := intervalLo + float64(i)*step
		fmt.Printf("%s(%s=%g) = %s\n", input, intervalVar, x, formatResult(r))
	}
	return nil
}

func formatResult(r interval.Result) string {
	switch r.Kind() {
	case interval.KindEmpty:
		return "empty"
	case interval.KindEntire:
		return "entire"
	case interval.KindSingular:
		if r.Continuity() != "" {
			return fmt.Sprintf("singular(at=%g, %s)", r.At(), r.Continuity())
		}
		return fmt.Sprintf("singular(at=%g)", r.At())
	case interval.KindPartial:
		lo, hi, _ := r.Bounds()
		return fmt.Sprintf("partial[%g, %g] (clipped=%s)", lo, hi, r.DomainClipped())
	default:
		lo, hi, _ := r.Bounds()
		return fmt.Sprintf("[%g, %g]", lo, hi)
	}
}
