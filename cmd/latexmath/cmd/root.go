package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "latexmath",
	Short: "LaTeX math parser, serializer, and interval-arithmetic toolkit",
	Long: `latexmath parses LaTeX math notation into MathJSON-shaped
expressions, serializes them back to LaTeX, and evaluates the small
closed set of arithmetic/elementary/trig operators it knows about
through a sound interval-arithmetic backend.

It does not implement symbolic simplification, evaluation, or a type
system for the parsed expressions — see the tokenize/parse/serialize/
interval/dict subcommands for what it does do.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// readInput returns expr if non-empty, else the sole positional arg, else
// an error — the shared "-e expr | positional LaTeX arg | error" shape the
// tokenize, parse, serialize and interval subcommands use.
func readInput(exprFlag string, args []string) (string, error) {
	if exprFlag != "" {
		return exprFlag, nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide a LaTeX string as the sole argument or via -e")
}
