package cmd

import (
	"fmt"

	"github.com/latexmath/latexmath/internal/tokenizer"
	"github.com/spf13/cobra"
)

var tokenizeExpr string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [latex]",
	Short: "Tokenize a LaTeX math string and print the resulting tokens",
	Long: `Tokenize a LaTeX math string and print the resulting token
stream, one token per line.

Examples:
  latexmath tokenize '\frac{1}{2} + x^2'
  latexmath tokenize -e '\sin(x)'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeExpr, "eval", "e", "", "tokenize this LaTeX string instead of the positional argument")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	input, err := readInput(tokenizeExpr, args)
	if err != nil {
		return err
	}

	for _, tok := range tokenizer.Tokenize(input) {
		fmt.Println(tok.String())
	}
	return nil
}
