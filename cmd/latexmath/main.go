// Command latexmath is the CLI surface over this module's parser,
// dictionary, serializer, and interval-arithmetic packages, mirroring the
// teacher's dwscript lex/parse/fmt/compile subcommand split.
package main

import (
	"fmt"
	"os"

	"github.com/latexmath/latexmath/cmd/latexmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
