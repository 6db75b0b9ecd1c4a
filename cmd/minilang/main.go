// Command minilang is the Mini-Lang driver: its subcommands run source files
// through the lexer/parser/analyzer/interpreter pipeline, and its `repl`
// subcommand starts the interactive REPL. Run with no subcommand, it prints
// the help text. It is built on github.com/spf13/cobra for flag parsing
// instead of a hand-rolled os.Args switch.
package main

import (
	"os"

	"github.com/minilang-org/minilang/cmd/minilang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
