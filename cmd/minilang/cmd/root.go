// Package cmd wires Mini-Lang's pipeline packages (lexer, parser, sema,
// interp, repl) into a command-line driver. It is grounded on
// github.com/spf13/cobra the way _examples/CWBudde-go-dws's
// cmd/dwscript/cmd package is built: one rootCmd with a Version and a
// persistent --verbose flag in root.go, and one file per subcommand
// (lex.go, parse.go, check.go, run.go, emit.go, repl.go) that registers
// itself with rootCmd.AddCommand from its own init.
//
// spec §6 describes a single driver accepting one positional path plus a
// handful of flags (-o, -r, --ast, --tokens, --symbols); here each of
// those becomes its own subcommand (lex/parse/check/run/emit) rather than
// a flag on one command, matching the multi-subcommand shape the rest of
// the retrieval pack uses for this kind of CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var redColor = color.New(color.FgRed)

var rootCmd = &cobra.Command{
	Use:     "minilang",
	Short:   "Mini-Lang lexer, parser, analyzer, and interpreter",
	Version: "0.1.0",
	Long: `minilang is a small statically-typed imperative language.

Subcommands run one source file through a single phase of the
pipeline (lex, parse, check) or all the way through execution (run),
or start the interactive REPL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, returning the first error encountered.
// Diagnostics are already written to stderr by the time an error comes
// back here; main only needs it to pick an exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// readSource resolves a command's input: an inline -e expression takes
// precedence over a positional file path, mirroring dwscript's lexCmd.
func readSource(evalExpr string, args []string) (source, label string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
