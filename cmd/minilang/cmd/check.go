package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang-org/minilang/parser"
	"github.com/minilang-org/minilang/sema"
)

var (
	checkEvalExpr string
	showSymbols   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run semantic analysis and report diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEvalExpr, "eval", "e", "", "check inline code instead of reading from file")
	checkCmd.Flags().BoolVar(&showSymbols, "symbols", false, "print the symbol table")
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(checkEvalExpr, args)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
		return err
	}

	table, diags := sema.AnalyzeProgram(prog)
	if showSymbols {
		printSymbolTable(table)
	}
	if len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(cmd.ErrOrStderr(), "%s\n", d)
		}
		return diags[0]
	}
	return nil
}

// printSymbolTable dumps every declared function signature and top-level
// variable binding, grounded on scope.Scope's parent-chain layout — the
// teacher dumps its Scope's Variables map the same way from its REPL's
// `/scope` command.
func printSymbolTable(table *sema.SymbolTable) {
	fmt.Println("Functions:")
	for _, fn := range table.Functions {
		fmt.Printf("  %s(", fn.Name)
		for i, pt := range fn.ParamTypes {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("%s %s", pt, fn.ParamNames[i])
		}
		fmt.Printf(") -> %s\n", fn.Return)
	}
	fmt.Println("Globals:")
	for _, g := range table.Globals {
		fmt.Printf("  %s %s\n", g.Type, g.Name)
	}
}
