package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Mini-Lang file or expression and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
		return err
	}
	fmt.Print(ast.Print(prog))
	return nil
}
