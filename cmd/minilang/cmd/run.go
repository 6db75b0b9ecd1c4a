package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minilang-org/minilang/interp"
	"github.com/minilang-org/minilang/parser"
	"github.com/minilang-org/minilang/sema"
)

var runEvalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Parse, analyze, and execute a Mini-Lang program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "run inline code instead of reading from file")
}

func runRun(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
		return err
	}

	if diags := sema.Analyze(prog); len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(cmd.ErrOrStderr(), "%s\n", d)
		}
		return diags[0]
	}

	if err := interp.Run(prog); err != nil {
		redColor.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
		return err
	}
	return nil
}
