package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang-org/minilang/parser"
	"github.com/minilang-org/minilang/sema"
)

var (
	emitOutPath string
	emitTarget  string
)

// emitCmd exercises the same pipeline prefix run does (parse, then
// analyze), then hands the checked program to an emitter.Target. No
// concrete Target ships in this module — emitter.Target is an interface
// only, per spec §4.6 ("a straightforward structural walk once §4 is
// implemented" is explicitly out of scope) — so emit always reports that
// no target is registered rather than silently doing nothing.
var emitCmd = &cobra.Command{
	Use:   "emit [file]",
	Short: "Translate a Mini-Lang program to a target language (no built-in target)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)
	emitCmd.Flags().StringVarP(&emitOutPath, "out", "o", "", "write emitted target-language source to PATH")
	emitCmd.Flags().StringVar(&emitTarget, "target", "", "target language name")
}

func runEmit(cmd *cobra.Command, args []string) error {
	source, _, err := readSource("", args)
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

	err = fmt.Errorf("no emitter.Target is registered for %q; code generation is interface-only", emitTarget)
	redColor.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
	return err
}
