package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/minilang-org/minilang/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Mini-Lang REPL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok, err := repl.LoadConfig(".minilang.yaml")
		if err != nil {
			redColor.Fprintf(cmd.ErrOrStderr(), "loading .minilang.yaml: %v\n", err)
		}
		r := repl.New()
		if ok {
			r.Apply(cfg)
		}
		r.Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
