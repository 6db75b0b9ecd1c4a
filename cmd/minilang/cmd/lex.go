package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang-org/minilang/lexer"
	"github.com/minilang-org/minilang/token"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Mini-Lang file or expression",
	Long: `Tokenize a Mini-Lang program and print the resulting tokens.

Examples:
  minilang lex script.ml
  minilang lex -e "x = 1 + 2;"
  minilang lex --show-type --show-pos script.ml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token kind names")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(source)
	if err != nil {
		redColor.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		return err
	}
	for _, t := range toks {
		printToken(t)
	}
	return nil
}

// printToken formats one token as "[KIND] "lexeme" @line:col", matching the
// dump format _examples/CWBudde-go-dws's lexCmd uses for its own tokenizer.
func printToken(tok token.Token) {
	out := ""
	if showType {
		out += fmt.Sprintf("[%-14s]", tok.Kind)
	}
	if tok.Kind == token.EOF {
		out += " EOF"
	} else {
		out += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Line, tok.Column)
	}
	fmt.Println(out)
}
