// Package repl implements Mini-Lang's interactive Read-Eval-Print Loop.
// It is grounded on the teacher's repl package (repl/repl.go): the same
// banner/prompt struct, the same chzyer/readline + fatih/color pairing for
// line editing and colored output, and the same "catch a panic, print it
// in red, keep going" recovery loop. What changes is the pipeline behind
// each line: Mini-Lang parses, analyzes, and interprets through the new
// parser/sema/interp packages instead of go-mix's single-pass evaluator,
// and a persistent sema.Session plus interp.Interpreter (rather than one
// mutable Scope) carry declarations across lines.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/interp"
	"github.com/minilang-org/minilang/parser"
	"github.com/minilang-org/minilang/sema"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const defaultBanner = `
  __  __ _       _   _
 |  \/  (_)     (_) | |
 | \  / |_ _ __  _  | |     __ _ _ __ __ _
 | |\/| | | '_ \| | | |    / _` + "`" + ` | '_ / _` + "`" + ` |
 | |  | | | | | | | | |___| (_| | | | (_| |
 |_|  |_|_|_| |_|_| |______\__,_|_|  \__, |
                                      __/ |
                                     |___/ `

// Repl holds the cosmetic configuration of one interactive session; its
// zero-value-adjacent fields can be overridden by loading a Config (see
// config.go) before Start is called.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with Mini-Lang's stock banner and prompt.
func New() *Repl {
	return &Repl{
		Banner:  defaultBanner,
		Version: "0.1.0",
		Author:  "the minilang project",
		Line:    strings.Repeat("-", 60),
		License: "MIT",
		Prompt:  "mini> ",
	}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Mini-Lang.")
	cyanColor.Fprintf(w, "%s\n", "Type a statement and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the main loop: read a line, run it through the pipeline,
// report diagnostics in red, keep the session's declarations alive across
// lines, and recover from any internal panic rather than crash the REPL.
func (r *Repl) Start(stdin io.Reader, stdout io.Writer) {
	r.printBanner(stdout)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := sema.NewSession()
	runner := interp.New(&ast.Program{})
	runner.SetWriter(stdout)
	runner.SetReader(stdin)

	for {
		line, err := rl.Readline()
		if err != nil {
			stdout.Write([]byte("Goodbye.\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			stdout.Write([]byte("Goodbye.\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(stdout, line, session, runner)
	}
}

func (r *Repl) evalLine(w io.Writer, line string, session *sema.Session, runner *interp.Interpreter) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[internal error] %v\n", rec)
		}
	}()

	prog, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}

	if diags := session.AnalyzeLine(prog); len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(w, "%s\n", d)
		}
		return
	}

	runner.RegisterFunctions(prog)
	if err := runner.Run(prog); err != nil {
		redColor.Fprintf(w, "%s\n", err)
	}
}
