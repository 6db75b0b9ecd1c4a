// Package interp is Mini-Lang's tree-walking interpreter. It is grounded on
// the teacher's eval package (eval/evaluator.go, eval/eval_statements.go,
// eval/eval_expressions.go): an Evaluator-shaped struct carrying a
// replaceable Writer/Reader pair, a runtime environment chain standing in
// for scope.Scope, and statement execution that threads a return signal
// through a block the way evalStatements threads a *std.ReturnValue.
//
// Control flow that must unwind several call frames at once (division by
// zero, an out-of-bounds index, EOF on input) is raised as a runtimeError
// and recovered at the single Run boundary, rather than threaded
// through every eval call's return values — the same panic/recover
// localization the parser already uses for syntactic errors.
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/diag"
	"github.com/minilang-org/minilang/value"
)

// Interpreter holds everything needed to execute a semantically valid
// Program: the function table, the global environment, and the I/O pair
// `print`/`input` read and write through.
type Interpreter struct {
	funcs  map[string]*ast.FunctionDecl
	global *env
	Writer io.Writer
	Reader *bufio.Reader
}

// New builds an Interpreter over prog, registering every top-level
// function declaration. prog is assumed to have already passed semantic
// analysis (sema.Analyze returned no diagnostics).
func New(prog *ast.Program) *Interpreter {
	it := &Interpreter{
		funcs:  make(map[string]*ast.FunctionDecl),
		global: newEnv(nil),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
	it.RegisterFunctions(prog)
	return it
}

// RegisterFunctions adds every top-level function declaration in prog to
// the interpreter's function table. New builds a table from one program in
// one shot; the REPL calls this incrementally, once per line, against a
// single long-lived Interpreter so later lines can call functions earlier
// lines declared.
func (it *Interpreter) RegisterFunctions(prog *ast.Program) {
	for _, item := range prog.Items {
		if fn, ok := item.(*ast.FunctionDecl); ok {
			it.funcs[fn.Name] = fn
		}
	}
}

// SetWriter redirects `print` output, mirroring Evaluator.SetWriter.
func (it *Interpreter) SetWriter(w io.Writer) { it.Writer = w }

// SetReader redirects `input` input, mirroring Evaluator.SetReader.
func (it *Interpreter) SetReader(r io.Reader) { it.Reader = bufio.NewReader(r) }

// runtimeError is the internal unwinding type for the four runtime fault
// kinds spec §7 lists: division/modulo by zero, index out of bounds, and
// EOF on input. It is never returned to callers directly.
type runtimeError struct {
	diag diag.Diagnostic
}

func (it *Interpreter) fail(span ast.Span, format string, args ...any) {
	panic(runtimeError{diag: diag.New(diag.Runtime, span.Line, span.Column, format, args...)})
}

// Run builds a fresh Interpreter with default stdio and executes prog.
// Callers that need a custom Writer/Reader (the REPL, tests) should build
// their own Interpreter with New and call its Run method instead.
func Run(prog *ast.Program) error {
	return New(prog).Run(prog)
}

// Run executes every top-level statement in prog, in order, against the
// global environment. It returns the first runtime diagnostic encountered,
// or nil on a clean run to completion.
func (it *Interpreter) Run(prog *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtimeError); ok {
				err = re.diag
				return
			}
			panic(r)
		}
	}()
	for _, item := range prog.Items {
		if _, ok := item.(*ast.FunctionDecl); ok {
			continue
		}
		stmt, ok := item.(ast.Stmt)
		if !ok {
			continue
		}
		it.execStmt(stmt, it.global)
	}
	return nil
}

// control threads a function return out of a block the way the teacher's
// evalStatements threads a *std.ReturnValue out of a statement list: the
// same shape, checked after every statement, short-circuiting the rest of
// the block and every enclosing block up to the call boundary.
type control struct {
	isReturn bool
	value    value.Value
}

var noControl = control{}
