package sema

import (
	"sort"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/diag"
)

// GlobalSymbol is one top-level variable binding visible after analysis.
type GlobalSymbol struct {
	Name string
	Type ast.Type
}

// SymbolTable is the program-scope symbol information spec §6's --symbols
// flag dumps: every declared function's signature and every top-level
// variable's resolved type. Nested block scopes are transient (they are
// pushed and popped while walking a function body) and are not retained
// past one analysis run, mirroring the teacher's Scope tree, which also
// exists only for the lifetime of an eval call.
type SymbolTable struct {
	Functions []FuncSig
	Globals   []GlobalSymbol
}

// AnalyzeProgram type-checks prog exactly as Analyze does, additionally
// returning the resulting symbol table.
func AnalyzeProgram(prog *ast.Program) (*SymbolTable, []diag.Diagnostic) {
	a := &Analyzer{funcs: make(map[string]*FuncSig), global: newScope(nil)}
	a.run(prog)
	return a.symbolTable(), a.diags
}

// Analyze type-checks prog in place (annotating expression nodes and
// inserting Coerce nodes) and returns every diagnostic found. A nil or
// empty result means prog is semantically valid.
func Analyze(prog *ast.Program) []diag.Diagnostic {
	_, diags := AnalyzeProgram(prog)
	return diags
}

func (a *Analyzer) symbolTable() *SymbolTable {
	t := &SymbolTable{}
	for _, sig := range a.funcs {
		t.Functions = append(t.Functions, *sig)
	}
	sort.Slice(t.Functions, func(i, j int) bool { return t.Functions[i].Name < t.Functions[j].Name })

	for name, typ := range a.global.vars {
		t.Globals = append(t.Globals, GlobalSymbol{Name: name, Type: typ})
	}
	sort.Slice(t.Globals, func(i, j int) bool { return t.Globals[i].Name < t.Globals[j].Name })
	return t
}
