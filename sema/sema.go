// Package sema implements Mini-Lang's semantic analyzer: a pre-pass that
// gives every function forward and mutual visibility, followed by a single
// descending pass that builds a tree of scopes (sema.scope), annotates
// every expression with its resolved type, inserts explicit widening nodes,
// and type-checks declarations, statements, and control flow.
//
// Unlike the parser (which aborts at the first error via panic/recover),
// the analyzer batches every diagnostic it finds into one slice and keeps
// going, mirroring how the teacher's evaluator collected multiple runtime
// errors rather than stopping at the first one, and matching spec §4.3's
// explicit "does not abort on the first error" requirement.
package sema

import (
	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/diag"
)

// FuncSig is the program-scope Function symbol spec §3 describes.
type FuncSig struct {
	Name       string
	ParamTypes []ast.Type
	ParamNames []string
	Return     ast.Type
	Decl       *ast.FunctionDecl
}

// Analyzer holds the state threaded through one analysis run.
type Analyzer struct {
	funcs  map[string]*FuncSig
	diags  []diag.Diagnostic
	global *scope

	// curFunc is the signature of the function body currently being
	// walked, or nil at top level; it governs Return's type checking.
	curFunc *FuncSig
}

// run type-checks prog in place (annotating expression nodes and inserting
// Coerce nodes) against a, appending every diagnostic found to a.diags.
// Analyze and AnalyzeProgram (symtab.go) are the two public entry points
// built on top of this; Session.AnalyzeLine calls it once per REPL line
// against one persistent Analyzer.
func (a *Analyzer) run(prog *ast.Program) {
	a.collectFunctions(prog)
	for i, item := range prog.Items {
		if fn, ok := item.(*ast.FunctionDecl); ok {
			a.analyzeFunction(fn)
			continue
		}
		st, ok := item.(ast.Stmt)
		if !ok {
			continue
		}
		a.analyzeStmt(&st, a.global)
		prog.Items[i] = st
	}
}

// Session is a persistent analyzer used by the REPL: each line is parsed
// into its own *ast.Program, but function declarations and top-level
// variables accumulate in one scope and one function table across calls,
// so later lines can see names earlier lines introduced.
type Session struct {
	a *Analyzer
}

// NewSession starts an empty analysis session.
func NewSession() *Session {
	return &Session{a: &Analyzer{funcs: make(map[string]*FuncSig), global: newScope(nil)}}
}

// AnalyzeLine runs the pre-pass and the descending pass against prog,
// reusing the session's accumulated scope and function table.
func (s *Session) AnalyzeLine(prog *ast.Program) []diag.Diagnostic {
	s.a.diags = nil
	s.a.run(prog)
	return s.a.diags
}

func (a *Analyzer) errorf(span ast.Span, format string, args ...any) {
	a.diags = append(a.diags, diag.New(diag.Semantic, span.Line, span.Column, format, args...))
}

// collectFunctions is the pre-pass spec §4.3 calls for: every function
// declaration becomes visible in the program scope before any body is
// checked, regardless of source order (spec §8, invariant 4).
func (a *Analyzer) collectFunctions(prog *ast.Program) {
	for _, item := range prog.Items {
		fn, ok := item.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		if _, exists := a.funcs[fn.Name]; exists {
			a.errorf(fn.Pos, "duplicate declaration of function '%s'", fn.Name)
			continue
		}
		sig := &FuncSig{Name: fn.Name, Return: fn.ReturnType, Decl: fn}
		for _, p := range fn.Params {
			sig.ParamTypes = append(sig.ParamTypes, p.Type)
			sig.ParamNames = append(sig.ParamNames, p.Name)
		}
		a.funcs[fn.Name] = sig
	}
}

func (a *Analyzer) analyzeFunction(fn *ast.FunctionDecl) {
	sig := a.funcs[fn.Name]
	if sig == nil || sig.Decl != fn {
		// Only reachable if collectFunctions already reported a duplicate
		// and skipped registering this declaration.
		sig = &FuncSig{Name: fn.Name, Return: fn.ReturnType, Decl: fn}
	}

	fnScope := newScope(a.global)
	seen := make(map[string]bool)
	for _, p := range fn.Params {
		if seen[p.Name] {
			a.errorf(fn.Pos, "duplicate parameter name '%s' in function '%s'", p.Name, fn.Name)
			continue
		}
		seen[p.Name] = true
		fnScope.declare(p.Name, p.Type)
	}

	prevFunc := a.curFunc
	a.curFunc = sig
	mustReturn := a.analyzeBlock(fn.Body, fnScope)
	a.curFunc = prevFunc

	if fn.ReturnType.Kind != ast.KVoid && !mustReturn {
		a.errorf(fn.Pos, "function '%s' does not return on every path", fn.Name)
	}
}

// analyzeBlock pushes a fresh child scope (spec §4.3: "a new scope is
// pushed on entry to each block"), analyzes every statement in order, and
// reports whether the block must-returns per spec §4.3's structural rule:
// a block must-returns iff its last statement must-returns.
func (a *Analyzer) analyzeBlock(b *ast.Block, parent *scope) bool {
	inner := newScope(parent)
	mustReturn := false
	for i := range b.Stmts {
		mustReturn = a.analyzeStmt(&b.Stmts[i], inner)
	}
	return mustReturn
}

// analyzeStmt type-checks the statement at *slot (replacing it in place
// when widening requires wrapping its top-level expression) and reports
// whether it must-returns.
func (a *Analyzer) analyzeStmt(slot *ast.Stmt, sc *scope) bool {
	switch v := (*slot).(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(v, sc)
		return false
	case *ast.ExprStmt:
		v.X = a.analyzeExpr(v.X, sc)
		return false
	case *ast.Block:
		return a.analyzeBlock(v, sc)
	case *ast.If:
		return a.analyzeIf(v, sc)
	case *ast.While:
		a.analyzeWhile(v, sc)
		return false
	case *ast.For:
		a.analyzeFor(v, sc)
		return false
	case *ast.Return:
		a.analyzeReturn(v, sc)
		return true
	case *ast.Print:
		a.analyzePrint(v, sc)
		return false
	default:
		return false
	}
}

func (a *Analyzer) analyzeVarDecl(v *ast.VarDecl, sc *scope) {
	if v.DeclaredType.Kind == ast.KArray && !v.DeclaredType.HasSize && v.Init == nil {
		a.errorf(v.Pos, "array declaration '%s' needs either a size or an initializer", v.Name)
	}
	if v.DeclaredType.Kind == ast.KArray && v.DeclaredType.HasSize && v.DeclaredType.Size < 0 {
		a.errorf(v.Pos, "array size %d is out of range", v.DeclaredType.Size)
	}
	if v.Init != nil {
		v.Init = a.analyzeExpr(v.Init, sc)
		initType := ast.ExprType(v.Init)
		wrapped, ok := a.assignable(v.Init, initType, v.DeclaredType)
		if !ok {
			a.errorf(v.Pos, "cannot initialize '%s' of type %s with value of type %s", v.Name, v.DeclaredType, initType)
		} else {
			v.Init = wrapped
		}
	}
	if sc.declare(v.Name, v.DeclaredType) {
		a.errorf(v.Pos, "redeclaration of '%s' in the same scope", v.Name)
	}
}

func (a *Analyzer) analyzeIf(v *ast.If, sc *scope) bool {
	v.Cond = a.analyzeExpr(v.Cond, sc)
	if ast.ExprType(v.Cond).Kind != ast.KBool {
		a.errorf(v.Cond.Span(), "if condition must be bool, found %s", ast.ExprType(v.Cond))
	}
	thenReturns := a.analyzeBlock(v.Then, sc)
	if v.Else == nil {
		return false
	}
	elseReturns := a.analyzeBlock(v.Else, sc)
	return thenReturns && elseReturns
}

func (a *Analyzer) analyzeWhile(v *ast.While, sc *scope) {
	v.Cond = a.analyzeExpr(v.Cond, sc)
	if ast.ExprType(v.Cond).Kind != ast.KBool {
		a.errorf(v.Cond.Span(), "while condition must be bool, found %s", ast.ExprType(v.Cond))
	}
	a.analyzeBlock(v.Body, sc)
}

func (a *Analyzer) analyzeFor(v *ast.For, sc *scope) {
	// The for-header gets its own scope (spec §4.3) so an init var_decl's
	// name is visible to the condition, step, and body but nowhere else.
	header := newScope(sc)
	a.analyzeStmt(&v.Init, header)

	v.Cond = a.analyzeExpr(v.Cond, header)
	if ast.ExprType(v.Cond).Kind != ast.KBool {
		a.errorf(v.Cond.Span(), "for condition must be bool, found %s", ast.ExprType(v.Cond))
	}
	v.Step = a.analyzeExpr(v.Step, header)
	a.analyzeBlock(v.Body, header)
}

func (a *Analyzer) analyzeReturn(v *ast.Return, sc *scope) {
	if a.curFunc == nil {
		a.errorf(v.Pos, "return outside of a function")
		if v.Value != nil {
			v.Value = a.analyzeExpr(v.Value, sc)
		}
		return
	}
	if v.Value == nil {
		if a.curFunc.Return.Kind != ast.KVoid {
			a.errorf(v.Pos, "missing return value in function '%s' returning %s", a.curFunc.Name, a.curFunc.Return)
		}
		return
	}
	v.Value = a.analyzeExpr(v.Value, sc)
	valType := ast.ExprType(v.Value)
	if a.curFunc.Return.Kind == ast.KVoid {
		a.errorf(v.Pos, "function '%s' returns void but a value was returned", a.curFunc.Name)
		return
	}
	wrapped, ok := a.assignable(v.Value, valType, a.curFunc.Return)
	if !ok {
		a.errorf(v.Pos, "cannot return value of type %s from function '%s' declared to return %s", valType, a.curFunc.Name, a.curFunc.Return)
		return
	}
	v.Value = wrapped
}

func (a *Analyzer) analyzePrint(v *ast.Print, sc *scope) {
	before := len(a.diags)
	v.X = a.analyzeExpr(v.X, sc)
	t := ast.ExprType(v.X)
	// Void after an operand error is the placeholder type of an unresolved
	// name or call, which has already been reported; it is not reported again.
	if t.Kind == ast.KVoid && len(a.diags) > before {
		return
	}
	if t.Kind == ast.KArray || t.Kind == ast.KVoid {
		a.errorf(v.Pos, "cannot print a value of type %s", t)
	}
}

// assignable checks whether an expression of type from can be used where
// target is expected, per spec §4.3's assignment rule: exact match, or
// Int->Float widening. It returns the (possibly Coerce-wrapped) expression
// to substitute in the caller's slot.
func (a *Analyzer) assignable(e ast.Expr, from, target ast.Type) (ast.Expr, bool) {
	if from.Equal(target) {
		return e, true
	}
	if target.Kind == ast.KFloat && from.Kind == ast.KInt {
		return &ast.Coerce{Pos: e.Span(), Inner: e, ResolvedType: ast.Float}, true
	}
	return e, false
}
