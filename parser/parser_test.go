package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/diag"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func TestParse_VarDeclWithInitializer(t *testing.T) {
	prog := mustParse(t, `int x = 1 + 2;`)
	require.Len(t, prog.Items, 1)
	decl, ok := prog.Items[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, ast.Int, decl.DeclaredType)
	bin, ok := decl.Init.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Op)
}

func TestParse_ArithmeticPrecedenceAndAssociativity(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3), i.e. the outer node is '+'.
	prog := mustParse(t, `print(1 + 2 * 3);`)
	p := prog.Items[0].(*ast.Print)
	top := p.X.(*ast.Binary)
	assert.Equal(t, ast.Add, top.Op)
	_, rightIsMul := top.Right.(*ast.Binary)
	assert.True(t, rightIsMul)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog := mustParse(t, `int a = 0; int b = 0; a = b = 5;`)
	stmt := prog.Items[2].(*ast.ExprStmt)
	outer := stmt.X.(*ast.Assign)
	assert.Equal(t, "a", outer.Target.(*ast.Identifier).Name)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Target.(*ast.Identifier).Name)
}

func TestParse_UnaryAndLogicalOperators(t *testing.T) {
	prog := mustParse(t, `print(not true and false or not false);`)
	p := prog.Items[0].(*ast.Print)
	top := p.X.(*ast.Binary)
	assert.Equal(t, ast.LogicalOr, top.Op)
}

func TestParse_IndexAndCallExpressions(t *testing.T) {
	prog := mustParse(t, `
function f(int n): int { return n; }
int[3] a = [1, 2, 3];
print(f(a[0]));
`)
	printStmt := prog.Items[2].(*ast.Print)
	call := printStmt.X.(*ast.Call)
	assert.Equal(t, "f", call.Callee)
	idx := call.Args[0].(*ast.Index)
	assert.Equal(t, "a", idx.Target.(*ast.Identifier).Name)
}

func TestParse_ArrayTypeBothSpellingsAccepted(t *testing.T) {
	prog := mustParse(t, `int[3] a = [1,2,3]; array<int>[3] b = [1,2,3];`)
	a := prog.Items[0].(*ast.VarDecl)
	b := prog.Items[1].(*ast.VarDecl)
	assert.True(t, a.DeclaredType.Equal(b.DeclaredType))
}

func TestParse_IfElseIfElseChain(t *testing.T) {
	prog := mustParse(t, `
if (true) { print(1); } else if (false) { print(2); } else { print(3); }
`)
	ifStmt := prog.Items[0].(*ast.If)
	require.NotNil(t, ifStmt.Else)
	require.Len(t, ifStmt.Else.Stmts, 1)
	nested, ok := ifStmt.Else.Stmts[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, nested.Else)
}

func TestParse_ForLoop(t *testing.T) {
	prog := mustParse(t, `for (int i = 0; i < 10; i = i + 1) { print(i); }`)
	forStmt := prog.Items[0].(*ast.For)
	_, ok := forStmt.Init.(*ast.VarDecl)
	require.True(t, ok)
}

func TestParse_FunctionDeclWithoutReturnTypeIsVoid(t *testing.T) {
	prog := mustParse(t, `function greet() { print("hi"); }`)
	fn := prog.Items[0].(*ast.FunctionDecl)
	assert.Equal(t, ast.Void, fn.ReturnType)
}

func TestParse_FunctionDeclWithReturnType(t *testing.T) {
	prog := mustParse(t, `function add(int a, int b): int { return a + b; }`)
	fn := prog.Items[0].(*ast.FunctionDecl)
	assert.Equal(t, ast.Int, fn.ReturnType)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
}

func TestParse_BareExpressionStatementIsAccepted(t *testing.T) {
	prog := mustParse(t, `1 + 1;`)
	_, ok := prog.Items[0].(*ast.ExprStmt)
	assert.True(t, ok)
}

func TestParse_InvalidAssignmentTargetIsSyntacticError(t *testing.T) {
	_, err := Parse(`1 + 1 = 2;`)
	require.Error(t, err)
	d, ok := err.(diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.Syntactic, d.Kind)
	assert.Contains(t, d.Message, "invalid assignment target")
}

func TestParse_MissingSemicolonReportsExpectedFound(t *testing.T) {
	_, err := Parse(`int x = 1`)
	require.Error(t, err)
	d, ok := err.(diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.Syntactic, d.Kind)
	assert.Contains(t, d.Message, "expected ';'")
	assert.Contains(t, d.Message, "EOF")
}

func TestParse_PropagatesLexicalErrorAsDiagnostic(t *testing.T) {
	_, err := Parse(`int x = @;`)
	require.Error(t, err)
	d, ok := err.(diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.Lexical, d.Kind)
}
