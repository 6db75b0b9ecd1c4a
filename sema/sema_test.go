package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/diag"
	"github.com/minilang-org/minilang/parser"
)

func analyzeSrc(t *testing.T, src string) (*ast.Program, []diag.Diagnostic) {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	return prog, Analyze(prog)
}

func TestAnalyze_ValidProgramHasNoDiagnostics(t *testing.T) {
	_, diags := analyzeSrc(t, `
int x = 1;
float y = 2.0;
print(x);
print(y);
`)
	assert.Empty(t, diags)
}

func TestAnalyze_UndeclaredNameIsSemanticError(t *testing.T) {
	_, diags := analyzeSrc(t, `print(y);`)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Semantic, diags[0].Kind)
	assert.Contains(t, diags[0].Message, "undeclared name 'y'")
}

func TestAnalyze_RedeclarationInSameScopeIsError(t *testing.T) {
	_, diags := analyzeSrc(t, `int x = 1; int x = 2;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "redeclaration")
}

func TestAnalyze_ShadowingInNestedScopeIsAllowed(t *testing.T) {
	_, diags := analyzeSrc(t, `
int x = 1;
{
  int x = 2;
  print(x);
}
print(x);
`)
	assert.Empty(t, diags)
}

func TestAnalyze_IntFloatWideningInsertsCoerce(t *testing.T) {
	prog, diags := analyzeSrc(t, `float y = 0.0; y = 3 + y;`)
	require.Empty(t, diags)
	assign := prog.Items[1].(*ast.ExprStmt).X.(*ast.Assign)
	bin := assign.Value.(*ast.Binary)
	_, ok := bin.Left.(*ast.Coerce)
	require.True(t, ok, "expected the int operand to be wrapped in Coerce")
	assert.Equal(t, ast.Float, ast.ExprType(bin))
}

func TestAnalyze_StringPlusIntIsTypeError(t *testing.T) {
	_, diags := analyzeSrc(t, `print("n=" + 1);`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "requires two numbers or two strings")
}

func TestAnalyze_ArrayEqualityIsTypeError(t *testing.T) {
	_, diags := analyzeSrc(t, `int[2] a = [1,2]; int[2] b = [3,4]; print(a == b);`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "cannot compare arrays")
}

func TestAnalyze_PrintingArrayIsTypeError(t *testing.T) {
	_, diags := analyzeSrc(t, `int[2] a = [1,2]; print(a);`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "cannot print")
}

func TestAnalyze_ArrayDeclarationWithoutSizeOrInitializerIsError(t *testing.T) {
	_, diags := analyzeSrc(t, `int[] a;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "needs either a size or an initializer")
}

func TestAnalyze_ArraySizeMismatchOnAssignIsError(t *testing.T) {
	_, diags := analyzeSrc(t, `int[3] a = [1,2,3]; int[2] b = [1,2]; a = b;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "cannot assign")
}

func TestAnalyze_CallArityMismatchIsError(t *testing.T) {
	_, diags := analyzeSrc(t, `
function add(int a, int b): int { return a + b; }
print(add(1));
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "expects 2 argument")
}

func TestAnalyze_FunctionsAreMutuallyVisibleRegardlessOfOrder(t *testing.T) {
	_, diags := analyzeSrc(t, `
function isEven(int n): bool {
  if (n == 0) { return true; }
  return isOdd(n - 1);
}
function isOdd(int n): bool {
  if (n == 0) { return false; }
  return isEven(n - 1);
}
print(isEven(4));
`)
	assert.Empty(t, diags)
}

func TestAnalyze_MissingReturnOnSomePathIsError(t *testing.T) {
	_, diags := analyzeSrc(t, `
function f(int n): int {
  if (n > 0) {
    return n;
  }
}
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "does not return on every path")
}

func TestAnalyze_ReturnOnEveryPathViaIfElseIsAccepted(t *testing.T) {
	_, diags := analyzeSrc(t, `
function f(int n): int {
  if (n > 0) {
    return n;
  } else {
    return 0;
  }
}
`)
	assert.Empty(t, diags)
}

func TestAnalyze_ReturnOutsideFunctionIsError(t *testing.T) {
	_, diags := analyzeSrc(t, `return 1;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "return outside of a function")
}

func TestAnalyze_VoidFunctionReturningValueIsError(t *testing.T) {
	_, diags := analyzeSrc(t, `
function f() {
  return 1;
}
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "returns void")
}

func TestAnalyze_ConditionsMustBeBool(t *testing.T) {
	_, diags := analyzeSrc(t, `if (1) { print(1); }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "if condition must be bool")
}

func TestAnalyze_ArrayLiteralWidensToCommonFloatType(t *testing.T) {
	prog, diags := analyzeSrc(t, `array<float>[3] a = [1, 2.5, 3];`)
	require.Empty(t, diags)
	decl := prog.Items[0].(*ast.VarDecl)
	lit := decl.Init.(*ast.ArrayLit)
	assert.Equal(t, ast.Float, *lit.ResolvedType.Elem)
	_, firstIsCoerce := lit.Elements[0].(*ast.Coerce)
	assert.True(t, firstIsCoerce)
}

func TestAnalyzeProgram_SymbolTableListsFunctionsAndGlobals(t *testing.T) {
	prog, err := parser.Parse(`
int x = 1;
function f(int n): int { return n; }
`)
	require.NoError(t, err)
	table, diags := AnalyzeProgram(prog)
	require.Empty(t, diags)
	require.Len(t, table.Functions, 1)
	assert.Equal(t, "f", table.Functions[0].Name)
	require.Len(t, table.Globals, 1)
	assert.Equal(t, "x", table.Globals[0].Name)
}
