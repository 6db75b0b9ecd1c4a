package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_EqualRequiresMatchingArrayElementAndKnownSizes(t *testing.T) {
	assert.True(t, ArrayOf(Int, 3).Equal(ArrayOf(Int, 3)))
	assert.False(t, ArrayOf(Int, 3).Equal(ArrayOf(Int, 4)))
	assert.False(t, ArrayOf(Int, 3).Equal(ArrayOf(Float, 3)))
	// An open (unsized) array type is compatible with any size on the
	// other side, e.g. matching a parameter declared without a length.
	assert.True(t, OpenArrayOf(Int).Equal(ArrayOf(Int, 3)))
}

func TestType_StringRendersArrayShapes(t *testing.T) {
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "int[3]", ArrayOf(Int, 3).String())
	assert.Equal(t, "int[]", OpenArrayOf(Int).String())
	assert.Equal(t, "void", Void.String())
}

func TestExprType_LiteralsHaveFixedTypes(t *testing.T) {
	assert.Equal(t, Int, ExprType(&IntLit{Value: 1}))
	assert.Equal(t, Float, ExprType(&FloatLit{Value: 1.5}))
	assert.Equal(t, Bool, ExprType(&BoolLit{Value: true}))
	assert.Equal(t, String, ExprType(&StringLit{Value: "x"}))
}

func TestExprType_AnnotatedNodesReturnResolvedType(t *testing.T) {
	id := &Identifier{Name: "x", ResolvedType: Float}
	assert.Equal(t, Float, ExprType(id))

	coerce := &Coerce{Inner: &IntLit{Value: 1}, ResolvedType: Float}
	assert.Equal(t, Float, ExprType(coerce))
}

func TestPrint_RendersProgramAsIndentedTree(t *testing.T) {
	prog := &Program{
		Items: []Node{
			&VarDecl{Name: "x", DeclaredType: Int, Init: &IntLit{Value: 1}},
			&Print{X: &Identifier{Name: "x", ResolvedType: Int}},
		},
	}
	out := Print(prog)
	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "VarDecl int x")
	assert.Contains(t, out, "IntLit 1")
	assert.Contains(t, out, "Print")
	assert.Contains(t, out, "Identifier x : int")
}
