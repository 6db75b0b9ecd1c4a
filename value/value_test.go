package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_String(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "-7", Int(-7).String())
}

func TestFloat_StringAlwaysHasDecimalPoint(t *testing.T) {
	assert.Equal(t, "3.0", Float(3).String())
	assert.Equal(t, "3.5", Float(3.5).String())
}

func TestBool_String(t *testing.T) {
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
}

func TestArray_GetSetAndString(t *testing.T) {
	arr := NewArray([]Value{Int(1), Int(2), Int(3)})
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, "[1, 2, 3]", arr.String())

	arr.Set(1, Int(99))
	assert.Equal(t, Int(99), arr.Get(1))
}

func TestTruthy_ExtractsBoolAndPanicsOnOtherKinds(t *testing.T) {
	assert.True(t, Truthy(Bool(true)))
	assert.False(t, Truthy(Bool(false)))

	require.Panics(t, func() { Truthy(Int(1)) })
}
