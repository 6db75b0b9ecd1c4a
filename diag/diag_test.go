package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostic_ErrorFormatIsStableAndMatchesSpec(t *testing.T) {
	d := New(Runtime, 2, 7, "index %d out of bounds for array of length %d", 5, 3)
	assert.Equal(t, "Runtime error at line 2, column 7: index 5 out of bounds for array of length 3", d.Error())
}

func TestDiagnostic_EveryKindFormatsItsTag(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Lexical, "Lexical error at line 1, column 1: x"},
		{Syntactic, "Syntactic error at line 1, column 1: x"},
		{Semantic, "Semantic error at line 1, column 1: x"},
		{Runtime, "Runtime error at line 1, column 1: x"},
	}
	for _, c := range cases {
		d := New(c.kind, 1, 1, "x")
		assert.Equal(t, c.want, d.Error())
	}
}
