// Package diag formats pipeline diagnostics. It generalizes the teacher's
// ad hoc "[line:col] message" string building (scattered across
// parser.addError and eval.CreateError) into one reusable, testable
// formatter per spec §4.5.
package diag

import "fmt"

// Kind is one of the four diagnostic categories spec §7 defines.
type Kind string

const (
	Lexical   Kind = "Lexical"
	Syntactic Kind = "Syntactic"
	Semantic  Kind = "Semantic"
	Runtime   Kind = "Runtime"
)

// Diagnostic is a single reported error: a kind, a source span, and a
// message. It implements error so callers can return it directly or wrap
// it in a slice for semantic analysis's intra-phase batching.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Column  int
	Message string
}

func New(kind Kind, line, column int, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// Error formats the diagnostic per spec §6: "<kind> error at line L,
// column C: <message>". Output is stable and intended to be compared
// directly in tests.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s error at line %d, column %d: %s", d.Kind, d.Line, d.Column, d.Message)
}
