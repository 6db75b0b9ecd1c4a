// Package emitter declares the contract a target-language code generator
// must satisfy; spec §4.6 places the generator itself out of scope
// ("a straightforward structural walk once §4 is implemented"), so this
// package carries only the interface the core promises to support.
package emitter

import "github.com/minilang-org/minilang/ast"

// Target turns a semantically analyzed Program into equivalent source for
// some target scripting language. Implementations rely on every
// expression node carrying its ast.ExprType (in particular, on Coerce
// nodes marking the sites where Mini-Lang's implicit Int->Float widening
// must become explicit in a target language that does not widen
// automatically).
type Target interface {
	// Name identifies the target language, e.g. "python" or "lua".
	Name() string

	// Emit translates prog and returns the generated source text.
	Emit(prog *ast.Program) (string, error)
}
