package sema

import "github.com/minilang-org/minilang/ast"

// scope is the semantic analyzer's hierarchical symbol table: one map of
// declared types per block, chained to its enclosing scope. It mirrors the
// shape of the teacher's scope.Scope (scope/scope.go) — lookup walks the
// parent chain, declaration only ever touches the current scope — but
// carries ast.Type instead of a runtime object, since the analyzer never
// holds values.
type scope struct {
	vars   map[string]ast.Type
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]ast.Type), parent: parent}
}

// declare binds name in this scope only. It reports whether name already
// existed in THIS scope (a redeclaration, which spec §4.3 treats as an
// error); shadowing a parent binding is always permitted.
func (s *scope) declare(name string, typ ast.Type) bool {
	_, exists := s.vars[name]
	s.vars[name] = typ
	return exists
}

// lookup walks the scope chain outward, mirroring scope.Scope.LookUp.
func (s *scope) lookup(name string) (ast.Type, bool) {
	if t, ok := s.vars[name]; ok {
		return t, true
	}
	if s.parent != nil {
		return s.parent.lookup(name)
	}
	return ast.Type{}, false
}
