package interp

import (
	"fmt"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/value"
)

// execBlock pushes a fresh scope (spec §4.4: "block entry pushes a scope
// onto the current frame"), runs every statement in order, and stops early
// with a return control the moment one is produced.
func (it *Interpreter) execBlock(b *ast.Block, parent *env) control {
	inner := newEnv(parent)
	for _, stmt := range b.Stmts {
		c := it.execStmt(stmt, inner)
		if c.isReturn {
			return c
		}
	}
	return noControl
}

func (it *Interpreter) execStmt(stmt ast.Stmt, e *env) control {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		it.execVarDecl(v, e)
		return noControl
	case *ast.ExprStmt:
		it.evalExpr(v.X, e)
		return noControl
	case *ast.Block:
		return it.execBlock(v, e)
	case *ast.If:
		return it.execIf(v, e)
	case *ast.While:
		return it.execWhile(v, e)
	case *ast.For:
		return it.execFor(v, e)
	case *ast.Return:
		if v.Value == nil {
			return control{isReturn: true, value: value.Unit{}}
		}
		return control{isReturn: true, value: it.evalExpr(v.Value, e)}
	case *ast.Print:
		it.execPrint(v, e)
		return noControl
	default:
		return noControl
	}
}

func (it *Interpreter) execVarDecl(v *ast.VarDecl, e *env) {
	var val value.Value
	if v.Init != nil {
		val = copyValue(it.evalExpr(v.Init, e))
	} else {
		val = defaultValue(v.DeclaredType)
	}
	e.define(v.Name, val)
}

func (it *Interpreter) execIf(v *ast.If, e *env) control {
	if value.Truthy(it.evalExpr(v.Cond, e)) {
		return it.execBlock(v.Then, e)
	}
	if v.Else != nil {
		return it.execBlock(v.Else, e)
	}
	return noControl
}

func (it *Interpreter) execWhile(v *ast.While, e *env) control {
	for value.Truthy(it.evalExpr(v.Cond, e)) {
		c := it.execBlock(v.Body, e)
		if c.isReturn {
			return c
		}
	}
	return noControl
}

func (it *Interpreter) execFor(v *ast.For, e *env) control {
	header := newEnv(e)
	it.execStmt(v.Init, header)
	for value.Truthy(it.evalExpr(v.Cond, header)) {
		c := it.execBlock(v.Body, header)
		if c.isReturn {
			return c
		}
		it.evalExpr(v.Step, header)
	}
	return noControl
}

func (it *Interpreter) execPrint(v *ast.Print, e *env) {
	val := it.evalExpr(v.X, e)
	fmt.Fprintln(it.Writer, val.String())
}

// defaultValue builds the zero value spec §4.4 prescribes for a
// declaration with no initializer.
func defaultValue(t ast.Type) value.Value {
	switch t.Kind {
	case ast.KInt:
		return value.Int(0)
	case ast.KFloat:
		return value.Float(0)
	case ast.KBool:
		return value.Bool(false)
	case ast.KString:
		return value.String("")
	case ast.KArray:
		elems := make([]value.Value, t.Size)
		for i := range elems {
			elems[i] = defaultValue(*t.Elem)
		}
		return value.NewArray(elems)
	default:
		return value.Unit{}
	}
}
