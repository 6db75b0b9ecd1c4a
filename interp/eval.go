package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/value"
)

// evalExpr is the post-order expression evaluator spec §4.4 describes.
// Every contract it documents (short-circuit and/or, zero-divisor checks,
// bounds-checked indexing, Coerce realizing widening at the analyzer's
// marked sites) is implemented here.
func (it *Interpreter) evalExpr(e ast.Expr, env *env) value.Value {
	switch v := e.(type) {
	case *ast.IntLit:
		return value.Int(v.Value)
	case *ast.FloatLit:
		return value.Float(v.Value)
	case *ast.BoolLit:
		return value.Bool(v.Value)
	case *ast.StringLit:
		return value.String(v.Value)
	case *ast.Identifier:
		val, ok := env.lookup(v.Name)
		if !ok {
			panic("interp: undeclared name '" + v.Name + "' reached the interpreter")
		}
		return val
	case *ast.ArrayLit:
		elems := make([]value.Value, len(v.Elements))
		for i, elem := range v.Elements {
			elems[i] = it.evalExpr(elem, env)
		}
		return value.NewArray(elems)
	case *ast.Unary:
		return it.evalUnary(v, env)
	case *ast.Binary:
		return it.evalBinary(v, env)
	case *ast.Index:
		return it.evalIndex(v, env)
	case *ast.Call:
		return it.evalCall(v, env)
	case *ast.Assign:
		return it.evalAssign(v, env)
	case *ast.Coerce:
		inner := it.evalExpr(v.Inner, env)
		if iv, ok := inner.(value.Int); ok {
			return value.Float(float64(iv))
		}
		return inner
	default:
		panic("interp: evalExpr: unhandled expression node")
	}
}

func (it *Interpreter) evalUnary(v *ast.Unary, env *env) value.Value {
	operand := it.evalExpr(v.Operand, env)
	switch v.Op {
	case ast.Not:
		return value.Bool(!value.Truthy(operand))
	case ast.Neg:
		switch ov := operand.(type) {
		case value.Int:
			return -ov
		case value.Float:
			return -ov
		}
	}
	panic("interp: evalUnary: unhandled operator")
}

func (it *Interpreter) evalBinary(v *ast.Binary, env *env) value.Value {
	switch v.Op {
	case ast.LogicalAnd:
		l := it.evalExpr(v.Left, env)
		if !value.Truthy(l) {
			return value.Bool(false)
		}
		return value.Bool(value.Truthy(it.evalExpr(v.Right, env)))
	case ast.LogicalOr:
		l := it.evalExpr(v.Left, env)
		if value.Truthy(l) {
			return value.Bool(true)
		}
		return value.Bool(value.Truthy(it.evalExpr(v.Right, env)))
	}

	l := it.evalExpr(v.Left, env)
	r := it.evalExpr(v.Right, env)

	switch v.Op {
	case ast.Add:
		switch lv := l.(type) {
		case value.Int:
			return lv + r.(value.Int)
		case value.Float:
			return lv + r.(value.Float)
		case value.String:
			return lv + r.(value.String)
		}
	case ast.Sub:
		switch lv := l.(type) {
		case value.Int:
			return lv - r.(value.Int)
		case value.Float:
			return lv - r.(value.Float)
		}
	case ast.Mul:
		switch lv := l.(type) {
		case value.Int:
			return lv * r.(value.Int)
		case value.Float:
			return lv * r.(value.Float)
		}
	case ast.Div:
		switch lv := l.(type) {
		case value.Int:
			ri := r.(value.Int)
			if ri == 0 {
				it.fail(v.Pos, "division by zero")
			}
			return lv / ri
		case value.Float:
			return lv / r.(value.Float)
		}
	case ast.Mod:
		switch lv := l.(type) {
		case value.Int:
			ri := r.(value.Int)
			if ri == 0 {
				it.fail(v.Pos, "modulo by zero")
			}
			return lv % ri
		case value.Float:
			return value.Float(math.Mod(float64(lv), float64(r.(value.Float))))
		}
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return value.Bool(compareOrdered(v.Op, l, r))
	case ast.Eq:
		return value.Bool(valuesEqual(l, r))
	case ast.Ne:
		return value.Bool(!valuesEqual(l, r))
	}
	panic("interp: evalBinary: unhandled operator/operand combination")
}

func compareOrdered(op ast.BinaryOp, l, r value.Value) bool {
	switch lv := l.(type) {
	case value.Int:
		rv := r.(value.Int)
		switch op {
		case ast.Lt:
			return lv < rv
		case ast.Le:
			return lv <= rv
		case ast.Gt:
			return lv > rv
		case ast.Ge:
			return lv >= rv
		}
	case value.Float:
		rv := r.(value.Float)
		switch op {
		case ast.Lt:
			return lv < rv
		case ast.Le:
			return lv <= rv
		case ast.Gt:
			return lv > rv
		case ast.Ge:
			return lv >= rv
		}
	case value.String:
		rv := r.(value.String)
		switch op {
		case ast.Lt:
			return lv < rv
		case ast.Le:
			return lv <= rv
		case ast.Gt:
			return lv > rv
		case ast.Ge:
			return lv >= rv
		}
	}
	panic("interp: compareOrdered: unhandled operand type")
}

func valuesEqual(l, r value.Value) bool {
	switch lv := l.(type) {
	case value.Int:
		rv, ok := r.(value.Int)
		return ok && lv == rv
	case value.Float:
		rv, ok := r.(value.Float)
		return ok && lv == rv
	case value.Bool:
		rv, ok := r.(value.Bool)
		return ok && lv == rv
	case value.String:
		rv, ok := r.(value.String)
		return ok && lv == rv
	default:
		return false
	}
}

func (it *Interpreter) evalIndex(v *ast.Index, env *env) value.Value {
	targetVal := it.evalExpr(v.Target, env)
	arr, ok := targetVal.(*value.Array)
	if !ok {
		panic("interp: index target is not an array")
	}
	idx := int(it.evalExpr(v.Idx, env).(value.Int))
	if idx < 0 || idx >= arr.Len() {
		it.fail(v.Pos, "index %d out of bounds for array of length %d", idx, arr.Len())
	}
	return arr.Get(idx)
}

func (it *Interpreter) evalCall(v *ast.Call, env *env) value.Value {
	if v.Callee == "input" {
		return it.evalInput(v, env)
	}

	fn, ok := it.funcs[v.Callee]
	if !ok {
		panic("interp: call to unknown function '" + v.Callee + "'")
	}

	args := make([]value.Value, len(v.Args))
	for i, a := range v.Args {
		args[i] = it.evalExpr(a, env)
	}

	// A call's scope is parented at the global environment, not the call
	// site's: Mini-Lang has no nested function declarations or closures
	// (spec §3), so a function body may only see globals and its own
	// locals/parameters.
	callEnv := newEnv(it.global)
	for i, p := range fn.Params {
		callEnv.define(p.Name, copyValue(args[i]))
	}
	c := it.execBlock(fn.Body, callEnv)
	if c.isReturn {
		return c.value
	}
	return value.Unit{}
}

func (it *Interpreter) evalInput(v *ast.Call, env *env) value.Value {
	prompt := it.evalExpr(v.Args[0], env)
	fmt.Fprint(it.Writer, string(prompt.(value.String)))
	if flusher, ok := it.Writer.(interface{ Flush() error }); ok {
		flusher.Flush()
	}
	line, err := it.Reader.ReadString('\n')
	if err != nil && line == "" {
		it.fail(v.Pos, "unexpected end of input")
	}
	return value.String(strings.TrimRight(line, "\r\n"))
}

func (it *Interpreter) evalAssign(v *ast.Assign, env *env) value.Value {
	val := it.evalExpr(v.Value, env)
	switch t := v.Target.(type) {
	case *ast.Identifier:
		env.assign(t.Name, copyValue(val))
	case *ast.Index:
		targetVal := it.evalExpr(t.Target, env)
		arr, ok := targetVal.(*value.Array)
		if !ok {
			panic("interp: assignment index target is not an array")
		}
		idx := int(it.evalExpr(t.Idx, env).(value.Int))
		if idx < 0 || idx >= arr.Len() {
			it.fail(t.Pos, "index %d out of bounds for array of length %d", idx, arr.Len())
		}
		arr.Set(idx, val)
	}
	return val
}

// copyValue implements spec §5's "assigning an array to a new binding
// copies it": scalars are already copied by Go's value semantics, so only
// *value.Array needs an explicit deep copy.
func copyValue(v value.Value) value.Value {
	if arr, ok := v.(*value.Array); ok {
		elems := make([]value.Value, len(arr.Elements))
		for i, e := range arr.Elements {
			elems[i] = copyValue(e)
		}
		return value.NewArray(elems)
	}
	return v
}
