package sema

import "github.com/minilang-org/minilang/ast"

// analyzeExpr resolves e's type (and the types of everything beneath it),
// returning the expression to substitute in the caller's slot: usually e
// itself, but a Coerce-wrapped replacement at every site spec §9 calls an
// implicit Int->Float widening.
func (a *Analyzer) analyzeExpr(e ast.Expr, sc *scope) ast.Expr {
	switch v := e.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.BoolLit, *ast.StringLit:
		return e
	case *ast.Identifier:
		typ, ok := sc.lookup(v.Name)
		if !ok {
			a.errorf(v.Pos, "undeclared name '%s'", v.Name)
			typ = ast.Void
		}
		v.ResolvedType = typ
		return v
	case *ast.ArrayLit:
		return a.analyzeArrayLit(v, sc)
	case *ast.Unary:
		return a.analyzeUnary(v, sc)
	case *ast.Binary:
		return a.analyzeBinary(v, sc)
	case *ast.Index:
		return a.analyzeIndex(v, sc)
	case *ast.Call:
		return a.analyzeCall(v, sc)
	case *ast.Assign:
		return a.analyzeAssign(v, sc)
	case *ast.Coerce:
		v.Inner = a.analyzeExpr(v.Inner, sc)
		return v
	default:
		panic("sema: analyzeExpr: unhandled expression node")
	}
}

func (a *Analyzer) analyzeArrayLit(v *ast.ArrayLit, sc *scope) ast.Expr {
	if len(v.Elements) == 0 {
		a.errorf(v.Pos, "cannot infer element type of an empty array literal")
		v.ResolvedType = ast.ArrayOf(ast.Void, 0)
		return v
	}
	types := make([]ast.Type, len(v.Elements))
	for i, elem := range v.Elements {
		v.Elements[i] = a.analyzeExpr(elem, sc)
		types[i] = ast.ExprType(v.Elements[i])
	}

	first := types[0]
	allSame, allNumeric := true, true
	for _, t := range types {
		if !t.Equal(first) {
			allSame = false
		}
		if !t.IsNumeric() {
			allNumeric = false
		}
	}

	common := first
	if !allSame {
		if allNumeric {
			common = ast.Float
		} else {
			a.errorf(v.Pos, "array literal elements have incompatible types")
		}
	}

	for i, elem := range v.Elements {
		wrapped, ok := a.assignable(elem, types[i], common)
		if !ok {
			a.errorf(elem.Span(), "array literal element %d has type %s, expected %s", i, types[i], common)
			continue
		}
		v.Elements[i] = wrapped
	}
	v.ResolvedType = ast.ArrayOf(common, len(v.Elements))
	return v
}

func (a *Analyzer) analyzeUnary(v *ast.Unary, sc *scope) ast.Expr {
	v.Operand = a.analyzeExpr(v.Operand, sc)
	t := ast.ExprType(v.Operand)
	switch v.Op {
	case ast.Not:
		if t.Kind != ast.KBool {
			a.errorf(v.Pos, "operator 'not' requires bool, found %s", t)
			t = ast.Bool
		}
		v.ResolvedType = ast.Bool
	case ast.Neg:
		if !t.IsNumeric() {
			a.errorf(v.Pos, "unary '-' requires int or float, found %s", t)
			t = ast.Int
		}
		v.ResolvedType = t
	}
	return v
}

// widenNumericPair applies spec §4.3's arithmetic/comparison widening rule
// to a pair of already-analyzed operands: if both are Int, no widening; if
// either is Float, the Int side (if any) is wrapped in a Coerce and the
// common type is Float. ok is false if either operand is not numeric.
func (a *Analyzer) widenNumericPair(left, right ast.Expr) (ast.Expr, ast.Expr, ast.Type, bool) {
	lt, rt := ast.ExprType(left), ast.ExprType(right)
	if !lt.IsNumeric() || !rt.IsNumeric() {
		return left, right, ast.Type{}, false
	}
	if lt.Kind == ast.KInt && rt.Kind == ast.KInt {
		return left, right, ast.Int, true
	}
	nl, _ := a.assignable(left, lt, ast.Float)
	nr, _ := a.assignable(right, rt, ast.Float)
	return nl, nr, ast.Float, true
}

func (a *Analyzer) analyzeBinary(v *ast.Binary, sc *scope) ast.Expr {
	v.Left = a.analyzeExpr(v.Left, sc)
	v.Right = a.analyzeExpr(v.Right, sc)
	lt, rt := ast.ExprType(v.Left), ast.ExprType(v.Right)

	switch v.Op {
	case ast.Add:
		if lt.Kind == ast.KString && rt.Kind == ast.KString {
			v.ResolvedType = ast.String
			return v
		}
		if nl, nr, res, ok := a.widenNumericPair(v.Left, v.Right); ok {
			v.Left, v.Right, v.ResolvedType = nl, nr, res
			return v
		}
		a.errorf(v.Pos, "operator '+' requires two numbers or two strings, found %s and %s", lt, rt)
		v.ResolvedType = lt
		return v

	case ast.Sub, ast.Mul, ast.Div, ast.Mod:
		if nl, nr, res, ok := a.widenNumericPair(v.Left, v.Right); ok {
			v.Left, v.Right, v.ResolvedType = nl, nr, res
			return v
		}
		a.errorf(v.Pos, "operator '%s' requires numeric operands, found %s and %s", binaryOpSymbol(v.Op), lt, rt)
		v.ResolvedType = lt
		return v

	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		if nl, nr, _, ok := a.widenNumericPair(v.Left, v.Right); ok {
			v.Left, v.Right = nl, nr
			v.ResolvedType = ast.Bool
			return v
		}
		if lt.Kind == ast.KString && rt.Kind == ast.KString {
			v.ResolvedType = ast.Bool
			return v
		}
		a.errorf(v.Pos, "operator '%s' requires two numbers or two strings, found %s and %s", binaryOpSymbol(v.Op), lt, rt)
		v.ResolvedType = ast.Bool
		return v

	case ast.Eq, ast.Ne:
		if lt.Kind == ast.KArray || rt.Kind == ast.KArray {
			a.errorf(v.Pos, "cannot compare arrays for equality")
			v.ResolvedType = ast.Bool
			return v
		}
		if nl, nr, _, ok := a.widenNumericPair(v.Left, v.Right); ok {
			v.Left, v.Right = nl, nr
			v.ResolvedType = ast.Bool
			return v
		}
		if !lt.Equal(rt) {
			a.errorf(v.Pos, "cannot compare values of type %s and %s", lt, rt)
		}
		v.ResolvedType = ast.Bool
		return v

	case ast.LogicalAnd, ast.LogicalOr:
		if lt.Kind != ast.KBool || rt.Kind != ast.KBool {
			a.errorf(v.Pos, "operator '%s' requires bool operands, found %s and %s", binaryOpSymbol(v.Op), lt, rt)
		}
		v.ResolvedType = ast.Bool
		return v

	default:
		panic("sema: analyzeBinary: unhandled operator")
	}
}

func binaryOpSymbol(op ast.BinaryOp) string {
	switch op {
	case ast.Add:
		return "+"
	case ast.Sub:
		return "-"
	case ast.Mul:
		return "*"
	case ast.Div:
		return "/"
	case ast.Mod:
		return "%"
	case ast.Lt:
		return "<"
	case ast.Le:
		return "<="
	case ast.Gt:
		return ">"
	case ast.Ge:
		return ">="
	case ast.Eq:
		return "=="
	case ast.Ne:
		return "!="
	case ast.LogicalAnd:
		return "and"
	case ast.LogicalOr:
		return "or"
	default:
		return "?"
	}
}

func (a *Analyzer) analyzeIndex(v *ast.Index, sc *scope) ast.Expr {
	v.Target = a.analyzeExpr(v.Target, sc)
	v.Idx = a.analyzeExpr(v.Idx, sc)
	tt := ast.ExprType(v.Target)
	if tt.Kind != ast.KArray {
		a.errorf(v.Pos, "cannot index into non-array type %s", tt)
		v.ResolvedType = ast.Void
		return v
	}
	it := ast.ExprType(v.Idx)
	if it.Kind != ast.KInt {
		a.errorf(v.Idx.Span(), "array index must be int, found %s", it)
	}
	v.ResolvedType = *tt.Elem
	return v
}

func (a *Analyzer) analyzeCall(v *ast.Call, sc *scope) ast.Expr {
	if v.Callee == "input" {
		if len(v.Args) != 1 {
			a.errorf(v.Pos, "input expects 1 argument, found %d", len(v.Args))
			v.ResolvedType = ast.String
			return v
		}
		v.Args[0] = a.analyzeExpr(v.Args[0], sc)
		if t := ast.ExprType(v.Args[0]); t.Kind != ast.KString {
			a.errorf(v.Args[0].Span(), "input prompt must be string, found %s", t)
		}
		v.ResolvedType = ast.String
		return v
	}

	sig, ok := a.funcs[v.Callee]
	if !ok {
		a.errorf(v.Pos, "call to undeclared function '%s'", v.Callee)
		for i := range v.Args {
			v.Args[i] = a.analyzeExpr(v.Args[i], sc)
		}
		v.ResolvedType = ast.Void
		return v
	}

	if len(v.Args) != len(sig.ParamTypes) {
		a.errorf(v.Pos, "function '%s' expects %d argument(s), found %d", v.Callee, len(sig.ParamTypes), len(v.Args))
	}
	n := len(v.Args)
	if len(sig.ParamTypes) < n {
		n = len(sig.ParamTypes)
	}
	for i := 0; i < n; i++ {
		v.Args[i] = a.analyzeExpr(v.Args[i], sc)
		argType := ast.ExprType(v.Args[i])
		wrapped, ok := a.assignable(v.Args[i], argType, sig.ParamTypes[i])
		if !ok {
			a.errorf(v.Args[i].Span(), "argument %d to '%s' has type %s, expected %s", i+1, v.Callee, argType, sig.ParamTypes[i])
			continue
		}
		v.Args[i] = wrapped
	}
	for i := n; i < len(v.Args); i++ {
		v.Args[i] = a.analyzeExpr(v.Args[i], sc)
	}
	v.ResolvedType = sig.Return
	return v
}

func (a *Analyzer) analyzeAssign(v *ast.Assign, sc *scope) ast.Expr {
	switch t := v.Target.(type) {
	case *ast.Identifier:
		typ, ok := sc.lookup(t.Name)
		if !ok {
			a.errorf(t.Pos, "undeclared name '%s'", t.Name)
			typ = ast.Void
		}
		t.ResolvedType = typ
	case *ast.Index:
		resolved := a.analyzeExpr(t, sc)
		if idx, ok := resolved.(*ast.Index); ok {
			v.Target = idx
		}
	}

	v.Value = a.analyzeExpr(v.Value, sc)
	targetType := ast.ExprType(v.Target)
	valType := ast.ExprType(v.Value)
	wrapped, ok := a.assignable(v.Value, valType, targetType)
	if !ok {
		a.errorf(v.Pos, "cannot assign value of type %s to target of type %s", valType, targetType)
	} else {
		v.Value = wrapped
	}
	v.ResolvedType = targetType
	return v
}
