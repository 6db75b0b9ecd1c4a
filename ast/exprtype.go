package ast

// ExprType returns the type of an expression node: either a fixed type for
// the literal forms (which carry no ResolvedType field of their own, since
// their type is determined entirely by which Go struct they are) or the
// ResolvedType the semantic analyzer annotated on every other expression
// kind (spec §8, invariant 2).
func ExprType(e Expr) Type {
	switch v := e.(type) {
	case *IntLit:
		return Int
	case *FloatLit:
		return Float
	case *BoolLit:
		return Bool
	case *StringLit:
		return String
	case *Identifier:
		return v.ResolvedType
	case *ArrayLit:
		return v.ResolvedType
	case *Unary:
		return v.ResolvedType
	case *Binary:
		return v.ResolvedType
	case *Index:
		return v.ResolvedType
	case *Call:
		return v.ResolvedType
	case *Assign:
		return v.ResolvedType
	case *Coerce:
		return v.ResolvedType
	default:
		panic("ast: ExprType: unhandled expression node")
	}
}
