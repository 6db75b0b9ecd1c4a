package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Print renders a Program as an indented ASCII tree. It replaces the
// teacher's PrintingVisitor (one Visit method per node kind, dispatched
// dynamically) with a single recursive function doing an exhaustive type
// switch over the closed AST sum.
func Print(prog *Program) string {
	var buf bytes.Buffer
	buf.WriteString("Program\n")
	for _, item := range prog.Items {
		printNode(&buf, item, indentSize)
	}
	return buf.String()
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte(' ')
	}
}

func printNode(buf *bytes.Buffer, n Node, depth int) {
	writeIndent(buf, depth)
	switch v := n.(type) {
	case *FunctionDecl:
		fmt.Fprintf(buf, "FunctionDecl %s -> %s @%d:%d\n", v.Name, v.ReturnType, v.Pos.Line, v.Pos.Column)
		for _, p := range v.Params {
			writeIndent(buf, depth+indentSize)
			fmt.Fprintf(buf, "Param %s %s\n", p.Type, p.Name)
		}
		printNode(buf, v.Body, depth+indentSize)
	case *VarDecl:
		fmt.Fprintf(buf, "VarDecl %s %s @%d:%d\n", v.DeclaredType, v.Name, v.Pos.Line, v.Pos.Column)
		if v.Init != nil {
			printNode(buf, v.Init, depth+indentSize)
		}
	case *ExprStmt:
		fmt.Fprintf(buf, "ExprStmt\n")
		printNode(buf, v.X, depth+indentSize)
	case *Block:
		fmt.Fprintf(buf, "Block\n")
		for _, s := range v.Stmts {
			printNode(buf, s, depth+indentSize)
		}
	case *If:
		fmt.Fprintf(buf, "If\n")
		printNode(buf, v.Cond, depth+indentSize)
		printNode(buf, v.Then, depth+indentSize)
		if v.Else != nil {
			printNode(buf, v.Else, depth+indentSize)
		}
	case *While:
		fmt.Fprintf(buf, "While\n")
		printNode(buf, v.Cond, depth+indentSize)
		printNode(buf, v.Body, depth+indentSize)
	case *For:
		fmt.Fprintf(buf, "For\n")
		printNode(buf, v.Init, depth+indentSize)
		printNode(buf, v.Cond, depth+indentSize)
		printNode(buf, v.Step, depth+indentSize)
		printNode(buf, v.Body, depth+indentSize)
	case *Return:
		fmt.Fprintf(buf, "Return\n")
		if v.Value != nil {
			printNode(buf, v.Value, depth+indentSize)
		}
	case *Print:
		fmt.Fprintf(buf, "Print\n")
		printNode(buf, v.X, depth+indentSize)
	case *IntLit:
		fmt.Fprintf(buf, "IntLit %d\n", v.Value)
	case *FloatLit:
		fmt.Fprintf(buf, "FloatLit %g\n", v.Value)
	case *BoolLit:
		fmt.Fprintf(buf, "BoolLit %t\n", v.Value)
	case *StringLit:
		fmt.Fprintf(buf, "StringLit %q\n", v.Value)
	case *Identifier:
		fmt.Fprintf(buf, "Identifier %s : %s\n", v.Name, v.ResolvedType)
	case *ArrayLit:
		fmt.Fprintf(buf, "ArrayLit : %s\n", v.ResolvedType)
		for _, e := range v.Elements {
			printNode(buf, e, depth+indentSize)
		}
	case *Unary:
		fmt.Fprintf(buf, "Unary %s\n", unaryOpName(v.Op))
		printNode(buf, v.Operand, depth+indentSize)
	case *Binary:
		fmt.Fprintf(buf, "Binary %s : %s\n", binaryOpName(v.Op), v.ResolvedType)
		printNode(buf, v.Left, depth+indentSize)
		printNode(buf, v.Right, depth+indentSize)
	case *Index:
		fmt.Fprintf(buf, "Index : %s\n", v.ResolvedType)
		printNode(buf, v.Target, depth+indentSize)
		printNode(buf, v.Idx, depth+indentSize)
	case *Call:
		fmt.Fprintf(buf, "Call %s : %s\n", v.Callee, v.ResolvedType)
		for _, a := range v.Args {
			printNode(buf, a, depth+indentSize)
		}
	case *Assign:
		fmt.Fprintf(buf, "Assign\n")
		printNode(buf, v.Target, depth+indentSize)
		printNode(buf, v.Value, depth+indentSize)
	case *Coerce:
		fmt.Fprintf(buf, "Coerce Int->Float\n")
		printNode(buf, v.Inner, depth+indentSize)
	default:
		fmt.Fprintf(buf, "<unknown node %T>\n", n)
	}
}

func unaryOpName(op UnaryOp) string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "not"
	default:
		return "?"
	}
}

func binaryOpName(op BinaryOp) string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Eq:
		return "=="
	case Ne:
		return "!="
	case LogicalAnd:
		return "and"
	case LogicalOr:
		return "or"
	default:
		return "?"
	}
}
