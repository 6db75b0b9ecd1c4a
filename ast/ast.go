// Package ast defines Mini-Lang's syntax tree as a closed sum of node
// structs dispatched by a type switch, per the design-notes directive to
// replace the teacher's dynamic-dispatch visitor with exhaustive matching
// over a tagged union. Every node carries its source Span; every
// non-literal expression node carries a ResolvedType field the semantic
// analyzer fills in, while literal types follow from the node kind
// (see ExprType) (spec §3, §9).
package ast

import "github.com/minilang-org/minilang/token"

// Span identifies the starting source position of a node: the (line,
// column) of the first token that produced it (spec §8, invariant 1).
type Span struct {
	Line   int
	Column int
}

func SpanOf(tok token.Token) Span {
	return Span{Line: tok.Line, Column: tok.Column}
}

// Node is satisfied by every AST node.
type Node interface {
	Span() Span
}

// Expr is satisfied by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// LValue is satisfied by the two expression forms legal as assignment
// targets: a bare identifier or an index expression (spec §3).
type LValue interface {
	Expr
	lvalueNode()
}

// ---- Expressions ----------------------------------------------------

type IntLit struct {
	Pos   Span
	Value int64
}

type FloatLit struct {
	Pos   Span
	Value float64
}

type BoolLit struct {
	Pos   Span
	Value bool
}

type StringLit struct {
	Pos   Span
	Value string
}

// Identifier is a name reference: a variable read or a bound symbol name.
type Identifier struct {
	Pos          Span
	Name         string
	ResolvedType Type
}

type ArrayLit struct {
	Pos          Span
	Elements     []Expr
	ResolvedType Type
}

type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
)

type Unary struct {
	Pos          Span
	Op           UnaryOp
	Operand      Expr
	ResolvedType Type
}

type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	LogicalAnd
	LogicalOr
)

type Binary struct {
	Pos          Span
	Op           BinaryOp
	Left, Right  Expr
	ResolvedType Type
}

// Index is e[i]; it doubles as the index-lvalue form.
type Index struct {
	Pos          Span
	Target       Expr
	Idx          Expr
	ResolvedType Type
}

// Call invokes a named function; Mini-Lang has no call-of-expression
// (spec §4.2), so the callee is a plain name rather than an Expr.
type Call struct {
	Pos          Span
	Callee       string
	Args         []Expr
	ResolvedType Type
}

// Assign is both the expression form and, wrapped in an ExprStmt, the
// statement form spec.md describes as "Assignment" (spec §3).
type Assign struct {
	Pos          Span
	Target       LValue
	Value        Expr
	ResolvedType Type
}

// Coerce marks a site where the semantic analyzer inserted an implicit
// Int->Float widening, so the interpreter's behavior is explicit rather
// than incidental, and an emitter can make the conversion textual in a
// target language that does not widen automatically (spec §9).
type Coerce struct {
	Pos          Span
	Inner        Expr
	ResolvedType Type // always Float
}

func (n *IntLit) Span() Span     { return n.Pos }
func (n *FloatLit) Span() Span   { return n.Pos }
func (n *BoolLit) Span() Span    { return n.Pos }
func (n *StringLit) Span() Span  { return n.Pos }
func (n *Identifier) Span() Span { return n.Pos }
func (n *ArrayLit) Span() Span   { return n.Pos }
func (n *Unary) Span() Span      { return n.Pos }
func (n *Binary) Span() Span     { return n.Pos }
func (n *Index) Span() Span      { return n.Pos }
func (n *Call) Span() Span       { return n.Pos }
func (n *Assign) Span() Span     { return n.Pos }
func (n *Coerce) Span() Span     { return n.Pos }

func (*IntLit) exprNode()     {}
func (*FloatLit) exprNode()   {}
func (*BoolLit) exprNode()    {}
func (*StringLit) exprNode()  {}
func (*Identifier) exprNode() {}
func (*ArrayLit) exprNode()   {}
func (*Unary) exprNode()      {}
func (*Binary) exprNode()     {}
func (*Index) exprNode()      {}
func (*Call) exprNode()       {}
func (*Assign) exprNode()     {}
func (*Coerce) exprNode()     {}

func (*Identifier) lvalueNode() {}
func (*Index) lvalueNode()      {}

// ---- Statements -------------------------------------------------------

type VarDecl struct {
	Pos         Span
	DeclaredType Type
	Name        string
	Init        Expr // nil when there is no initializer
}

type ExprStmt struct {
	Pos  Span
	X    Expr
}

type Block struct {
	Pos   Span
	Stmts []Stmt
}

type If struct {
	Pos    Span
	Cond   Expr
	Then   *Block
	Else   *Block // nil when there is no else branch
}

type While struct {
	Pos  Span
	Cond Expr
	Body *Block
}

// For.Init is either a *VarDecl or an *ExprStmt (an assignment), matching
// spec.md's `for_stmt ::= "for" "(" (var_decl | expr) ";" expr ";" expr ")"`.
type For struct {
	Pos  Span
	Init Stmt
	Cond Expr
	Step Expr
	Body *Block
}

type Return struct {
	Pos   Span
	Value Expr // nil for a bare `return;`
}

type Print struct {
	Pos Span
	X   Expr
}

func (n *VarDecl) Span() Span  { return n.Pos }
func (n *ExprStmt) Span() Span { return n.Pos }
func (n *Block) Span() Span    { return n.Pos }
func (n *If) Span() Span       { return n.Pos }
func (n *While) Span() Span    { return n.Pos }
func (n *For) Span() Span      { return n.Pos }
func (n *Return) Span() Span   { return n.Pos }
func (n *Print) Span() Span    { return n.Pos }

func (*VarDecl) stmtNode()  {}
func (*ExprStmt) stmtNode() {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*For) stmtNode()      {}
func (*Return) stmtNode()   {}
func (*Print) stmtNode()    {}

// ---- Declarations & program --------------------------------------------

type Param struct {
	Type Type
	Name string
}

// FunctionDecl lives only at the program's top level (spec §3: "Functions
// live only in the program scope").
type FunctionDecl struct {
	Pos        Span
	Name       string
	Params     []Param
	ReturnType Type
	Body       *Block
}

func (n *FunctionDecl) Span() Span { return n.Pos }

// Program is the root node: an ordered mix of function declarations and
// top-level statements (spec §3: `program ::= { decl_or_stmt }`).
type Program struct {
	Items []Node // each item is *FunctionDecl or a Stmt
}
