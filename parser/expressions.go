package parser

import (
	"strconv"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/token"
)

// parseExpression is the entry point for the precedence table in spec
// §4.2, starting at level 1 (assignment, right-associative).
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// level 1: `=`, right-associative.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseOr()
	if p.cur.Kind != token.ASSIGN {
		return left
	}
	lv, ok := left.(ast.LValue)
	if !ok {
		// spec §4.2: the diagnostic is reported at the `=` token...
		p.fail("invalid assignment target")
	}
	p.advance()
	value := p.parseAssignment() // right-associative: recurse at the same level
	// ...but the node's own span is its target's first token (spec §8,
	// invariant 1), matching every other expression's span convention.
	return &ast.Assign{Pos: left.Span(), Target: lv, Value: value}
}

// level 2: `or`, left-associative.
func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.cur.Kind == token.OR {
		pos := ast.SpanOf(p.cur)
		p.advance()
		right := p.parseAnd()
		left = &ast.Binary{Pos: pos, Op: ast.LogicalOr, Left: left, Right: right}
	}
	return left
}

// level 3: `and`, left-associative.
func (p *Parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.cur.Kind == token.AND {
		pos := ast.SpanOf(p.cur)
		p.advance()
		right := p.parseEquality()
		left = &ast.Binary{Pos: pos, Op: ast.LogicalAnd, Left: left, Right: right}
	}
	return left
}

// level 4: `==`, `!=`, left-associative.
func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.cur.Kind == token.EQ || p.cur.Kind == token.NE {
		op := ast.Eq
		if p.cur.Kind == token.NE {
			op = ast.Ne
		}
		pos := ast.SpanOf(p.cur)
		p.advance()
		right := p.parseComparison()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// level 5: `<`, `<=`, `>`, `>=`, left-associative (non-chaining semantics,
// but parsed left-associatively as spec §4.2 prescribes).
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.LT:
			op = ast.Lt
		case token.LE:
			op = ast.Le
		case token.GT:
			op = ast.Gt
		case token.GE:
			op = ast.Ge
		default:
			return left
		}
		pos := ast.SpanOf(p.cur)
		p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
}

// level 6: `+`, `-`, left-associative.
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.cur.Kind == token.PLUS || p.cur.Kind == token.MINUS {
		op := ast.Add
		if p.cur.Kind == token.MINUS {
			op = ast.Sub
		}
		pos := ast.SpanOf(p.cur)
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// level 7: `*`, `/`, `%`, left-associative.
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.cur.Kind == token.STAR || p.cur.Kind == token.SLASH || p.cur.Kind == token.PCT {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.STAR:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		case token.PCT:
			op = ast.Mod
		}
		pos := ast.SpanOf(p.cur)
		p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// level 8: unary `not`, unary `-`, right-associative.
func (p *Parser) parseUnary() ast.Expr {
	switch p.cur.Kind {
	case token.NOT:
		pos := ast.SpanOf(p.cur)
		p.advance()
		return &ast.Unary{Pos: pos, Op: ast.Not, Operand: p.parseUnary()}
	case token.MINUS:
		pos := ast.SpanOf(p.cur)
		p.advance()
		return &ast.Unary{Pos: pos, Op: ast.Neg, Operand: p.parseUnary()}
	default:
		return p.parsePostfix()
	}
}

// level 9: postfix `[expr]` indexing, left-associative. Call expressions
// are not postfix (spec §4.2: "Calls are syntactically restricted to
// named callees") and are recognized directly in parsePrimary.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for p.cur.Kind == token.LBRACKET {
		// The span of an Index node is its target's first token (spec §8,
		// invariant 1), not the bracket: "a[i]" spans from "a".
		pos := expr.Span()
		p.advance()
		idx := p.parseExpression()
		p.expect(token.RBRACKET)
		expr = &ast.Index{Pos: pos, Target: expr, Idx: idx}
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case token.INT_LITERAL:
		pos := ast.SpanOf(p.cur)
		n, err := strconv.ParseInt(p.cur.Lexeme, 10, 64)
		if err != nil {
			p.fail("malformed integer literal '%s'", p.cur.Lexeme)
		}
		p.advance()
		return &ast.IntLit{Pos: pos, Value: n}
	case token.FLOAT_LITERAL:
		pos := ast.SpanOf(p.cur)
		f, err := strconv.ParseFloat(p.cur.Lexeme, 64)
		if err != nil {
			p.fail("malformed float literal '%s'", p.cur.Lexeme)
		}
		p.advance()
		return &ast.FloatLit{Pos: pos, Value: f}
	case token.BOOL_LITERAL:
		pos := ast.SpanOf(p.cur)
		v := p.cur.Lexeme == "true"
		p.advance()
		return &ast.BoolLit{Pos: pos, Value: v}
	case token.STRING_LITERAL:
		pos := ast.SpanOf(p.cur)
		s := p.cur.Lexeme
		p.advance()
		return &ast.StringLit{Pos: pos, Value: s}
	case token.IDENTIFIER:
		pos := ast.SpanOf(p.cur)
		name := p.cur.Lexeme
		p.advance()
		if p.cur.Kind == token.LPAREN {
			return p.finishCall(pos, name)
		}
		return &ast.Identifier{Pos: pos, Name: name}
	case token.INPUT:
		pos := ast.SpanOf(p.cur)
		p.advance()
		p.expect(token.LPAREN)
		prompt := p.parseExpression()
		p.expect(token.RPAREN)
		return &ast.Call{Pos: pos, Callee: "input", Args: []ast.Expr{prompt}}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN)
		return inner
	case token.LBRACKET:
		pos := ast.SpanOf(p.cur)
		p.advance()
		var elems []ast.Expr
		if p.cur.Kind != token.RBRACKET {
			elems = append(elems, p.parseExpression())
			for p.cur.Kind == token.COMMA {
				p.advance()
				elems = append(elems, p.parseExpression())
			}
		}
		p.expect(token.RBRACKET)
		return &ast.ArrayLit{Pos: pos, Elements: elems}
	default:
		p.fail("expected an expression, found %s", foundDescription(p.cur))
		panic("unreachable")
	}
}

func (p *Parser) finishCall(pos ast.Span, name string) ast.Expr {
	p.expect(token.LPAREN)
	var args []ast.Expr
	if p.cur.Kind != token.RPAREN {
		args = append(args, p.parseExpression())
		for p.cur.Kind == token.COMMA {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return &ast.Call{Pos: pos, Callee: name, Args: args}
}
