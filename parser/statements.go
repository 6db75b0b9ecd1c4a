package parser

import (
	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/token"
)

// parseStatement dispatches on the current token to one of the statement
// forms spec §3 enumerates. A leading type keyword (or `array`) means a
// var_decl; everything else that isn't one of the block-structured forms
// falls through to an expression statement.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	default:
		if p.startsType() {
			return p.parseVarDecl()
		}
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	pos := ast.SpanOf(p.cur)
	typ := p.parseType()
	name := p.expect(token.IDENTIFIER).Lexeme
	var init ast.Expr
	if p.cur.Kind == token.ASSIGN {
		p.advance()
		init = p.parseExpression()
	}
	p.expect(token.SEMI)
	return &ast.VarDecl{Pos: pos, DeclaredType: typ, Name: name, Init: init}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	pos := ast.SpanOf(p.cur)
	x := p.parseExpression()
	p.expect(token.SEMI)
	return &ast.ExprStmt{Pos: pos, X: x}
}

func (p *Parser) parseBlock() *ast.Block {
	pos := ast.SpanOf(p.cur)
	p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return &ast.Block{Pos: pos, Stmts: stmts}
}

func (p *Parser) parseIf() *ast.If {
	pos := ast.SpanOf(p.cur)
	p.advance() // `if`
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	then := p.parseBlock()
	var els *ast.Block
	if p.cur.Kind == token.ELSE {
		p.advance()
		if p.cur.Kind == token.IF {
			// Chained `else if`: wrap the nested if in a single-statement block
			// so ast.If.Else stays *ast.Block throughout.
			nested := p.parseIf()
			els = &ast.Block{Pos: nested.Pos, Stmts: []ast.Stmt{nested}}
		} else {
			els = p.parseBlock()
		}
	}
	return &ast.If{Pos: pos, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhile() *ast.While {
	pos := ast.SpanOf(p.cur)
	p.advance() // `while`
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.While{Pos: pos, Cond: cond, Body: body}
}

func (p *Parser) parseFor() *ast.For {
	pos := ast.SpanOf(p.cur)
	p.advance() // `for`
	p.expect(token.LPAREN)

	var init ast.Stmt
	if p.startsType() {
		init = p.parseVarDecl()
	} else {
		init = p.parseExprStmt()
	}

	cond := p.parseExpression()
	p.expect(token.SEMI)

	step := p.parseExpression()
	p.expect(token.RPAREN)

	body := p.parseBlock()
	return &ast.For{Pos: pos, Init: init, Cond: cond, Step: step, Body: body}
}

func (p *Parser) parseReturn() *ast.Return {
	pos := ast.SpanOf(p.cur)
	p.advance() // `return`
	var value ast.Expr
	if p.cur.Kind != token.SEMI {
		value = p.parseExpression()
	}
	p.expect(token.SEMI)
	return &ast.Return{Pos: pos, Value: value}
}

func (p *Parser) parsePrint() *ast.Print {
	pos := ast.SpanOf(p.cur)
	p.advance() // `print`
	p.expect(token.LPAREN)
	x := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.SEMI)
	return &ast.Print{Pos: pos, X: x}
}
