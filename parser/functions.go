package parser

import (
	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/token"
)

// parseFunctionDecl parses a top-level function declaration:
//
//	func_decl ::= "function" IDENT "(" [ param { "," param } ] ")" [ ":" type ] block
//	param     ::= type IDENT
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	pos := ast.SpanOf(p.cur)
	p.advance() // `function`
	name := p.expect(token.IDENTIFIER).Lexeme

	p.expect(token.LPAREN)
	var params []ast.Param
	if p.cur.Kind != token.RPAREN {
		params = append(params, p.parseParam())
		for p.cur.Kind == token.COMMA {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RPAREN)

	retType := ast.Void
	if p.cur.Kind == token.COLON {
		p.advance()
		retType = p.parseType()
	}

	body := p.parseBlock()
	return &ast.FunctionDecl{Pos: pos, Name: name, Params: params, ReturnType: retType, Body: body}
}

func (p *Parser) parseParam() ast.Param {
	typ := p.parseType()
	name := p.expect(token.IDENTIFIER).Lexeme
	return ast.Param{Type: typ, Name: name}
}
