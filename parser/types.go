package parser

import (
	"strconv"

	"github.com/minilang-org/minilang/ast"
	"github.com/minilang-org/minilang/token"
)

// parseType parses the two interchangeable type spellings spec §9 fixes
// as denoting the same type: `T[n]` and `array<T>[n]`.
//
//	type ::= ("int"|"float"|"bool"|"string") [ "[" [INT_LIT] "]" ]
//	      |  "array" "<" type ">" [ "[" [INT_LIT] "]" ]
func (p *Parser) parseType() ast.Type {
	// elem is the type a trailing "[n]" sizes: for the `array<T>` spelling
	// that is T itself, not another array layer wrapping T, since "array"
	// already supplies the one array layer the trailing bracket sizes.
	var elem ast.Type
	isArray := false
	switch p.cur.Kind {
	case token.INT:
		elem = ast.Int
		p.advance()
	case token.FLOAT:
		elem = ast.Float
		p.advance()
	case token.BOOL:
		elem = ast.Bool
		p.advance()
	case token.STRING:
		elem = ast.String
		p.advance()
	case token.ARRAY:
		p.advance()
		p.expect(token.LT)
		elem = p.parseType()
		p.expect(token.GT)
		isArray = true
	default:
		p.fail("expected a type, found %s", foundDescription(p.cur))
	}

	if p.cur.Kind == token.LBRACKET {
		p.advance()
		if p.cur.Kind == token.INT_LITERAL {
			n, err := strconv.Atoi(p.cur.Lexeme)
			if err != nil {
				p.fail("malformed array size literal '%s'", p.cur.Lexeme)
			}
			p.advance()
			p.expect(token.RBRACKET)
			return ast.ArrayOf(elem, n)
		}
		p.expect(token.RBRACKET)
		return ast.OpenArrayOf(elem)
	}
	if isArray {
		return ast.OpenArrayOf(elem)
	}
	return elem
}

// startsType reports whether the current token can begin a type, used to
// distinguish a var_decl from an expr_stmt at statement position.
func (p *Parser) startsType() bool {
	switch p.cur.Kind {
	case token.INT, token.FLOAT, token.BOOL, token.STRING, token.ARRAY:
		return true
	default:
		return false
	}
}
