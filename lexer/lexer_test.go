package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minilang-org/minilang/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenize_OperatorsAndPunctuation(t *testing.T) {
	toks, err := Tokenize(`( ) { } [ ] , ; : = + - * / % < <= > >= == !=`)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.SEMI, token.COLON,
		token.ASSIGN, token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PCT,
		token.LT, token.LE, token.GT, token.GE, token.EQ, token.NE, token.EOF,
	}, kinds(toks))
}

func TestTokenize_KeywordsAndIdentifiers(t *testing.T) {
	toks, err := Tokenize(`int float bool string array if else while for function return print input and or not true false foo_bar`)
	require.NoError(t, err)
	want := []token.Kind{
		token.INT, token.FLOAT, token.BOOL, token.STRING, token.ARRAY,
		token.IF, token.ELSE, token.WHILE, token.FOR, token.FUNCTION,
		token.RETURN, token.PRINT, token.INPUT, token.AND, token.OR, token.NOT,
		token.BOOL_LITERAL, token.BOOL_LITERAL, token.IDENTIFIER, token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, "foo_bar", toks[len(toks)-2].Lexeme)
}

func TestTokenize_NumericLiterals(t *testing.T) {
	toks, err := Tokenize(`42 3.14 0 10.0`)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, token.INT_LITERAL, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Lexeme)
	assert.Equal(t, token.FLOAT_LITERAL, toks[1].Kind)
	assert.Equal(t, "3.14", toks[1].Lexeme)
	assert.Equal(t, token.INT_LITERAL, toks[2].Kind)
	assert.Equal(t, token.FLOAT_LITERAL, toks[3].Kind)
}

func TestTokenize_StringLiteralsAndEscapes(t *testing.T) {
	toks, err := Tokenize(`"hello\nworld" 'single \'q\'' "tab\there"`)
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "hello\nworld", toks[0].Lexeme)
	assert.Equal(t, "single 'q'", toks[1].Lexeme)
	assert.Equal(t, "tab\there", toks[2].Lexeme)
}

func TestTokenize_CommentsAndWhitespaceDiscarded(t *testing.T) {
	toks, err := Tokenize("int x = 1; # this is a comment\nprint(x);")
	require.NoError(t, err)
	assert.Equal(t, token.INT, toks[0].Kind)
	// Make sure the comment line didn't leak a token in.
	for _, tk := range toks {
		assert.NotContains(t, tk.Lexeme, "comment")
	}
}

func TestTokenize_LineColumnTracking(t *testing.T) {
	toks, err := Tokenize("int x;\nprint(x);")
	require.NoError(t, err)
	// `print` starts the second line, column 1.
	var printTok token.Token
	for _, tk := range toks {
		if tk.Kind == token.PRINT {
			printTok = tk
		}
	}
	assert.Equal(t, 2, printTok.Line)
	assert.Equal(t, 1, printTok.Column)
}

func TestTokenize_UnexpectedCharacterIsLexicalError(t *testing.T) {
	_, err := Tokenize(`int x = 1 @ 2;`)
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 1, lerr.Line)
	assert.Contains(t, lerr.Message, "unexpected character")
}

func TestTokenize_UnterminatedStringIsLexicalError(t *testing.T) {
	_, err := Tokenize("\"never closed")
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, lerr.Message, "unterminated string literal")
}

func TestTokenize_UnterminatedStringAtNewlineIsLexicalError(t *testing.T) {
	_, err := Tokenize("\"abc\ndef\"")
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 1, lerr.Line)
}

func TestTokenize_BangWithoutEqualsIsLexicalError(t *testing.T) {
	_, err := Tokenize(`!x`)
	require.Error(t, err)
}

func TestTokenize_EmptySourceYieldsOnlyEOF(t *testing.T) {
	toks, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}
