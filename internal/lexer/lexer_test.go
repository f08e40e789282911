package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox-lang/golox/internal/token"
)

func scanTypes(t *testing.T, source string) []token.Type {
	t.Helper()
	l := New(source)
	tokens := l.ScanTokens()
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestSingleCharacterTokens(t *testing.T) {
	types := scanTypes(t, "(){}[],.;+-*^")
	assert.Equal(t, []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.LEFT_BRACKET, token.RIGHT_BRACKET, token.COMMA, token.DOT,
		token.SEMICOLON, token.PLUS, token.MINUS, token.STAR, token.CARET,
		token.EOF,
	}, types)
}

func TestTwoCharacterOperators(t *testing.T) {
	types := scanTypes(t, "!= == <= >= += -= *= /= ++ --")
	assert.Equal(t, []token.Type{
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL, token.SLASH_EQUAL,
		token.PLUS_PLUS, token.MINUS_MINUS, token.EOF,
	}, types)
}

func TestLineCommentIsSkipped(t *testing.T) {
	l := New("1 // a comment\n2")
	tokens := l.ScanTokens()
	require.Len(t, tokens, 3) // NUMBER, NUMBER, EOF
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, token.NUMBER, tokens[1].Type)
	assert.Equal(t, 2, tokens[1].Line())
}

func TestBlockCommentIsSkipped(t *testing.T) {
	types := scanTypes(t, "1 /* block \n comment */ 2")
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, types)
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	l := New("/* never closed")
	l.ScanTokens()
	require.Len(t, l.Errors(), 1)
	assert.Equal(t, "unterminated block comment", l.Errors()[0].Message)
}

func TestStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tokens := l.ScanTokens()
	require.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestMultilineString(t *testing.T) {
	l := New("\"line1\nline2\"")
	tokens := l.ScanTokens()
	require.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "line1\nline2", tokens[0].Literal)
}

func TestUnterminatedStringIsError(t *testing.T) {
	l := New(`"oops`)
	l.ScanTokens()
	require.Len(t, l.Errors(), 1)
	assert.Equal(t, "Unterminated string.", l.Errors()[0].Message)
}

func TestNumberLiteral(t *testing.T) {
	l := New("123 45.67")
	tokens := l.ScanTokens()
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	types := scanTypes(t, "and class else false for fun if nil or print return super this true var while x")
	want := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.IDENTIFIER, token.EOF,
	}
	assert.Equal(t, want, types)
}

func TestUnknownCharacterIsError(t *testing.T) {
	l := New("@")
	tokens := l.ScanTokens()
	require.Len(t, l.Errors(), 1)
	assert.Equal(t, token.ILLEGAL, tokens[0].Type)
}

func TestAlwaysEOFTerminated(t *testing.T) {
	l := New("")
	tokens := l.ScanTokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Type)
}
