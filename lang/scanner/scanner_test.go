package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/clover/lang/scanner"
	"github.com/mna/clover/lang/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, err := scanner.Scan("test.clv", []byte(`(){},.-+;*/ ! != = == < <= > >=`))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMI, token.STAR, token.SLASH,
		token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ, token.LT, token.LT_EQ,
		token.GT, token.GT_EQ, token.EOF,
	}, kinds(toks))
}

func TestScanIdentifierDoesNotSkipCharacters(t *testing.T) {
	// regression test for the peek/peekNext bug described in scanner.go's
	// identifier doc comment: "foobar" must scan as one identifier, not as
	// one-character tokens.
	toks, err := scanner.Scan("test.clv", []byte(`foobar`))
	require.NoError(t, err)
	require.Len(t, toks, 2) // identifier + EOF
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, "foobar", toks[0].Lexeme)
}

func TestScanKeywords(t *testing.T) {
	toks, err := scanner.Scan("test.clv", []byte(`and class else false fun for if nil or print return super this true var while`))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FUN, token.FOR,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.EOF,
	}, kinds(toks))
}

func TestScanNumberLiteral(t *testing.T) {
	toks, err := scanner.Scan("test.clv", []byte(`123 45.67`))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := scanner.Scan("test.clv", []byte(`"hello world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	_, err := scanner.Scan("test.clv", []byte(`"unterminated`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
}

func TestScanUnexpectedCharacterReportsErrorButContinues(t *testing.T) {
	toks, err := scanner.Scan("test.clv", []byte("1 @ 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected character")
	// scanning recovers and keeps producing the surrounding valid tokens
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanSkipsLineComments(t *testing.T) {
	toks, err := scanner.Scan("test.clv", []byte("1 // a comment\n2"))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanTracksLineNumbers(t *testing.T) {
	toks, err := scanner.Scan("test.clv", []byte("1\n2\n3"))
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}
