// Package scanner turns clover source text into a flat stream of tokens.
//
// Errors encountered while scanning (an unterminated string, an unexpected
// character) are collected in a go/scanner.ErrorList rather than a
// hand-rolled error type, giving scan/parse/resolve error reporting a
// single shared vocabulary across all three static phases.
package scanner

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"

	clovertoken "github.com/mna/clover/lang/token"
)

// Error and ErrorList are the error types produced by Scan, Parse and
// Resolve throughout the clover toolchain.
type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// PrintError prints err, which may be a single *Error, an ErrorList, or any
// other error, to the given writer.
var PrintError = scanner.PrintError

// Scan tokenizes src, a single source file identified by filename (used only
// for error reporting). The returned error, if non-nil, is a scanner.ErrorList.
func Scan(filename string, src []byte) ([]clovertoken.Token, error) {
	var s Scanner
	s.Init(filename, src)

	var toks []clovertoken.Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == clovertoken.EOF {
			break
		}
	}
	return toks, s.errors.Err()
}

// Scanner tokenizes a single source file.
type Scanner struct {
	filename string
	src      []byte
	errors   ErrorList

	start int // byte offset of the start of the token being scanned
	cur   int // byte offset of the next byte to read
	line  int
}

// Init prepares s to scan src, reporting errors under filename.
func (s *Scanner) Init(filename string, src []byte) {
	s.filename = filename
	s.src = src
	s.errors = nil
	s.start = 0
	s.cur = 0
	s.line = 1
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.cur]
	s.cur++
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

// match consumes the next byte and returns true if it equals want.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) errorf(line int, format string, args ...any) {
	s.errors.Add(token.Position{Filename: s.filename, Line: line}, "scan error: "+fmt.Sprintf(format, args...))
}

// Next scans and returns the next token, advancing the scanner. At end of
// input it returns a token.EOF token forever.
func (s *Scanner) Next() clovertoken.Token {
	s.skipWhitespaceAndComments()
	s.start = s.cur
	if s.atEnd() {
		return s.make(clovertoken.EOF, "")
	}

	c := s.advance()
	switch {
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		return s.identifier()
	}

	switch c {
	case '(':
		return s.make(clovertoken.LPAREN, "(")
	case ')':
		return s.make(clovertoken.RPAREN, ")")
	case '{':
		return s.make(clovertoken.LBRACE, "{")
	case '}':
		return s.make(clovertoken.RBRACE, "}")
	case ',':
		return s.make(clovertoken.COMMA, ",")
	case '.':
		return s.make(clovertoken.DOT, ".")
	case '-':
		return s.make(clovertoken.MINUS, "-")
	case '+':
		return s.make(clovertoken.PLUS, "+")
	case ';':
		return s.make(clovertoken.SEMI, ";")
	case '*':
		return s.make(clovertoken.STAR, "*")
	case '/':
		return s.make(clovertoken.SLASH, "/")
	case '!':
		if s.match('=') {
			return s.make(clovertoken.BANG_EQ, "!=")
		}
		return s.make(clovertoken.BANG, "!")
	case '=':
		if s.match('=') {
			return s.make(clovertoken.EQ_EQ, "==")
		}
		return s.make(clovertoken.EQ, "=")
	case '<':
		if s.match('=') {
			return s.make(clovertoken.LT_EQ, "<=")
		}
		return s.make(clovertoken.LT, "<")
	case '>':
		if s.match('=') {
			return s.make(clovertoken.GT_EQ, ">=")
		}
		return s.make(clovertoken.GT, ">")
	case '"':
		return s.string()
	}

	s.errorf(s.line, "unexpected character %q", c)
	return s.Next()
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch c := s.peek(); c {
		case ' ', '\r', '\t':
			s.cur++
		case '\n':
			s.line++
			s.cur++
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.cur++
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) string() clovertoken.Token {
	startLine := s.line
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cur++
	}
	if s.atEnd() {
		s.errorf(startLine, "unterminated string")
		return clovertoken.Token{Kind: clovertoken.STRING, Lexeme: string(s.src[s.start:s.cur]), Literal: "", Line: startLine}
	}
	s.cur++ // closing quote

	lexeme := string(s.src[s.start:s.cur])
	value := string(s.src[s.start+1 : s.cur-1])
	return clovertoken.Token{Kind: clovertoken.STRING, Lexeme: lexeme, Literal: value, Line: startLine}
}

func (s *Scanner) number() clovertoken.Token {
	for isDigit(s.peek()) {
		s.cur++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cur++ // consume '.'
		for isDigit(s.peek()) {
			s.cur++
		}
	}

	lexeme := string(s.src[s.start:s.cur])
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.errorf(s.line, "invalid number literal %q", lexeme)
		f = 0
	}
	return clovertoken.Token{Kind: clovertoken.NUMBER, Lexeme: lexeme, Literal: f, Line: s.line}
}

// identifier scans by advancing while the *current* character is
// alphanumeric or underscore. (A prior draft of this scanner advanced using
// peekNext instead of peek here and produced single-character identifiers;
// that bug must not be reintroduced.)
func (s *Scanner) identifier() clovertoken.Token {
	for isAlphaNumeric(s.peek()) {
		s.cur++
	}
	lexeme := string(s.src[s.start:s.cur])
	if kind, ok := clovertoken.Keywords[lexeme]; ok {
		if kind == clovertoken.TRUE || kind == clovertoken.FALSE {
			return clovertoken.Token{Kind: kind, Lexeme: lexeme, Literal: kind == clovertoken.TRUE, Line: s.line}
		}
		return s.make(kind, lexeme)
	}
	return s.make(clovertoken.IDENT, lexeme)
}

func (s *Scanner) make(kind clovertoken.Kind, lexeme string) clovertoken.Token {
	return clovertoken.Token{Kind: kind, Lexeme: lexeme, Line: s.line}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
