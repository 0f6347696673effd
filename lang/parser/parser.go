// Package parser implements the recursive-descent parser that turns a
// clover token stream into an *ast.Chunk.
package parser

import (
	"fmt"
	"go/token"

	"github.com/mna/clover/lang/ast"
	"github.com/mna/clover/lang/scanner"
	clovertoken "github.com/mna/clover/lang/token"
)

// Error and ErrorList are re-exported from lang/scanner for convenience, so
// callers never need to import go/scanner directly to inspect a Parse
// error.
type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// Parse parses a single source file's already-scanned tokens into a Chunk.
// The returned error, if non-nil, is a scanner.ErrorList.
func Parse(filename string, toks []clovertoken.Token) (*ast.Chunk, error) {
	p := &parser{filename: filename, toks: toks}
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declarationSync(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return &ast.Chunk{Stmts: stmts}, p.errors.Err()
}

// ParseSource scans and parses src in one step.
func ParseSource(filename string, src []byte) (*ast.Chunk, error) {
	toks, err := scanner.Scan(filename, src)
	if err != nil {
		return nil, err
	}
	return Parse(filename, toks)
}

type parser struct {
	filename string
	toks     []clovertoken.Token
	cur      int
	errors   ErrorList
}

var errPanicMode = fmt.Errorf("parse error")

func (p *parser) peek() clovertoken.Token { return p.toks[p.cur] }
func (p *parser) atEnd() bool             { return p.peek().Kind == clovertoken.EOF }
func (p *parser) previous() clovertoken.Token {
	return p.toks[p.cur-1]
}

func (p *parser) advance() clovertoken.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *parser) check(k clovertoken.Kind) bool {
	return !p.atEnd() && p.peek().Kind == k
}

func (p *parser) match(kinds ...clovertoken.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the given kind, otherwise it
// records a parse error and panics with errPanicMode, to be recovered by
// declarationSync's synchronize call.
func (p *parser) expect(k clovertoken.Kind, msg string) clovertoken.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAt(p.peek(), msg)
	panic(errPanicMode)
}

func (p *parser) errorAt(tok clovertoken.Token, msg string) {
	where := fmt.Sprintf("at %q", tok.Lexeme)
	if tok.Kind == clovertoken.EOF {
		where = "at end"
	}
	p.errors.Add(token.Position{Filename: p.filename, Line: tok.Line}, fmt.Sprintf("parse error: %s %s", where, msg))
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so that one syntax error does not cascade into a flood of
// spurious follow-on errors.
func (p *parser) synchronize() {
	for !p.atEnd() {
		if p.previous().Kind == clovertoken.SEMI {
			return
		}
		switch p.peek().Kind {
		case clovertoken.CLASS, clovertoken.FUN, clovertoken.VAR, clovertoken.FOR,
			clovertoken.IF, clovertoken.WHILE, clovertoken.PRINT, clovertoken.RETURN:
			return
		}
		p.advance()
	}
}

// declarationSync parses a single top-level declaration, recovering from a
// parse error by synchronizing and returning nil for that declaration.
func (p *parser) declarationSync() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() ast.Stmt {
	switch {
	case p.match(clovertoken.CLASS):
		return p.classDecl()
	case p.match(clovertoken.FUN):
		return p.function("function")
	case p.match(clovertoken.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *parser) classDecl() ast.Stmt {
	name := p.expect(clovertoken.IDENT, "expected class name")

	var super *ast.Variable
	if p.match(clovertoken.LT) {
		superName := p.expect(clovertoken.IDENT, "expected superclass name")
		super = &ast.Variable{Name: superName, Slot: ast.NewSlot()}
	}

	p.expect(clovertoken.LBRACE, "expected '{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(clovertoken.RBRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.expect(clovertoken.RBRACE, "expected '}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: super, Methods: methods}
}

func (p *parser) function(kind string) *ast.FunctionStmt {
	name := p.expect(clovertoken.IDENT, "expected "+kind+" name")
	p.expect(clovertoken.LPAREN, "expected '(' after "+kind+" name")

	var params []clovertoken.Token
	if !p.check(clovertoken.RPAREN) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.expect(clovertoken.IDENT, "expected parameter name"))
			if !p.match(clovertoken.COMMA) {
				break
			}
		}
	}
	p.expect(clovertoken.RPAREN, "expected ')' after parameters")

	p.expect(clovertoken.LBRACE, "expected '{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *parser) varDecl() ast.Stmt {
	name := p.expect(clovertoken.IDENT, "expected variable name")
	var init ast.Expr
	if p.match(clovertoken.EQ) {
		init = p.expression()
	}
	p.expect(clovertoken.SEMI, "expected ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: init}
}
