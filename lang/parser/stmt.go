package parser

import (
	"github.com/mna/clover/lang/ast"
	clovertoken "github.com/mna/clover/lang/token"
)

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(clovertoken.FOR):
		return p.forStmt()
	case p.match(clovertoken.IF):
		return p.ifStmt()
	case p.match(clovertoken.PRINT):
		return p.printStmt()
	case p.match(clovertoken.RETURN):
		return p.returnStmt()
	case p.match(clovertoken.WHILE):
		return p.whileStmt()
	case p.match(clovertoken.LBRACE):
		lineNo := p.previous().Line
		return &ast.BlockStmt{LineNo: lineNo, Stmts: p.block()}
	default:
		return p.exprStmt()
	}
}

func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(clovertoken.RBRACE) && !p.atEnd() {
		if s := p.declarationSync(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(clovertoken.RBRACE, "expected '}' after block")
	return stmts
}

// forStmt desugars the three-part for loop into a while loop. When a
// post-expression is given, the loop body is a block of the original body
// followed by the post-expression; when an initializer is given, the result
// is a block of the initializer followed by the while loop. A missing
// condition becomes a literal true. There is no dedicated ast.For node.
func (p *parser) forStmt() ast.Stmt {
	keyword := p.previous()
	p.expect(clovertoken.LPAREN, "expected '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(clovertoken.SEMI):
		init = nil
	case p.match(clovertoken.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(clovertoken.SEMI) {
		cond = p.expression()
	}
	p.expect(clovertoken.SEMI, "expected ';' after loop condition")

	var post ast.Expr
	if !p.check(clovertoken.RPAREN) {
		post = p.expression()
	}
	p.expect(clovertoken.RPAREN, "expected ')' after for clauses")

	body := p.statement()

	if post != nil {
		body = &ast.BlockStmt{LineNo: keyword.Line, Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: post}}}
	}
	if cond == nil {
		cond = &ast.Literal{LineNo: keyword.Line, Value: true}
	}
	body = &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{LineNo: keyword.Line, Stmts: []ast.Stmt{init, body}}
	}
	return body
}

func (p *parser) ifStmt() ast.Stmt {
	keyword := p.previous()
	p.expect(clovertoken.LPAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.expect(clovertoken.RPAREN, "expected ')' after if condition")

	then := p.statement()
	var els ast.Stmt
	if p.match(clovertoken.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Keyword: keyword, Cond: cond, Then: then, Else: els}
}

func (p *parser) printStmt() ast.Stmt {
	keyword := p.previous()
	val := p.expression()
	p.expect(clovertoken.SEMI, "expected ';' after value")
	return &ast.PrintStmt{Keyword: keyword, Expr: val}
}

func (p *parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var val ast.Expr
	if !p.check(clovertoken.SEMI) {
		val = p.expression()
	}
	p.expect(clovertoken.SEMI, "expected ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: val}
}

func (p *parser) whileStmt() ast.Stmt {
	keyword := p.previous()
	p.expect(clovertoken.LPAREN, "expected '(' after 'while'")
	cond := p.expression()
	p.expect(clovertoken.RPAREN, "expected ')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}
}

func (p *parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(clovertoken.SEMI, "expected ';' after expression")
	return &ast.ExpressionStmt{Expr: expr}
}
