package parser

import (
	"github.com/mna/clover/lang/ast"
	clovertoken "github.com/mna/clover/lang/token"
)

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → (call ".")? IDENT "=" assignment | logic_or
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(clovertoken.EQ) {
		eq := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value, Slot: ast.NewSlot()}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}
		p.errorAt(eq, "invalid assignment target")
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(clovertoken.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(clovertoken.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(clovertoken.BANG_EQ, clovertoken.EQ_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(clovertoken.GT, clovertoken.GT_EQ, clovertoken.LT, clovertoken.LT_EQ) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(clovertoken.MINUS, clovertoken.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(clovertoken.SLASH, clovertoken.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(clovertoken.BANG, clovertoken.MINUS) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(clovertoken.LPAREN):
			expr = p.finishCall(expr)
		case p.match(clovertoken.DOT):
			name := p.expect(clovertoken.IDENT, "expected property name after '.'")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(clovertoken.RPAREN) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(clovertoken.COMMA) {
				break
			}
		}
	}
	paren := p.expect(clovertoken.RPAREN, "expected ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.match(clovertoken.FALSE):
		return &ast.Literal{LineNo: tok.Line, Value: false}
	case p.match(clovertoken.TRUE):
		return &ast.Literal{LineNo: tok.Line, Value: true}
	case p.match(clovertoken.NIL):
		return &ast.Literal{LineNo: tok.Line, Value: nil}
	case p.match(clovertoken.NUMBER, clovertoken.STRING):
		return &ast.Literal{LineNo: tok.Line, Value: tok.Literal}
	case p.match(clovertoken.SUPER):
		keyword := p.previous()
		p.expect(clovertoken.DOT, "expected '.' after 'super'")
		method := p.expect(clovertoken.IDENT, "expected superclass method name")
		return &ast.Super{Keyword: keyword, Method: method, Slot: ast.NewSlot()}
	case p.match(clovertoken.THIS):
		return &ast.This{Keyword: p.previous(), Slot: ast.NewSlot()}
	case p.match(clovertoken.IDENT):
		return &ast.Variable{Name: p.previous(), Slot: ast.NewSlot()}
	case p.match(clovertoken.LPAREN):
		lineNo := p.previous().Line
		inner := p.expression()
		p.expect(clovertoken.RPAREN, "expected ')' after expression")
		return &ast.Grouping{LineNo: lineNo, Inner: inner}
	}

	p.errorAt(tok, "expected expression")
	panic(errPanicMode)
}
