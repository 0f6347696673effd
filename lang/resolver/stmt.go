package resolver

import (
	"fmt"

	"github.com/mna/clover/lang/ast"
)

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.resolveBlock(s.Stmts)

	case *ast.VarStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)

	case *ast.FunctionStmt:
		// declare+define the name first, so the function can recurse.
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, FnFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.ReturnStmt:
		if r.fnKind == FnNone {
			r.errorf(s.Keyword.Line, "can't return from top-level code")
		}
		if s.Value != nil {
			if r.fnKind == FnInitializer {
				r.errorf(s.Keyword.Line, "can't return a value from an initializer")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic(fmt.Sprintf("resolver: unexpected statement %T", stmt))
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind FunctionKind) {
	enclosingFn := r.fnKind
	r.fnKind = kind
	defer func() { r.fnKind = enclosingFn }()

	r.push()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.pop()
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.classKind
	r.classKind = ClassClass
	defer func() { r.classKind = enclosingClass }()

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorf(s.Superclass.Name.Line, "a class can't inherit from itself")
		}
		r.classKind = ClassSubclass
		r.resolveExpr(s.Superclass)

		r.push()
		r.top()["super"] = true
	}

	r.push()
	r.top()["this"] = true

	for _, m := range s.Methods {
		kind := FnMethod
		if m.Name.Lexeme == "init" {
			kind = FnInitializer
		}
		r.resolveFunction(m, kind)
	}

	r.pop() // "this" scope
	if s.Superclass != nil {
		r.pop() // "super" scope
	}
}
