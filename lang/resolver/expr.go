package resolver

import (
	"fmt"

	"github.com/mna/clover/lang/ast"
)

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if !r.inGlobal() {
			if defined, ok := r.top()[e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Name.Line, "can't read local variable %q in its own initializer", e.Name.Lexeme)
			}
		}
		r.resolveLocal(e.Slot, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Slot, e.Name.Lexeme)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Unary:
		r.resolveExpr(e.Operand)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.classKind == ClassNone {
			r.errorf(e.Keyword.Line, "can't use 'this' outside of a class")
			e.Slot.Distance = -1
			return
		}
		r.resolveLocal(e.Slot, "this")

	case *ast.Super:
		switch r.classKind {
		case ClassNone:
			r.errorf(e.Keyword.Line, "can't use 'super' outside of a class")
		case ClassClass:
			r.errorf(e.Keyword.Line, "can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(e.Slot, "super")

	default:
		panic(fmt.Sprintf("resolver: unexpected expression %T", expr))
	}
}
