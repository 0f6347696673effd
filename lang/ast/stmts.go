package ast

import "github.com/mna/clover/lang/token"

type (
	// ExpressionStmt is an expression evaluated for its side effects.
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt is `print expr;`.
	PrintStmt struct {
		Keyword token.Token
		Expr    Expr
	}

	// VarStmt is `var name = initializer;` (Initializer may be nil).
	VarStmt struct {
		Name        token.Token
		Initializer Expr
	}

	// BlockStmt is a `{ ... }` block, introducing a new lexical scope.
	BlockStmt struct {
		LineNo int
		Stmts  []Stmt
	}

	// IfStmt is `if (cond) then [else else_]`.
	IfStmt struct {
		Keyword token.Token
		Cond    Expr
		Then    Stmt
		Else    Stmt // nil if there is no else branch
	}

	// WhileStmt is `while (cond) body`. A desugared `for` loop is
	// represented purely as a WhileStmt, wrapped in a BlockStmt when the loop
	// has an initializer; there is no separate ForStmt node.
	WhileStmt struct {
		Keyword token.Token
		Cond    Expr
		Body    Stmt
	}

	// FunctionStmt is a named function declaration, and is also reused (with
	// Name holding the method name) to represent a class method.
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt is `return [value];`.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr // nil if no value was given
	}

	// ClassStmt is a class declaration, optionally with a superclass.
	ClassStmt struct {
		Name       token.Token
		Superclass *Variable // nil if there is no `< Superclass` clause
		Methods    []*FunctionStmt
	}
)

func (*ExpressionStmt) stmt() {}
func (*PrintStmt) stmt()      {}
func (*VarStmt) stmt()        {}
func (*BlockStmt) stmt()      {}
func (*IfStmt) stmt()         {}
func (*WhileStmt) stmt()      {}
func (*FunctionStmt) stmt()   {}
func (*ReturnStmt) stmt()     {}
func (*ClassStmt) stmt()      {}

func (n *ExpressionStmt) Line() int { return n.Expr.Line() }
func (n *PrintStmt) Line() int      { return n.Keyword.Line }
func (n *VarStmt) Line() int        { return n.Name.Line }
func (n *BlockStmt) Line() int      { return n.LineNo }
func (n *IfStmt) Line() int         { return n.Keyword.Line }
func (n *WhileStmt) Line() int      { return n.Keyword.Line }
func (n *FunctionStmt) Line() int   { return n.Name.Line }
func (n *ReturnStmt) Line() int     { return n.Keyword.Line }
func (n *ClassStmt) Line() int      { return n.Name.Line }

func (n *ExpressionStmt) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *PrintStmt) Walk(v Visitor)      { Walk(v, n.Expr) }
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
