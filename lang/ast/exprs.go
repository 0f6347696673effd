package ast

import "github.com/mna/clover/lang/token"

type (
	// Literal is a literal value: a number, string, boolean or nil.
	Literal struct {
		LineNo int
		Value  any // float64, string, bool, or nil
	}

	// Variable is a reference to a named binding, e.g. `x`.
	Variable struct {
		Name token.Token
		Slot *Slot
	}

	// Assign is `name = value`.
	Assign struct {
		Name  token.Token
		Value Expr
		Slot  *Slot
	}

	// Unary is a prefix operator expression: `-x` or `!x`.
	Unary struct {
		Op      token.Token
		Operand Expr
	}

	// Binary is an infix arithmetic, comparison or equality expression.
	Binary struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// Logical is a short-circuiting `or`/`and` expression.
	Logical struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// Grouping is a parenthesized expression: `(expr)`.
	Grouping struct {
		LineNo int
		Inner  Expr
	}

	// Call is a function or method call: `callee(args...)`.
	Call struct {
		Callee Expr
		Paren  token.Token
		Args   []Expr
	}

	// Get reads a property (field or method) off an object: `object.name`.
	Get struct {
		Object Expr
		Name   token.Token
	}

	// Set writes a field on an object: `object.name = value`.
	Set struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// This is a `this` reference inside a method body.
	This struct {
		Keyword token.Token
		Slot    *Slot
	}

	// Super is a `super.method` reference inside a subclass method body.
	Super struct {
		Keyword token.Token
		Method  token.Token
		Slot    *Slot
	}
)

func (*Literal) expr()  {}
func (*Variable) expr() {}
func (*Assign) expr()   {}
func (*Unary) expr()    {}
func (*Binary) expr()   {}
func (*Logical) expr()  {}
func (*Grouping) expr() {}
func (*Call) expr()     {}
func (*Get) expr()      {}
func (*Set) expr()      {}
func (*This) expr()     {}
func (*Super) expr()    {}

func (n *Literal) Line() int  { return n.LineNo }
func (n *Variable) Line() int { return n.Name.Line }
func (n *Assign) Line() int   { return n.Name.Line }
func (n *Unary) Line() int    { return n.Op.Line }
func (n *Binary) Line() int   { return n.Op.Line }
func (n *Logical) Line() int  { return n.Op.Line }
func (n *Grouping) Line() int { return n.LineNo }
func (n *Call) Line() int     { return n.Paren.Line }
func (n *Get) Line() int      { return n.Name.Line }
func (n *Set) Line() int      { return n.Name.Line }
func (n *This) Line() int     { return n.Keyword.Line }
func (n *Super) Line() int    { return n.Keyword.Line }

func (n *Literal) Walk(v Visitor)  {}
func (n *Variable) Walk(v Visitor) {}
func (n *Assign) Walk(v Visitor)   { Walk(v, n.Value) }
func (n *Unary) Walk(v Visitor)    { Walk(v, n.Operand) }
func (n *Binary) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Logical) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Grouping) Walk(v Visitor) { Walk(v, n.Inner) }
func (n *Call) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *Get) Walk(v Visitor) { Walk(v, n.Object) }
func (n *Set) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *This) Walk(v Visitor)  {}
func (n *Super) Walk(v Visitor) {}
