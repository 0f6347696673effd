package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/clover/lang/ast"
	"github.com/mna/clover/lang/parser"
)

func TestParseExpressionStatement(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`1 + 2 * 3;`))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)

	es, ok := chunk.Stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	bin, ok := es.Expr.(*ast.Binary)
	require.True(t, ok)
	lit, ok := bin.Left.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 1.0, lit.Value)

	// '*' binds tighter than '+', so the right side of the top-level '+' is
	// itself a Binary '*' expression.
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Op.Lexeme)
}

func TestParseVarDeclaration(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`var x = 1;`))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)

	v, ok := chunk.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	require.NotNil(t, v.Initializer)
}

func TestParseForLoopDesugarsToWhile(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`
for (var i = 0; i < 3; i = i + 1) print i;
`))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)

	// the desugared form is a block containing the initializer followed by a
	// while loop whose body is itself a block of {original body; increment}.
	outer, ok := chunk.Stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Stmts, 2)

	_, ok = outer.Stmts[0].(*ast.VarStmt)
	require.True(t, ok, "first statement must be the for-loop initializer")

	while, ok := outer.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement must be the desugared while loop")
	require.NotNil(t, while.Cond)

	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2, "body must contain the original body plus the increment")
}

func TestParseClassDeclaration(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`
class Animal {
  speak() { print "..."; }
}
class Dog < Animal {
  speak() { print "Woof"; }
}
`))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 2)

	base, ok := chunk.Stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Animal", base.Name.Lexeme)
	assert.Nil(t, base.Superclass)
	require.Len(t, base.Methods, 1)
	assert.Equal(t, "speak", base.Methods[0].Name.Lexeme)

	sub, ok := chunk.Stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, sub.Superclass)
	assert.Equal(t, "Animal", sub.Superclass.Name.Lexeme)
}

func TestParseSyntaxErrorReportsAndSynchronizes(t *testing.T) {
	// the first statement is malformed (missing right operand), the second is
	// valid; synchronize should recover in time to parse the var declaration
	// too.
	chunk, err := parser.ParseSource("test.clv", []byte(`
1 + ;
var x = 2;
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
	require.Len(t, chunk.Stmts, 1)
	_, ok := chunk.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok, "the var declaration after the error must still be parsed")
}

func TestParseAssignmentTarget(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`x = 1;`))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)

	es := chunk.Stmts[0].(*ast.ExpressionStmt)
	assign, ok := es.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetIsError(t *testing.T) {
	_, err := parser.ParseSource("test.clv", []byte(`1 = 2;`))
	require.Error(t, err)
}
