package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/clover/lang/ast"
	"github.com/mna/clover/lang/parser"
	"github.com/mna/clover/lang/resolver"
)

func parseAndResolve(t *testing.T, src string) *ast.Chunk {
	t.Helper()
	chunk, err := parser.ParseSource("test.clv", []byte(src))
	require.NoError(t, err)
	require.NoError(t, resolver.Resolve("test.clv", chunk))
	return chunk
}

func TestResolveGlobalIsDistanceMinusOne(t *testing.T) {
	chunk := parseAndResolve(t, `var x = 1; x;`)
	es := chunk.Stmts[1].(*ast.ExpressionStmt)
	v := es.Expr.(*ast.Variable)
	assert.Equal(t, -1, v.Slot.Distance)
}

func TestResolveLocalDistance(t *testing.T) {
	chunk := parseAndResolve(t, `
{
  var x = 1;
  {
    var y = 2;
    x;
  }
}
`)
	outer := chunk.Stmts[0].(*ast.BlockStmt)
	inner := outer.Stmts[1].(*ast.BlockStmt)
	es := inner.Stmts[1].(*ast.ExpressionStmt)
	v := es.Expr.(*ast.Variable)
	// x is declared one block out from where it's read.
	assert.Equal(t, 1, v.Slot.Distance)
}

func TestResolveSelfReferenceInInitializerIsError(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`{ var x = x; }`))
	require.NoError(t, err)

	err = resolver.Resolve("test.clv", chunk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own initializer")
}

func TestResolveDuplicateLocalIsError(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`{ var x = 1; var x = 2; }`))
	require.NoError(t, err)

	err = resolver.Resolve("test.clv", chunk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a variable")
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`return 1;`))
	require.NoError(t, err)

	err = resolver.Resolve("test.clv", chunk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-level code")
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`print this;`))
	require.NoError(t, err)

	err = resolver.Resolve("test.clv", chunk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside of a class")
}

func TestResolveInitializerCannotReturnValue(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`
class Foo {
  init() { return 1; }
}
`))
	require.NoError(t, err)

	err = resolver.Resolve("test.clv", chunk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't return a value from an initializer")
}

func TestResolveClassCannotInheritFromItself(t *testing.T) {
	chunk, err := parser.ParseSource("test.clv", []byte(`class Foo < Foo {}`))
	require.NoError(t, err)

	err = resolver.Resolve("test.clv", chunk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveThisDistanceInMethodIsOne(t *testing.T) {
	chunk := parseAndResolve(t, `
class Foo {
  bar() {
    this;
  }
}
`)
	class := chunk.Stmts[0].(*ast.ClassStmt)
	method := class.Methods[0]
	es := method.Body[0].(*ast.ExpressionStmt)
	this := es.Expr.(*ast.This)
	// the method's own body scope is distance 0, so "this" (bound one scope
	// further out) resolves at distance 1.
	assert.Equal(t, 1, this.Slot.Distance)
}

func TestResolveSuperSeesOneMoreScopeThanThis(t *testing.T) {
	chunk := parseAndResolve(t, `
class Animal {
  speak() { print "..."; }
}
class Dog < Animal {
  speak() {
    super.speak();
    this;
  }
}
`)
	dog := chunk.Stmts[1].(*ast.ClassStmt)
	method := dog.Methods[0]

	superCallStmt := method.Body[0].(*ast.ExpressionStmt)
	superCall := superCallStmt.Expr.(*ast.Call)
	super := superCall.Callee.(*ast.Super)

	thisStmt := method.Body[1].(*ast.ExpressionStmt)
	this := thisStmt.Expr.(*ast.This)

	assert.Equal(t, super.Slot.Distance-1, this.Slot.Distance)
}
