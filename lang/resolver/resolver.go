// Package resolver implements the static pass that assigns every variable,
// `this` and `super` use in an *ast.Chunk a resolution slot: how many
// enclosing environments the evaluator must walk at runtime to find the
// binding, per ast.Slot. It also reports static errors (duplicate local
// declarations, self-reference in an initializer, misplaced
// return/this/super).
//
// The resolver is a single pre-order pass over the tree, maintaining a
// stack of scopes; each scope is simply a map of name to "has its
// initializer finished", and the resolver's job reduces to counting how
// many scopes up a name is found.
package resolver

import (
	"fmt"
	"go/scanner"
	"go/token"

	"github.com/mna/clover/lang/ast"
)

// ErrorList is the error type returned by Resolve; it is a go/scanner.ErrorList,
// the same error vocabulary lang/scanner and lang/parser use.
type ErrorList = scanner.ErrorList

// FunctionKind tracks what kind of function body the resolver is currently
// inside, to validate `return` placement.
type FunctionKind uint8

const (
	FnNone FunctionKind = iota
	FnFunction
	FnMethod
	FnInitializer
)

// ClassKind tracks what kind of class body the resolver is currently
// inside, to validate `this` and `super` placement.
type ClassKind uint8

const (
	ClassNone ClassKind = iota
	ClassClass
	ClassSubclass
)

// Resolve runs the resolver over chunk, mutating every ast.Slot it
// encounters in place. The returned error, if non-nil, is a
// scanner.ErrorList.
func Resolve(filename string, chunk *ast.Chunk) error {
	r := &resolver{filename: filename}
	r.resolveStmts(chunk.Stmts)
	return r.errors.Err()
}

type scope = map[string]bool

type resolver struct {
	filename string
	scopes   []scope
	fnKind   FunctionKind
	classKind ClassKind
	errors   ErrorList
}

func (r *resolver) errorf(line int, format string, args ...any) {
	r.errors.Add(token.Position{Filename: r.filename, Line: line}, "resolve error: "+fmt.Sprintf(format, args...))
}

func (r *resolver) push()       { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) pop()        { r.scopes = r.scopes[:len(r.scopes)-1] }
func (r *resolver) top() scope  { return r.scopes[len(r.scopes)-1] }
func (r *resolver) inGlobal() bool { return len(r.scopes) == 0 }

func (r *resolver) declare(name string, line int) {
	if r.inGlobal() {
		return
	}
	sc := r.top()
	if _, ok := sc[name]; ok {
		r.errorf(line, "already a variable named %q in this scope", name)
	}
	sc[name] = false
}

func (r *resolver) define(name string) {
	if r.inGlobal() {
		return
	}
	r.top()[name] = true
}

// resolveLocal searches the scope stack top-down for name, and if found
// writes the corresponding distance into slot. If name is never found in a
// local scope, slot is left at -1 (global).
func (r *resolver) resolveLocal(slot *ast.Slot, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			slot.Distance = len(r.scopes) - 1 - i
			return
		}
	}
	slot.Distance = -1
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveBlock(stmts []ast.Stmt) {
	r.push()
	r.resolveStmts(stmts)
	r.pop()
}
