package interp

import "github.com/dolthub/swiss"

// Environment is a single lexical frame: a mapping from names to values plus
// an optional reference to the enclosing frame. Environments are created at
// block and call entry and shared by reference across every closure that
// captures them, so writes through one alias are visible through every
// other alias of the same frame.
type Environment struct {
	values    *swiss.Map[string, Value]
	enclosing *Environment
}

// NewEnvironment creates a new environment enclosed by parent, which may be
// nil for the root (global) environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8), enclosing: parent}
}

// Define unconditionally binds name to value in the current environment.
// Unlike Assign, Define always creates (or overwrites) a binding; it never
// fails.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get searches the current environment and then its enclosing chain for
// name. It is used only for globals (resolution slot -1); everything the
// resolver localized uses GetAt instead.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the chain and writes value to the nearest frame that already
// contains name, failing if no such frame exists. Assign never creates a
// new binding.
func (e *Environment) Assign(name string, value Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, value)
			return true
		}
	}
	return false
}

// ancestor walks exactly distance hops up the enclosing chain.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt jumps exactly distance hops then reads name directly from that
// frame, bypassing the chain search. distance 0 means the current
// environment. The resolver guarantees the binding exists there.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.ancestor(distance).values.Get(name)
	return v
}

// AssignAt jumps exactly distance hops then writes name directly in that
// frame.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values.Put(name, value)
}
