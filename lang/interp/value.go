// Package interp implements the runtime value model and the tree-walking
// evaluator: the component that reads the resolution slots the resolver
// wrote and turns a resolved *ast.Chunk into side effects (print, return
// values from Interpret, runtime errors).
package interp

import (
	"fmt"
	"strconv"
	"time"
)

// Value is any clover runtime value. It uses a small capability-interface
// style: a minimal core interface (String, Type) plus narrow extra
// interfaces (Callable) that only the values supporting that capability
// implement, rather than one bloated sum-type switch scattered through the
// evaluator.
type Value interface {
	// String returns the textual form used by `print` and by string
	// concatenation.
	String() string
	// Type returns a short, lowercase description of the value's runtime
	// type.
	Type() string
}

// Number is a double-precision clover number.
type Number float64

func (n Number) String() string {
	// shortest round-trippable decimal representation.
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}
func (Number) Type() string { return "number" }

// String is a clover string value. Named CloverString to avoid colliding
// with the builtin string type and the String() method above.
type CloverString string

func (s CloverString) String() string { return string(s) }
func (CloverString) Type() string     { return "string" }

// Boolean is a clover boolean value.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Boolean) Type() string { return "boolean" }

// NilValue is the single clover nil value.
type NilValue struct{}

// Nil is the clover nil value.
var Nil = NilValue{}

func (NilValue) String() string { return "nil" }
func (NilValue) Type() string   { return "nil" }

// Time is the opaque result of the native clock() function.
type Time struct{ T time.Time }

func (t Time) String() string { return fmt.Sprintf("%v", t.T.UnixNano()) }
func (Time) Type() string     { return "time" }

// Truthy implements clover's truthiness rule: false and nil are falsy,
// everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case NilValue:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// Equal implements clover's `==`/`!=` semantics: values of different
// variants are never equal and comparing them is never an error, and two
// Callable values are equal only by reference identity.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case CloverString:
		b, ok := b.(CloverString)
		return ok && a == b
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case *Instance:
		b, ok := b.(*Instance)
		return ok && a == b
	default:
		// Callables (native functions, user functions, classes) and any other
		// reference value compare by identity.
		return a == b
	}
}
