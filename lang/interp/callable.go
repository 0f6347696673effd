package interp

import "time"

// Callable is the unified call contract shared by native functions, user
// functions and classes (construction). Every implementation is a pointer
// type so that reference identity (used by Equal for callables) is well
// defined and cheap.
type Callable interface {
	Value
	Name() string
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// NativeFunction wraps a Go function as a callable clover value.
type NativeFunction struct {
	FnName  string
	FnArity int
	Fn      func(in *Interpreter, args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) String() string { return "<native fn " + n.FnName + ">" }
func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) Name() string   { return n.FnName }
func (n *NativeFunction) Arity() int     { return n.FnArity }
func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}

// ClockNative is clover's single native function, clock(), returning a Time
// value representing the current wall-clock instant.
func ClockNative() *NativeFunction {
	return &NativeFunction{
		FnName:  "clock",
		FnArity: 0,
		Fn: func(in *Interpreter, args []Value) (Value, error) {
			return Time{T: time.Now()}, nil
		},
	}
}
