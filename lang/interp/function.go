package interp

import "github.com/mna/clover/lang/ast"

// UserFunction is a function or method defined by an ast.FunctionStmt,
// paired with the environment it closed over at the point the statement
// executed.
type UserFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

var (
	_ Value    = (*UserFunction)(nil)
	_ Callable = (*UserFunction)(nil)
)

func (f *UserFunction) String() string { return "<fn " + f.Name() + ">" }
func (f *UserFunction) Type() string   { return "function" }
func (f *UserFunction) Name() string {
	if f.Declaration.Name.Lexeme == "" {
		return "anonymous"
	}
	return f.Declaration.Name.Lexeme
}
func (f *UserFunction) Arity() int { return len(f.Declaration.Params) }

// Bind produces a new UserFunction whose captured environment extends f's
// closure with a single fresh frame binding "this" to instance. The
// resolver always resolves a method body's "this" at distance 1, one hop
// past the method's own parameter/body scope, so the bound function's
// closure layout here must mirror that (the params frame is directly
// enclosed by the "this" frame, which is enclosed by the method's original
// closure).
func (f *UserFunction) Bind(instance *Instance) *UserFunction {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &UserFunction{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call implements Callable. It creates a new environment enclosing the
// function's captured environment (never the caller's), binds each
// parameter, executes the body, and returns either the caught return value,
// nil, or (for an initializer) the "this" bound at distance 0 in Closure.
func (f *UserFunction) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.Declaration.Body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return Nil, nil
}
