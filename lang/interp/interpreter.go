package interp

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"

	"github.com/mna/clover/lang/ast"
)

// Interpreter walks a resolved *ast.Chunk, executing statements for their
// side effects (print, native clock()) and producing RuntimeErrors when
// runtime semantics are violated. It holds the single globals environment
// plus a pointer to whichever environment is current.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	Stdout      io.Writer
}

// New creates an Interpreter with clock() predeclared in globals, writing
// `print` output to stdout.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", ClockNative())
	return &Interpreter{Globals: globals, environment: globals, Stdout: stdout}
}

// Interpret executes every statement in stmts in source order, stopping at
// the first RuntimeError.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.eval(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		var v Value = Nil
		if s.Initializer != nil {
			var err error
			v, err = in.eval(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.environment.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, NewEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(s.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &UserFunction{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v Value = Nil
		if s.Value != nil {
			var err error
			v, err = in.eval(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: v}

	case *ast.ClassStmt:
		return in.executeClass(s)

	default:
		panic(fmt.Sprintf("interp: unexpected statement %T", stmt))
	}
}

// executeBlock runs stmts in a new child environment, restoring the
// previous current environment on both normal and error exit (including a
// returnSignal unwinding through it).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return runtimeErrorf(s.Superclass.Name.Line, "superclass must be a class")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, Nil)

	env := in.environment
	if s.Superclass != nil {
		env = NewEnvironment(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &UserFunction{
			Declaration:   m,
			Closure:       env,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{ClassName: s.Name.Lexeme, Superclass: superclass, Methods: maps.Clone(methods)}
	in.environment.Assign(s.Name.Lexeme, class)
	return nil
}
