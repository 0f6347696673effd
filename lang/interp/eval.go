package interp

import (
	"fmt"

	"github.com/mna/clover/lang/ast"
	"github.com/mna/clover/lang/token"
)

func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.eval(e.Inner)

	case *ast.Variable:
		return in.lookUpVariable(e.Name.Lexeme, e.Slot, e.Name.Line)

	case *ast.Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if e.Slot.Distance == -1 {
			if !in.Globals.Assign(e.Name.Lexeme, v) {
				return nil, runtimeErrorf(e.Name.Line, "undefined variable %q", e.Name.Lexeme)
			}
		} else {
			in.environment.AssignAt(e.Slot.Distance, e.Name.Lexeme, v)
		}
		return v, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		left, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.OR {
			if Truthy(left) {
				return left, nil
			}
		} else { // AND
			if !Truthy(left) {
				return left, nil
			}
		}
		return in.eval(e.Right)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErrorf(e.Name.Line, "only instances have properties")
		}
		return inst.Get(e.Name.Lexeme, e.Name.Line)

	case *ast.Set:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErrorf(e.Name.Line, "only instances have fields")
		}
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Lexeme, v)
		return v, nil

	case *ast.This:
		return in.lookUpVariable("this", e.Slot, e.Keyword.Line)

	case *ast.Super:
		return in.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unexpected expression %T", expr))
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil
	case float64:
		return Number(v)
	case string:
		return CloverString(v)
	case bool:
		return Boolean(v)
	default:
		panic(fmt.Sprintf("interp: unexpected literal value %#v", v))
	}
}

func (in *Interpreter) lookUpVariable(name string, slot *ast.Slot, line int) (Value, error) {
	if slot.Distance == -1 {
		if v, ok := in.Globals.Get(name); ok {
			return v, nil
		}
		return nil, runtimeErrorf(line, "undefined variable %q", name)
	}
	return in.environment.GetAt(slot.Distance, name), nil
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	operand, err := in.eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := operand.(Number)
		if !ok {
			return nil, runtimeErrorf(e.Op.Line, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return Boolean(!Truthy(operand)), nil
	}
	panic(fmt.Sprintf("interp: unexpected unary operator %v", e.Op.Kind))
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQ_EQ:
		return Boolean(Equal(left, right)), nil
	case token.BANG_EQ:
		return Boolean(!Equal(left, right)), nil
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(CloverString); ok {
			if rs, ok := right.(CloverString); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErrorf(e.Op.Line, "operands must be two numbers or two strings")
	}

	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return nil, runtimeErrorf(e.Op.Line, "operands must be numbers")
	}

	switch e.Op.Kind {
	case token.MINUS:
		return ln - rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.SLASH:
		if rn == 0 {
			return nil, runtimeErrorf(e.Op.Line, "division by zero")
		}
		return ln / rn, nil
	case token.GT:
		return Boolean(ln > rn), nil
	case token.GT_EQ:
		return Boolean(ln >= rn), nil
	case token.LT:
		return Boolean(ln < rn), nil
	case token.LT_EQ:
		return Boolean(ln <= rn), nil
	}
	panic(fmt.Sprintf("interp: unexpected binary operator %v", e.Op.Kind))
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "can only call functions and classes")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := e.Slot.Distance
	superVal := in.environment.GetAt(distance, "super")
	super, ok := superVal.(*Class)
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "super is not bound to a class")
	}

	// "this" lives exactly one hop nearer than "super".
	thisVal := in.environment.GetAt(distance-1, "this")
	this, ok := thisVal.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "this is not bound to an instance")
	}

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Method.Line, "undefined property %q", e.Method.Lexeme)
	}
	return method.Bind(this), nil
}
