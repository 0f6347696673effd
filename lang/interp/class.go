package interp

// Class is a clover class: a name, an optional superclass reference, and a
// method table. Classes are immutable after construction.
type Class struct {
	ClassName  string
	Superclass *Class
	Methods    map[string]*UserFunction
}

var (
	_ Value    = (*Class)(nil)
	_ Callable = (*Class)(nil)
)

func (c *Class) String() string { return c.ClassName }
func (c *Class) Type() string   { return "class" }
func (c *Class) Name() string   { return c.ClassName }

// FindMethod returns the method named name from this class's own table, or
// recurses into the superclass chain; it returns (nil, false) if no class in
// the chain defines it.
func (c *Class) FindMethod(name string) (*UserFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the init method found on the class or its
// superclass chain, or 0 if no class in the chain declares one.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance of the class. If the class (or an
// ancestor) declares an init method, it is bound to the new instance and
// invoked with args; its return value is discarded since the instance
// itself is always the result of a class call.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
