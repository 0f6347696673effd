package interp

import "github.com/dolthub/swiss"

// Instance is a clover object: a reference to its class plus its own
// mutable field storage. Fields shadow methods on read.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

// NewInstance allocates a new, field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.Class.ClassName + " instance" }
func (i *Instance) Type() string   { return "instance" }

// Get returns the field value if present; otherwise it looks up a method on
// the instance's class chain and binds it to this instance; otherwise it
// reports an "undefined property" runtime error.
func (i *Instance) Get(name string, line int) (Value, error) {
	if v, ok := i.Fields.Get(name); ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), nil
	}
	return nil, runtimeErrorf(line, "undefined property %q", name)
}

// Set unconditionally writes value to the instance's field map; fields are
// created on first write.
func (i *Instance) Set(name string, value Value) {
	i.Fields.Put(name, value)
}
