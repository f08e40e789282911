package interp

import "github.com/lox-lang/golox/internal/errors"

// Class is a Lox class value: a name, an optional superclass, and its own
// (non-inherited) methods. Calling a Class constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) String() string { return Stringify(c) }

// FindMethod looks up name in this class, then walks the superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the initializer's arity, or 0 if the class has none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(i *Interpreter, args []Value) (Value, *errors.RuntimeError) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a live object: its class plus a mutable field map. Property
// reads check fields before methods; property writes always go to fields.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (inst *Instance) String() string { return Stringify(inst) }

// Get implements property access: fields first, then a bound method from
// the class chain.
func (inst *Instance) Get(name string) (Value, bool) {
	if v, ok := inst.Fields[name]; ok {
		return v, true
	}
	if m, ok := inst.Class.FindMethod(name); ok {
		return m.Bind(inst), true
	}
	return nil, false
}

// Set writes a field unconditionally, creating it if absent.
func (inst *Instance) Set(name string, value Value) {
	inst.Fields[name] = value
}
