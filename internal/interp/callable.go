package interp

import "github.com/lox-lang/golox/internal/errors"

// Callable is anything that can appear on the left of a call expression:
// native functions, user-declared functions (with their closure), and
// classes (construction).
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []Value) (Value, *errors.RuntimeError)
	String() string
}

// NativeFunction wraps a Go function as a Lox callable. Fn reports
// failures as a *errors.RuntimeError with no token set; the call site
// (Interpreter.evalCall) fills in the location.
type NativeFunction struct {
	Name  string
	Arity_ int
	Fn    func(i *Interpreter, args []Value) (Value, *errors.RuntimeError)
}

func (n *NativeFunction) Arity() int { return n.Arity_ }

func (n *NativeFunction) Call(i *Interpreter, args []Value) (Value, *errors.RuntimeError) {
	return n.Fn(i, args)
}

func (n *NativeFunction) String() string { return Stringify(n) }
