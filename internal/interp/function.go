package interp

import (
	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
)

// Function is a user-declared function or method value: a declaration plus
// the environment that was active when it was declared (its closure).
// IsInitializer marks a class's `init` method, which always returns `this`
// regardless of what its body explicitly returns.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string { return Stringify(f) }

// Bind produces a fresh Function whose closure is a one-variable scope
// binding "this" to instance, nested just inside the method's original
// closure (between that closure and the scope the body runs in).
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

func (f *Function) Call(i *Interpreter, args []Value) (Value, *errors.RuntimeError) {
	i.Tracer.call(f.Declaration.Name.Lexeme, f.Declaration.Name.Line())

	env := NewEnclosedEnvironment(f.Closure)
	for idx, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(f.Declaration.Body, env)

	if rt, ok := err.(*errors.RuntimeError); ok {
		return nil, rt
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}

	if unwind, ok := err.(*returnUnwind); ok {
		return unwind.Value, nil
	}
	return nil, nil
}

// returnUnwind is the control-flow signal `return v;` raises: it propagates
// up through nested block/if/while execution exactly like a runtime error
// would, but is unwrapped back into a normal value at the enclosing
// function call instead of being reported as a failure.
type returnUnwind struct {
	Value Value
}

func (r *returnUnwind) Error() string { return "return" }
