// Package natives seeds an Interpreter's global environment with the
// native function set: a baseline of core/math helpers plus a few
// additions (JSON accessors, Unicode-correct case conversion). The
// registry is meant to grow — new natives are just another define() call.
package natives

import (
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
)

// Install registers every native function and constant into globals. It is
// called once per Interpreter, before the program's top-level statements
// run.
func Install(globals *interp.Environment) {
	registerCore(globals)
	registerMath(globals)
	registerJSON(globals)
	registerText(globals)

	globals.Define("PI", float64(3.14159265358979323846))
	globals.Define("E", float64(2.71828182845904523536))
}

func define(globals *interp.Environment, name string, arity int, fn func(*interp.Interpreter, []interp.Value) (interp.Value, *errors.RuntimeError)) {
	globals.Define(name, &interp.NativeFunction{Name: name, Arity_: arity, Fn: fn})
}
