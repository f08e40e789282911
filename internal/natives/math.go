package natives

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
)

func registerMath(globals *interp.Environment) {
	define(globals, "sqrt", 1, unaryMath(math.Sqrt))
	define(globals, "ln", 1, unaryMath(math.Log))
	define(globals, "log10", 1, unaryMath(math.Log10))
	define(globals, "exp", 1, unaryMath(math.Exp))
	define(globals, "randInt", 2, nativeRandInt)
	define(globals, "randFloat", 2, nativeRandFloat)
}

func unaryMath(f func(float64) float64) func(*interp.Interpreter, []interp.Value) (interp.Value, *errors.RuntimeError) {
	return func(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
		n, ok := args[0].(float64)
		if !ok {
			return nil, runtimeErr("Operand(s) must be number(s).")
		}
		return f(n), nil
	}
}

func nativeRandInt(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	a, aok := args[0].(float64)
	b, bok := args[1].(float64)
	if !aok || !bok {
		return nil, runtimeErr("Operand(s) must be number(s).")
	}
	lo, hi := int(a), int(b)
	if hi < lo {
		lo, hi = hi, lo
	}
	return float64(lo + rand.Intn(hi-lo+1)), nil
}

func nativeRandFloat(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	a, aok := args[0].(float64)
	b, bok := args[1].(float64)
	if !aok || !bok {
		return nil, runtimeErr("Operand(s) must be number(s).")
	}
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rand.Float64()*(hi-lo), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
