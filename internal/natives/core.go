package natives

import (
	"strings"
	"time"

	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
)

func registerCore(globals *interp.Environment) {
	define(globals, "clock", 0, nativeClock)
	define(globals, "input", 0, nativeInput)
	define(globals, "sleep", 1, nativeSleep)
	define(globals, "exit", 1, nativeExit)
	define(globals, "length", 1, nativeLength)
	define(globals, "isType", 2, nativeIsType)
	define(globals, "convert", 2, nativeConvert)
	define(globals, "print", 1, nativePrint)
}

func nativeClock(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	return float64(time.Now().UnixNano()) / 1e9, nil
}

func nativeInput(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	line, err := i.Stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func nativeSleep(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	n, ok := args[0].(float64)
	if !ok || n <= 0 {
		return nil, runtimeErr("sleep() requires a positive number.")
	}
	time.Sleep(time.Duration(n * float64(time.Second)))
	return nil, nil
}

func nativeExit(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	n, ok := args[0].(float64)
	if !ok {
		return nil, runtimeErr("exit() requires a number.")
	}
	i.Exit(int(n))
	return nil, nil
}

func nativeLength(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	switch v := args[0].(type) {
	case string:
		return float64(len([]rune(v))), nil
	case *interp.List:
		return float64(len(v.Elements)), nil
	default:
		return nil, runtimeErr("length() requires a list or string.")
	}
}

func nativeIsType(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	want, ok := args[1].(string)
	if !ok {
		return nil, runtimeErr("isType() expects a type name string.")
	}
	switch want {
	case "number", "boolean", "string", "list":
	default:
		return nil, runtimeErr("isType() unknown type %q.", want)
	}
	got, ok := interp.TypeName(args[0])
	return ok && got == want, nil
}

// nativeConvert implements a deliberately asymmetric boolean conversion
// rule: only the literal string "false" (any case) converts to boolean
// false; every other non-nil, non-false value converts to true.
func nativeConvert(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	target, ok := args[1].(string)
	if !ok {
		return nil, runtimeErr("convert() expects a type name string.")
	}

	v := args[0]
	switch target {
	case "string":
		return interp.Stringify(v), nil
	case "number":
		switch n := v.(type) {
		case float64:
			return n, nil
		case string:
			f, err := parseFloat(n)
			if err != nil {
				return nil, runtimeErr("convert() could not parse %q as a number.", n)
			}
			return f, nil
		case bool:
			if n {
				return 1.0, nil
			}
			return 0.0, nil
		default:
			return nil, runtimeErr("convert() cannot convert to number.")
		}
	case "boolean":
		if s, ok := v.(string); ok {
			return !strings.EqualFold(s, "false"), nil
		}
		return interp.IsTruthy(v), nil
	default:
		return nil, runtimeErr("convert() unknown type %q.", target)
	}
}

func nativePrint(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	_, _ = i.Stdout.Write([]byte(interp.Stringify(args[0]) + "\n"))
	return nil, nil
}
