package natives

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
)

// registerJSON adds JSON path accessors to the native set: a Lox program
// can reach into structured config/log text without first writing its own
// parser. Built on gjson/sjson rather than encoding/json since both
// operate on raw JSON text by path, matching Lox's dynamically-typed,
// schema-less values better than decoding into a fixed Go type would.
func registerJSON(globals *interp.Environment) {
	define(globals, "jsonGet", 2, nativeJSONGet)
	define(globals, "jsonSet", 3, nativeJSONSet)
}

func nativeJSONGet(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	doc, ok := args[0].(string)
	if !ok {
		return nil, runtimeErr("jsonGet() requires a string document.")
	}
	path, ok := args[1].(string)
	if !ok {
		return nil, runtimeErr("jsonGet() requires a string path.")
	}

	result := gjson.Get(doc, path)
	if !result.Exists() {
		return nil, nil
	}
	return gjsonToValue(result), nil
}

func nativeJSONSet(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
	doc, ok := args[0].(string)
	if !ok {
		return nil, runtimeErr("jsonSet() requires a string document.")
	}
	path, ok := args[1].(string)
	if !ok {
		return nil, runtimeErr("jsonSet() requires a string path.")
	}

	updated, err := sjson.Set(doc, path, valueToJSON(args[2]))
	if err != nil {
		return nil, runtimeErr("jsonSet() failed: %s", err.Error())
	}
	return updated, nil
}

func gjsonToValue(r gjson.Result) interp.Value {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num
	case gjson.String:
		return r.Str
	case gjson.JSON:
		if r.IsArray() {
			var elems []interp.Value
			r.ForEach(func(_, value gjson.Result) bool {
				elems = append(elems, gjsonToValue(value))
				return true
			})
			return interp.NewList(elems)
		}
		return r.String()
	default:
		return r.String()
	}
}

func valueToJSON(v interp.Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case bool, float64, string:
		return val
	case *interp.List:
		elems := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			elems[i] = valueToJSON(e)
		}
		return elems
	default:
		return interp.Stringify(v)
	}
}
