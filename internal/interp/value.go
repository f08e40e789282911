package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a Lox runtime value. It is one of: nil, bool, float64, string,
// *List, Callable, or *Instance. Go's any plus type switches stands in for
// a tagged union; there is no sealed interface to enumerate the cases
// because new Callable implementations (native functions, user functions,
// classes) all satisfy the same three-method contract without needing a
// shared marker.
type Value any

// List is a Lox list: ordered, mutable, and reference-identity — two
// variables holding the "same" list share mutations.
type List struct {
	Elements []Value
}

// NewList wraps elems as a List, taking ownership of the slice.
func NewList(elems []Value) *List {
	return &List{Elements: elems}
}

// IsTruthy reports Lox truthiness: nil and false are falsey, everything
// else — including 0, "", and an empty list — is truthy.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// IsEqual implements Lox `==`: same kind and same contents. Unlike Go's
// `==`, this must not panic on uncomparable values like *List or *Instance,
// so lists and instances fall through to pointer identity.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders v the way `print` and string-coercing `+` do.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case *List:
		parts := make([]string, len(val.Elements))
		for i, e := range val.Elements {
			parts[i] = Stringify(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Instance:
		return fmt.Sprintf("<class %s instance>", val.Class.Name)
	case *Function:
		return fmt.Sprintf("<fn %s>", val.Declaration.Name.Lexeme)
	case *Class:
		return fmt.Sprintf("<class %s>", val.Name)
	case *NativeFunction:
		return fmt.Sprintf("<native fn %s>", val.Name)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber strips the trailing ".0" Go's default float formatting
// would otherwise add to integer-valued numbers.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}

// TypeName names v as one of the isType() categories.
func TypeName(v Value) (string, bool) {
	switch v.(type) {
	case float64:
		return "number", true
	case bool:
		return "boolean", true
	case string:
		return "string", true
	case *List:
		return "list", true
	default:
		return "", false
	}
}
