package interp

import (
	"fmt"

	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/token"
)

func (i *Interpreter) evalExpr(expr ast.Expr) (Value, *errors.RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return i.evalExpr(e.Expression)

	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)

	case *ast.Assign:
		value, err := i.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.resolveDistance(e); ok {
			i.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if !i.Globals.Assign(e.Name.Lexeme, value) {
			return nil, undefinedVariableError(e.Name)
		}
		return value, nil

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		return i.evalGet(e)

	case *ast.Set:
		return i.evalSet(e)

	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.Super:
		return i.evalSuper(e)

	case *ast.List:
		elems := make([]Value, len(e.Elements))
		for idx, elExpr := range e.Elements {
			v, err := i.evalExpr(elExpr)
			if err != nil {
				return nil, err
			}
			elems[idx] = v
		}
		return NewList(elems), nil

	case *ast.Index:
		return i.evalIndex(e)

	case *ast.IndexSet:
		return i.evalIndexSet(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, *errors.RuntimeError) {
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, operandError(e.Operator)
		}
		return -n, nil
	case token.BANG:
		return !IsTruthy(right), nil
	}
	panic("interp: unhandled unary operator " + e.Operator.Lexeme)
}

func (i *Interpreter) evalLogical(e *ast.Logical) (Value, *errors.RuntimeError) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return i.evalExpr(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, *errors.RuntimeError) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandError(e.Operator)
		}
		return ln - rn, nil

	case token.SLASH:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandError(e.Operator)
		}
		if rn == 0 {
			return nil, &errors.RuntimeError{Token: e.Operator, Message: "Cannot divide by 0."}
		}
		return ln / rn, nil

	case token.STAR:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandError(e.Operator)
		}
		return ln * rn, nil

	case token.PLUS:
		return i.evalPlus(e.Operator, left, right)

	case token.GREATER:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandError(e.Operator)
		}
		return ln > rn, nil

	case token.GREATER_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandError(e.Operator)
		}
		return ln >= rn, nil

	case token.LESS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandError(e.Operator)
		}
		return ln < rn, nil

	case token.LESS_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandError(e.Operator)
		}
		return ln <= rn, nil

	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	}

	panic("interp: unhandled binary operator " + e.Operator.Lexeme)
}

// evalPlus implements `+`'s three-way dispatch: numeric addition, list
// append (returning a copy), or string concatenation once either side is a
// string.
func (i *Interpreter) evalPlus(operator token.Token, left, right Value) (Value, *errors.RuntimeError) {
	if ln, ok := left.(float64); ok {
		if rn, ok := right.(float64); ok {
			return ln + rn, nil
		}
	}
	if list, ok := left.(*List); ok {
		copied := make([]Value, len(list.Elements), len(list.Elements)+1)
		copy(copied, list.Elements)
		return NewList(append(copied, right)), nil
	}
	_, leftIsString := left.(string)
	_, rightIsString := right.(string)
	if leftIsString || rightIsString {
		return Stringify(left) + Stringify(right), nil
	}
	return nil, &errors.RuntimeError{Token: operator, Message: "Operand(s) must be number(s)."}
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, *errors.RuntimeError) {
	callee, err := i.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for idx, argExpr := range e.Arguments {
		v, err := i.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &errors.RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}

	if len(args) != callable.Arity() {
		return nil, &errors.RuntimeError{
			Token: e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)),
		}
	}

	value, callErr := callable.Call(i, args)
	if callErr != nil {
		return nil, &errors.RuntimeError{Token: e.Paren, Message: callErr.Message}
	}
	return value, nil
}

func (i *Interpreter) evalGet(e *ast.Get) (Value, *errors.RuntimeError) {
	obj, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, &errors.RuntimeError{Token: e.Name, Message: "Only instances have properties."}
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, &errors.RuntimeError{Token: e.Name, Message: "Undefined property '" + e.Name.Lexeme + "'."}
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (Value, *errors.RuntimeError) {
	obj, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, &errors.RuntimeError{Token: e.Name, Message: "Only instances have fields."}
	}
	value, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (Value, *errors.RuntimeError) {
	distance, _ := i.resolveDistance(e)
	superVal := i.environment.GetAt(distance, "super")
	superclass, _ := superVal.(*Class)

	// "this" is always one scope nearer than "super": the resolver pushes
	// the "super" scope first, then the "this" scope just inside it.
	thisVal := i.environment.GetAt(distance-1, "this")
	instance, _ := thisVal.(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, &errors.RuntimeError{Token: e.Method, Message: "Undefined property '" + e.Method.Lexeme + "'."}
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) evalIndex(e *ast.Index) (Value, *errors.RuntimeError) {
	obj, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	list, ok := obj.(*List)
	if !ok {
		return nil, &errors.RuntimeError{Token: e.Bracket, Message: "Only lists support indexing."}
	}
	idxVal, err := i.evalExpr(e.Index)
	if err != nil {
		return nil, err
	}
	idx, rtErr := listIndex(e.Bracket, list, idxVal)
	if rtErr != nil {
		return nil, rtErr
	}
	return list.Elements[idx], nil
}

func (i *Interpreter) evalIndexSet(e *ast.IndexSet) (Value, *errors.RuntimeError) {
	obj, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	list, ok := obj.(*List)
	if !ok {
		return nil, &errors.RuntimeError{Token: e.Bracket, Message: "Only lists support indexing."}
	}
	idxVal, err := i.evalExpr(e.Index)
	if err != nil {
		return nil, err
	}
	idx, rtErr := listIndex(e.Bracket, list, idxVal)
	if rtErr != nil {
		return nil, rtErr
	}
	value, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	list.Elements[idx] = value
	return value, nil
}

// listIndex resolves a subscript to a slice index, wrapping negative
// indices from the end of the list (so -1 is the last element).
func listIndex(bracket token.Token, list *List, idxVal Value) (int, *errors.RuntimeError) {
	n, ok := idxVal.(float64)
	if !ok || n != float64(int(n)) {
		return 0, &errors.RuntimeError{Token: bracket, Message: "List index out of range."}
	}
	idx := int(n)
	length := len(list.Elements)
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, &errors.RuntimeError{Token: bracket, Message: "List index out of range."}
	}
	return idx, nil
}

func bothNumbers(left, right Value) (float64, float64, bool) {
	ln, ok := left.(float64)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(float64)
	if !ok {
		return 0, 0, false
	}
	return ln, rn, true
}

func operandError(operator token.Token) *errors.RuntimeError {
	return &errors.RuntimeError{Token: operator, Message: "Operand(s) must be number(s)."}
}
