package interp

import (
	"fmt"

	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
)

// execStmt runs one statement. The returned error is either nil, a
// *errors.RuntimeError, or the unexported *returnUnwind control-flow
// signal; both propagate identically through nested blocks/if/while until
// a function call or Interpreter.Interpret catches them.
func (i *Interpreter) execStmt(stmt ast.Stmt) error {
	i.Tracer.stmt(stmt)

	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expression)
		return errOrNil(err)

	case *ast.PrintStmt:
		v, err := i.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Stdout, Stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value
		if s.Initializer != nil {
			v, err := i.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(i.environment))

	case *ast.IfStmt:
		cond, err := i.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return i.execStmt(s.Then)
		}
		if s.Else != nil {
			return i.execStmt(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evalExpr(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := i.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Declaration: s, Closure: i.environment}
		i.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := i.evalExpr(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnUnwind{Value: value}

	case *ast.ClassStmt:
		return i.execClassStmt(s)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// executeBlock runs statements against env, restoring the previous
// environment afterward regardless of how execution ends.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execClassStmt(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.lookUpVariable(s.Superclass.Name, s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return &errors.RuntimeError{Token: s.Superclass.Name, Message: "Superclass must be a class."}
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	classEnv := i.environment
	if superclass != nil {
		classEnv = NewEnclosedEnvironment(i.environment)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	i.environment.Assign(s.Name.Lexeme, class)
	return nil
}

// errOrNil adapts a *errors.RuntimeError (which may be a nil pointer with a
// non-nil interface, i.e. typed nil) to a clean nil error.
func errOrNil(err *errors.RuntimeError) error {
	if err == nil {
		return nil
	}
	return err
}
