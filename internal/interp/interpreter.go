// Package interp is the tree-walking evaluator: it executes a resolved AST
// against a chain of Environments, implementing the runtime model of
// closures, method binding, non-local return, short-circuit logic, and
// list/instance/class values.
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/token"
)

// Interpreter holds the single global environment, the current (innermost)
// environment, the resolver's variable-depth side-table, and the I/O the
// native functions and print statements write to / read from.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int
	reporter    *errors.Reporter

	Stdout io.Writer
	Stdin  *bufio.Reader
	Exit   func(code int)

	// Tracer, when non-nil, receives one line per statement execution and
	// call (the CLI's --trace flag). nil disables tracing entirely.
	Tracer *Tracer
}

// New creates an Interpreter with an empty side-table; callers add each
// resolved program's locals via AddLocals before interpreting it.
func New(reporter *errors.Reporter) *Interpreter {
	globals := NewEnvironment()
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		reporter:    reporter,
		Stdout:      os.Stdout,
		Stdin:       bufio.NewReader(os.Stdin),
		Exit:        os.Exit,
	}
}

// AddLocals merges a resolver side-table into the interpreter's. Called
// once per resolved program; in the REPL that's once per input line, and
// expression identities never collide across lines since each parse
// produces fresh nodes.
func (i *Interpreter) AddLocals(locals map[ast.Expr]int) {
	for expr, depth := range locals {
		i.locals[expr] = depth
	}
}

// Interpret executes a program's top-level statements in order. It stops
// at the first runtime error, reporting it to the Reporter and unwinding
// to the top level rather than continuing with later statements.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := i.execStmt(stmt); err != nil {
			if rt, ok := err.(*errors.RuntimeError); ok {
				i.reporter.ReportRuntimeError(rt)
			}
			return
		}
	}
}

// ExecuteREPLLine runs one REPL input's statements, reporting any runtime
// error to the Reporter. Unlike Interpret, an *ast.ExpressionStmt is
// special-cased: its value is evaluated and returned (without being
// re-executed) so the REPL can echo it when non-nil. This is distinct from
// a `print` statement, which always prints even a nil value.
func (i *Interpreter) ExecuteREPLLine(statements []ast.Stmt) (echo Value, hasEcho bool) {
	for _, stmt := range statements {
		if exprStmt, ok := stmt.(*ast.ExpressionStmt); ok {
			v, err := i.evalExpr(exprStmt.Expression)
			if err != nil {
				i.reporter.ReportRuntimeError(err)
				return nil, false
			}
			if v != nil {
				echo, hasEcho = v, true
			}
			continue
		}
		if err := i.execStmt(stmt); err != nil {
			if rt, ok := err.(*errors.RuntimeError); ok {
				i.reporter.ReportRuntimeError(rt)
			}
			return nil, false
		}
	}
	return echo, hasEcho
}

// resolveDistance reports the lexical-scope distance recorded for expr by
// the resolver, or (0, false) if expr is unresolved (a global reference).
func (i *Interpreter) resolveDistance(expr ast.Expr) (int, bool) {
	d, ok := i.locals[expr]
	return d, ok
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, *errors.RuntimeError) {
	if distance, ok := i.resolveDistance(expr); ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	if v, ok := i.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, undefinedVariableError(name)
}

func undefinedVariableError(name token.Token) *errors.RuntimeError {
	return &errors.RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}
