// Package run wires the four pipeline stages together: it is the one place
// that drives lexer → parser → resolver → interpreter in order and
// respects the "errors in an earlier stage prevent later stages from
// running" rule, so the CLI's file runner and the REPL share exactly one
// implementation of that rule instead of two copies drifting apart.
package run

import (
	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
	"github.com/lox-lang/golox/internal/lexer"
	"github.com/lox-lang/golox/internal/parser"
	"github.com/lox-lang/golox/internal/resolver"
)

// Parse lexes and parses source, reporting errors to reporter. The caller
// should not resolve or interpret the result if reporter.HadCompileError
// is set afterward.
func Parse(source string, reporter *errors.Reporter) []ast.Stmt {
	lx := lexer.New(source)
	tokens := lx.ScanTokens()
	for _, lexErr := range lx.Errors() {
		reporter.ReportCompileError(lexErr.Pos.Line, lexErr.Message)
	}

	p := parser.New(tokens, reporter)
	return p.Parse()
}

// Resolve runs the static scope-resolution pass and returns its side-table.
// Like Parse, the caller should check reporter.HadCompileError before using
// the result to interpret.
func Resolve(statements []ast.Stmt, reporter *errors.Reporter) map[ast.Expr]int {
	r := resolver.New(reporter)
	r.Resolve(statements)
	return r.Locals
}

// Source runs the full pipeline over one source unit and, if it compiled
// cleanly, interprets it against interpreter. It returns true if the
// source reached the interpreter (i.e. had no compile errors).
func Source(source string, interpreter *interp.Interpreter, reporter *errors.Reporter) bool {
	statements := Parse(source, reporter)
	if reporter.HadCompileError {
		return false
	}

	locals := Resolve(statements, reporter)
	if reporter.HadCompileError {
		return false
	}

	interpreter.AddLocals(locals)
	interpreter.Interpret(statements)
	return true
}

// Line runs the pipeline over one REPL input and, if it compiled cleanly,
// executes it with ExecuteREPLLine's expression-echo behavior. The
// compile-error flag is cleared afterward regardless of outcome so one bad
// line doesn't poison the session.
func Line(source string, interpreter *interp.Interpreter, reporter *errors.Reporter) (echo interp.Value, hasEcho bool) {
	defer reporter.Reset()

	statements := Parse(source, reporter)
	if reporter.HadCompileError {
		return nil, false
	}

	locals := Resolve(statements, reporter)
	if reporter.HadCompileError {
		return nil, false
	}

	interpreter.AddLocals(locals)
	return interpreter.ExecuteREPLLine(statements)
}
