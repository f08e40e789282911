// Package resolver implements the static scope-resolution pass: for every
// variable, `this`, and `super` reference it computes how many enclosing
// lexical scopes to skip to find the binding at runtime, and it enforces
// scoping rules such as self-referential initializers, return-outside-
// function, and `this` outside a class.
//
// This is a second walk over the same AST the interpreter walks later;
// there is no shared visitor interface between them because a Go type
// switch already gives each pass exactly the dispatch it needs.
package resolver

import (
	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program and produces the Locals side-table the
// Interpreter uses to dispatch variable/this/super lookups by depth.
type Resolver struct {
	reporter *errors.Reporter
	scopes   []map[string]bool
	Locals   map[ast.Expr]int

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver reporting scoping errors to reporter.
func New(reporter *errors.Reporter) *Resolver {
	return &Resolver{
		reporter: reporter,
		Locals:   make(map[ast.Expr]int),
	}
}

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStatements(statements)
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ReportCompileErrorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward and, on the
// first scope containing name, records its depth in Locals. Absence means
// the reference is global and is left unannotated.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	defer r.endScope()

	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
}
