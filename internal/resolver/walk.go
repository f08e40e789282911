package resolver

import "github.com/lox-lang/golox/internal/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.reporter.ReportCompileErrorAt(s.Keyword, "Can't return when not in a function.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.reporter.ReportCompileErrorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reporter.ReportCompileErrorAt(s.Superclass.Name, "A class can't inherit from itself.")
		} else {
			r.currentClass = classSubclass
			r.resolveExpr(s.Superclass)
		}
	}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range s.Methods {
		declType := fnMethod
		if method.Name.Lexeme == "init" {
			declType = fnInitializer
		}
		r.resolveFunction(method, declType)
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reporter.ReportCompileErrorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Literal:
		// no references to resolve

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.This:
		if r.currentClass == classNone {
			r.reporter.ReportCompileErrorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Super:
		if r.currentClass == classNone {
			r.reporter.ReportCompileErrorAt(e.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentClass != classSubclass {
			r.reporter.ReportCompileErrorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.List:
		for _, elem := range e.Elements {
			r.resolveExpr(elem)
		}

	case *ast.Index:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)

	case *ast.IndexSet:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
		r.resolveExpr(e.Value)

	default:
		panic("resolver: unhandled expression type")
	}
}
