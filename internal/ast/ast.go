// Package ast defines the Lox abstract syntax tree.
//
// There is no visitor-pattern boilerplate here: Go's type switches give the
// resolver and interpreter pattern matching over the node variants directly,
// so the node types below are plain structs implementing two marker
// interfaces. (The generator that would emit visitor scaffolding for a
// class-based host language has no job to do in Go and is not part of this
// package.)
package ast

import "github.com/lox-lang/golox/internal/token"

// Node is implemented by every expression and statement node.
type Node interface {
	// Pos returns the source position of the node's primary token.
	Pos() token.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: a parsed source file or REPL entry as a list
// of statements.
type Program struct {
	Statements []Stmt
}
