package ast

import "github.com/lox-lang/golox/internal/token"

// Literal is a number, string, boolean, or nil constant.
type Literal struct {
	Token token.Token
	Value any
}

func (e *Literal) exprNode()          {}
func (e *Literal) Pos() token.Position { return e.Token.Pos }

// Variable is a bare identifier reference.
type Variable struct {
	Name token.Token
}

func (e *Variable) exprNode()          {}
func (e *Variable) Pos() token.Position { return e.Name.Pos }

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) exprNode()          {}
func (e *Assign) Pos() token.Position { return e.Name.Pos }

// Unary is `-right` or `!right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) exprNode()          {}
func (e *Unary) Pos() token.Position { return e.Operator.Pos }

// Binary is an arithmetic, comparison, or equality expression.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) exprNode()          {}
func (e *Binary) Pos() token.Position { return e.Operator.Pos }

// Logical is `and`/`or`, which short-circuit and never coerce to bool.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Logical) exprNode()          {}
func (e *Logical) Pos() token.Position { return e.Operator.Pos }

// Grouping is a parenthesized expression.
type Grouping struct {
	LeftParen  token.Token
	Expression Expr
}

func (e *Grouping) exprNode()          {}
func (e *Grouping) Pos() token.Position { return e.LeftParen.Pos }

// Call is `callee(args...)`. Paren is the closing ')' and is the error
// location for arity mismatches and "not callable" errors.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *Call) exprNode()          {}
func (e *Call) Pos() token.Position { return e.Paren.Pos }

// Get is a property read `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) exprNode()          {}
func (e *Get) Pos() token.Position { return e.Name.Pos }

// Set is a property write `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) exprNode()          {}
func (e *Set) Pos() token.Position { return e.Name.Pos }

// This is the `this` keyword, resolved like a variable reference.
type This struct {
	Keyword token.Token
}

func (e *This) exprNode()          {}
func (e *This) Pos() token.Position { return e.Keyword.Pos }

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) exprNode()          {}
func (e *Super) Pos() token.Position { return e.Keyword.Pos }

// List is a list literal `[a, b, c]`.
type List struct {
	LeftBracket token.Token
	Elements    []Expr
}

func (e *List) exprNode()          {}
func (e *List) Pos() token.Position { return e.LeftBracket.Pos }

// Index is a subscript read `list[index]`. Bracket is the opening '[' and
// is the error location for out-of-range and non-list-subscript errors.
type Index struct {
	Object  Expr
	Bracket token.Token
	Index   Expr
}

func (e *Index) exprNode()          {}
func (e *Index) Pos() token.Position { return e.Bracket.Pos }

// IndexSet is a subscript write `list[index] = value`.
type IndexSet struct {
	Object  Expr
	Bracket token.Token
	Index   Expr
	Value   Expr
}

func (e *IndexSet) exprNode()          {}
func (e *IndexSet) Pos() token.Position { return e.Bracket.Pos }
