package ast

import "github.com/lox-lang/golox/internal/token"

// ExpressionStmt evaluates an expression for its side effects (or, in the
// REPL, for its value).
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) stmtNode()          {}
func (s *ExpressionStmt) Pos() token.Position { return s.Expression.Pos() }

// PrintStmt is the `print expr;` statement.
type PrintStmt struct {
	Keyword    token.Token
	Expression Expr
}

func (s *PrintStmt) stmtNode()          {}
func (s *PrintStmt) Pos() token.Position { return s.Keyword.Pos }

// VarStmt is `var name = initializer;`. Initializer is nil if absent, in
// which case the variable starts out bound to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) stmtNode()          {}
func (s *VarStmt) Pos() token.Position { return s.Name.Pos }

// BlockStmt is `{ statements... }`.
type BlockStmt struct {
	LeftBrace  token.Token
	Statements []Stmt
}

func (s *BlockStmt) stmtNode()          {}
func (s *BlockStmt) Pos() token.Position { return s.LeftBrace.Pos }

// IfStmt is `if (cond) then [else else]`. Else is nil if absent.
type IfStmt struct {
	Keyword    token.Token
	Condition  Expr
	Then       Stmt
	Else       Stmt
}

func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) Pos() token.Position { return s.Keyword.Pos }

// WhileStmt is `while (cond) body`. `for` loops are desugared into this by
// the parser.
type WhileStmt struct {
	Keyword   token.Token
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode()          {}
func (s *WhileStmt) Pos() token.Position { return s.Keyword.Pos }

// FunctionStmt is a `fun name(params) { body }` declaration, and also the
// node type used for methods inside a class body (Name still set).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode()          {}
func (s *FunctionStmt) Pos() token.Position { return s.Name.Pos }

// ReturnStmt is `return [value];`. Value is nil for a bare `return;`.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) stmtNode()          {}
func (s *ReturnStmt) Pos() token.Position { return s.Keyword.Pos }

// ClassStmt is `class Name [< Superclass] { methods... }`. Superclass is
// nil when there is none.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *ClassStmt) stmtNode()          {}
func (s *ClassStmt) Pos() token.Position { return s.Name.Pos }
