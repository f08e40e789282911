// Package parser implements a recursive-descent parser with precedence
// climbing for binary operators and panic-mode error recovery.
package parser

import (
	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/token"
)

// maxArgs is the parameter/argument count limit: exceeding it is reported
// but parsing continues.
const maxArgs = 255

// Parser turns a token stream into a list of statements.
type Parser struct {
	tokens   []token.Token
	current  int
	reporter *errors.Reporter
}

// New creates a Parser over tokens, reporting syntax errors to reporter.
func New(tokens []token.Token, reporter *errors.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// parseError is a sentinel used internally to unwind to the nearest
// synchronization point after a production reports an error.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parse parses the entire token stream into a program. Errors are reported
// to the Reporter as they are found; Parse always returns the statements it
// could recover, so callers should check reporter.HadCompileError before
// trusting the result.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declarationRecovering(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) declarationRecovering() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENTIFIER, "Expect superclass name.")
		superclass = &ast.Variable{Name: p.previous()}
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		brace := p.previous()
		return &ast.BlockStmt{LeftBrace: brace, Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declarationRecovering(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Keyword: keyword, Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: keyword, Expression: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Keyword: keyword, Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; update) body` into
// `{ init; while (cond) { body; update; } }`.
func (p *Parser) forStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{LeftBrace: keyword, Statements: []ast.Stmt{
			body,
			&ast.ExpressionStmt{Expression: increment},
		}}
	}

	if condition == nil {
		condition = &ast.Literal{Token: keyword, Value: true}
	}
	body = &ast.WhileStmt{Keyword: keyword, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{LeftBrace: keyword, Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}
