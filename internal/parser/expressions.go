package parser

import (
	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment handles both `ident = value` and `call.ident = value`, plus
// `ident[index] = value`; anything else falls through to logic_or. Only
// those three l-value shapes are legal; any other target is a parse error
// reported at the '=' token without aborting parsing.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		case *ast.Index:
			return &ast.IndexSet{Object: target.Object, Bracket: target.Bracket, Index: target.Index, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}

	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		operator := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		case p.match(token.LEFT_BRACKET):
			bracket := p.previous()
			index := p.expression()
			p.consume(token.RIGHT_BRACKET, "Expect ']' after index.")
			expr = &ast.Index{Object: expr, Bracket: bracket, Index: index}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.match(token.NUMBER, token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		leftParen := p.previous()
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{LeftParen: leftParen, Expression: expr}
	case p.match(token.LEFT_BRACKET):
		leftBracket := p.previous()
		var elements []ast.Expr
		if !p.check(token.RIGHT_BRACKET) {
			for {
				elements = append(elements, p.expression())
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		p.consume(token.RIGHT_BRACKET, "Expect ']' after list elements.")
		return &ast.List{LeftBracket: leftBracket, Elements: elements}
	default:
		p.errorAt(p.peek(), "Expect expression.")
		panic(parseError{})
	}
}
