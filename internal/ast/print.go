package ast

import (
	"fmt"
	"strings"
)

// Print renders a parsed program as a parenthesized (Lisp-style) dump, one
// top-level statement per line. It exists purely for the CLI's debug
// subcommands; nothing in the core pipeline calls it.
func Print(statements []Stmt) string {
	var b strings.Builder
	for _, s := range statements {
		b.WriteString(printStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func parenthesize(name string, parts ...any) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		switch v := p.(type) {
		case Expr:
			b.WriteString(printExpr(v))
		case Stmt:
			b.WriteString(printStmt(v))
		case []Stmt:
			for j, s := range v {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(printStmt(s))
			}
		case nil:
			b.WriteString("nil")
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	b.WriteByte(')')
	return b.String()
}

func printExpr(e Expr) string {
	if e == nil {
		return "nil"
	}
	switch v := e.(type) {
	case *Literal:
		if v.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", v.Value)
	case *Variable:
		return v.Name.Lexeme
	case *Assign:
		return parenthesize("= "+v.Name.Lexeme, v.Value)
	case *Unary:
		return parenthesize(v.Operator.Lexeme, v.Right)
	case *Binary:
		return parenthesize(v.Operator.Lexeme, v.Left, v.Right)
	case *Logical:
		return parenthesize(v.Operator.Lexeme, v.Left, v.Right)
	case *Grouping:
		return parenthesize("group", v.Expression)
	case *Call:
		parts := make([]any, 0, len(v.Arguments)+1)
		parts = append(parts, v.Callee)
		for _, a := range v.Arguments {
			parts = append(parts, a)
		}
		return parenthesize("call", parts...)
	case *Get:
		return parenthesize("get "+v.Name.Lexeme, v.Object)
	case *Set:
		return parenthesize("set "+v.Name.Lexeme, v.Object, v.Value)
	case *This:
		return "this"
	case *Super:
		return "(super " + v.Method.Lexeme + ")"
	case *List:
		parts := make([]any, len(v.Elements))
		for i, el := range v.Elements {
			parts[i] = el
		}
		return parenthesize("list", parts...)
	case *Index:
		return parenthesize("index", v.Object, v.Index)
	case *IndexSet:
		return parenthesize("index-set", v.Object, v.Index, v.Value)
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func printStmt(s Stmt) string {
	if s == nil {
		return "nil"
	}
	switch v := s.(type) {
	case *ExpressionStmt:
		return parenthesize("expr", v.Expression)
	case *PrintStmt:
		return parenthesize("print", v.Expression)
	case *VarStmt:
		if v.Initializer == nil {
			return fmt.Sprintf("(var %s)", v.Name.Lexeme)
		}
		return parenthesize("var "+v.Name.Lexeme, v.Initializer)
	case *BlockStmt:
		return parenthesize("block", v.Statements)
	case *IfStmt:
		if v.Else == nil {
			return parenthesize("if", v.Condition, v.Then)
		}
		return parenthesize("if", v.Condition, v.Then, v.Else)
	case *WhileStmt:
		return parenthesize("while", v.Condition, v.Body)
	case *FunctionStmt:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = p.Lexeme
		}
		return fmt.Sprintf("(fun %s (%s) %s)", v.Name.Lexeme, strings.Join(params, " "), parenthesize("block", v.Body))
	case *ReturnStmt:
		if v.Value == nil {
			return "(return)"
		}
		return parenthesize("return", v.Value)
	case *ClassStmt:
		name := v.Name.Lexeme
		if v.Superclass != nil {
			name += " < " + v.Superclass.Name.Lexeme
		}
		methods := make([]any, len(v.Methods))
		for i, m := range v.Methods {
			methods[i] = m
		}
		return parenthesize("class "+name, methods...)
	default:
		return fmt.Sprintf("<%T>", s)
	}
}
