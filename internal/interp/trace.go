package interp

import (
	"fmt"
	"io"
	"log"

	"github.com/lox-lang/golox/internal/ast"
)

// Tracer writes one line per statement execution and call when enabled by
// the CLI's --trace flag. It is separate from user-facing print output:
// tracing always goes to its own writer (stderr in the CLI), never
// Stdout.
type Tracer struct {
	logger *log.Logger
}

// NewTracer builds a Tracer writing to w; each line carries a "trace: "
// prefix and no timestamp or other log flags. The CLI passes os.Stderr.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{logger: log.New(w, "trace: ", 0)}
}

func (t *Tracer) stmt(stmt ast.Stmt) {
	if t == nil {
		return
	}
	kind, line := stmtKind(stmt)
	t.logger.Printf("[line %d] exec %s", line, kind)
}

func (t *Tracer) call(name string, line int) {
	if t == nil {
		return
	}
	t.logger.Printf("[line %d] call %s", line, name)
}

func stmtKind(stmt ast.Stmt) (kind string, line int) {
	line = stmt.Pos().Line
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return "expression", line
	case *ast.PrintStmt:
		return "print", line
	case *ast.VarStmt:
		return "var " + s.Name.Lexeme, line
	case *ast.BlockStmt:
		return "block", line
	case *ast.IfStmt:
		return "if", line
	case *ast.WhileStmt:
		return "while", line
	case *ast.FunctionStmt:
		return "fun " + s.Name.Lexeme, line
	case *ast.ReturnStmt:
		return "return", line
	case *ast.ClassStmt:
		return "class " + s.Name.Lexeme, line
	default:
		return fmt.Sprintf("%T", stmt), line
	}
}
