package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/lexer"
)

func parseSource(t *testing.T, source string) ([]ast.Stmt, *errors.Reporter) {
	t.Helper()
	l := lexer.New(source)
	tokens := l.ScanTokens()
	reporter := errors.NewReporterTo(&bytes.Buffer{})
	p := New(tokens, reporter)
	return p.Parse(), reporter
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	stmts, reporter := parseSource(t, `for (var i = 0; i < 5; i = i + 1) print i;`)
	require.False(t, reporter.HadCompileError)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	_, isVar := block.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, isWhile := block.Statements[1].(*ast.WhileStmt)
	require.True(t, isWhile)

	whileBody, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, whileBody.Statements, 2)
}

func TestForLoopOmitsAbsentClauses(t *testing.T) {
	stmts, reporter := parseSource(t, `for (;;) print 1;`)
	require.False(t, reporter.HadCompileError)

	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestInvalidAssignmentTargetReportsErrorButContinues(t *testing.T) {
	stmts, reporter := parseSource(t, `1 = 2; print "still here";`)
	assert.True(t, reporter.HadCompileError)
	require.Len(t, stmts, 2)
}

func TestArgumentLimitReportsErrorButContinues(t *testing.T) {
	var b bytes.Buffer
	b.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("1")
	}
	b.WriteString(");")

	_, reporter := parseSource(t, b.String())
	assert.True(t, reporter.HadCompileError)
}

func TestClassWithSuperclass(t *testing.T) {
	stmts, reporter := parseSource(t, `class B < A { method() { return 1; } }`)
	require.False(t, reporter.HadCompileError)

	classStmt, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, classStmt.Superclass)
	assert.Equal(t, "A", classStmt.Superclass.Name.Lexeme)
	require.Len(t, classStmt.Methods, 1)
}

func TestSynchronizeRecoversAfterParseError(t *testing.T) {
	stmts, reporter := parseSource(t, `var ; var x = 1;`)
	assert.True(t, reporter.HadCompileError)
	require.NotEmpty(t, stmts)
}

func TestSubscriptExpressionsParse(t *testing.T) {
	stmts, reporter := parseSource(t, `a[0] = a[1];`)
	require.False(t, reporter.HadCompileError)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	_, isIndexSet := exprStmt.Expression.(*ast.IndexSet)
	assert.True(t, isIndexSet)
}
