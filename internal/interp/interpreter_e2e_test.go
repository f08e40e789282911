package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
	"github.com/lox-lang/golox/internal/natives"
	"github.com/lox-lang/golox/internal/run"
)

// runProgram executes source to completion and returns stdout plus the
// reporter's final flags.
func runProgram(t *testing.T, source string) (string, *errors.Reporter) {
	t.Helper()
	var out, errOut bytes.Buffer

	reporter := errors.NewReporterTo(&errOut)
	i := interp.New(reporter)
	i.Stdout = &out
	natives.Install(i.Globals)

	run.Source(source, i, reporter)
	return out.String(), reporter
}

func TestClosureCounter(t *testing.T) {
	out, reporter := runProgram(t, `
fun makeCounter() { var i = 0; fun count() { i = i + 1; return i; } return count; }
var c = makeCounter(); print c(); print c(); print c();
`)
	require.False(t, reporter.HadCompileError)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestLexicalScopingOfGlobalsRegression(t *testing.T) {
	out, reporter := runProgram(t, `
var a = "global";
{ fun showA() { print a; } showA(); var a = "block"; showA(); }
`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	out, reporter := runProgram(t, `
class A { method() { print "A"; } }
class B < A { method() { super.method(); print "B"; } }
B().method();
`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "A\nB\n", out)
}

func TestInitializerReturnCoercion(t *testing.T) {
	out, reporter := runProgram(t, `class F { init() { return; } } print F();`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "<class F instance>\n", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, reporter := runProgram(t, `for (var i = 0; i < 5; i = i + 1) print i;`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "0\n1\n2\n3\n4\n", out)
}

func TestUndefinedVariableError(t *testing.T) {
	_, reporter := runProgram(t, `print x;`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestStringNilConcatenation(t *testing.T) {
	out, reporter := runProgram(t, `print "a" + nil;`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "anil\n", out)
}

func TestNilPlusNilIsRuntimeError(t *testing.T) {
	_, reporter := runProgram(t, `print nil + nil;`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestDivisionByZero(t *testing.T) {
	_, reporter := runProgram(t, `print 1 / 0;`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestIntegerStringificationHasNoTrailingZero(t *testing.T) {
	out, _ := runProgram(t, `print 3.0; print 3.5;`)
	assert.Equal(t, "3\n3.5\n", out)
}

func TestListAppendReturnsCopy(t *testing.T) {
	out, reporter := runProgram(t, `
var a = [1, 2];
var b = a + 3;
print a;
print b;
`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "[1, 2]\n[1, 2, 3]\n", out)
}

func TestSubscriptAssignmentMutatesInPlace(t *testing.T) {
	out, reporter := runProgram(t, `
var a = [1, 2, 3];
a[1] = 9;
print a;
print a[-1];
`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "[1, 9, 3]\n3\n", out)
}

func TestUnterminatedStringIsCompileError(t *testing.T) {
	_, reporter := runProgram(t, "print \"oops;")
	assert.True(t, reporter.HadCompileError)
}

func TestEmptyProgramProducesNoOutput(t *testing.T) {
	out, reporter := runProgram(t, "")
	require.False(t, reporter.HadCompileError)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, reporter := runProgram(t, `
fun f(a, b) { return a + b; }
f(1);
`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestShortCircuitReturnsOperandNotBool(t *testing.T) {
	out, reporter := runProgram(t, `
print nil or "fallback";
print "present" and "second";
`)
	require.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "fallback\nsecond\n", out)
}
