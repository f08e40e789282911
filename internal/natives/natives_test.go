package natives_test

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

func runProgram(t *testing.T, source string) string {
	t.Helper()
	var out bytes.Buffer
	reporter := errors.NewReporterTo(&bytes.Buffer{})
	i := interp.New(reporter)
	i.Stdout = &out
	natives.Install(i.Globals)

	run.Source(source, i, reporter)
	require.False(t, reporter.HadCompileError)
	require.False(t, reporter.HadRuntimeError)
	return out.String()
}

func TestLengthOnStringAndList(t *testing.T) {
	out := runProgram(t, `print length("hello"); print length([1, 2, 3]);`)
	assert.Equal(t, "5\n3\n", out)
}

func TestIsTypeRecognizesEachKind(t *testing.T) {
	out := runProgram(t, `
print isType(1, "number");
print isType("s", "string");
print isType(true, "boolean");
print isType([1], "list");
print isType(1, "string");
`)
	assert.Equal(t, "true\ntrue\ntrue\ntrue\nfalse\n", out)
}

func TestConvertToNumber(t *testing.T) {
	out := runProgram(t, `
print convert("42", "number");
print convert(true, "number");
print convert(false, "number");
`)
	assert.Equal(t, "42\n1\n0\n", out)
}

func TestConvertToBooleanIsAsymmetric(t *testing.T) {
	out := runProgram(t, `
print convert("false", "boolean");
print convert("FALSE", "boolean");
print convert("anything", "boolean");
print convert(0, "boolean");
print convert(nil, "boolean");
`)
	assert.Equal(t, "false\nfalse\ntrue\ntrue\nfalse\n", out)
}

func TestConvertToString(t *testing.T) {
	out := runProgram(t, `print convert(3.5, "string"); print convert(nil, "string");`)
	assert.Equal(t, "3.5\nnil\n", out)
}

func TestMathNatives(t *testing.T) {
	out := runProgram(t, `
print sqrt(16);
print ln(E);
print log10(100);
print exp(0);
`)
	assert.Equal(t, "4\n1\n2\n1\n", out)
}

func TestPiAndEConstants(t *testing.T) {
	out := runProgram(t, `print PI; print E;`)
	require.Contains(t, out, "3.14159")
	require.Contains(t, out, "2.71828")
}

func TestJSONGetAndSet(t *testing.T) {
	out := runProgram(t, `
var doc = jsonSet(jsonSet("{}", "name", "lox"), "count", 3);
print jsonGet(doc, "name");
print jsonGet(doc, "count");
print jsonGet(jsonSet(doc, "count", 9), "count");
`)
	assert.Equal(t, "lox\n3\n9\n", out)
}

func TestUpperAndLower(t *testing.T) {
	out := runProgram(t, `print upper("Lox"); print lower("Lox");`)
	assert.Equal(t, "LOX\nlox\n", out)
}
