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

func TestTraceWritesOneLinePerStatementAndCall(t *testing.T) {
	var out, trace bytes.Buffer
	reporter := errors.NewReporterTo(&bytes.Buffer{})
	i := interp.New(reporter)
	i.Stdout = &out
	i.Tracer = interp.NewTracer(&trace)
	natives.Install(i.Globals)

	run.Source(`fun greet() { print "hi"; } greet();`, i, reporter)
	require.False(t, reporter.HadRuntimeError)

	assert.Contains(t, trace.String(), "exec fun greet")
	assert.Contains(t, trace.String(), "call greet")
	assert.Contains(t, trace.String(), "exec print")
}

func TestNilTracerIsSilentlyInert(t *testing.T) {
	var out bytes.Buffer
	reporter := errors.NewReporterTo(&bytes.Buffer{})
	i := interp.New(reporter)
	i.Stdout = &out
	natives.Install(i.Globals)

	run.Source(`print 1;`, i, reporter)
	assert.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "1\n", out.String())
}
