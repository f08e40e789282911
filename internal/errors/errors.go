// Package errors implements the error sink and diagnostic formatting shared
// by every pipeline stage: a process-wide reporter with two latching
// flags (one for compile errors, one for runtime errors), plus
// source-located compile and runtime error types. Compile errors can also
// be rendered as a caret-annotated view of the offending line
// (FormatWithSource); no command in cmd/golox calls it.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/lox-lang/golox/internal/token"
)

// CompileError is a scan, parse, or resolve error. It latches
// Reporter.HadCompileError and aborts later pipeline stages.
type CompileError struct {
	Pos     token.Position
	Where   string // "at end" or "at 'LEXEME'"
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("[line %d] Error %s: %s", e.Pos.Line, e.Where, e.Message)
}

// RuntimeError is a single-token-located runtime failure. It unwinds the
// current statement to the top level.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] LoxRuntimeError: %s", e.Token.Pos.Line, e.Message)
}

// Reporter is the process-wide error sink: two latching flags plus the
// writer each diagnostic is printed to as soon as it is reported, shared by
// the scanner, parser, resolver, and interpreter for a single run.
//
// A production embedding hosting multiple interpreters would move this
// onto a per-session context instead of a shared global; the CLI only
// ever drives one interpreter per process, so a single Reporter instance
// threaded explicitly through each stage is enough here.
type Reporter struct {
	HadCompileError bool
	HadRuntimeError bool
	out             io.Writer
}

// NewReporter returns a fresh Reporter that writes diagnostics to stderr.
func NewReporter() *Reporter {
	return &Reporter{out: os.Stderr}
}

// NewReporterTo returns a fresh Reporter that writes diagnostics to w,
// useful for tests and for embedding the pipeline with a captured stream.
func NewReporterTo(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// Reset clears the compile-error flag. The REPL calls this after every
// line so one bad line doesn't poison the session; the runtime-error flag
// is never latched across REPL lines in a way that aborts the session
// either, so callers running a REPL should also just ignore it between
// lines rather than reset it.
func (r *Reporter) Reset() {
	r.HadCompileError = false
}

// ReportCompileError records a scan/parse/resolve error at a line (no
// token available — used by the scanner).
func (r *Reporter) ReportCompileError(line int, message string) {
	r.HadCompileError = true
	fmt.Fprintf(r.out, "[line %d] Error: %s\n", line, message)
}

// ReportCompileErrorAt records a scan/parse/resolve error located at a
// token, formatting "at end" or "at 'LEXEME'".
func (r *Reporter) ReportCompileErrorAt(tok token.Token, message string) {
	r.HadCompileError = true
	where := "at '" + tok.Lexeme + "'"
	if tok.Type == token.EOF {
		where = "at end"
	}
	err := &CompileError{Pos: tok.Pos, Where: where, Message: message}
	fmt.Fprintln(r.out, err.Error())
}

// ReportRuntimeError records a runtime error and latches HadRuntimeError.
func (r *Reporter) ReportRuntimeError(err *RuntimeError) {
	r.HadRuntimeError = true
	fmt.Fprintln(r.out, err.Error())
}
