package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lox-lang/golox/cmd/golox/internal/repl"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
	"github.com/lox-lang/golox/internal/natives"
	"github.com/lox-lang/golox/internal/run"
)

// runMain dispatches between file mode and the REPL: a file argument runs
// that script to completion and exits, no argument starts the interactive
// loop.
func runMain(cmd *cobra.Command, args []string) error {
	trace, _ := cmd.Flags().GetBool("trace")
	if len(args) == 1 {
		return runFile(args[0], trace)
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	repl.Start(os.Stdin, os.Stdout, noColor)
	return nil
}

// runFile executes a Lox source file and exits with 0 on success, 65 on a
// compile error, 70 on a runtime error, or whatever the `exit` native
// function requested.
func runFile(path string, trace bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		exitWithError("could not read %s: %s", path, err)
	}

	reporter := errors.NewReporter()
	interpreter := interp.New(reporter)
	if trace {
		interpreter.Tracer = interp.NewTracer(os.Stderr)
	}
	natives.Install(interpreter.Globals)

	run.Source(string(source), interpreter, reporter)

	switch {
	case reporter.HadCompileError:
		os.Exit(65)
	case reporter.HadRuntimeError:
		os.Exit(70)
	}
	return nil
}
