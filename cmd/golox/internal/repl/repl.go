// Package repl implements golox's interactive read-eval-print loop: a
// prompt, one persistent Interpreter shared across lines, and the
// REPL-only expression-echo hook. Line editing and history come from
// chzyer/readline; output is colorized with fatih/color.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	loxerrors "github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
	"github.com/lox-lang/golox/internal/natives"
	"github.com/lox-lang/golox/internal/run"
)

const prompt = "> "

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
	bannerColor = color.New(color.FgCyan)
)

// Start runs the REPL until EOF (Ctrl-D) on in. Output goes to out; if
// noColor is set, color is disabled for this call only regardless of what
// ~/.goloxrc.yaml says (color.NoColor is process-global, so Start restores
// it after returning).
func Start(in io.Reader, out io.Writer, noColor bool) {
	cfg := loadConfig()
	if noColor || (cfg.Color != nil && !*cfg.Color) {
		previous := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = previous }()
	}

	bannerColor.Fprintln(out, cfg.Banner)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		Stdin:       io.NopCloser(in),
		Stdout:      out,
		HistoryFile: "",
	})
	if err != nil {
		fmt.Fprintln(out, "readline: "+err.Error())
		return
	}
	defer rl.Close()

	reporter := loxerrors.NewReporter()
	interpreter := interp.New(reporter)
	interpreter.Stdout = out
	natives.Install(interpreter.Globals)

	echoResults := cfg.EchoResults == nil || *cfg.EchoResults

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		runLine(out, interpreter, reporter, line, echoResults)
	}
}

// runLine runs one input line through the pipeline. Compile and runtime
// errors are already written to the Reporter's stream (stderr) by the
// stages that found them; runLine only handles the REPL-only
// expression-value echo, which ~/.goloxrc.yaml can turn off entirely.
func runLine(out io.Writer, interpreter *interp.Interpreter, reporter *loxerrors.Reporter, line string, echoResults bool) {
	echo, hasEcho := run.Line(line, interpreter, reporter)
	if hasEcho && echoResults {
		resultColor.Fprintln(out, interp.Stringify(echo))
	}
}
