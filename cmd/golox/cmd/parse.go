package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lox-lang/golox/internal/ast"
	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/run"
)

var dumpResolved bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Lox file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&dumpResolved, "resolve", false, "also run the resolver and report scoping errors")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError("could not read %s: %s", args[0], err)
	}

	reporter := errors.NewReporter()
	statements := run.Parse(string(source), reporter)

	if dumpResolved && !reporter.HadCompileError {
		run.Resolve(statements, reporter)
	}

	if reporter.HadCompileError {
		os.Exit(65)
	}

	fmt.Print(ast.Print(statements))
	return nil
}
