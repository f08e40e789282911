// Package cmd is the golox command-line entry point: a thin cobra wrapper
// around internal/run and internal/interp. It has no language semantics of
// its own — just flag parsing and exit-code plumbing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set via -ldflags at build time; it defaults to "dev" for
	// local builds.
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "golox is a tree-walking interpreter for Lox",
	Long: `golox runs Lox, a small dynamically-typed scripting language with
first-class functions, lexical closures, and single-inheritance classes.

With a file argument, golox executes the script and exits. With no
arguments, it starts an interactive read-eval-print loop.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runMain,
}

// Execute runs the root command; cmd/golox/main.go is the only caller.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored REPL output")
	rootCmd.PersistentFlags().Bool("trace", false, "write per-statement/call trace diagnostics to stderr")
}

func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "golox: "+format+"\n", args...)
	os.Exit(1)
}
