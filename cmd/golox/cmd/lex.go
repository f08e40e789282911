package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lox-lang/golox/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Scan a Lox file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError("could not read %s: %s", args[0], err)
	}

	lx := lexer.New(string(source))
	tokens := lx.ScanTokens()
	for _, tok := range tokens {
		fmt.Printf("%4d  %s\n", tok.Line(), tok.String())
	}

	for _, lexErr := range lx.Errors() {
		fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", lexErr.Pos.Line, lexErr.Message)
	}
	if len(lx.Errors()) > 0 {
		os.Exit(65)
	}
	return nil
}
