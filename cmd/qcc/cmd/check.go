package cmd

import (
	"fmt"
	"os"

	"github.com/go-quakec/qcc/internal/lexer"
	"github.com/go-quakec/qcc/internal/parser"
	"github.com/spf13/cobra"
)

var checkEval string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and type-check QuakeC source without printing the AST",
	Long: `Run the parser over QuakeC source and report diagnostics only.

check exits non-zero and prints every recorded diagnostic (lexical,
syntactic, symbolic, type, or internal, per the error taxonomy) if parsing
fails; it is silent and exits zero on success.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkEval, "eval", "e", "", "check inline source instead of reading from a file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(checkEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFile(filename))
	p := parser.New(l)
	p.ParseProgram()

	if p.ErrorCount() == 0 {
		return nil
	}
	for _, d := range p.Errors() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	return fmt.Errorf("%d error(s)", p.ErrorCount())
}
