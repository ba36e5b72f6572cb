package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-quakec/qcc/internal/lexer"
	"github.com/go-quakec/qcc/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval       string
	lexOnlyIllegal bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a QuakeC file or expression",
	Long: `Tokenize a QuakeC program and print the resulting token stream.

If no file is given and -e is not used, source is read from stdin.

Examples:
  qcc lex progs.src
  qcc lex -e "void() main = { return; };"
  qcc lex --only-illegal progs.src`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexOnlyIllegal, "only-illegal", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFile(filename))
	tokenCount, illegalCount := 0, 0

	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		tokenCount++
		if tok.Type == token.ILLEGAL {
			illegalCount++
		}
		if lexOnlyIllegal && tok.Type != token.ILLEGAL {
			continue
		}
		printToken(tok)
	}

	for _, msg := range l.Errors() {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}

	if illegalCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", illegalCount)
	}
	return nil
}

func printToken(tok token.Token) {
	fmt.Printf("%-12s %-10q %s\n", tok.Type, tok.Literal, tok.Pos)
}

// readSource resolves the "-e" / file / stdin precedence shared by the
// lex, parse, and check subcommands.
func readSource(eval string, args []string) (input, filename string, err error) {
	switch {
	case eval != "":
		return eval, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}
