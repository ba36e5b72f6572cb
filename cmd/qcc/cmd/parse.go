package cmd

import (
	"fmt"
	"os"

	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/lexer"
	"github.com/go-quakec/qcc/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseEval    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse QuakeC source and print the resulting AST",
	Long: `Parse QuakeC source code and display the typed abstract syntax tree
it produces: globals, field bindings, and functions. With --dump-ast the
output also gives the number of interned constants of each kind and the
statements of each function body; the constants themselves are not listed.

If no file is given and -e is not used, source is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading from a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST tree instead of the source-like rendering")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFile(filename))
	p := parser.New(l)
	program := p.ParseProgram()

	if p.ErrorCount() > 0 {
		for _, d := range p.Errors() {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", p.ErrorCount())
	}

	if parseDumpAST {
		dumpProgram(program)
		return nil
	}
	fmt.Print(program.String())
	return nil
}

func dumpProgram(p *ast.Program) {
	fmt.Printf("Program: %d float(s), %d string(s), %d vector(s), %d global(s), %d function(s)\n",
		len(p.Floats), len(p.Strings), len(p.Vectors), len(p.Globals), len(p.Functions))
	for _, g := range p.Globals {
		fmt.Printf("  global %s %s\n", g.Typ, g.Name)
	}
	for _, fn := range p.Functions {
		if fn.IsBuiltin() {
			fmt.Printf("  function %s %s = #%d\n", fn.Val.Typ, fn.Val.Name, -fn.BuiltinIndex)
			continue
		}
		fmt.Printf("  function %s %s\n", fn.Val.Typ, fn.Val.Name)
		for _, blk := range fn.Blocks {
			dumpBlock(blk, 2)
		}
	}
}

func dumpBlock(b *ast.Block, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	for _, loc := range b.Locals {
		fmt.Printf("%slocal %s %s\n", pad, loc.Typ, loc.Name)
	}
	for _, stmt := range b.Statements {
		switch s := stmt.(type) {
		case *ast.Block:
			dumpBlock(s, indent+1)
		default:
			fmt.Printf("%s%s\n", pad, s.String())
		}
	}
}
