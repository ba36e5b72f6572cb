// Command qcc drives the QuakeC lexer and parser front end from the
// command line: lex, parse, and check subcommands, none of which go past
// the typed AST (there is no "compile" or "run" subcommand here — the IR
// builder and code generator this front end feeds are out of scope).
package main

import (
	"fmt"
	"os"

	"github.com/go-quakec/qcc/cmd/qcc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
