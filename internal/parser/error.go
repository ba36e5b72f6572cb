package parser

import "github.com/go-quakec/qcc/internal/diag"

// Short local names for the §7 error-kind taxonomy, used throughout the
// parser package.
const (
	errLexical   = diag.Lexical
	errSyntactic = diag.Syntactic
	errSymbolic  = diag.Symbolic
	errType      = diag.TypeError
	errInternal  = diag.Internal
)
