// Package parser implements the QuakeC parser/semantic-analyzer core: a
// precedence-climbing expression engine built on a shunting-yard operator
// stack, a layered symbol table, a constant pool, and the declaration and
// statement parsers that assemble a typed program AST directly — there is
// no separate semantic-analysis pass, because QuakeC's type rules are
// simple enough to resolve while parsing (§2).
package parser

import (
	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/diag"
	"github.com/go-quakec/qcc/internal/token"
)

// Parser ties the cursor, symbol table, constant pool, and diagnostic bag
// together. There is no global parser singleton (§9's design note): every
// caller constructs its own Parser and the state lives on it.
type Parser struct {
	cur   *Cursor
	syms  *SymbolTable
	pool  *ConstantPool
	diags diag.Bag

	program *ast.Program

	// activeFn is the function Value currently being parsed, used to check
	// a return statement's expression type against the declared return
	// type (§4.6).
	activeFn *ast.Value
}

// New creates a Parser reading tokens from lex.
func New(lex Lexer) *Parser {
	return &Parser{
		cur:     NewCursor(lex),
		syms:    NewSymbolTable(),
		pool:    NewConstantPool(),
		program: &ast.Program{},
	}
}

// errf records a diagnostic of the given kind at pos.
func (p *Parser) errf(pos token.Position, kind diag.Kind, format string, args ...any) {
	p.diags.Add(kind, pos, format, args...)
}

// Errors returns every diagnostic recorded during parsing.
func (p *Parser) Errors() []*diag.Diagnostic { return p.diags.All() }

// ErrorCount returns the number of diagnostics recorded, the counter §7
// says gates code generation.
func (p *Parser) ErrorCount() int { return p.diags.Count() }

// ParseProgram is the top-level driver (§4.8). It dispatches on the first
// token of each declaration until EOF or the first fatal error: a
// variable/function declaration, a field declaration, or — for anything
// else — a single diagnostic before stopping (§7: "the top-level driver
// stops at the first error").
func (p *Parser) ParseProgram() *ast.Program {
	p.cur.SetNoOps(true)

	for !p.cur.AtEOF() {
		if !p.parseTopLevel() {
			break
		}
	}

	p.program.Floats = p.pool.Floats()
	p.program.Strings = p.pool.Strings()
	p.program.Vectors = p.pool.Vectors()
	return p.program
}

func (p *Parser) parseTopLevel() bool {
	tok := p.cur.Peek()
	switch {
	case tok.Type == token.TYPENAME:
		return p.parseDeclaration(nil)
	case tok.IsPunct("."):
		return p.parseFieldDeclaration()
	default:
		p.errf(tok.Pos, errSyntactic, "unexpected token %q", tok.Literal)
		p.cur.Advance()
		return false
	}
}
