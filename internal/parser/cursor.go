package parser

import "github.com/go-quakec/qcc/internal/token"

// Lexer is the external collaborator the core spec names in §6: a token
// source the parser drives through Peek-then-Advance, with one piece of
// shared mutable state (no-ops) that only the parser ever sets.
type Lexer interface {
	// NextToken reads and returns the next token in the stream.
	NextToken() token.Token
	// SetNoOps tells the lexer whether a run of operator punctuation should
	// be classified as an operator token. The parser sets this true outside
	// expressions and false immediately after consuming an operand inside
	// one (§4.1).
	SetNoOps(bool)
}

// Cursor is the token cursor described in §4.1: it exposes the current
// token and advances the underlying lexer on demand.
//
// The spec's Lift() is a carry-over from gmqcc's C parser, where tokens are
// heap-allocated and parser_next() frees the previous one unless it has
// been "lifted" out first, so that a literal's payload survives past the
// next advance. Go tokens are plain values with no such ownership to
// transfer — Advance already leaves the prior Current() value intact in
// the caller's hands. Lift is kept as a named method (rather than dropped)
// so call sites that want to say "I am keeping this token's payload across
// the next Advance" can say so explicitly, matching the cursor's documented
// contract; it simply returns the current token.
type Cursor struct {
	lex     Lexer
	current token.Token
	atEnd   bool
}

// NewCursor creates a Cursor positioned at the first token from lex.
func NewCursor(lex Lexer) *Cursor {
	c := &Cursor{lex: lex}
	c.current = lex.NextToken()
	c.atEnd = c.current.Type == token.EOF || c.current.Type == token.ILLEGAL
	return c
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() token.Token { return c.current }

// Lift detaches the current token's payload for the caller to retain
// across the next Advance. See the Cursor doc comment for why this is a
// pass-through in Go.
func (c *Cursor) Lift() token.Token { return c.current }

// Advance reads the next token from the lexer and makes it current.
// It returns false once EOF or a lexical error has been reached; the
// cursor does not advance past that point.
func (c *Cursor) Advance() bool {
	if c.atEnd {
		return false
	}
	c.current = c.lex.NextToken()
	c.atEnd = c.current.Type == token.EOF || c.current.Type == token.ILLEGAL
	return !c.atEnd
}

// SetNoOps forwards to the underlying lexer (§4.1).
func (c *Cursor) SetNoOps(v bool) { c.lex.SetNoOps(v) }

// AtEOF reports whether the current token is EOF.
func (c *Cursor) AtEOF() bool { return c.current.Type == token.EOF }
