package ast

import (
	"strings"

	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// Block serves two roles from the same shape (§3's data model gives it
// just one node kind): a lexical statement block (locals + statements,
// opened by '{' and closed by '}'), and the implicit list the comma
// operator builds on the shunting-yard operand stack while flattening a
// call's argument list. Its Type is the type of its last statement, which
// is what lets a comma-joined argument list report a type at all.
type Block struct {
	Pos0       token.Position
	Locals     []*Value
	Statements []Expression
}

func (b *Block) Pos() token.Position { return b.Pos0 }

func (b *Block) Type() *types.Type {
	if len(b.Statements) == 0 {
		return types.TVoid
	}
	return b.Statements[len(b.Statements)-1].Type()
}

func (b *Block) String() string {
	var parts []string
	for _, s := range b.Statements {
		parts = append(parts, s.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// Return is a function return; Expr is nil for a bare "return;" in a void
// function.
type Return struct {
	Pos0 token.Position
	Expr Expression
}

func (r *Return) Pos() token.Position { return r.Pos0 }

func (r *Return) Type() *types.Type {
	if r.Expr == nil {
		return types.TVoid
	}
	return r.Expr.Type()
}

func (r *Return) String() string {
	if r.Expr == nil {
		return "return;"
	}
	return "return " + r.Expr.String() + ";"
}
