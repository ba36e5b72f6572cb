package ast

import (
	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// Binary is a typed binary operation: the opcode already names both the
// operator and the operand-type variant (ADD_F vs ADD_V, etc.), so no
// further type dispatch is needed once the node exists.
type Binary struct {
	Pos0   token.Position
	Op     Opcode
	Left   Expression
	Right  Expression
	Result *types.Type
}

func (b *Binary) Pos() token.Position { return b.Pos0 }
func (b *Binary) Type() *types.Type   { return b.Result }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// Unary is a prefix operation (-x, !x). See SPEC_FULL.md §C.2: the core
// spec's operator table only lists binary rows, but a usable expression
// engine needs prefix operators too.
type Unary struct {
	Pos0   token.Position
	Op     Opcode
	Operand Expression
	Result *types.Type
}

func (u *Unary) Pos() token.Position { return u.Pos0 }
func (u *Unary) Type() *types.Type   { return u.Result }
func (u *Unary) String() string      { return u.Op.String() + "(" + u.Operand.String() + ")" }

// Store is an assignment: the opcode is selected by the destination's type.
type Store struct {
	Pos0 token.Position
	Op   Opcode
	Dest Expression
	Src  Expression
}

func (s *Store) Pos() token.Position { return s.Pos0 }
func (s *Store) Type() *types.Type   { return s.Dest.Type() }
func (s *Store) String() string {
	return "(" + s.Dest.String() + " = " + s.Src.String() + ")"
}

// Call invokes a function-typed expression with a positional argument list.
type Call struct {
	Pos0   token.Position
	Callee Expression
	Args   []Expression
	Result *types.Type
}

func (c *Call) Pos() token.Position { return c.Pos0 }
func (c *Call) Type() *types.Type   { return c.Result }
func (c *Call) String() string {
	out := c.Callee.String() + "("
	for i, a := range c.Args {
		if i > 0 {
			out += ", "
		}
		out += a.String()
	}
	return out + ")"
}
