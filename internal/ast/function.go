package ast

import (
	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// Function owns a function-typed Value and either a builtin index or a
// non-empty list of body blocks, never both (§3: "a Function node with a
// non-negative builtin index must have at least one Block; a negative
// builtin index must have zero Blocks"). The zero value of BuiltinIndex (0)
// means "not a builtin" — an ordinary function, defined by its Blocks.
type Function struct {
	Pos0         token.Position
	Val          *Value // function-typed Value naming this function
	Blocks       []*Block
	BuiltinIndex int
}

func (f *Function) Pos() token.Position { return f.Pos0 }
func (f *Function) Type() *types.Type   { return f.Val.Typ }
func (f *Function) String() string      { return "function " + f.Val.Name }

// IsBuiltin reports whether this function is bound to a builtin rather
// than defined with a body.
func (f *Function) IsBuiltin() bool { return f.BuiltinIndex < 0 }

// Program is the finished AST the IR builder consumes: the interned
// constant pool (emitted first, in first-seen order), the user-declared
// globals in declaration order, and the function list in declaration
// order (§6).
type Program struct {
	Floats    []*Value
	Strings   []*Value
	Vectors   []*Value
	Globals   []*Value
	Functions []*Function
}

func (p *Program) Pos() token.Position {
	if len(p.Globals) > 0 {
		return p.Globals[0].Pos()
	}
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	return token.Position{Line: 1}
}

func (p *Program) String() string {
	out := ""
	for _, g := range p.Globals {
		out += g.Typ.String() + " " + g.Name + ";\n"
	}
	for _, fn := range p.Functions {
		out += fn.String() + "\n"
	}
	return out
}
