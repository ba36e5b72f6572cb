package ast

import (
	"fmt"

	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// Value is a named, typed node: a global, a parameter, a local, a member
// alias's base, or an interned constant. It is the node every symbol-table
// entry ultimately resolves to (§3's "every name in the symbol table
// resolves to exactly one AST value node").
//
// For function-typed values, Params holds the function's named, typed
// parameter value nodes in order — these are the same nodes registered as
// the function's parameter scope while its body is parsed.
type Value struct {
	Pos0 token.Position
	Name string
	Typ  *types.Type

	IsConstant bool
	FloatVal   float64
	StringVal  string
	VectorVal  [3]float64

	Params []*Value // only meaningful when Typ.Kind == types.Function
}

func (v *Value) Pos() token.Position  { return v.Pos0 }
func (v *Value) Type() *types.Type    { return v.Typ }
func (v *Value) String() string {
	if v.IsConstant {
		switch v.Typ.Kind {
		case types.Float:
			return fmt.Sprintf("%g", v.FloatVal)
		case types.String:
			return fmt.Sprintf("%q", v.StringVal)
		case types.Vector:
			return fmt.Sprintf("'%g %g %g'", v.VectorVal[0], v.VectorVal[1], v.VectorVal[2])
		}
	}
	return v.Name
}

// Member is a fixed-index projection of a vector value: v_x, v_y, or v_z.
// The base owns storage; the Member is a non-owning view (§3's "aliases are
// views").
type Member struct {
	Pos0  token.Position
	Base  Expression // the vector-typed value being projected
	Index int        // 0, 1, or 2
	Name  string
}

func (m *Member) Pos() token.Position { return m.Pos0 }
func (m *Member) Type() *types.Type   { return types.TFloat }
func (m *Member) String() string      { return m.Name }
