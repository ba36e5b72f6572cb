// Package types implements the small QuakeC type system: the seven scalar
// and composite kinds the language supports, and the structural type
// equality the parser checks operands, assignments, and calls against.
package types

import "strings"

// Kind enumerates the QuakeC primitive and composite type kinds.
type Kind int

const (
	Void Kind = iota
	Float
	String
	Vector
	Entity
	Field
	Function
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Float:
		return "float"
	case String:
		return "string"
	case Vector:
		return "vector"
	case Entity:
		return "entity"
	case Field:
		return "field"
	case Function:
		return "function"
	default:
		return "unknown"
	}
}

// Type describes a value's type. Scalar kinds (Float, String, Vector,
// Entity, Void) are fully described by Kind alone. Field carries the
// member type it projects out of an entity. Function carries the return
// type and an ordered parameter-type list, mirroring §3's "function type
// carries a return type and an ordered list of parameter value nodes".
type Type struct {
	Kind     Kind
	Elem     *Type   // Field: the type stored at the field
	Return   *Type   // Function: the return type
	Params   []*Type // Function: parameter types, in order
}

// Scalar constructors for the non-composite kinds; these are interned so
// equal scalar types compare equal by pointer, matching the teacher's
// pattern of sharing simple value types.
var (
	TVoid   = &Type{Kind: Void}
	TFloat  = &Type{Kind: Float}
	TString = &Type{Kind: String}
	TVector = &Type{Kind: Vector}
	TEntity = &Type{Kind: Entity}
)

// NewField builds a field type projecting elem out of an entity.
func NewField(elem *Type) *Type {
	return &Type{Kind: Field, Elem: elem}
}

// NewFunction builds a function type with the given return type and
// ordered parameter types.
func NewFunction(ret *Type, params []*Type) *Type {
	return &Type{Kind: Function, Return: ret, Params: params}
}

// String renders a type the way gmqcc's type_name table does for
// diagnostics: the bare kind name, or "function(p1, p2): ret" for
// function types.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case Field:
		return "field of " + t.Elem.String()
	case Function:
		var parts []string
		for _, p := range t.Params {
			parts = append(parts, p.String())
		}
		return "function(" + strings.Join(parts, ", ") + "): " + t.Return.String()
	default:
		return t.Kind.String()
	}
}

// Equal reports structural type equality. Two function types are equal
// when their return types and parameter type lists match positionally.
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Field:
		return t.Elem.Equal(other.Elem)
	case Function:
		if !t.Return.Equal(other.Return) || len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equal(other.Params[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsFunction reports whether t is a function type.
func (t *Type) IsFunction() bool { return t != nil && t.Kind == Function }
