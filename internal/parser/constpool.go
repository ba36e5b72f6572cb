package parser

import (
	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// ConstantPool interns float, string, and vector literals to unique Value
// nodes (§4.2). Every interned node carries the synthetic name
// "#IMMEDIATE", matching gmqcc's own immediate naming convention.
type ConstantPool struct {
	floats  []*ast.Value
	strings []*ast.Value
	vectors []*ast.Value

	floatIndex  map[float64]*ast.Value
	stringIndex map[string]*ast.Value
	vectorIndex map[[3]float64]*ast.Value
}

// NewConstantPool creates an empty pool.
func NewConstantPool() *ConstantPool {
	return &ConstantPool{
		floatIndex:  make(map[float64]*ast.Value),
		stringIndex: make(map[string]*ast.Value),
		vectorIndex: make(map[[3]float64]*ast.Value),
	}
}

// InternFloat returns the shared Value for d, creating it on first sight.
func (cp *ConstantPool) InternFloat(pos token.Position, d float64) *ast.Value {
	if v, ok := cp.floatIndex[d]; ok {
		return v
	}
	v := &ast.Value{Pos0: pos, Name: "#IMMEDIATE", Typ: types.TFloat, IsConstant: true, FloatVal: d}
	cp.floats = append(cp.floats, v)
	cp.floatIndex[d] = v
	return v
}

// InternString returns the shared Value for s, comparing by byte-equal
// content.
func (cp *ConstantPool) InternString(pos token.Position, s string) *ast.Value {
	if v, ok := cp.stringIndex[s]; ok {
		return v
	}
	v := &ast.Value{Pos0: pos, Name: "#IMMEDIATE", Typ: types.TString, IsConstant: true, StringVal: s}
	cp.strings = append(cp.strings, v)
	cp.stringIndex[s] = v
	return v
}

// InternVector returns the shared Value for v, comparing componentwise.
func (cp *ConstantPool) InternVector(pos token.Position, v [3]float64) *ast.Value {
	if existing, ok := cp.vectorIndex[v]; ok {
		return existing
	}
	val := &ast.Value{Pos0: pos, Name: "#IMMEDIATE", Typ: types.TVector, IsConstant: true, VectorVal: v}
	cp.vectors = append(cp.vectors, val)
	cp.vectorIndex[v] = val
	return val
}

// Floats, Strings, and Vectors return the interned constants in
// first-seen order, the order the IR builder expects them emitted in (§6).
func (cp *ConstantPool) Floats() []*ast.Value  { return cp.floats }
func (cp *ConstantPool) Strings() []*ast.Value { return cp.strings }
func (cp *ConstantPool) Vectors() []*ast.Value { return cp.vectors }
