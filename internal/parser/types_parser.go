package parser

import (
	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// baseTypeOf maps a TYPENAME token's spelling to its scalar types.Type.
func baseTypeOf(spelling string) (*types.Type, bool) {
	switch spelling {
	case "void":
		return types.TVoid, true
	case "float":
		return types.TFloat, true
	case "string":
		return types.TString, true
	case "vector":
		return types.TVector, true
	case "entity":
		return types.TEntity, true
	default:
		return nil, false
	}
}

// parseType implements §4.4. It is invoked with baseType already consumed
// (the caller read the TYPENAME token) and the cursor positioned at
// whatever follows. If that is '(', a comma-separated parameter list is
// parsed — each parameter itself a type, via recursion, optionally named.
// The returned Value is an unnamed placeholder of baseType carrying the
// parsed parameter list; isFunc tells the caller whether to wrap it into a
// function type.
func (p *Parser) parseType(pos token.Position, baseType *types.Type) (*ast.Value, bool, bool) {
	placeholder := &ast.Value{Pos0: pos, Name: "<unnamed>", Typ: baseType}

	if !p.cur.Peek().IsPunct("(") {
		return placeholder, false, true
	}

	if !p.cur.Advance() { // consume '('
		p.errf(pos, errSyntactic, "expected parameter list")
		return nil, false, false
	}

	var params []*ast.Value
	for {
		if p.cur.Peek().IsPunct(")") {
			break
		}

		tok := p.cur.Peek()
		if tok.Type != token.TYPENAME {
			p.errf(tok.Pos, errSyntactic, "expected a type in parameter list")
			return nil, false, false
		}
		paramBase, ok := baseTypeOf(tok.TypeCode)
		if !ok {
			p.errf(tok.Pos, errSyntactic, "unknown type %q", tok.TypeCode)
			return nil, false, false
		}
		if !p.cur.Advance() {
			p.errf(tok.Pos, errSyntactic, "expected parameter")
			return nil, false, false
		}

		param, paramIsFunc, ok := p.parseType(tok.Pos, paramBase)
		if !ok {
			return nil, false, false
		}
		if paramIsFunc {
			param = wrapFunctionValue(tok.Pos, "<unnamed>", param)
		}

		if p.cur.Peek().Type == token.IDENT {
			param.Name = p.cur.Peek().Literal
			if !p.cur.Advance() {
				p.errf(tok.Pos, errSyntactic, "expected ',' or ')'")
				return nil, false, false
			}
		}

		params = append(params, param)

		if p.cur.Peek().IsPunct(",") {
			if !p.cur.Advance() {
				p.errf(tok.Pos, errSyntactic, "expected parameter after ','")
				return nil, false, false
			}
			continue
		}
		if p.cur.Peek().IsPunct(")") {
			break
		}
		p.errf(p.cur.Peek().Pos, errSyntactic, "expected ',' or ')' in parameter list")
		return nil, false, false
	}

	if !p.cur.Advance() { // consume ')'
		p.errf(pos, errSyntactic, "expected declaration after parameter list")
		return nil, false, false
	}

	placeholder.Params = params
	return placeholder, true, true
}

// wrapFunctionValue turns a return-type placeholder into a named
// function-typed Value, per §4.7 step 3: "synthesize a function-typed
// Value wrapping the parsed Value as return type".
func wrapFunctionValue(pos token.Position, name string, returnVal *ast.Value) *ast.Value {
	paramTypes := make([]*types.Type, len(returnVal.Params))
	for i, pm := range returnVal.Params {
		paramTypes[i] = pm.Typ
	}
	return &ast.Value{
		Pos0:   pos,
		Name:   name,
		Typ:    types.NewFunction(returnVal.Typ, paramTypes),
		Params: returnVal.Params,
	}
}
