package parser

import (
	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// vectorSuffixes names the three component aliases a vector declaration
// registers alongside its base name (§3, §4.7's "vector specialization").
var vectorSuffixes = [3]string{"_x", "_y", "_z"}

// declareValue registers val in the current scope: the active local block
// if localBlock is non-nil, the program's globals otherwise. Duplicate
// names are rejected per §4.3 (globals outright, locals within the same
// block watermark).
func (p *Parser) declareValue(pos token.Position, localBlock *ast.Block, val *ast.Value) bool {
	if localBlock != nil {
		if _, exists := p.syms.FindLocalFrom(val.Name, p.syms.Watermark()); exists {
			p.errf(pos, errSymbolic, "redeclaration of %q in this block", val.Name)
			return false
		}
		p.syms.AddLocal(val.Name, val)
		localBlock.Locals = append(localBlock.Locals, val)
		return true
	}
	if !p.syms.AddGlobal(val.Name, val) {
		p.errf(pos, errSymbolic, "redeclaration of global %q", val.Name)
		return false
	}
	p.program.Globals = append(p.program.Globals, val)
	return true
}

// declareVectorAliases registers the _x/_y/_z Member views of a
// vector-typed value — an ordinary declaration or a vector-typed field
// (§C.1's "vector fields also get _x/_y/_z field aliases") — in the same
// scope as val itself. Aliases are views, not storage, so they never go
// into a Block's Locals or the program's Globals (§3).
func (p *Parser) declareVectorAliases(pos token.Position, localBlock *ast.Block, val *ast.Value) {
	for i, suf := range vectorSuffixes {
		alias := &ast.Member{Pos0: pos, Base: val, Index: i, Name: val.Name + suf}
		if localBlock != nil {
			p.syms.AddLocal(alias.Name, alias)
		} else {
			p.syms.AddGlobal(alias.Name, alias)
		}
	}
}

// parseDeclaration implements §4.7: a base typename followed by one or
// more comma-separated declarators, each optionally carrying a '#N'
// builtin binding or a '{ ... }' body. localBlock is nil for a top-level
// declaration and the enclosing block for a local one (§4.6).
func (p *Parser) parseDeclaration(localBlock *ast.Block) bool {
	baseTok := p.cur.Peek()
	baseType, ok := baseTypeOf(baseTok.TypeCode)
	if !ok {
		p.errf(baseTok.Pos, errSyntactic, "unknown type %q", baseTok.TypeCode)
		return false
	}
	if !p.cur.Advance() {
		p.errf(baseTok.Pos, errSyntactic, "expected a declarator after %q", baseTok.Literal)
		return false
	}

	for {
		declPos := p.cur.Peek().Pos
		placeholder, isFunc, ok := p.parseType(declPos, baseType)
		if !ok {
			return false
		}

		nameTok := p.cur.Peek()
		if nameTok.Type != token.IDENT {
			p.errf(nameTok.Pos, errSyntactic, "expected an identifier in declaration")
			return false
		}
		if !p.cur.Advance() {
			p.errf(nameTok.Pos, errSyntactic, "expected ';', ',' or '=' after %q", nameTok.Literal)
			return false
		}

		var val *ast.Value
		if isFunc {
			val = wrapFunctionValue(declPos, nameTok.Literal, placeholder)
		} else {
			val = placeholder
			val.Name = nameTok.Literal
		}

		if !p.declareValue(declPos, localBlock, val) {
			return false
		}
		if val.Typ.Kind == types.Vector {
			p.declareVectorAliases(declPos, localBlock, val)
		}

		sep := p.cur.Peek()
		switch {
		case sep.IsPunct(";"):
			if !p.cur.Advance() && p.cur.Peek().Type == token.ILLEGAL {
				illegal := p.cur.Peek()
				p.errf(illegal.Pos, errLexical, "illegal character %q", illegal.Literal)
				return false
			}
			return true
		case sep.IsPunct(","):
			if !p.cur.Advance() {
				p.errf(sep.Pos, errSyntactic, "expected a declarator after ','")
				return false
			}
			continue
		case sep.IsPunct("="):
			if !p.cur.Advance() {
				p.errf(sep.Pos, errSyntactic, "expected an initializer after '='")
				return false
			}
			if !p.parseInitializer(val, isFunc) {
				return false
			}
			term := p.cur.Peek()
			if !term.IsPunct(";") {
				p.errf(term.Pos, errSyntactic, "expected ';' after declaration")
				return false
			}
			p.cur.Advance()
			return true
		default:
			p.errf(sep.Pos, errSyntactic, "expected ';', ',' or '=' in declaration")
			return false
		}
	}
}

// parseInitializer parses the right-hand side of a declarator's '=',
// which §4.7 and SPEC_FULL.md §C restrict to a builtin binding ('#N') or a
// function body ('{ ... }'); a plain constant-expression initializer is an
// Open Question the core spec leaves unresolved (see DESIGN.md) and is
// diagnosed rather than silently accepted.
func (p *Parser) parseInitializer(val *ast.Value, isFunc bool) bool {
	tok := p.cur.Peek()
	switch {
	case tok.IsPunct("#"):
		if !isFunc {
			p.errf(tok.Pos, errType, "a builtin index requires a function type, got %s", val.Typ)
			return false
		}
		return p.parseBuiltinBinding(val)
	case tok.IsPunct("{"):
		if !isFunc {
			p.errf(tok.Pos, errType, "a function body requires a function type, got %s", val.Typ)
			return false
		}
		return p.parseFunctionBody(val)
	default:
		p.errf(tok.Pos, errSyntactic, "unsupported initializer (only '#N' and '{ ... }' are implemented)")
		return false
	}
}

// parseBuiltinBinding consumes "#N" and records val as a builtin function,
// per SPEC_FULL.md §C.6: the index must be a positive integer, matching
// gmqcc's rejection of "#0".
func (p *Parser) parseBuiltinBinding(val *ast.Value) bool {
	hashTok := p.cur.Peek()
	if !p.cur.Advance() {
		p.errf(hashTok.Pos, errSyntactic, "expected a builtin index after '#'")
		return false
	}
	idxTok := p.cur.Peek()
	if idxTok.Type != token.INT || idxTok.IntVal <= 0 {
		p.errf(idxTok.Pos, errSyntactic, "a builtin index must be a positive integer")
		return false
	}
	if !p.cur.Advance() {
		p.errf(idxTok.Pos, errSyntactic, "expected ';' after builtin index")
		return false
	}
	p.program.Functions = append(p.program.Functions, &ast.Function{
		Pos0:         val.Pos0,
		Val:          val,
		BuiltinIndex: -int(idxTok.IntVal),
	})
	return true
}

// parseFunctionBody parses a "{ ... }" function body, making val the
// active function for the duration (for return-type checking, §4.6) and
// opening its parameter scope before the block's own locals are parsed.
func (p *Parser) parseFunctionBody(val *ast.Value) bool {
	prevFn := p.activeFn
	p.activeFn = val
	p.syms.EnterFunction(val.Params)

	block, ok := p.parseBlockBody(val.Params)

	p.syms.ExitFunction()
	p.activeFn = prevFn
	if !ok {
		return false
	}

	p.program.Functions = append(p.program.Functions, &ast.Function{
		Pos0:   val.Pos0,
		Val:    val,
		Blocks: []*ast.Block{block},
	})
	return true
}

// parseFieldDeclaration implements SPEC_FULL.md §C.1: ".type name, name;"
// registers one or more global field Values, each of type "field of elem".
// Fields are always global — QuakeC has no local field declarations.
func (p *Parser) parseFieldDeclaration() bool {
	dotTok := p.cur.Peek()
	if !p.cur.Advance() {
		p.errf(dotTok.Pos, errSyntactic, "expected a type after '.'")
		return false
	}
	typeTok := p.cur.Peek()
	if typeTok.Type != token.TYPENAME {
		p.errf(typeTok.Pos, errSyntactic, "expected a type after '.'")
		return false
	}
	elem, ok := baseTypeOf(typeTok.TypeCode)
	if !ok {
		p.errf(typeTok.Pos, errSyntactic, "unknown type %q", typeTok.TypeCode)
		return false
	}
	if !p.cur.Advance() {
		p.errf(typeTok.Pos, errSyntactic, "expected a field name")
		return false
	}

	for {
		nameTok := p.cur.Peek()
		if nameTok.Type != token.IDENT {
			p.errf(nameTok.Pos, errSyntactic, "expected a field name")
			return false
		}
		fieldVal := &ast.Value{Pos0: nameTok.Pos, Name: nameTok.Literal, Typ: types.NewField(elem)}
		if !p.cur.Advance() {
			p.errf(nameTok.Pos, errSyntactic, "expected ';' or ',' after %q", nameTok.Literal)
			return false
		}
		if !p.declareValue(nameTok.Pos, nil, fieldVal) {
			return false
		}
		if elem.Kind == types.Vector {
			p.declareVectorAliases(nameTok.Pos, nil, fieldVal)
		}

		sep := p.cur.Peek()
		switch {
		case sep.IsPunct(";"):
			if !p.cur.Advance() && p.cur.Peek().Type == token.ILLEGAL {
				illegal := p.cur.Peek()
				p.errf(illegal.Pos, errLexical, "illegal character %q", illegal.Literal)
				return false
			}
			return true
		case sep.IsPunct(","):
			if !p.cur.Advance() {
				p.errf(sep.Pos, errSyntactic, "expected a field name after ','")
				return false
			}
			continue
		default:
			p.errf(sep.Pos, errSyntactic, "expected ';' or ',' after field declaration")
			return false
		}
	}
}
