package parser

import (
	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// parseBlockBody implements §4.6's block grammar: '{', a sequence of
// statements, '}'. extra seeds the block's locals scope with a function's
// parameters' vector-component aliases before any of its own statements
// are parsed — nil for a plain nested block, which has none.
func (p *Parser) parseBlockBody(extra []*ast.Value) (*ast.Block, bool) {
	open := p.cur.Peek()
	if !open.IsPunct("{") {
		p.errf(open.Pos, errSyntactic, "expected '{'")
		return nil, false
	}
	if !p.cur.Advance() {
		p.errf(open.Pos, errSyntactic, "unexpected end of file in block")
		return nil, false
	}

	saved := p.syms.OpenBlock()
	for _, pm := range extra {
		if pm.Typ.Kind != types.Vector {
			continue
		}
		for i, suf := range vectorSuffixes {
			alias := &ast.Member{Pos0: pm.Pos0, Base: pm, Index: i, Name: pm.Name + suf}
			p.syms.AddLocal(alias.Name, alias)
		}
	}

	block := &ast.Block{Pos0: open.Pos}
	for {
		if p.cur.Peek().IsPunct("}") {
			break
		}
		if p.cur.AtEOF() {
			p.errf(p.cur.Peek().Pos, errSyntactic, "unexpected end of file in block")
			p.syms.CloseBlock(saved)
			return nil, false
		}
		stmt, ok := p.parseStatement(block)
		if !ok {
			p.syms.CloseBlock(saved)
			return nil, false
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.syms.CloseBlock(saved)

	if !p.cur.Advance() { // consume '}'
		p.errf(open.Pos, errSyntactic, "unexpected end of file after block")
		return nil, false
	}
	return block, true
}

// parseStatement implements §4.6's per-statement dispatch. A local
// variable declaration returns (nil, true): it extends the block's scope
// and Locals list but is not itself a statement-expression.
func (p *Parser) parseStatement(localBlock *ast.Block) (ast.Expression, bool) {
	tok := p.cur.Peek()
	switch {
	case tok.Type == token.TYPENAME:
		if !p.parseDeclaration(localBlock) {
			return nil, false
		}
		return nil, true
	case tok.IsKeyword("return"):
		return p.parseReturn()
	case tok.IsPunct("{"):
		block, ok := p.parseBlockBody(nil)
		if !ok {
			return nil, false
		}
		return block, true
	default:
		return p.parseExpressionStatement()
	}
}

// parseReturn implements §4.6's return statement: a bare "return;" in a
// void function, or "return <expr>;" checked against the enclosing
// function's declared return type.
func (p *Parser) parseReturn() (ast.Expression, bool) {
	retTok := p.cur.Peek()
	if !p.cur.Advance() {
		p.errf(retTok.Pos, errSyntactic, "expected ';' or an expression after 'return'")
		return nil, false
	}

	if p.cur.Peek().IsPunct(";") {
		if p.activeFn != nil && p.activeFn.Typ.Return.Kind != types.Void {
			p.errf(retTok.Pos, errType, "missing return value in function returning %s", p.activeFn.Typ.Return)
			return nil, false
		}
		p.cur.Advance()
		return &ast.Return{Pos0: retTok.Pos}, true
	}

	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if !p.cur.Peek().IsPunct(";") {
		p.errf(p.cur.Peek().Pos, errSyntactic, "expected ';' after return expression")
		return nil, false
	}
	p.cur.Advance()

	if p.activeFn != nil && !expr.Type().Equal(p.activeFn.Typ.Return) {
		p.errf(retTok.Pos, errType, "cannot return %s from a function returning %s", expr.Type(), p.activeFn.Typ.Return)
		return nil, false
	}
	return &ast.Return{Pos0: retTok.Pos, Expr: expr}, true
}

// parseExpressionStatement parses an expression followed by its
// terminating ';' (§4.6's fallback case: an assignment or a call used for
// its side effect).
func (p *Parser) parseExpressionStatement() (ast.Expression, bool) {
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if !p.cur.Peek().IsPunct(";") {
		p.errf(p.cur.Peek().Pos, errSyntactic, "expected ';' after expression")
		return nil, false
	}
	p.cur.Advance()
	return expr, true
}
