package parser

import (
	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/token"
	"github.com/go-quakec/qcc/internal/types"
)

// stackEntry is one row of the operator stack in §4.5's shunting yard.
// paren is 0 for an ordinary operator entry, '(' for a grouping marker, or
// 'f' for a call-open marker. For 'f', calleeIdx names the operand-stack
// slot the callee sits in; for '(', it is the operand-stack length when the
// marker was pushed.
type stackEntry struct {
	paren     byte
	calleeIdx int
	info      operatorInfo
	pos       token.Position
}

// parseExpression implements §4.5: two explicit stacks (operands, here a
// []ast.Expression, and operators, here []stackEntry) driven by a single
// want-operator boolean. The loop stops at the statement-terminating ';'
// without consuming it, leaving that to the statement parser (§4.6).
func (p *Parser) parseExpression() (ast.Expression, bool) {
	var operands []ast.Expression
	var ops []stackEntry
	wantOperator := false
	p.cur.SetNoOps(true)

	for {
		tok := p.cur.Peek()

		if !wantOperator {
			nextWant := true
			switch {
			case tok.Type == token.IDENT:
				node, ok := p.resolveIdentOperand(tok)
				if !ok {
					return nil, false
				}
				operands = append(operands, node)
			case tok.Type == token.FLOAT:
				operands = append(operands, p.pool.InternFloat(tok.Pos, tok.FloatVal))
			case tok.Type == token.INT:
				operands = append(operands, p.pool.InternFloat(tok.Pos, float64(tok.IntVal)))
			case tok.Type == token.STRING:
				operands = append(operands, p.pool.InternString(tok.Pos, tok.StringVal))
			case tok.Type == token.VECTOR:
				operands = append(operands, p.pool.InternVector(tok.Pos, tok.VectorVal))
			case tok.IsPunct("("):
				ops = append(ops, stackEntry{paren: '(', calleeIdx: len(operands), pos: tok.Pos})
				nextWant = false
			case tok.IsPunct(")"):
				if !p.closeParen(tok.Pos, &operands, &ops) {
					return nil, false
				}
			case tok.Type == token.OPERATOR:
				info, ok := lookupPrefix(tok.Literal)
				if !ok {
					p.errf(tok.Pos, errSyntactic, "expected an expression, found operator %q", tok.Literal)
					return nil, false
				}
				ops = append(ops, stackEntry{info: info, pos: tok.Pos})
				nextWant = false
			default:
				p.errf(tok.Pos, errSyntactic, "expected an expression")
				return nil, false
			}
			wantOperator = nextWant
		} else {
			if tok.IsPunct(";") {
				break
			}
			nextWant := false
			switch {
			case tok.IsPunct("("):
				ops = append(ops, stackEntry{paren: 'f', calleeIdx: len(operands) - 1, pos: tok.Pos})
			case tok.IsPunct(")"):
				if !p.closeParen(tok.Pos, &operands, &ops) {
					return nil, false
				}
				nextWant = true
			default:
				info, ok := lookupInfix(tok.Literal)
				if !ok {
					p.errf(tok.Pos, errSyntactic, "expected operator or end of statement")
					return nil, false
				}
				for len(ops) > 0 && ops[len(ops)-1].paren == 0 && shouldPopBefore(info, ops[len(ops)-1].info) {
					if !p.reduce(&operands, &ops) {
						return nil, false
					}
				}
				ops = append(ops, stackEntry{info: info, pos: tok.Pos})
			}
			wantOperator = nextWant
		}

		p.cur.SetNoOps(!wantOperator)
		if !p.cur.Advance() {
			p.errf(tok.Pos, errSyntactic, "unexpected end of file in expression")
			return nil, false
		}
	}

	for len(ops) > 0 {
		if ops[len(ops)-1].paren != 0 {
			p.errf(ops[len(ops)-1].pos, errSyntactic, "unmatched '('")
			return nil, false
		}
		if !p.reduce(&operands, &ops) {
			return nil, false
		}
	}

	if len(operands) != 1 {
		p.errf(p.cur.Peek().Pos, errSyntactic, "empty expression")
		return nil, false
	}
	return operands[0], true
}

// resolveIdentOperand looks an identifier up through the locals →
// parameters → globals scopes (§4.3).
func (p *Parser) resolveIdentOperand(tok token.Token) (ast.Expression, bool) {
	node, ok := p.syms.Lookup(tok.Literal)
	if !ok {
		p.errf(tok.Pos, errSymbolic, "unknown identifier %q", tok.Literal)
		return nil, false
	}
	return node, true
}

// closeParen implements §4.5's paren-close rule: pop and reduce operators
// down to the matching marker. A grouping '(' with nothing pushed inside
// it is always an empty-parenthesis error, whether it is closed while an
// operand or an operator was expected.
func (p *Parser) closeParen(pos token.Position, operands *[]ast.Expression, ops *[]stackEntry) bool {
	if len(*ops) == 0 {
		p.errf(pos, errSyntactic, "unmatched closing paren")
		return false
	}
	if top := (*ops)[len(*ops)-1]; top.paren == '(' && len(*operands) == top.calleeIdx {
		p.errf(pos, errSyntactic, "empty parenthesis expression")
		return false
	}
	for len(*ops) > 0 {
		top := (*ops)[len(*ops)-1]
		if top.paren == 'f' {
			return p.closeCall(pos, operands, ops)
		}
		if top.paren == '(' {
			*ops = (*ops)[:len(*ops)-1]
			return true
		}
		if !p.reduce(operands, ops) {
			return false
		}
	}
	p.errf(pos, errSyntactic, "unmatched closing paren")
	return false
}

// closeCall implements §4.5's call-closing logic: everything above the
// callee on the operand stack collapses to either nothing (0 args), a
// single expression (1 arg), or a comma-built Block (2+ args, since every
// comma between arguments has already reduced by the time the matching
// 'f' marker is reached).
func (p *Parser) closeCall(pos token.Position, operands *[]ast.Expression, ops *[]stackEntry) bool {
	top := (*ops)[len(*ops)-1]
	*ops = (*ops)[:len(*ops)-1]
	fid := top.calleeIdx

	if fid < 0 || fid >= len(*operands) {
		p.errf(pos, errInternal, "function call needs a function and a parameter list")
		return false
	}
	callee := (*operands)[fid]

	var args []ast.Expression
	switch {
	case fid+1 == len(*operands):
		// no arguments
	case fid+2 == len(*operands):
		last := (*operands)[len(*operands)-1]
		*operands = (*operands)[:len(*operands)-1]
		if blk, ok := last.(*ast.Block); ok && blk.Locals == nil {
			args = blk.Statements
		} else {
			args = []ast.Expression{last}
		}
	default:
		p.errf(pos, errInternal, "invalid function call")
		return false
	}

	if !callee.Type().IsFunction() {
		p.errf(pos, errType, "%s is not callable", callee)
		return false
	}
	sig := callee.Type()
	if len(sig.Params) != len(args) {
		p.errf(pos, errType, "expected %d parameter(s), got %d", len(sig.Params), len(args))
		return false
	}
	for i, a := range args {
		if !a.Type().Equal(sig.Params[i]) {
			p.errf(pos, errType, "parameter %d: expected %s, got %s", i+1, sig.Params[i], a.Type())
			return false
		}
	}

	*operands = append((*operands)[:fid], ast.Expression(&ast.Call{
		Pos0: pos, Callee: callee, Args: args, Result: sig.Return,
	}))
	return true
}

// reduce pops the top operator (or prefix op) and the operands it needs,
// builds the typed node, and pushes the result back onto the operand
// stack (§4.5).
func (p *Parser) reduce(operands *[]ast.Expression, ops *[]stackEntry) bool {
	top := (*ops)[len(*ops)-1]
	*ops = (*ops)[:len(*ops)-1]

	if top.info.kind == prefixOp {
		if len(*operands) < 1 {
			p.errf(top.pos, errInternal, "operand stack underflow")
			return false
		}
		operand := (*operands)[len(*operands)-1]
		*operands = (*operands)[:len(*operands)-1]
		op, result, ok := combineUnary(top.info.spelling, operand.Type())
		if !ok {
			p.errf(top.pos, errType, "invalid operand type %s for %q", operand.Type(), top.info.spelling)
			return false
		}
		*operands = append(*operands, &ast.Unary{Pos0: top.pos, Op: op, Operand: operand, Result: result})
		return true
	}

	if len(*operands) < 2 {
		p.errf(top.pos, errInternal, "operand stack underflow")
		return false
	}
	right := (*operands)[len(*operands)-1]
	left := (*operands)[len(*operands)-2]
	*operands = (*operands)[:len(*operands)-2]

	switch top.info.spelling {
	case ",":
		*operands = append(*operands, combineComma(top.pos, left, right))
		return true
	case "=":
		if !left.Type().Equal(right.Type()) {
			p.errf(top.pos, errType, "cannot assign %s to %s", right.Type(), left.Type())
			return false
		}
		op, ok := ast.StoreOpcodeFor(left.Type())
		if !ok {
			p.errf(top.pos, errInternal, "no store opcode for type %s", left.Type())
			return false
		}
		*operands = append(*operands, &ast.Store{Pos0: top.pos, Op: op, Dest: left, Src: right})
		return true
	}

	op, result, ok := combineBinary(top.info.spelling, left.Type(), right.Type())
	if !ok {
		p.errf(top.pos, errType, "invalid operand types %s and %s for %q", left.Type(), right.Type(), top.info.spelling)
		return false
	}
	*operands = append(*operands, &ast.Binary{Pos0: top.pos, Op: op, Left: left, Right: right, Result: result})
	return true
}

// combineComma folds the comma operator's left/right operands into a
// single Block, flattening a left-associative chain ("a, b, c") into one
// Block rather than nesting Blocks inside Blocks. A Block with no Locals
// is always one of these synthetic comma lists — a real lexical block
// never participates in expression reduction (§3).
func combineComma(pos token.Position, left, right ast.Expression) ast.Expression {
	if blk, ok := left.(*ast.Block); ok && blk.Locals == nil {
		blk.Statements = append(blk.Statements, right)
		return blk
	}
	return &ast.Block{Pos0: pos, Statements: []ast.Expression{left, right}}
}

// combineBinary implements §4.5's per-operator, per-operand-type opcode
// table, plus the relational/equality/string rows SPEC_FULL.md §C adds.
// Vector*vector is QuakeC's dot product (MUL_V), so it yields a float, not
// a vector — one of the Open Questions DESIGN.md records a decision for.
func combineBinary(spelling string, lt, rt *types.Type) (ast.Opcode, *types.Type, bool) {
	switch spelling {
	case "+":
		switch {
		case lt.Kind == types.Float && rt.Kind == types.Float:
			return ast.ADD_F, types.TFloat, true
		case lt.Kind == types.Vector && rt.Kind == types.Vector:
			return ast.ADD_V, types.TVector, true
		case lt.Kind == types.String && rt.Kind == types.String:
			return ast.ADD_S, types.TString, true
		}
	case "-":
		switch {
		case lt.Kind == types.Float && rt.Kind == types.Float:
			return ast.SUB_F, types.TFloat, true
		case lt.Kind == types.Vector && rt.Kind == types.Vector:
			return ast.SUB_V, types.TVector, true
		}
	case "*":
		switch {
		case lt.Kind == types.Float && rt.Kind == types.Float:
			return ast.MUL_F, types.TFloat, true
		case lt.Kind == types.Vector && rt.Kind == types.Vector:
			return ast.MUL_V, types.TFloat, true
		case lt.Kind == types.Float && rt.Kind == types.Vector:
			return ast.MUL_FV, types.TVector, true
		case lt.Kind == types.Vector && rt.Kind == types.Float:
			return ast.MUL_VF, types.TVector, true
		}
	case "/":
		if lt.Kind == types.Float && rt.Kind == types.Float {
			return ast.DIV_F, types.TFloat, true
		}
	case "==":
		switch {
		case lt.Kind == types.Float && rt.Kind == types.Float:
			return ast.EQ_F, types.TFloat, true
		case lt.Kind == types.Vector && rt.Kind == types.Vector:
			return ast.EQ_V, types.TFloat, true
		}
	case "!=":
		switch {
		case lt.Kind == types.Float && rt.Kind == types.Float:
			return ast.NE_F, types.TFloat, true
		case lt.Kind == types.Vector && rt.Kind == types.Vector:
			return ast.NE_V, types.TFloat, true
		}
	case "<":
		if lt.Kind == types.Float && rt.Kind == types.Float {
			return ast.LT_F, types.TFloat, true
		}
	case "<=":
		if lt.Kind == types.Float && rt.Kind == types.Float {
			return ast.LE_F, types.TFloat, true
		}
	case ">":
		if lt.Kind == types.Float && rt.Kind == types.Float {
			return ast.GT_F, types.TFloat, true
		}
	case ">=":
		if lt.Kind == types.Float && rt.Kind == types.Float {
			return ast.GE_F, types.TFloat, true
		}
	}
	return 0, nil, false
}

// combineUnary implements SPEC_FULL.md §C.2's prefix-operator table.
func combineUnary(spelling string, t *types.Type) (ast.Opcode, *types.Type, bool) {
	switch spelling {
	case "-":
		switch t.Kind {
		case types.Float:
			return ast.UNARY_MINUS_F, types.TFloat, true
		case types.Vector:
			return ast.UNARY_MINUS_V, types.TVector, true
		}
	case "!":
		if t.Kind == types.Float {
			return ast.NOT_F, types.TFloat, true
		}
	}
	return 0, nil, false
}
