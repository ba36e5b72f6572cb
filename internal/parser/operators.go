package parser

// Assoc is an operator's associativity.
type Assoc int

const (
	Left Assoc = iota
	Right
)

// Precedence levels, lowest to highest. Comma is lowest (it folds the
// whole remaining expression into a Block); prefix operators bind
// tightest, tighter even than the binary operators that share their
// spelling (unary "-" vs binary "-").
const (
	precLowest = iota
	precComma
	precAssign
	precEquality
	precRelational
	precSum
	precProduct
	precPrefix
)

// opKind distinguishes how an operatorInfo participates in the shunting
// yard: an Infix entry is looked up while want-operator is true; a Prefix
// entry is looked up while an operand is expected and the token could
// start a unary expression.
type opKind int

const (
	infixOp opKind = iota
	prefixOp
)

// operatorInfo is one row of the operator table: a spelling, a precedence
// and associativity for the popping rule, an arity, and whether it is infix
// or prefix. The typed opcode is not stored here: combineBinary and
// combineUnary pick it once the operand types are known.
type operatorInfo struct {
	spelling string
	prec     int
	assoc    Assoc
	arity    int
	kind     opKind
}

// infixOperators is searched when the parser expects an operator (§4.5).
// Order does not matter for lookup; multi-character spellings are matched
// whole since the lexer never splits them.
var infixOperators = []operatorInfo{
	{",", precComma, Left, 2, infixOp},
	{"=", precAssign, Right, 2, infixOp},
	{"==", precEquality, Left, 2, infixOp},
	{"!=", precEquality, Left, 2, infixOp},
	{"<", precRelational, Left, 2, infixOp},
	{"<=", precRelational, Left, 2, infixOp},
	{">", precRelational, Left, 2, infixOp},
	{">=", precRelational, Left, 2, infixOp},
	{"+", precSum, Left, 2, infixOp},
	{"-", precSum, Left, 2, infixOp},
	{"*", precProduct, Left, 2, infixOp},
	{"/", precProduct, Left, 2, infixOp},
}

// prefixOperators is searched when the parser expects an operand and the
// current token could introduce a unary expression (SPEC_FULL.md §C.2).
var prefixOperators = []operatorInfo{
	{"-", precPrefix, Right, 1, prefixOp},
	{"!", precPrefix, Right, 1, prefixOp},
}

func lookupInfix(spelling string) (operatorInfo, bool) {
	for _, op := range infixOperators {
		if op.spelling == spelling {
			return op, true
		}
	}
	return operatorInfo{}, false
}

func lookupPrefix(spelling string) (operatorInfo, bool) {
	for _, op := range prefixOperators {
		if op.spelling == spelling {
			return op, true
		}
	}
	return operatorInfo{}, false
}

// shouldPopBefore implements §4.5's popping rule: pop the stack top while
// the incoming operator binds no tighter than it.
func shouldPopBefore(incoming, top operatorInfo) bool {
	if incoming.prec < top.prec {
		return true
	}
	if incoming.assoc == Left && incoming.prec <= top.prec {
		return true
	}
	return false
}
