package parser

import (
	"testing"

	"github.com/go-quakec/qcc/internal/ast"
	"github.com/go-quakec/qcc/internal/lexer"
	"github.com/go-quakec/qcc/internal/types"
)

// exprParser sets up a Parser with three float globals (a, b, c) and one
// vector global (v) pre-declared, positioned right at the start of an expression, matching
// how parseExpression is always entered mid-statement in real use.
func exprParser(t *testing.T, body string) (*Parser, ast.Expression) {
	t.Helper()
	l := lexer.New("float a; float b; float c; vector v; " + body)
	p := New(l)

	for i := 0; i < 4; i++ {
		if !p.parseDeclaration(nil) {
			t.Fatalf("setup declaration failed: %v", p.Errors())
		}
	}

	p.cur.SetNoOps(true)
	expr, ok := p.parseExpression()
	if !ok {
		t.Fatalf("parseExpression failed for %q: %v", body, p.Errors())
	}
	return p, expr
}

func TestParseExpressionPrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	_, expr := exprParser(t, "a + b * c;")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != ast.ADD_F {
		t.Fatalf("expected top-level ADD_F, got %T %v", expr, expr)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op != ast.MUL_F {
		t.Fatalf("expected right operand to be MUL_F, got %T %v", bin.Right, bin.Right)
	}
}

func TestParseExpressionParenthesesOverridePrecedence(t *testing.T) {
	_, expr := exprParser(t, "(a + b) * c;")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != ast.MUL_F {
		t.Fatalf("expected top-level MUL_F, got %T %v", expr, expr)
	}
	lhs, ok := bin.Left.(*ast.Binary)
	if !ok || lhs.Op != ast.ADD_F {
		t.Fatalf("expected left operand to be the parenthesized ADD_F, got %T %v", bin.Left, bin.Left)
	}
}

func TestParseExpressionTrailingOperatorAfterParenCloseWorks(t *testing.T) {
	// This is the shunting-yard deviation from the reference C parser: after
	// closing a ')', the engine must be ready for another infix operator.
	_, expr := exprParser(t, "(a + b) + c;")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != ast.ADD_F {
		t.Fatalf("expected (a+b)+c to parse as a top-level ADD_F, got %T %v", expr, expr)
	}
}

func TestParseExpressionRightAssociativeAssignment(t *testing.T) {
	_, expr := exprParser(t, "a = b = c;")
	outer, ok := expr.(*ast.Store)
	if !ok {
		t.Fatalf("expected a Store, got %T", expr)
	}
	if _, ok := outer.Src.(*ast.Store); !ok {
		t.Fatalf("expected a = (b = c) to nest the inner assignment on the right, got %T", outer.Src)
	}
}

func TestParseExpressionUnaryMinusBindsTighterThanBinary(t *testing.T) {
	_, expr := exprParser(t, "-a + b;")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != ast.ADD_F {
		t.Fatalf("expected top-level ADD_F, got %T %v", expr, expr)
	}
	if _, ok := bin.Left.(*ast.Unary); !ok {
		t.Fatalf("expected the left operand to be a Unary, got %T", bin.Left)
	}
}

func TestParseExpressionVectorDotProductYieldsFloat(t *testing.T) {
	_, expr := exprParser(t, "v * v;")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != ast.MUL_V {
		t.Fatalf("expected MUL_V, got %T %v", expr, expr)
	}
	if bin.Type().Kind != types.Float {
		t.Fatalf("vector*vector must yield a float (dot product), got %s", bin.Type())
	}
}

func TestParseExpressionScalarVectorProductYieldsVector(t *testing.T) {
	_, expr := exprParser(t, "a * v;")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != ast.MUL_FV {
		t.Fatalf("expected MUL_FV, got %T %v", expr, expr)
	}
	if bin.Type().Kind != types.Vector {
		t.Fatalf("float*vector must yield a vector, got %s", bin.Type())
	}
}

func TestParseExpressionCommaBuildsFlatBlock(t *testing.T) {
	_, expr := exprParser(t, "(a, b, c);")
	blk, ok := expr.(*ast.Block)
	if !ok {
		t.Fatalf("expected comma chain to reduce to a Block, got %T", expr)
	}
	if blk.Locals != nil {
		t.Fatalf("a comma-list Block must have nil Locals so it's distinguishable from a lexical block")
	}
	if len(blk.Statements) != 3 {
		t.Fatalf("expected a flat 3-element comma list, got %d statements", len(blk.Statements))
	}
}

func TestParseExpressionMismatchedTypesRejected(t *testing.T) {
	l := lexer.New("float a; vector v; a + v;")
	p := New(l)
	if !p.parseDeclaration(nil) {
		t.Fatalf("setup failed: %v", p.Errors())
	}
	if !p.parseDeclaration(nil) {
		t.Fatalf("setup failed: %v", p.Errors())
	}
	p.cur.SetNoOps(true)
	if _, ok := p.parseExpression(); ok {
		t.Fatalf("expected float + vector to be rejected")
	}
}

func TestParseExpressionUnknownIdentifierRejected(t *testing.T) {
	l := lexer.New("undeclared;")
	p := New(l)
	p.cur.SetNoOps(true)
	if _, ok := p.parseExpression(); ok {
		t.Fatalf("expected an unknown identifier to be rejected")
	}
}

func TestParseExpressionUnmatchedParenRejected(t *testing.T) {
	l := lexer.New("float a; (a;")
	p := New(l)
	if !p.parseDeclaration(nil) {
		t.Fatalf("setup failed: %v", p.Errors())
	}
	p.cur.SetNoOps(true)
	if _, ok := p.parseExpression(); ok {
		t.Fatalf("expected an unmatched '(' to be rejected")
	}
}

func TestParseExpressionFunctionCallArity(t *testing.T) {
	l := lexer.New("float(float a, float b) add = #1; float r; void() main = { r = add(1, 2); };")
	p := New(l)
	prog := p.ParseProgram()
	if p.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(prog.Functions) != 2 {
		t.Fatalf("expected 2 functions (add, main)")
	}
}

func TestParseExpressionFunctionCallArityMismatchRejected(t *testing.T) {
	l := lexer.New("float(float a, float b) add = #1; float r; void() main = { r = add(1); };")
	p := New(l)
	p.ParseProgram()
	if p.ErrorCount() == 0 {
		t.Fatalf("expected an arity mismatch to be rejected")
	}
}

func TestParseExpressionCallingNonFunctionRejected(t *testing.T) {
	l := lexer.New("float a; float r; void() main = { r = a(1); };")
	p := New(l)
	p.ParseProgram()
	if p.ErrorCount() == 0 {
		t.Fatalf("expected calling a non-function to be rejected")
	}
}
