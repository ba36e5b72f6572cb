package lexer

import (
	"testing"

	"github.com/go-quakec/qcc/internal/token"
)

func TestNextTokenDeclaration(t *testing.T) {
	input := `float health;
.entity owner;
void() think;`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.TYPENAME, "float"},
		{token.IDENT, "health"},
		{token.PUNCT, ";"},
		{token.PUNCT, "."},
		{token.TYPENAME, "entity"},
		{token.IDENT, "owner"},
		{token.PUNCT, ";"},
		{token.TYPENAME, "void"},
		{token.PUNCT, "("},
		{token.PUNCT, ")"},
		{token.IDENT, "think"},
		{token.PUNCT, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d]: type wrong. expected=%s, got=%s (literal=%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d]: literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenSuppressesOperatorsWhenNoOps(t *testing.T) {
	l := New("a + b")
	l.SetNoOps(true)

	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "a" {
		t.Fatalf("expected ident 'a', got %v", tok)
	}

	tok = l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected '+' to be illegal while noOps is set, got %s", tok.Type)
	}
}

func TestNextTokenAllowsOperatorsWhenOpsEnabled(t *testing.T) {
	l := New("a + b == c")
	l.SetNoOps(false)

	want := []struct {
		typ     token.Type
		literal string
	}{
		{token.IDENT, "a"},
		{token.OPERATOR, "+"},
		{token.IDENT, "b"},
		{token.OPERATOR, "=="},
		{token.IDENT, "c"},
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.Literal != w.literal {
			t.Fatalf("tests[%d]: expected %s %q, got %s %q", i, w.typ, w.literal, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	l := New("42 3.5 #7")

	tok := l.NextToken()
	if tok.Type != token.INT || tok.IntVal != 42 {
		t.Fatalf("expected int 42, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.FLOAT || tok.FloatVal != 3.5 {
		t.Fatalf("expected float 3.5, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.PUNCT || tok.Literal != "#" {
		t.Fatalf("expected '#' punctuator, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.INT || tok.IntVal != 7 {
		t.Fatalf("expected int 7, got %v", tok)
	}
}

func TestNextTokenStringVsVectorLiteral(t *testing.T) {
	l := New(`"hello world" '1 2 3'`)

	tok := l.NextToken()
	if tok.Type != token.STRING || tok.StringVal != "hello world" {
		t.Fatalf("expected string literal, got %v", tok)
	}

	tok = l.NextToken()
	if tok.Type != token.VECTOR || tok.VectorVal != [3]float64{1, 2, 3} {
		t.Fatalf("expected vector literal '1 2 3', got %v", tok)
	}
}

func TestNextTokenSingleQuotedNonVectorIsString(t *testing.T) {
	l := New(`'not a vector'`)

	tok := l.NextToken()
	if tok.Type != token.STRING || tok.StringVal != "not a vector" {
		t.Fatalf("expected a string literal for a non-3-float quoted body, got %v", tok)
	}
}

func TestNextTokenSkipsComments(t *testing.T) {
	l := New("float x; // trailing comment\n/* block\ncomment */float y;")

	var literals []string
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		literals = append(literals, tok.Literal)
	}

	want := []string{"float", "x", ";", "float", "y", ";"}
	if len(literals) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(literals), literals)
	}
	for i := range want {
		if literals[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], literals[i])
		}
	}
}

func TestNextTokenReturnKeyword(t *testing.T) {
	l := New("return")
	tok := l.NextToken()
	if tok.Type != token.KEYWORD || tok.Literal != "return" {
		t.Fatalf("expected 'return' keyword, got %v", tok)
	}
}

func TestWithFileOption(t *testing.T) {
	l := New("float x;", WithFile("progs.src"))
	tok := l.NextToken()
	if tok.Pos.File != "progs.src" {
		t.Fatalf("expected file name to be set via WithFile, got %q", tok.Pos.File)
	}
}
