package parser

import (
	"testing"

	"github.com/go-quakec/qcc/internal/token"
)

func TestConstantPoolInternsFloatsByValue(t *testing.T) {
	cp := NewConstantPool()
	pos := token.Position{Line: 1}

	a := cp.InternFloat(pos, 1.5)
	b := cp.InternFloat(pos, 1.5)
	c := cp.InternFloat(pos, 2.0)

	if a != b {
		t.Fatalf("expected repeated float literal to return the same Value")
	}
	if a == c {
		t.Fatalf("expected distinct float values to intern separately")
	}
	if len(cp.Floats()) != 2 {
		t.Fatalf("expected 2 distinct interned floats, got %d", len(cp.Floats()))
	}
}

func TestConstantPoolInternsStringsByContent(t *testing.T) {
	cp := NewConstantPool()
	pos := token.Position{Line: 1}

	a := cp.InternString(pos, "hello")
	b := cp.InternString(pos, "hello")
	if a != b {
		t.Fatalf("expected repeated string literal to return the same Value")
	}
	if len(cp.Strings()) != 1 {
		t.Fatalf("expected exactly 1 interned string, got %d", len(cp.Strings()))
	}
}

func TestConstantPoolInternsVectorsComponentwise(t *testing.T) {
	cp := NewConstantPool()
	pos := token.Position{Line: 1}

	a := cp.InternVector(pos, [3]float64{1, 2, 3})
	b := cp.InternVector(pos, [3]float64{1, 2, 3})
	c := cp.InternVector(pos, [3]float64{1, 2, 4})

	if a != b {
		t.Fatalf("expected componentwise-equal vectors to intern to the same Value")
	}
	if a == c {
		t.Fatalf("expected differing vectors to intern separately")
	}
	if len(cp.Vectors()) != 2 {
		t.Fatalf("expected 2 distinct interned vectors, got %d", len(cp.Vectors()))
	}
}

func TestConstantPoolPreservesFirstSeenOrder(t *testing.T) {
	cp := NewConstantPool()
	pos := token.Position{Line: 1}

	cp.InternFloat(pos, 3)
	cp.InternFloat(pos, 1)
	cp.InternFloat(pos, 2)
	cp.InternFloat(pos, 1) // repeat, must not reorder or duplicate

	floats := cp.Floats()
	want := []float64{3, 1, 2}
	if len(floats) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(floats))
	}
	for i, w := range want {
		if floats[i].FloatVal != w {
			t.Fatalf("floats[%d]: expected %v, got %v", i, w, floats[i].FloatVal)
		}
	}
}
