package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/go-quakec/qcc/internal/lexer"
)

// TestProgramSnapshots parses a handful of representative QuakeC programs
// and snapshots their rendered AST, the way the teacher's fixture harness
// snapshots whole DWScript programs rather than asserting field-by-field.
func TestProgramSnapshots(t *testing.T) {
	programs := []struct {
		name string
		src  string
	}{
		{
			name: "entity_field_and_builtin",
			src: `.entity owner;
.float health;
void(string s) bprint = #1;`,
		},
		{
			name: "vector_math_function",
			src: `float(vector a, vector b) dot = {
	return a * b;
};`,
		},
		{
			name: "loopless_countdown",
			src: `float(float n) dec = {
	float result;
	result = n - 1;
	return result;
};`,
		},
	}

	for _, tc := range programs {
		t.Run(tc.name, func(t *testing.T) {
			l := lexer.New(tc.src)
			p := New(l)
			prog := p.ParseProgram()
			if p.ErrorCount() != 0 {
				t.Fatalf("unexpected errors parsing %s: %v", tc.name, p.Errors())
			}
			snaps.MatchSnapshot(t, tc.name, prog.String())
		})
	}
}
