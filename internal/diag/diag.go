// Package diag formats compiler diagnostics and tracks the process-wide
// error count that gates code generation. It is adapted from the teacher's
// internal/errors package, but renders a single "file:line: kind: message"
// line with no source excerpt or caret, grounded on the simpler position
// this front end tracks (file + line, no column — the lexer here does not
// track columns, matching gmqcc's own diagnostics which are file:line
// only).
package diag

import (
	"fmt"
	"strings"

	"github.com/go-quakec/qcc/internal/token"
)

// Kind classifies a diagnostic per §7's error taxonomy.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	Symbolic
	TypeError
	Internal
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntax"
	case Symbolic:
		return "symbol"
	case TypeError:
		return "type"
	case Internal:
		return "internal"
	default:
		return "error"
	}
}

// Diagnostic is a single reported error.
type Diagnostic struct {
	Kind    Kind
	Pos     token.Position
	Message string
}

// Error implements the error interface, formatting as
// "file:line: kind: message".
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos.String(), d.Kind.String(), d.Message)
}

// Bag accumulates diagnostics and the error counter §7 requires: "every
// error increments a process-wide counter … code generation is skipped
// when the counter is nonzero". It is owned by a single Parser and is not
// safe for concurrent use (§5: no re-entrant parser invocations).
type Bag struct {
	diags []*Diagnostic
}

// Add records a diagnostic and increments the error counter.
func (b *Bag) Add(kind Kind, pos token.Position, format string, args ...any) *Diagnostic {
	d := &Diagnostic{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
	b.diags = append(b.diags, d)
	return d
}

// Count returns the number of diagnostics recorded so far.
func (b *Bag) Count() int { return len(b.diags) }

// HasErrors reports whether any diagnostic has been recorded.
func (b *Bag) HasErrors() bool { return len(b.diags) > 0 }

// All returns every recorded diagnostic, in report order.
func (b *Bag) All() []*Diagnostic { return b.diags }

// String renders every diagnostic, one per line.
func (b *Bag) String() string {
	var sb strings.Builder
	for _, d := range b.diags {
		sb.WriteString(d.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}
