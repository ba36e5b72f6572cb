package parser

import "github.com/go-quakec/qcc/internal/ast"

// symbolEntry is a single (name, node) binding. The node is always either
// an *ast.Value (the base declaration) or an *ast.Member (a vector's _x/_y/_z
// alias) — both satisfy ast.Expression.
type symbolEntry struct {
	name string
	node ast.Expression
}

// SymbolTable implements §4.3's three-scope lookup: locals, then the active
// function's parameters, then globals. Locals are an append-only stack with
// a block watermark; opening a block records where it starts, closing one
// pops back down to that point.
type SymbolTable struct {
	globals    []symbolEntry
	globalSet  map[string]bool

	params []*ast.Value

	locals    []symbolEntry
	watermark int
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{globalSet: make(map[string]bool)}
}

// AddGlobal registers a new global. It rejects duplicates outright, per
// §4.3's "find_global rejects duplicates outright".
func (st *SymbolTable) AddGlobal(name string, node ast.Expression) bool {
	if st.globalSet[name] {
		return false
	}
	st.globals = append(st.globals, symbolEntry{name, node})
	st.globalSet[name] = true
	return true
}

// FindGlobal looks up a global by name.
func (st *SymbolTable) FindGlobal(name string) (ast.Expression, bool) {
	if !st.globalSet[name] {
		return nil, false
	}
	for _, e := range st.globals {
		if e.name == name {
			return e.node, true
		}
	}
	return nil, false
}

// EnterFunction sets the active function's parameter scope.
func (st *SymbolTable) EnterFunction(params []*ast.Value) { st.params = params }

// ExitFunction clears the active function's parameter scope.
func (st *SymbolTable) ExitFunction() { st.params = nil }

// FindParam looks up a name in the active function's parameter list.
func (st *SymbolTable) FindParam(name string) (ast.Expression, bool) {
	for _, p := range st.params {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// OpenBlock saves the current watermark and advances it to the current
// locals length, per §4.3. It returns the saved watermark, which the
// caller must pass back to CloseBlock.
func (st *SymbolTable) OpenBlock() int {
	saved := st.watermark
	st.watermark = len(st.locals)
	return saved
}

// CloseBlock pops locals back down to the block's watermark (LIFO, per
// §3's "their entries are popped in LIFO order") and restores the
// enclosing block's watermark.
func (st *SymbolTable) CloseBlock(saved int) {
	st.locals = st.locals[:st.watermark]
	st.watermark = saved
}

// Watermark returns the current block's watermark — the locals-stack
// index below which a name belongs to an enclosing block.
func (st *SymbolTable) Watermark() int { return st.watermark }

// FindLocalFrom searches the locals stack from the top down to index
// from (inclusive lower bound), per §4.3's find_local(name, from). Passing
// the current watermark detects same-block redeclaration; passing 0
// searches the whole locals stack.
func (st *SymbolTable) FindLocalFrom(name string, from int) (ast.Expression, bool) {
	for i := len(st.locals) - 1; i >= from; i-- {
		if st.locals[i].name == name {
			return st.locals[i].node, true
		}
	}
	return nil, false
}

// AddLocal appends a new local to the top of the locals stack. The caller
// is responsible for checking FindLocalFrom(name, watermark) first to
// enforce the same-block redeclaration rule.
func (st *SymbolTable) AddLocal(name string, node ast.Expression) {
	st.locals = append(st.locals, symbolEntry{name, node})
}

// Lookup resolves name through the locals → parameters → globals search
// order (§4.3, §8).
func (st *SymbolTable) Lookup(name string) (ast.Expression, bool) {
	if node, ok := st.FindLocalFrom(name, 0); ok {
		return node, true
	}
	if node, ok := st.FindParam(name); ok {
		return node, true
	}
	return st.FindGlobal(name)
}
