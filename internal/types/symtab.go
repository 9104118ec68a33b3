package types

import "github.com/golang/glog"

// SymbolTable is the stack of lexical scopes used during one compilation.
// Each compilation owns its own table; nothing here is process-wide.
type SymbolTable struct {
	current *Scope
	depth   int
}

// NewSymbolTable creates a table and enters its global scope.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{}
	st.EnterScope("global")
	return st
}

// EnterScope pushes a new, empty scope whose parent is the current scope.
func (st *SymbolTable) EnterScope(comment string) *Scope {
	st.current = NewScope(st.current, comment)
	st.depth++
	if glog.V(9) {
		glog.V(9).Infof("symtab: enter scope %q (depth %d)", comment, st.depth)
	}
	return st.current
}

// ExitScope pops the current scope, discarding every symbol it owns.
// Exiting with no scope on the stack is a no-op.
func (st *SymbolTable) ExitScope() {
	if st.current == nil {
		return
	}
	if glog.V(9) {
		glog.V(9).Infof("symtab: exit scope %q (depth %d, %d symbols)",
			st.current.comment, st.depth, st.current.NumSymbols())
	}
	st.current = st.current.parent
	st.depth--
}

// Define declares name with the given type in the current scope.
// It fails without mutating the table if the name already exists in the
// current scope; shadowing a name from an outer scope succeeds.
func (st *SymbolTable) Define(name string, typ DataType) bool {
	if st.current == nil {
		return false
	}
	return st.current.Insert(NewSymbol(name, typ)) == nil
}

// Lookup resolves name from the innermost scope outward; the first match wins.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	if st.current == nil {
		return nil, false
	}
	sym, _ := st.current.LookupParent(name)
	return sym, sym != nil
}

// Current returns the innermost scope, or nil if the stack is empty.
func (st *SymbolTable) Current() *Scope {
	return st.current
}

// Depth returns the number of scopes on the stack.
func (st *SymbolTable) Depth() int {
	return st.depth
}

// Reset tears the stack down to empty and re-enters a fresh global scope,
// readying the table for an independent compilation.
func (st *SymbolTable) Reset() {
	for st.current != nil {
		st.ExitScope()
	}
	st.EnterScope("global")
}
