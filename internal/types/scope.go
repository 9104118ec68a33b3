package types

import (
	"fmt"
	"sort"
	"strings"
)

// Scope represents a lexical scope.
// Scopes form a chain from the innermost scope out to the global scope.
type Scope struct {
	parent  *Scope
	elems   map[string]*Symbol
	comment string // debugging comment (e.g., "global", "function main", "block")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	return &Scope{
		parent:  parent,
		elems:   make(map[string]*Symbol),
		comment: comment,
	}
}

// Parent returns the parent scope, or nil for the global scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the symbol with the given name in the current scope.
// Returns nil if not found in this scope (does not search parent scopes).
func (s *Scope) Lookup(name string) *Symbol {
	return s.elems[name]
}

// LookupParent returns the symbol with the given name by searching
// from the current scope up through all parent scopes.
// Returns the symbol and the scope in which it was found.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (*Symbol, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym := scope.elems[name]; sym != nil {
			return sym, scope
		}
	}
	return nil, nil
}

// Insert inserts a symbol into the scope.
// If a symbol with the same name already exists, returns the existing symbol
// and leaves the scope unchanged. Otherwise, returns nil.
func (s *Scope) Insert(sym *Symbol) *Symbol {
	name := sym.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = sym
	sym.setParent(s)
	return nil
}

// Names returns the names of all symbols in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumSymbols returns the number of symbols in the scope.
func (s *Scope) NumSymbols() int {
	return len(s.elems)
}

// String returns a string representation of the scope chain for debugging,
// innermost scope first.
func (s *Scope) String() string {
	var buf strings.Builder
	for scope, depth := s, 0; scope != nil; scope, depth = scope.parent, depth+1 {
		prefix := strings.Repeat("  ", depth)
		fmt.Fprintf(&buf, "%sscope %s {\n", prefix, scope.comment)
		for _, name := range scope.Names() {
			fmt.Fprintf(&buf, "%s  %s: %s\n", prefix, name, scope.elems[name].Type())
		}
		fmt.Fprintf(&buf, "%s}\n", prefix)
	}
	return buf.String()
}
