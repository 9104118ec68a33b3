package types

import "fmt"

// Symbol is a declared name and its type. A symbol lives as long as the
// scope that owns it.
type Symbol struct {
	name   string
	typ    DataType
	parent *Scope
}

// NewSymbol creates a symbol that is not yet owned by any scope.
func NewSymbol(name string, typ DataType) *Symbol {
	return &Symbol{name: name, typ: typ}
}

func (s *Symbol) Name() string       { return s.name }
func (s *Symbol) Type() DataType     { return s.typ }
func (s *Symbol) Parent() *Scope     { return s.parent }
func (s *Symbol) String() string     { return fmt.Sprintf("%s %s", s.typ, s.name) }
func (s *Symbol) setParent(p *Scope) { s.parent = p }
