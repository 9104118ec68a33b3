// Package sema implements semantic analysis: a single scope-aware walk that
// records a resolved type on every declaration and expression node.
package sema

import (
	"github.com/golang/glog"

	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/syntax"
	"github.com/you-not-fish/prism/internal/types"
)

// Config specifies the configuration for semantic analysis.
type Config struct {
	// Diag receives warnings. If nil, diagnostics are only counted.
	Diag diag.Sink

	// Symbols is the table to analyze with. It is reset before use, so a
	// driver may reuse one table across compilations. If nil, a fresh table
	// is created.
	Symbols *types.SymbolTable
}

// Info holds the results of semantic analysis.
type Info struct {
	// Counts of the warnings issued, by cause.
	Redefinitions int
	Unresolved    int
	UnknownTypes  int

	// Global is the outermost scope after analysis.
	Global *types.Scope

	// Scopes maps FuncDef, CompoundStmt, ForStmt and StructDef nodes to the
	// scope they opened.
	Scopes map[syntax.Node]*types.Scope

	// Uses maps each resolved variable reference to its symbol.
	Uses map[*syntax.VarRef]*types.Symbol
}

// Warnings returns the total number of warnings issued.
func (info *Info) Warnings() int {
	return info.Redefinitions + info.Unresolved + info.UnknownTypes
}

// Check analyzes unit, annotating its nodes in place. It never fails:
// problems are reported to conf.Diag and counted in the returned Info.
func Check(unit *syntax.TranslationUnit, conf *Config) *Info {
	if conf == nil {
		conf = &Config{}
	}
	sink := conf.Diag
	if sink == nil {
		sink = diag.DiscardSink()
	}
	st := conf.Symbols
	if st == nil {
		st = types.NewSymbolTable()
	} else {
		st.Reset()
	}

	c := &Checker{
		diag: sink,
		st:   st,
		info: &Info{
			Scopes: make(map[syntax.Node]*types.Scope),
			Uses:   make(map[*syntax.VarRef]*types.Symbol),
		},
	}
	c.info.Global = st.Current()

	if unit != nil {
		c.checkUnit(unit)
	}

	if glog.V(3) {
		glog.V(3).Infof("sema: %d redefinitions, %d unresolved, %d unknown types",
			c.info.Redefinitions, c.info.Unresolved, c.info.UnknownTypes)
	}
	return c.info
}

// ErrorNodes returns every node under root annotated with types.Error, in
// walk order.
func ErrorNodes(root syntax.Node) []syntax.Node {
	var nodes []syntax.Node
	syntax.Inspect(root, func(n syntax.Node) bool {
		if n.Type() == types.Error {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}
