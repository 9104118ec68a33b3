package sema

import (
	"github.com/golang/glog"

	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/syntax"
	"github.com/you-not-fish/prism/internal/types"
)

// Checker is the semantic analyzer. One Checker analyzes one unit.
type Checker struct {
	diag diag.Sink
	st   *types.SymbolTable
	info *Info
}

// checkUnit iterates the top-level items. The unit itself opens no scope;
// its items are declared in the global scope.
func (c *Checker) checkUnit(unit *syntax.TranslationUnit) {
	for _, item := range unit.Items {
		c.check(item)
	}
}

// openScope pushes a scope and records it for n.
func (c *Checker) openScope(n syntax.Node, comment string) {
	c.info.Scopes[n] = c.st.EnterScope(comment)
}

// closeScope pops the current scope.
func (c *Checker) closeScope() {
	c.st.ExitScope()
}

// check analyzes any node. Nil nodes are ignored.
func (c *Checker) check(n syntax.Node) {
	if syntax.IsNil(n) {
		return
	}
	switch n := n.(type) {
	case nil:
		return

	case *syntax.TranslationUnit:
		c.checkUnit(n)

	case *syntax.FuncDef:
		c.funcDef(n)

	case *syntax.VarDecl:
		c.varDecl(n)

	case *syntax.ParamDecl:
		c.paramDecl(n)

	case *syntax.TypeSpecifier:
		n.SetType(c.resolveType(n))

	case *syntax.StructDef:
		c.structDef(n)

	case *syntax.CompoundStmt:
		c.openScope(n, "block")
		for _, s := range n.Stmts {
			c.check(s)
		}
		c.closeScope()

	case *syntax.IfStmt:
		c.expr(n.Cond)
		c.check(n.Then)
		c.check(n.Else)

	case *syntax.WhileStmt:
		c.expr(n.Cond)
		c.check(n.Body)

	case *syntax.ForStmt:
		c.openScope(n, "for")
		c.check(n.Init)
		c.expr(n.Cond)
		c.expr(n.Post)
		c.check(n.Body)
		c.closeScope()

	case *syntax.ReturnStmt:
		if syntax.IsNil(n.Value) {
			n.SetType(types.Void)
			return
		}
		n.SetType(c.expr(n.Value))

	case *syntax.ExprStmt:
		n.SetType(c.expr(n.X))

	case syntax.Expr:
		c.expr(n)

	default:
		glog.Warningf("sema: unexpected node %T", n)
	}
}

func (c *Checker) funcDef(fn *syntax.FuncDef) {
	ret := c.resolveType(fn.ReturnType)
	fn.SetType(ret)
	if !c.st.Define(fn.Name, ret) {
		c.info.Redefinitions++
		c.diag.Warningf(diag.WarningFuncRedefinition.At(fn.Pos()), fn.Name)
	}

	c.openScope(fn, "function "+fn.Name)
	for _, p := range fn.Params {
		if p != nil {
			c.paramDecl(p)
		}
	}
	if fn.Body != nil {
		c.check(fn.Body)
	}
	c.closeScope()
}

// varDecl declares the variable before its initializer is analyzed, so an
// initializer may refer to the variable being declared.
func (c *Checker) varDecl(d *syntax.VarDecl) {
	typ := c.resolveType(d.TypeName)
	d.SetType(typ)
	c.define(d, d.Name, typ)
	c.expr(d.Init)
}

func (c *Checker) paramDecl(p *syntax.ParamDecl) {
	typ := c.resolveType(p.TypeName)
	p.SetType(typ)
	c.define(p, p.Name, typ)
}

func (c *Checker) structDef(s *syntax.StructDef) {
	s.SetType(types.Struct)
	if !c.st.Define(s.Name, types.Struct) {
		c.info.Redefinitions++
		c.diag.Warningf(diag.WarningRedefinition.At(s.Pos()), s.Name)
	}
	c.openScope(s, "struct "+s.Name)
	for _, f := range s.Fields {
		if f != nil {
			c.varDecl(f)
		}
	}
	c.closeScope()
}

// define declares name in the current scope. A duplicate in the same scope
// is reported and leaves the first declaration in place.
func (c *Checker) define(n syntax.Node, name string, typ types.DataType) {
	if c.st.Define(name, typ) {
		return
	}
	c.info.Redefinitions++
	c.diag.Warningf(diag.WarningRedefinition.At(n.Pos()), name)
}

// resolveType maps a type specifier to a DataType. A missing specifier is
// Unknown; an unrecognized name is Unknown and reported with a suggestion.
func (c *Checker) resolveType(spec *syntax.TypeSpecifier) types.DataType {
	if spec == nil {
		return types.Unknown
	}
	typ := types.LookupType(spec.Name)
	if typ == types.Unknown {
		// Struct names resolve through the scope chain.
		if sym, ok := c.st.Lookup(spec.Name); ok && sym.Type() == types.Struct {
			typ = types.Struct
		} else {
			c.unknownType(spec)
		}
	}
	spec.SetType(typ)
	return typ
}

func (c *Checker) unknownType(spec *syntax.TypeSpecifier) {
	c.info.UnknownTypes++
	hint := ""
	if s, ok := types.SuggestType(spec.Name); ok {
		hint = "; did you mean '" + s + "'?"
	}
	c.diag.Warningf(diag.WarningUnknownType.At(spec.Pos()), spec.Name, hint)
}
