package sema

import (
	"strings"

	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/syntax"
	"github.com/you-not-fish/prism/internal/types"
)

// expr analyzes e, records its type on the node and returns it. A nil
// expression has type Unknown.
func (c *Checker) expr(e syntax.Expr) types.DataType {
	if syntax.IsNil(e) {
		return types.Unknown
	}
	typ := c.exprInternal(e)
	e.SetType(typ)
	return typ
}

func (c *Checker) exprInternal(e syntax.Expr) types.DataType {
	switch e := e.(type) {
	case *syntax.IntConst:
		return types.Int

	case *syntax.FloatConst:
		return types.Float

	case *syntax.BoolConst:
		return types.Bool

	case *syntax.VarRef:
		sym, ok := c.st.Lookup(e.Name)
		if !ok {
			c.unresolved(e, e.Name)
			return types.Error
		}
		c.info.Uses[e] = sym
		return sym.Type()

	case *syntax.BinaryExpr:
		// No promotion: the result has the left operand's type, except
		// that comparisons yield bool.
		x := c.expr(e.X)
		c.expr(e.Y)
		if e.Op.IsComparison() && x != types.Error {
			return types.Bool
		}
		return x

	case *syntax.UnaryExpr:
		return c.expr(e.X)

	case *syntax.FuncCall:
		for _, a := range e.Args {
			c.expr(a)
		}
		if sym, ok := c.st.Lookup(e.Name); ok {
			return sym.Type()
		}
		// Constructor calls such as vec3(...).
		if typ := types.LookupType(e.Name); typ != types.Unknown {
			return typ
		}
		c.unresolved(e, e.Name)
		return types.Error

	case *syntax.MemberAccess:
		return swizzleType(c.expr(e.X), e.Member)
	}
	return types.Unknown
}

func (c *Checker) unresolved(n syntax.Node, name string) {
	c.info.Unresolved++
	c.diag.Warningf(diag.WarningUnresolvedSymbol.At(n.Pos()), name)
}

// swizzleType returns the type of x.member for a vector x, or Unknown if
// member is not a swizzle of x.
func swizzleType(x types.DataType, member string) types.DataType {
	if x == types.Error {
		return types.Error
	}
	if !x.IsVector() || member == "" || len(member) > 4 {
		return types.Unknown
	}
	for _, set := range []string{"xyzw", "rgba"} {
		if isSwizzle(member, set[:x.Components()]) {
			switch len(member) {
			case 1:
				return types.Float
			case 2:
				return types.Vec2
			case 3:
				return types.Vec3
			default:
				return types.Vec4
			}
		}
	}
	return types.Unknown
}

func isSwizzle(member, lanes string) bool {
	for _, r := range member {
		if !strings.ContainsRune(lanes, r) {
			return false
		}
	}
	return true
}
