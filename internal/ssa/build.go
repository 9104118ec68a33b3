package ssa

import (
	"github.com/golang/glog"

	"github.com/you-not-fish/prism/internal/syntax"
)

// builder holds the build cursor: the shader being built and the block
// instructions are appended to.
type builder struct {
	sh *Shader
	b  *Block
}

// Build lowers an analyzed translation unit to IR. Function definitions
// contribute their bodies; every other top-level item is lowered in place.
// Nodes that cannot be lowered produce no instructions.
func Build(unit *syntax.TranslationUnit) *Shader {
	sh := NewShader("main")
	b := &builder{sh: sh, b: sh.Entry}

	if unit != nil {
		for _, item := range unit.Items {
			if syntax.IsNil(item) {
				continue
			}
			if fn, ok := item.(*syntax.FuncDef); ok {
				if fn.Body != nil {
					b.node(fn.Body)
				}
				continue
			}
			b.node(item)
		}
	}

	if glog.V(3) {
		glog.V(3).Infof("ssa: built %d blocks, %d instrs, %d defs",
			sh.NumBlocks(), sh.NumInstrs(), sh.NumDefs())
	}
	return sh
}

// node lowers a declaration or statement. Nodes the IR has no form for are
// skipped.
func (b *builder) node(n syntax.Node) {
	if syntax.IsNil(n) {
		return
	}
	switch n := n.(type) {
	case nil:
		return

	case *syntax.VarDecl:
		if n.Init == nil {
			return
		}
		if v := b.expr(n.Init); v != nil && n.Name != "" {
			b.store(n, n.Name, v)
		}

	case *syntax.CompoundStmt:
		for _, s := range n.Stmts {
			b.node(s)
		}

	case *syntax.ExprStmt:
		b.expr(n.X)

	case *syntax.IfStmt:
		b.ifStmt(n)

	case syntax.Expr:
		b.expr(n)

	default:
		if glog.V(5) {
			glog.V(5).Infof("ssa: skipping %s", syntax.KindOf(n))
		}
	}
}

// ifStmt lowers if/else to a diamond: the current block branches to new
// then and else blocks, both of which jump to a new merge block where
// lowering continues. If the condition yields no value the statement is
// dropped and the cursor does not move.
func (b *builder) ifStmt(n *syntax.IfStmt) {
	cond := b.expr(n.Cond)
	if cond == nil {
		return
	}

	then := b.sh.NewBlock()
	els := b.sh.NewBlock()
	merge := b.sh.NewBlock()

	br := b.sh.BuildBranch(b.b, cond, then, els)
	br.Pos = n.Pos()

	// Nested control flow moves the cursor, so the jump to merge leaves
	// from wherever the branch body ended.
	b.b = then
	b.node(n.Then)
	b.sh.BuildJump(b.b, merge)

	b.b = els
	if n.Else != nil {
		b.node(n.Else)
	}
	b.sh.BuildJump(b.b, merge)

	b.b = merge
}

// expr lowers an expression and returns its value, or nil if it has none.
func (b *builder) expr(e syntax.Expr) *Def {
	if syntax.IsNil(e) {
		return nil
	}
	switch e := e.(type) {
	case nil:
		return nil

	case *syntax.IntConst:
		mov := b.sh.BuildMov(b.b, nil)
		mov.AuxInt, mov.HasConst, mov.Pos = e.Value, true, e.Pos()
		return &mov.Dest

	case *syntax.FloatConst:
		mov := b.sh.BuildMov(b.b, nil)
		mov.AuxFloat, mov.IsFloat, mov.HasConst, mov.Pos = float64(e.Value), true, true, e.Pos()
		return &mov.Dest

	case *syntax.VarRef:
		if e.Name == "" {
			return nil
		}
		load := b.sh.BuildLoad(b.b, e.Name, 1)
		load.Pos = e.Pos()
		return &load.Dest

	case *syntax.BinaryExpr:
		return b.binary(e)
	}
	return nil
}

func (b *builder) binary(e *syntax.BinaryExpr) *Def {
	if e.Op == syntax.Assign {
		v := b.expr(e.Y)
		if ref, ok := e.X.(*syntax.VarRef); ok && ref != nil && v != nil && ref.Name != "" {
			b.store(e, ref.Name, v)
		}
		return v
	}

	x := b.expr(e.X)
	y := b.expr(e.Y)
	op := aluOp(e.Op)
	if x == nil || y == nil || op == OpInvalid {
		return nil
	}
	alu := b.sh.BuildALU(b.b, op, x, y)
	alu.Pos = e.Pos()
	return &alu.Dest
}

func (b *builder) store(n syntax.Node, name string, v *Def) {
	st := b.sh.BuildStore(b.b, name, v, FullMask)
	st.Pos = n.Pos()
}

// aluOp maps a source operator to its IR op.
func aluOp(op syntax.Operator) Op {
	switch op {
	case syntax.Add:
		return OpFAdd
	case syntax.Sub:
		return OpFSub
	case syntax.Mul:
		return OpFMul
	case syntax.Div:
		return OpFDiv
	case syntax.Eq:
		return OpFCmpEq
	case syntax.Ne:
		return OpFCmpNe
	case syntax.Gt:
		return OpFCmpGt
	case syntax.Lt:
		return OpFCmpLt
	}
	return OpInvalid
}
