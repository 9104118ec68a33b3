package codegen

import (
	"strings"

	"github.com/golang/glog"

	"github.com/you-not-fish/prism/internal/contract"
	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/link"
	"github.com/you-not-fish/prism/internal/pisa"
	"github.com/you-not-fish/prism/internal/rtabi"
	"github.com/you-not-fish/prism/internal/ssa"
)

// aluOpcodes maps each two-operand IR op to its vector instruction.
var aluOpcodes = map[ssa.Op]pisa.Opcode{
	ssa.OpFAdd:   pisa.V_ADD,
	ssa.OpFSub:   pisa.V_SUB,
	ssa.OpFMul:   pisa.V_MUL,
	ssa.OpFDiv:   pisa.V_DIV,
	ssa.OpFCmpEq: pisa.V_CMP_EQ,
	ssa.OpFCmpNe: pisa.V_CMP_NE,
	ssa.OpFCmpGt: pisa.V_CMP_GT,
	ssa.OpFCmpLt: pisa.V_CMP_LT,
}

// maxOperand is the largest value of an 8-bit instruction field.
const maxOperand = 0xFF

func (g *generator) lowerBlock(b *ssa.Block) {
	g.e.emitLabel(b)
	for _, instr := range b.Instrs {
		g.lowerInstr(instr)
	}
}

// lowerInstr emits the words for a single instruction. Ops without a
// machine form (stores, terminators) produce nothing.
func (g *generator) lowerInstr(instr *ssa.Instr) {
	switch {
	case instr.Op == ssa.OpLoadVar:
		g.lowerLoad(instr)
	case instr.Op.IsALU():
		g.lowerALU(instr)
	case instr.Op == ssa.OpMov:
		g.lowerMov(instr)
	default:
		if glog.V(5) {
			glog.V(5).Infof("codegen: no encoding for %s", instr.LongString())
		}
	}
}

// lowerLoad reads a linked resource: attributes are copied out of their
// input register, uniforms are loaded from the uniform buffer.
func (g *generator) lowerLoad(instr *ssa.Instr) {
	res, ok := g.linker.Find(instr.Var)
	if !ok {
		g.warn(diag.WarningResourceNotFound.At(instr.Pos), instr.Var)
		return
	}
	switch res.Kind {
	case link.Attribute:
		if res.Register > maxOperand {
			g.warn(diag.WarningBindingRange.At(instr.Pos), res.Name, res.Register)
			return
		}
		g.e.emit(pisa.R(pisa.V_MOV, vreg(&instr.Dest), uint8(res.Register), 0))
	case link.Uniform:
		if res.Offset > maxOperand {
			g.warn(diag.WarningBindingRange.At(instr.Pos), res.Name, res.Offset)
			return
		}
		g.e.emit(pisa.R(pisa.S_LOAD, sreg(&instr.Dest), rtabi.UniformBaseReg, uint8(res.Offset)))
	}
}

// lowerALU emits a vector arithmetic or comparison instruction. Both
// operands must be present.
func (g *generator) lowerALU(instr *ssa.Instr) {
	if len(instr.Srcs) < 2 || instr.Srcs[0].Def == nil || instr.Srcs[1].Def == nil {
		g.warn(diag.WarningInvalidOperands.At(instr.Pos), strings.ToUpper(instr.Op.String()))
		return
	}
	opc, ok := aluOpcodes[instr.Op]
	contract.Assertf(ok, "no vector opcode for %v", instr.Op)
	g.e.emit(pisa.R(opc, vreg(&instr.Dest), vreg(instr.Srcs[0].Def), vreg(instr.Srcs[1].Def)))
}

// lowerMov encodes integer constants as immediates when enabled.
func (g *generator) lowerMov(instr *ssa.Instr) {
	if !g.conf.EmitImmediates || !instr.HasConst {
		return
	}
	if instr.IsFloat {
		g.warn(diag.WarningImmediateRange.At(instr.Pos), instr.AuxFloat)
		return
	}
	if instr.AuxInt < 0 || instr.AuxInt > rtabi.MaxImmediate {
		g.warn(diag.WarningImmediateRange.At(instr.Pos), instr.AuxInt)
		return
	}
	g.e.emit(pisa.I(pisa.V_MOV_IMM, vreg(&instr.Dest), uint16(instr.AuxInt)))
}

func (g *generator) warn(d *diag.Diag, args ...interface{}) {
	g.diag.Warningf(d, args...)
	g.e.emitComment("warning: "+d.Message, args...)
}

func vreg(d *ssa.Def) uint8 {
	contract.Assert(d.Index > 0)
	return uint8(rtabi.VReg(int(d.Index)))
}

func sreg(d *ssa.Def) uint8 {
	contract.Assert(d.Index > 0)
	return uint8(rtabi.SReg(int(d.Index)))
}
