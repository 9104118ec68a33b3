// Package ssa implements the SSA intermediate representation of a shader and
// the builder that lowers an analyzed AST into it.
//
// Variables are modeled as named memory: every read is a LoadVar and every
// write a StoreVar, so no phi nodes are needed at control flow joins.
package ssa

// Op represents an IR operation code.
type Op int

const (
	OpInvalid Op = iota

	OpMov // constant or copy; literal in AuxInt/AuxFloat when HasConst

	// Float arithmetic, one per source operator
	OpFAdd
	OpFSub
	OpFMul
	OpFDiv

	// Float comparison
	OpFCmpEq
	OpFCmpNe
	OpFCmpGt
	OpFCmpLt

	// Named variable access
	OpLoadVar  // Var = name
	OpStoreVar // Var = name, Srcs[0] = value, WriteMask; no result

	// Terminators
	OpJump   // unconditional; Block.Succs[0]
	OpBranch // Srcs[0] = condition; Block.Succs = then, else

	opCount // sentinel; must be last
)

// OpInfo holds metadata about an operation.
type OpInfo struct {
	Name       string // spelling in IR dumps
	NumSrcs    int    // expected operand count, -1 if variable
	IsVoid     bool   // produces no value
	Terminator bool   // ends a block
}

var opInfoTable = [opCount]OpInfo{
	OpInvalid: {Name: "invalid", NumSrcs: -1},

	OpMov: {Name: "mov", NumSrcs: -1},

	OpFAdd: {Name: "fadd", NumSrcs: 2},
	OpFSub: {Name: "fsub", NumSrcs: 2},
	OpFMul: {Name: "fmul", NumSrcs: 2},
	OpFDiv: {Name: "fdiv", NumSrcs: 2},

	OpFCmpEq: {Name: "feq", NumSrcs: 2},
	OpFCmpNe: {Name: "fne", NumSrcs: 2},
	OpFCmpGt: {Name: "fgt", NumSrcs: 2},
	OpFCmpLt: {Name: "flt", NumSrcs: 2},

	OpLoadVar:  {Name: "load_var", NumSrcs: 0},
	OpStoreVar: {Name: "store_var", NumSrcs: 1, IsVoid: true},

	OpJump:   {Name: "jump", NumSrcs: 0, IsVoid: true, Terminator: true},
	OpBranch: {Name: "br", NumSrcs: 1, IsVoid: true, Terminator: true},
}

// Info returns the metadata for op.
func (op Op) Info() OpInfo {
	if op < 0 || op >= opCount {
		return opInfoTable[OpInvalid]
	}
	return opInfoTable[op]
}

// String returns the op's spelling.
func (op Op) String() string { return op.Info().Name }

// IsVoid reports whether the op produces no value.
func (op Op) IsVoid() bool { return op.Info().IsVoid }

// IsTerminator reports whether the op ends a block.
func (op Op) IsTerminator() bool { return op.Info().Terminator }

// IsALU reports whether op is a two-operand arithmetic or comparison op.
func (op Op) IsALU() bool { return op >= OpFAdd && op <= OpFCmpLt }
