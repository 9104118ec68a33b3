// Package pisa defines the instruction set of the target GPU: opcodes, the
// two 32-bit instruction formats, the machine code buffer and a
// disassembler.
package pisa

import "fmt"

// Opcode is the 8-bit operation field of an instruction word.
type Opcode uint8

const (
	S_MOV  Opcode = 0x40 // scalar move
	S_LOAD Opcode = 0x42 // scalar load from the uniform buffer

	V_ADD Opcode = 0x82
	V_SUB Opcode = 0x84
	V_MUL Opcode = 0x8A
	V_DIV Opcode = 0x8C

	V_CMP_EQ Opcode = 0x90
	V_CMP_NE Opcode = 0x91
	V_CMP_GT Opcode = 0x92
	V_CMP_LT Opcode = 0x93

	V_MOV     Opcode = 0xC0 // vector move between registers
	V_MOV_IMM Opcode = 0xC1 // vector move of a 16-bit immediate
)

// Format is the field layout of an instruction word.
type Format int

const (
	FormatR Format = iota // [op:8][dst:8][a:8][b:8]
	FormatI               // [op:8][dst:8][imm:16]
)

// operands describes how an instruction's fields are printed.
type operands int

const (
	vvv  operands = iota // vD, vA, vB
	vv                   // vD, vA
	ssi                  // sD, sA, B
	ss                   // sD, sA
	vimm                 // vD, imm
)

type opInfo struct {
	name   string
	format Format
	args   operands
}

var opTable = map[Opcode]opInfo{
	S_MOV:     {"S_MOV", FormatR, ss},
	S_LOAD:    {"S_LOAD", FormatR, ssi},
	V_ADD:     {"V_ADD", FormatR, vvv},
	V_SUB:     {"V_SUB", FormatR, vvv},
	V_MUL:     {"V_MUL", FormatR, vvv},
	V_DIV:     {"V_DIV", FormatR, vvv},
	V_CMP_EQ:  {"V_CMP_EQ", FormatR, vvv},
	V_CMP_NE:  {"V_CMP_NE", FormatR, vvv},
	V_CMP_GT:  {"V_CMP_GT", FormatR, vvv},
	V_CMP_LT:  {"V_CMP_LT", FormatR, vvv},
	V_MOV:     {"V_MOV", FormatR, vv},
	V_MOV_IMM: {"V_MOV_IMM", FormatI, vimm},
}

// Valid reports whether op is a defined opcode.
func (op Opcode) Valid() bool {
	_, ok := opTable[op]
	return ok
}

// Format returns the word layout of op. Undefined opcodes use FormatR.
func (op Opcode) Format() Format {
	return opTable[op].format
}

func (op Opcode) String() string {
	if info, ok := opTable[op]; ok {
		return info.name
	}
	return fmt.Sprintf("OP_%02X", uint8(op))
}

// Inst is a decoded instruction.
type Inst struct {
	Op  Opcode
	Dst uint8
	A   uint8  // FormatR only
	B   uint8  // FormatR only
	Imm uint16 // FormatI only
}

// R returns a FormatR instruction.
func R(op Opcode, dst, a, b uint8) Inst {
	return Inst{Op: op, Dst: dst, A: a, B: b}
}

// I returns a FormatI instruction.
func I(op Opcode, dst uint8, imm uint16) Inst {
	return Inst{Op: op, Dst: dst, Imm: imm}
}

// Word encodes the instruction in the format of its opcode.
func (in Inst) Word() uint32 {
	if in.Op.Format() == FormatI {
		return EncodeI(in.Op, in.Dst, in.Imm)
	}
	return EncodeR(in.Op, in.Dst, in.A, in.B)
}

// String returns the assembly form, e.g. "V_ADD v3, v1, v2".
func (in Inst) String() string {
	info, ok := opTable[in.Op]
	if !ok {
		return fmt.Sprintf(".word 0x%08x", in.Word())
	}
	switch info.args {
	case vv:
		return fmt.Sprintf("%s v%d, v%d", info.name, in.Dst, in.A)
	case ssi:
		return fmt.Sprintf("%s s%d, s%d, %d", info.name, in.Dst, in.A, in.B)
	case ss:
		return fmt.Sprintf("%s s%d, s%d", info.name, in.Dst, in.A)
	case vimm:
		return fmt.Sprintf("%s v%d, %d", info.name, in.Dst, in.Imm)
	default:
		return fmt.Sprintf("%s v%d, v%d, v%d", info.name, in.Dst, in.A, in.B)
	}
}
