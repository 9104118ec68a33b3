package pisa

// EncodeR packs a register-form instruction: [op:8][dst:8][a:8][b:8], most
// significant byte first.
func EncodeR(op Opcode, dst, a, b uint8) uint32 {
	return uint32(op)<<24 | uint32(dst)<<16 | uint32(a)<<8 | uint32(b)
}

// EncodeI packs an immediate-form instruction: [op:8][dst:8][imm:16].
func EncodeI(op Opcode, dst uint8, imm uint16) uint32 {
	return uint32(op)<<24 | uint32(dst)<<16 | uint32(imm)
}

// DecodeR splits a word into register-form fields.
func DecodeR(w uint32) (op Opcode, dst, a, b uint8) {
	return Opcode(w >> 24), uint8(w >> 16), uint8(w >> 8), uint8(w)
}

// DecodeI splits a word into immediate-form fields.
func DecodeI(w uint32) (op Opcode, dst uint8, imm uint16) {
	return Opcode(w >> 24), uint8(w >> 16), uint16(w)
}

// Decode decodes a word using the format of its opcode.
func Decode(w uint32) Inst {
	op := Opcode(w >> 24)
	if op.Format() == FormatI {
		_, dst, imm := DecodeI(w)
		return I(op, dst, imm)
	}
	_, dst, a, b := DecodeR(w)
	return R(op, dst, a, b)
}
