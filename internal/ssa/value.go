package ssa

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/prism/internal/syntax"
)

// ID is a Def or Block index within a Shader. Def index 0 means "no value".
type ID int32

// FullMask writes every component of a variable.
const FullMask = 0xF

// Def is an SSA definition: the single value produced by one instruction.
type Def struct {
	// Index is unique within the shader; 0 for instructions with no result.
	Index ID

	// NumComponents is the number of vector lanes, 1 to 4.
	NumComponents int

	// BitSize is the width of each lane.
	BitSize int

	// Instr is the instruction producing this value.
	Instr *Instr
}

// String returns a short name for the def (e.g., "%3").
func (d *Def) String() string {
	return fmt.Sprintf("%%%d", d.Index)
}

// Src is an instruction operand: a reference to a Def plus per-lane
// modifiers.
type Src struct {
	Def     *Def
	Swizzle [4]uint8 // lane read for each result lane
	Negate  bool
	Abs     bool
}

// identitySwizzle reads lane i into lane i.
var identitySwizzle = [4]uint8{0, 1, 2, 3}

// NewSrc returns an unmodified operand reading d.
func NewSrc(d *Def) Src {
	return Src{Def: d, Swizzle: identitySwizzle}
}

func (s Src) String() string {
	if s.Def == nil {
		return "<nil>"
	}
	str := s.Def.String()
	if s.Swizzle != identitySwizzle {
		var sb strings.Builder
		sb.WriteByte('.')
		n := s.Def.NumComponents
		if n < 1 || n > 4 {
			n = 4
		}
		for _, lane := range s.Swizzle[:n] {
			sb.WriteByte("xyzw"[lane&3])
		}
		str += sb.String()
	}
	if s.Abs {
		str = "abs(" + str + ")"
	}
	if s.Negate {
		str = "-" + str
	}
	return str
}

// Instr is a single IR instruction.
type Instr struct {
	Op    Op
	Block *Block

	// Dest is the value produced. Dest.Index is 0 for stores, jumps and
	// branches.
	Dest Def

	Srcs []Src

	// Var and WriteMask are set for variable loads and stores.
	Var       string
	WriteMask uint8

	// Literal payload of a constant Mov, valid when HasConst is set.
	AuxInt   int64
	AuxFloat float64
	IsFloat  bool
	HasConst bool

	// Pos is the source position of the lowered node.
	Pos syntax.Pos
}

// HasDest reports whether the instruction produces a value.
func (i *Instr) HasDest() bool {
	return i.Dest.Index != 0
}

// String returns the instruction's result name, or its op for instructions
// with no result.
func (i *Instr) String() string {
	if i.HasDest() {
		return i.Dest.String()
	}
	return i.Op.String()
}

// LongString returns a detailed representation of the instruction, e.g.
// "%3 (v1) = fadd %1, %2".
func (i *Instr) LongString() string {
	var sb strings.Builder
	if i.HasDest() {
		fmt.Fprintf(&sb, "%s (v%d) = ", &i.Dest, i.Dest.NumComponents)
	}
	sb.WriteString(i.Op.String())
	if i.Var != "" {
		sb.WriteString(" " + i.Var)
		if i.WriteMask != 0 {
			fmt.Fprintf(&sb, " (mask:0x%x)", i.WriteMask)
		}
	}
	if i.HasConst {
		if i.IsFloat {
			fmt.Fprintf(&sb, " [%g]", i.AuxFloat)
		} else {
			fmt.Fprintf(&sb, " [%d]", i.AuxInt)
		}
	}
	for n, src := range i.Srcs {
		if n == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(src.String())
	}
	return sb.String()
}
