package ssa

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the IR of a shader to w.
//
// Format:
//
//	shader main:
//	  B0: (entry)
//	    %1 (v1) = load_var v_pos
//	    %2 (v1) = mov [0]
//	    %3 (v1) = fgt %1, %2
//	    br %3 -> B1, B2
//	  B1: <- B0
//	    jump -> B3
func Fprint(w io.Writer, s *Shader) {
	fmt.Fprintf(w, "shader %s:\n", s.Name)
	for _, b := range s.Blocks {
		fprintBlock(w, b, s)
	}
}

// fprintBlock writes a single block to w.
func fprintBlock(w io.Writer, b *Block, s *Shader) {
	label := ""
	if b == s.Entry {
		label = " (entry)"
	}

	predsStr := ""
	if len(b.Preds) > 0 {
		preds := make([]string, len(b.Preds))
		for i, p := range b.Preds {
			preds[i] = p.String()
		}
		predsStr = " <- " + strings.Join(preds, " ")
	}

	fmt.Fprintf(w, "  %s:%s%s\n", b, label, predsStr)

	for _, instr := range b.Instrs {
		fmt.Fprintf(w, "    %s\n", formatInstr(instr))
	}
}

// formatInstr formats an instruction, adding branch targets to
// terminators.
func formatInstr(instr *Instr) string {
	s := instr.LongString()
	if !instr.Op.IsTerminator() || instr.Block == nil {
		return s
	}
	targets := make([]string, len(instr.Block.Succs))
	for i, succ := range instr.Block.Succs {
		targets[i] = succ.String()
	}
	return s + " -> " + strings.Join(targets, ", ")
}

// Sprint returns the IR of a shader as a string.
func Sprint(s *Shader) string {
	var sb strings.Builder
	Fprint(&sb, s)
	return sb.String()
}
