package ssa

import "fmt"

// Block represents a basic block in the control flow graph.
// A block holds a straight-line sequence of instructions, the last of which
// may be a Jump or Branch terminator.
type Block struct {
	// Index is unique within the shader and follows creation order.
	Index ID

	// Instrs is the ordered instruction list.
	Instrs []*Instr

	// Succs lists the successor blocks in the CFG.
	// For a Branch: Succs[0] = then, Succs[1] = else.
	// For a Jump: Succs[0] = target.
	Succs []*Block

	// Preds lists the predecessor blocks in the CFG.
	Preds []*Block

	// Shader is the shader containing this block.
	Shader *Shader

	// Dominance tree fields, populated by ComputeDom.
	Idom     *Block
	Dominees []*Block
}

// String returns a short string representation (e.g., "B3").
func (b *Block) String() string {
	return fmt.Sprintf("B%d", b.Index)
}

// AddSucc adds a successor block, updating both Succs and the successor's Preds.
func (b *Block) AddSucc(succ *Block) {
	b.Succs = append(b.Succs, succ)
	succ.Preds = append(succ.Preds, b)
}

// Terminator returns the block's final Jump or Branch, or nil if the block
// falls off its end.
func (b *Block) Terminator() *Instr {
	if len(b.Instrs) == 0 {
		return nil
	}
	last := b.Instrs[len(b.Instrs)-1]
	if !last.Op.IsTerminator() {
		return nil
	}
	return last
}

// append adds instr to the end of the block.
func (b *Block) append(instr *Instr) {
	instr.Block = b
	b.Instrs = append(b.Instrs, instr)
}

// NumSuccs returns the number of successor blocks.
func (b *Block) NumSuccs() int { return len(b.Succs) }

// NumPreds returns the number of predecessor blocks.
func (b *Block) NumPreds() int { return len(b.Preds) }

// NumInstrs returns the number of instructions in this block.
func (b *Block) NumInstrs() int { return len(b.Instrs) }
