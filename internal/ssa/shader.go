package ssa

// Shader is the IR of one compilation unit: a control flow graph of blocks
// in layout order.
type Shader struct {
	// Name identifies the shader in dumps.
	Name string

	// Blocks is the list of basic blocks in creation order, which is also
	// the layout order. Blocks[0] is always the entry block.
	Blocks []*Block

	// Entry is the entry block (same as Blocks[0]).
	Entry *Block

	numDefs   ID // last Def index handed out
	numBlocks ID
}

// NewShader creates an empty shader with its entry block.
func NewShader(name string) *Shader {
	s := &Shader{Name: name}
	s.Entry = s.NewBlock()
	return s
}

// NewBlock creates a new basic block and appends it to the layout.
func (s *Shader) NewBlock() *Block {
	b := &Block{Index: s.numBlocks, Shader: s}
	s.numBlocks++
	s.Blocks = append(s.Blocks, b)
	return b
}

// initDef assigns the next Def index to instr. Indices start at 1.
func (s *Shader) initDef(instr *Instr, numComponents int) {
	s.numDefs++
	instr.Dest = Def{
		Index:         s.numDefs,
		NumComponents: numComponents,
		BitSize:       32,
		Instr:         instr,
	}
}

// NumBlocks returns the number of blocks in the shader.
func (s *Shader) NumBlocks() int { return len(s.Blocks) }

// NumDefs returns the number of Defs produced so far.
func (s *Shader) NumDefs() int { return int(s.numDefs) }

// NumInstrs returns the total number of instructions across all blocks.
func (s *Shader) NumInstrs() int {
	n := 0
	for _, b := range s.Blocks {
		n += len(b.Instrs)
	}
	return n
}

// BuildMov appends a move to b. With no source the move materializes a
// constant; the caller records the literal on the returned instruction.
func (s *Shader) BuildMov(b *Block, src *Def) *Instr {
	instr := &Instr{Op: OpMov}
	comps := 1
	if src != nil {
		instr.Srcs = []Src{NewSrc(src)}
		comps = src.NumComponents
	}
	s.initDef(instr, comps)
	b.append(instr)
	return instr
}

// BuildALU appends an arithmetic or comparison instruction to b. Nil
// sources are omitted. The result has as many components as src0, or 1
// without it.
func (s *Shader) BuildALU(b *Block, op Op, src0, src1 *Def) *Instr {
	instr := &Instr{Op: op}
	if src0 != nil {
		instr.Srcs = append(instr.Srcs, NewSrc(src0))
	}
	if src1 != nil {
		instr.Srcs = append(instr.Srcs, NewSrc(src1))
	}
	comps := 1
	if src0 != nil {
		comps = src0.NumComponents
	}
	s.initDef(instr, comps)
	b.append(instr)
	return instr
}

// BuildLoad appends a read of the named variable to b.
func (s *Shader) BuildLoad(b *Block, name string, numComponents int) *Instr {
	instr := &Instr{Op: OpLoadVar, Var: name}
	s.initDef(instr, numComponents)
	b.append(instr)
	return instr
}

// BuildStore appends a write of value to the named variable. Stores produce
// no value.
func (s *Shader) BuildStore(b *Block, name string, value *Def, mask uint8) *Instr {
	instr := &Instr{
		Op:        OpStoreVar,
		Var:       name,
		WriteMask: mask,
		Srcs:      []Src{NewSrc(value)},
	}
	b.append(instr)
	return instr
}

// BuildJump ends from with an unconditional jump to to.
func (s *Shader) BuildJump(from, to *Block) *Instr {
	instr := &Instr{Op: OpJump}
	from.append(instr)
	from.AddSucc(to)
	return instr
}

// BuildBranch ends from with a conditional branch on cond.
func (s *Shader) BuildBranch(from *Block, cond *Def, then, els *Block) *Instr {
	instr := &Instr{Op: OpBranch, Srcs: []Src{NewSrc(cond)}}
	from.append(instr)
	from.AddSucc(then)
	from.AddSucc(els)
	return instr
}
