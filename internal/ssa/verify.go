package ssa

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Verify checks the structural integrity of a shader. It returns an error
// listing every violation found, or nil if the shader is valid. Verify
// computes the dominator tree as a side effect.
func Verify(s *Shader) error {
	var result *multierror.Error
	add := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf("shader %s: "+format, append([]interface{}{s.Name}, args...)...))
	}

	if s.Entry == nil || len(s.Blocks) == 0 {
		add("no entry block")
		return result.ErrorOrNil()
	}
	if s.Blocks[0] != s.Entry {
		add("Blocks[0] is not the entry block")
	}

	// 1. Entry block has no predecessors
	if len(s.Entry.Preds) != 0 {
		add("entry block %s has %d predecessors, want 0", s.Entry, len(s.Entry.Preds))
	}

	blockSet := make(map[*Block]bool, len(s.Blocks))
	for _, b := range s.Blocks {
		blockSet[b] = true
	}

	// Every Def produced in the shader, with its position for ordering checks.
	defs := make(map[*Def]bool)
	instrIdx := make(map[*Instr]int)
	seen := make(map[ID]*Instr)

	for i, b := range s.Blocks {
		// 2. Blocks are in creation order and belong to s
		if b.Index != ID(i) {
			add("%s at layout position %d", b, i)
		}
		if b.Shader != s {
			add("%s: block Shader pointer mismatch", b)
		}

		for j, instr := range b.Instrs {
			instrIdx[instr] = j

			// 3. Every instruction's Block pointer matches its containing block
			if instr.Block != b {
				add("%s, %s: instr Block pointer is %v, want %s", b, instr, instr.Block, b)
			}
			if instr.Op <= OpInvalid || instr.Op >= opCount {
				add("%s: instr %d has invalid op %d", b, j, int(instr.Op))
				continue
			}

			// 4. Def indices are unique and positive; void ops define nothing
			if instr.Op.IsVoid() {
				if instr.HasDest() {
					add("%s, %s: %s must not produce a value", b, instr, instr.Op)
				}
			} else {
				switch {
				case instr.Dest.Index <= 0:
					add("%s: %s has def index %d", b, instr.Op, instr.Dest.Index)
				case seen[instr.Dest.Index] != nil:
					add("%s, %s: def index reused", b, instr)
				default:
					seen[instr.Dest.Index] = instr
				}
				if instr.Dest.Instr != instr {
					add("%s, %s: def back-reference mismatch", b, instr)
				}
				if n := instr.Dest.NumComponents; n < 1 || n > 4 {
					add("%s, %s: %d components", b, instr, n)
				}
				defs[&instr.Dest] = true
			}

			// 5. Operand counts
			if want := instr.Op.Info().NumSrcs; want >= 0 && len(instr.Srcs) != want {
				add("%s, %s: %s has %d srcs, want %d", b, instr, instr.Op, len(instr.Srcs), want)
			}

			// 6. Terminators end their block
			if instr.Op.IsTerminator() && j != len(b.Instrs)-1 {
				add("%s: %s at index %d is not last", b, instr.Op, j)
			}
		}

		// 7. Successor counts match the terminator
		want := 0
		if t := b.Terminator(); t != nil {
			want = 1
			if t.Op == OpBranch {
				want = 2
			}
		}
		if len(b.Succs) != want {
			add("%s: %d succs, want %d", b, len(b.Succs), want)
		}

		// 8. Succs/Preds edge consistency
		for _, succ := range b.Succs {
			if !blockSet[succ] {
				add("%s: successor %s not in shader", b, succ)
				continue
			}
			if !containsBlock(succ.Preds, b) {
				add("%s: successor %s does not have %s as predecessor", b, succ, b)
			}
		}
		for _, pred := range b.Preds {
			if !blockSet[pred] {
				add("%s: predecessor %s not in shader", b, pred)
				continue
			}
			if !containsBlock(pred.Succs, b) {
				add("%s: predecessor %s does not have %s as successor", b, pred, b)
			}
		}
	}

	// 9. Every block is reachable from the entry
	rpo := ReversePostOrder(s)
	reachable := make(map[*Block]bool, len(rpo))
	for _, b := range rpo {
		reachable[b] = true
	}
	for _, b := range s.Blocks {
		if !reachable[b] {
			add("%s: unreachable", b)
		}
	}

	if result.ErrorOrNil() != nil {
		return result.ErrorOrNil()
	}

	// 10. Sources refer to Defs of this shader whose definition dominates
	// the use
	ComputeDom(s)
	for _, b := range s.Blocks {
		for _, instr := range b.Instrs {
			for i, src := range instr.Srcs {
				d := src.Def
				switch {
				case d == nil:
					add("%s, %s: src[%d] is nil", b, instr, i)
				case !defs[d]:
					add("%s, %s: src[%d] (%s) not defined in shader", b, instr, i, d)
				case d.Instr.Block == b:
					if instrIdx[d.Instr] >= instrIdx[instr] {
						add("%s, %s: src[%d] %s used before its definition", b, instr, i, d)
					}
				case !Dominates(d.Instr.Block, b):
					add("%s, %s: src[%d] %s defined in %s which does not dominate %s",
						b, instr, i, d, d.Instr.Block, b)
				}
			}
		}
	}

	return result.ErrorOrNil()
}

// containsBlock checks whether bs contains b.
func containsBlock(bs []*Block, b *Block) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}
