package ssa

// ReversePostOrder returns the blocks reachable from s.Entry, each block
// before its successors except along back edges. Successors are explored
// in Succs order.
func ReversePostOrder(s *Shader) []*Block {
	if s.Entry == nil {
		return nil
	}

	// Each frame remembers how many successors it has already pushed.
	type frame struct {
		b    *Block
		next int
	}
	seen := map[*Block]bool{s.Entry: true}
	stack := []frame{{b: s.Entry}}
	post := make([]*Block, 0, len(s.Blocks))
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.b.Succs) {
			succ := top.b.Succs[top.next]
			top.next++
			if !seen[succ] {
				seen[succ] = true
				stack = append(stack, frame{b: succ})
			}
			continue
		}
		post = append(post, top.b)
		stack = stack[:len(stack)-1]
	}

	rpo := make([]*Block, len(post))
	for i, b := range post {
		rpo[len(post)-1-i] = b
	}
	return rpo
}

// ComputeDom fills in Block.Idom and Block.Dominees for every block of s.
// The entry and unreachable blocks get a nil Idom.
//
// Immediate dominators are found by iterating to a fixed point over the
// reverse post-order (Cooper, Harvey and Kennedy). Nested if/else diamonds
// converge in one pass; loops need a second.
func ComputeDom(s *Shader) {
	for _, b := range s.Blocks {
		b.Idom, b.Dominees = nil, nil
	}
	rpo := ReversePostOrder(s)
	if len(rpo) == 0 {
		return
	}

	// Work on RPO numbers; idom[i] < 0 means not yet known. The entry is
	// its own dominator while iterating.
	num := make(map[*Block]int, len(rpo))
	for i, b := range rpo {
		num[b] = i
	}
	idom := make([]int, len(rpo))
	for i := range idom {
		idom[i] = -1
	}
	idom[0] = 0

	meet := func(x, y int) int {
		for x != y {
			for x > y {
				x = idom[x]
			}
			for y > x {
				y = idom[y]
			}
		}
		return x
	}

	for changed := true; changed; {
		changed = false
		for i := 1; i < len(rpo); i++ {
			best := -1
			for _, p := range rpo[i].Preds {
				j, ok := num[p]
				if !ok || idom[j] < 0 {
					continue // unreachable or not yet processed
				}
				if best < 0 {
					best = j
				} else {
					best = meet(j, best)
				}
			}
			if best >= 0 && idom[i] != best {
				idom[i] = best
				changed = true
			}
		}
	}

	for i := 1; i < len(rpo); i++ {
		if idom[i] < 0 {
			continue
		}
		parent := rpo[idom[i]]
		rpo[i].Idom = parent
		parent.Dominees = append(parent.Dominees, rpo[i])
	}
}

// Dominates reports whether a dominates b. ComputeDom must have been called
// first. Every block dominates itself.
func Dominates(a, b *Block) bool {
	for ; b != nil; b = b.Idom {
		if b == a {
			return true
		}
	}
	return false
}
