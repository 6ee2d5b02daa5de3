// Package planarity: side resolution and phase 3 — embedding
// construction.
//
// After testing succeeds, every arc's side is a ±1 multiplier relative
// to its ref arc. Resolution follows each ref chain to its end and
// multiplies the signs back down, clearing ref as it goes — resolving
// an arc twice is undefined, so the pipeline resolves exactly once.
// The third DFS then inserts every arc into the rotation system:
// tree arcs first at their head, back arcs clockwise after rightRef
// (side +1) or counterclockwise before leftRef (side −1). Swapping
// that tie-break breaks planarity of the constructed embedding.

package planarity

// resolveSides turns every arc's relative side absolute and
// sign-multiplies its nesting depth for the final adjacency sort.
func (s *lrState) resolveSides(recursive bool) {
	oldRef := filled(len(s.arcs), none)
	for a := range s.arcs {
		if recursive {
			s.nesting[a] *= s.signRecursive(a)
		} else {
			s.nesting[a] *= s.sign(a, oldRef)
		}
	}
}

// sign resolves arc e's absolute side by an explicit-stack walk: first
// descend to the end of the ref chain, then multiply sides back up.
// Stack depth is bounded by the chain length. oldRef is a scratch
// table; entries are cleared before returning so the table can be
// shared across calls.
func (s *lrState) sign(e int, oldRef []int) int {
	dfsStack := []int{e}

	for len(dfsStack) > 0 {
		e = dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]

		if s.ref[e] != none {
			dfsStack = append(dfsStack, e)        // revisit e after its ref
			dfsStack = append(dfsStack, s.ref[e]) // visit the ref target next
			oldRef[e] = s.ref[e]                  // remember the dependency
			s.ref[e] = none                       // single resolution
		} else if oldRef[e] != none {
			s.side[e] *= s.side[oldRef[e]]
			oldRef[e] = none
		}
	}

	return s.side[e]
}

// signRecursive is the recursive twin of sign.
func (s *lrState) signRecursive(e int) int {
	if s.ref[e] != none {
		s.side[e] *= s.signRecursive(s.ref[e])
		s.ref[e] = none
	}

	return s.side[e]
}

// embed builds the final rotation system: seed every node's adjacency
// with its outgoing arcs in signed nesting order, then walk the forest
// once more inserting the opposite half-edges.
func (s *lrState) embed(recursive bool) *PlanarEmbedding {
	s.emb = NewPlanarEmbedding()
	for _, id := range s.nodes {
		s.emb.AddNode(id)
	}

	s.sortByNesting() // now keyed by signed nesting depth
	for v := range s.nodes {
		prev := ""
		for _, a := range s.outArcs[v] {
			w := s.nodes[s.arcs[a].head]
			// Internal insertions reference the half-edge just added and
			// cannot fail.
			_ = s.emb.AddHalfEdgeCW(s.nodes[v], w, prev)
			prev = w
		}
	}

	ind := make([]int, len(s.nodes))
	for _, v := range s.roots {
		if recursive {
			s.dfsEmbeddingRecursive(v)
		} else {
			s.dfsEmbedding(v, ind)
		}
	}

	return s.emb
}

// dfsEmbedding inserts the reverse half-edges of one tree, explicit
// work-stack variant.
func (s *lrState) dfsEmbedding(start int, ind []int) {
	dfsStack := []int{start}

	for len(dfsStack) > 0 {
		v := dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]

		for ind[v] < len(s.outArcs[v]) {
			ei := s.outArcs[v][ind[v]]
			ind[v]++
			w := s.arcs[ei].head

			if ei == s.parentArc[w] { // tree arc
				_ = s.emb.AddHalfEdgeFirst(s.nodes[w], s.nodes[v])
				s.leftRef[v] = w
				s.rightRef[v] = w

				dfsStack = append(dfsStack, v) // revisit v after finishing w
				dfsStack = append(dfsStack, w) // visit w next
				break
			}
			s.insertBackArc(ei, v, w)
		}
	}
}

// dfsEmbeddingRecursive is the recursive twin of dfsEmbedding.
func (s *lrState) dfsEmbeddingRecursive(v int) {
	for _, ei := range s.outArcs[v] {
		w := s.arcs[ei].head
		if ei == s.parentArc[w] { // tree arc
			_ = s.emb.AddHalfEdgeFirst(s.nodes[w], s.nodes[v])
			s.leftRef[v] = w
			s.rightRef[v] = w
			s.dfsEmbeddingRecursive(w)
		} else {
			s.insertBackArc(ei, v, w)
		}
	}
}

// insertBackArc places the half-edge (w, v) of back arc ei into w's
// rotation. Side +1 stacks clockwise after rightRef[w], which stays
// put so later comers keep stacking right; side −1 goes
// counterclockwise before leftRef[w], which advances so each later
// insertion pushes further left.
func (s *lrState) insertBackArc(ei, v, w int) {
	if s.side[ei] == 1 {
		_ = s.emb.AddHalfEdgeCW(s.nodes[w], s.nodes[v], s.nodes[s.rightRef[w]])
	} else {
		_ = s.emb.AddHalfEdgeCCW(s.nodes[w], s.nodes[v], s.nodes[s.leftRef[w]])
		s.leftRef[w] = v
	}
}
