// Package planarity: phase 1 — orientation.
//
// A single DFS pass turns the undirected working copy into a rooted
// forest of oriented arcs, computing per-arc lowpoints and the nesting
// depth that later sorts each node's adjacency. The default driver
// simulates the DFS on an explicit work-stack so that path-like graphs
// with thousands of nodes cannot overflow the call stack; the recursive
// twin produces identical per-arc annotations.

package planarity

// orient runs the orientation pass over every connected component.
// Vertices where a new tree starts are remembered as roots.
func (s *lrState) orient(recursive bool) {
	// Frame arena shared across roots: per-node next-neighbor index and
	// per-position "init already done" flags (trees are vertex-disjoint,
	// so sharing is safe).
	ind := make([]int, len(s.nodes))
	skipInit := make([][]bool, len(s.nodes))
	for v := range s.adj {
		skipInit[v] = make([]bool, len(s.adj[v]))
	}

	for v := range s.nodes {
		if s.height[v] != none {
			continue
		}
		s.height[v] = 0
		s.roots = append(s.roots, v)
		if recursive {
			s.dfsOrientationRecursive(v)
		} else {
			s.dfsOrientation(v, ind, skipInit)
		}
	}
}

// dfsOrientation explores one DFS tree on an explicit work-stack.
// Re-pushing v under its child resumes v's adjacency scan at ind[v];
// skipInit marks positions whose pre-descend work is already done.
func (s *lrState) dfsOrientation(start int, ind []int, skipInit [][]bool) {
	dfsStack := []int{start}

	for len(dfsStack) > 0 {
		v := dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]
		e := s.parentArc[v]

		for ind[v] < len(s.adj[v]) {
			hr := s.adj[v][ind[v]]
			w := hr.to

			if !skipInit[v][ind[v]] {
				if s.arcOf[hr.slot] != none {
					ind[v]++
					continue // the edge was already oriented
				}
				a := s.newArc(v, w) // orient the edge
				s.arcOf[hr.slot] = a
				s.outArcs[v] = append(s.outArcs[v], a)

				if s.height[w] == none { // (v, w) is a tree arc
					s.parentArc[w] = a
					s.height[w] = s.height[v] + 1

					dfsStack = append(dfsStack, v) // revisit v after finishing w
					dfsStack = append(dfsStack, w) // visit w next
					skipInit[v][ind[v]] = true     // don't redo this block
					break                          // handle next node on the stack (w)
				}
				s.lowpt[a] = s.height[w] // (v, w) is a back arc
			}

			a := s.arcOf[hr.slot]
			s.finishArc(a, v, e)
			ind[v]++
		}
	}
}

// dfsOrientationRecursive is the recursive twin of dfsOrientation.
func (s *lrState) dfsOrientationRecursive(v int) {
	e := s.parentArc[v]
	for _, hr := range s.adj[v] {
		if s.arcOf[hr.slot] != none {
			continue // the edge was already oriented
		}
		w := hr.to
		a := s.newArc(v, w) // orient the edge
		s.arcOf[hr.slot] = a
		s.outArcs[v] = append(s.outArcs[v], a)

		if s.height[w] == none { // (v, w) is a tree arc
			s.parentArc[w] = a
			s.height[w] = s.height[v] + 1
			s.dfsOrientationRecursive(w)
		} else { // (v, w) is a back arc
			s.lowpt[a] = s.height[w]
		}

		s.finishArc(a, v, e)
	}
}

// finishArc derives arc a's nesting depth and folds its lowpoints into
// the parent tree arc e. The +1 tie-break keeps chordal arcs (whose
// subtree also reaches a second, shallower ancestor) sorted after plain
// back arcs at the same lowpoint.
func (s *lrState) finishArc(a, v, e int) {
	s.nesting[a] = 2 * s.lowpt[a]
	if s.lowpt2[a] < s.height[v] { // chordal
		s.nesting[a]++
	}

	if e == none {
		return
	}
	switch {
	case s.lowpt[a] < s.lowpt[e]:
		s.lowpt2[e] = min(s.lowpt[e], s.lowpt2[a])
		s.lowpt[e] = s.lowpt[a]
	case s.lowpt[a] > s.lowpt[e]:
		s.lowpt2[e] = min(s.lowpt2[e], s.lowpt[a])
	default:
		s.lowpt2[e] = min(s.lowpt2[e], s.lowpt2[a])
	}
}
