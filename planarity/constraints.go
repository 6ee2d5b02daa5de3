// Package planarity: phase 2 — testing.
//
// The second DFS walks the oriented forest with each node's adjacency
// sorted by nesting depth, maintaining a stack of conflict pairs of
// back-arc intervals. Each back arc opens a trivial pair; returning
// from a child merges the child's pairs into one and either aligns or
// conflicts the accumulated constraints. A genuine conflict — an
// interval forced to carry both orientations — proves non-planarity
// and aborts the whole test on the spot.
//
// Conflict pairs live in an arena and are addressed by id: the stack,
// the per-arc frame markers, and the merge loops all alias the same
// records, so rewriting an interval inside one is visible everywhere.

package planarity

// interval bounds a contiguous run of back arcs sharing an orientation
// constraint. Both endpoints none means the interval is empty.
type interval struct {
	low  int // arc id, none when unset
	high int // arc id, none when unset
}

func (i interval) isEmpty() bool {
	return i.low == none && i.high == none
}

// emptyInterval is the unset interval. The zero value of interval is
// NOT empty (arc 0 is a valid id), so construction must be explicit.
func emptyInterval() interval {
	return interval{low: none, high: none}
}

// conflictPair holds two intervals whose back arcs must take opposite
// sides of the tree path they return across.
type conflictPair struct {
	left  interval
	right interval
}

func (p *conflictPair) swap() {
	p.left, p.right = p.right, p.left
}

// conflicting reports whether interval i forces a constraint that arc b
// cannot join: i is occupied and its high arc returns strictly above b.
func (s *lrState) conflicting(i interval, b int) bool {
	return !i.isEmpty() && s.lowpt[i.high] > s.lowpt[b]
}

// lowest returns the lowest lowpoint of pair pid.
func (s *lrState) lowest(pid int) int {
	p := &s.pairs[pid]
	if p.left.isEmpty() {
		return s.lowpt[p.right.low]
	}
	if p.right.isEmpty() {
		return s.lowpt[p.left.low]
	}

	return min(s.lowpt[p.left.low], s.lowpt[p.right.low])
}

// pushPair allocates p in the arena and pushes its id.
func (s *lrState) pushPair(p conflictPair) {
	s.pairs = append(s.pairs, p)
	s.stack = append(s.stack, len(s.pairs)-1)
}

// top returns the pair id on top of the stack, none when empty.
func (s *lrState) top() int {
	if len(s.stack) == 0 {
		return none
	}

	return s.stack[len(s.stack)-1]
}

// pop removes and returns the top pair id. The stack is never popped
// empty: every pop site is guarded by a frame marker or a top() check.
func (s *lrState) pop() int {
	id := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	return id
}

// test runs the testing pass over every root. It reports false as soon
// as any component is found non-planar.
func (s *lrState) test(recursive bool) bool {
	ind := make([]int, len(s.nodes))
	skipInit := make([]bool, len(s.arcs))

	for _, v := range s.roots {
		if recursive {
			if !s.dfsTestingRecursive(v) {
				return false
			}
		} else if !s.dfsTesting(v, ind, skipInit) {
			return false
		}
	}

	return true
}

// dfsTesting explores one tree on an explicit work-stack, mirroring
// dfsOrientation's resume discipline: skipInit is keyed by arc (each
// tree arc is begun exactly once), skipFinal suppresses the
// remove-back-arcs epilogue while a child is still pending.
func (s *lrState) dfsTesting(start int, ind []int, skipInit []bool) bool {
	dfsStack := []int{start}

	for len(dfsStack) > 0 {
		v := dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]
		e := s.parentArc[v]
		skipFinal := false

	neighbors:
		for ind[v] < len(s.outArcs[v]) {
			ei := s.outArcs[v][ind[v]]
			w := s.arcs[ei].head

			if !skipInit[ei] {
				s.stackBottom[ei] = s.top() // frame marker

				if ei == s.parentArc[w] { // tree arc
					dfsStack = append(dfsStack, v) // revisit v after finishing w
					dfsStack = append(dfsStack, w) // visit w next
					skipInit[ei] = true            // don't redo this block
					skipFinal = true               // epilogue waits for w
					break neighbors
				}
				// back arc: open a trivial constraint
				s.lowptArc[ei] = ei
				s.pushPair(conflictPair{left: emptyInterval(), right: interval{low: ei, high: ei}})
			}

			// integrate new return arcs
			if s.lowpt[ei] < s.height[v] {
				if ei == s.outArcs[v][0] { // lowest-nesting neighbor
					s.lowptArc[e] = s.lowptArc[ei]
				} else if !s.addConstraints(ei, e) {
					return false // graph is not planar
				}
			}

			ind[v]++
		}

		if !skipFinal && e != none { // v is not a root
			s.removeBackArcs(e)
		}
	}

	return true
}

// dfsTestingRecursive is the recursive twin of dfsTesting.
func (s *lrState) dfsTestingRecursive(v int) bool {
	e := s.parentArc[v]
	for _, ei := range s.outArcs[v] {
		w := s.arcs[ei].head
		s.stackBottom[ei] = s.top()

		if ei == s.parentArc[w] { // tree arc
			if !s.dfsTestingRecursive(w) {
				return false
			}
		} else { // back arc
			s.lowptArc[ei] = ei
			s.pushPair(conflictPair{left: emptyInterval(), right: interval{low: ei, high: ei}})
		}

		// integrate new return arcs
		if s.lowpt[ei] < s.height[v] {
			if ei == s.outArcs[v][0] {
				s.lowptArc[e] = s.lowptArc[ei]
			} else if !s.addConstraints(ei, e) {
				return false
			}
		}
	}

	if e != none { // v is not a root
		s.removeBackArcs(e)
	}

	return true
}

// addConstraints merges every conflict pair pushed above ei's frame
// marker into a single pair, then folds in the pairs of earlier
// siblings whose intervals conflict with ei. It reports false when an
// interval would need both orientations — the exact non-planarity
// condition.
func (s *lrState) addConstraints(ei, e int) bool {
	p := conflictPair{left: emptyInterval(), right: emptyInterval()}

	// Merge return arcs of ei into p.right.
	for {
		q := &s.pairs[s.pop()]
		if !q.left.isEmpty() {
			q.swap()
		}
		if !q.left.isEmpty() { // not planar
			return false
		}
		if s.lowpt[q.right.low] > s.lowpt[e] {
			// merge intervals
			if p.right.isEmpty() { // topmost interval
				p.right = q.right
			} else {
				s.ref[p.right.low] = q.right.high
			}
			p.right.low = q.right.low
		} else {
			// align
			s.ref[q.right.low] = s.lowptArc[e]
		}
		if s.top() == s.stackBottom[ei] {
			break
		}
	}

	// Merge conflicting return arcs of e1..e_{i-1} into p.left.
	for s.top() != none &&
		(s.conflicting(s.pairs[s.top()].left, ei) || s.conflicting(s.pairs[s.top()].right, ei)) {
		q := &s.pairs[s.pop()]
		if s.conflicting(q.right, ei) {
			q.swap()
		}
		if s.conflicting(q.right, ei) { // not planar
			return false
		}
		// merge interval below lowpt(ei) into p.right
		if p.right.low != none {
			s.ref[p.right.low] = q.right.high
		}
		if q.right.low != none {
			p.right.low = q.right.low
		}

		if p.left.isEmpty() { // topmost interval
			p.left = q.left
		} else if p.left.low != none {
			s.ref[p.left.low] = q.left.high
		}
		p.left.low = q.left.low
	}

	if !(p.left.isEmpty() && p.right.isEmpty()) {
		s.pushPair(p)
	}

	return true
}

// removeBackArcs runs when the DFS returns over tree arc e to its tail
// u: pairs fully resolved at u's height are dropped (their surviving
// left intervals flip side), interval endpoints returning exactly to u
// are trimmed away, and e's side reference is taken from whichever
// remaining interval returns higher.
func (s *lrState) removeBackArcs(e int) {
	u := s.arcs[e].tail

	// Drop entire conflict pairs resolved at this height.
	for len(s.stack) > 0 && s.lowest(s.top()) == s.height[u] {
		p := &s.pairs[s.pop()]
		if p.left.low != none {
			s.side[p.left.low] = -1
		}
	}

	if len(s.stack) > 0 { // one more conflict pair to consider
		pid := s.pop()
		p := &s.pairs[pid]
		// trim left interval
		for p.left.high != none && s.arcs[p.left.high].head == u {
			p.left.high = s.ref[p.left.high]
		}
		if p.left.high == none && p.left.low != none {
			// just emptied
			s.ref[p.left.low] = p.right.low
			s.side[p.left.low] = -1
			p.left.low = none
		}
		// trim right interval
		for p.right.high != none && s.arcs[p.right.high].head == u {
			p.right.high = s.ref[p.right.high]
		}
		if p.right.high == none && p.right.low != none {
			// just emptied
			s.ref[p.right.low] = p.left.low
			s.side[p.right.low] = -1
			p.right.low = none
		}
		s.stack = append(s.stack, pid)
	}

	// Side of e is the side of its highest return arc.
	if s.lowpt[e] < s.height[u] { // e has a return arc
		hl := s.pairs[s.top()].left.high
		hr := s.pairs[s.top()].right.high

		if hl != none && (hr == none || s.lowpt[hl] > s.lowpt[hr]) {
			s.ref[e] = hl
		} else {
			s.ref[e] = hr
		}
	}
}
