// Package planarity: per-check working state for the Left-Right test.
//
// All DFS-phase state lives in an lrState created fresh for every
// check, so concurrent checks never share mutable data. Nodes are
// mapped to dense indices (in sorted-ID order, for determinism) and
// every per-node or per-edge annotation is a fixed-size table indexed
// by node or arc id, with explicit sentinel defaults.

package planarity

import (
	"sort"

	"github.com/katalvlaran/planar/core"
)

// none is the sentinel for "unset" in every index-valued table:
// an undiscovered height, a missing parent arc, an empty interval
// endpoint, a cleared ref, an empty conflict-pair stack.
const none = -1

// halfRef is one endpoint's view of an undirected edge of the working
// copy: the opposite endpoint and the edge's slot in the edge table.
type halfRef struct {
	to   int // neighbor dense index
	slot int // undirected edge slot
}

// arc is an oriented edge of the DFS forest: a tree arc or a back arc.
// Arcs are created during orientation, one per undirected edge.
type arc struct {
	tail int // dense index of the arc's source
	head int // dense index of the arc's target
}

// lrState carries every annotation of the Left-Right test. Tables that
// a later phase no longer needs are released (set to nil) as the
// pipeline advances; this is a peak-memory optimization, not a
// correctness requirement.
type lrState struct {
	nodes []string       // dense index → vertex ID (sorted)
	index map[string]int // vertex ID → dense index

	adj       [][]halfRef // working-copy adjacency, self-loops stripped
	edgeCount int         // number of undirected edges in the working copy

	roots []int // one DFS root per connected component

	// Per-node tables.
	height    []int // DFS depth; none = undiscovered; immutable once set
	parentArc []int // arc id of the tree arc entering the node; none for roots
	leftRef   []int // leftmost inserted neighbor during embedding
	rightRef  []int // reference neighbor for clockwise insertion

	// Per-arc tables, indexed by arc id. Arcs are appended in creation
	// order; all tables grow in lockstep via newArc.
	arcs        []arc
	outArcs     [][]int // per node: arcs leaving it, later sorted by nesting
	lowpt       []int   // height of the lowest return point
	lowpt2      []int   // height of the second-lowest return point
	nesting     []int   // nesting depth; sign-multiplied before embedding
	ref         []int   // side-dependency target arc; none = resolved/absent
	side        []int   // ±1; relative to ref until sign resolution
	lowptArc    []int   // arc realizing the lowpoint ("lowpt edge")
	stackBottom []int   // conflict-pair id atop the stack at frame entry

	// arcOf maps an undirected edge slot to its arc, none until the
	// orientation pass reaches the edge.
	arcOf []int

	// Conflict-pair arena. Pairs are aliased by id from the stack and
	// from stackBottom, never copied: merging rewrites a pair other
	// stack entries still refer to, which is load-bearing.
	pairs []conflictPair
	stack []int // stack of pair ids

	emb *PlanarEmbedding
}

// newLRState builds the private working copy: dense node indices in
// sorted-ID order, adjacency with self-loops stripped and parallel or
// anti-parallel edges collapsed, and all annotation tables initialized
// to their documented defaults.
func newLRState(g *core.Graph) *lrState {
	nodes := g.Vertices()
	s := &lrState{
		nodes: nodes,
		index: make(map[string]int, len(nodes)),
	}
	for i, id := range nodes {
		s.index[id] = i
	}

	// Copy edges, dropping self-loops and collapsing duplicates.
	s.adj = make([][]halfRef, len(nodes))
	seen := make(map[[2]int]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		u, w := s.index[e.From], s.index[e.To]
		if u == w {
			continue // self-loops are irrelevant to planarity
		}
		key := [2]int{min(u, w), max(u, w)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		slot := s.edgeCount
		s.edgeCount++
		s.adj[u] = append(s.adj[u], halfRef{to: w, slot: slot})
		s.adj[w] = append(s.adj[w], halfRef{to: u, slot: slot})
	}
	// Neighbor order drives every DFS tie-break; keep it sorted so runs
	// are reproducible. Dense index order is sorted-ID order.
	for v := range s.adj {
		sort.Slice(s.adj[v], func(i, j int) bool { return s.adj[v][i].to < s.adj[v][j].to })
	}

	n, m := len(nodes), s.edgeCount
	s.height = filled(n, none)
	s.parentArc = filled(n, none)
	s.leftRef = filled(n, none)
	s.rightRef = filled(n, none)
	s.outArcs = make([][]int, n)
	s.arcOf = filled(m, none)

	s.arcs = make([]arc, 0, m)
	s.lowpt = make([]int, 0, m)
	s.lowpt2 = make([]int, 0, m)
	s.nesting = make([]int, 0, m)
	s.ref = make([]int, 0, m)
	s.side = make([]int, 0, m)
	s.lowptArc = make([]int, 0, m)
	s.stackBottom = make([]int, 0, m)

	return s
}

// newArc appends an oriented edge tail→head and returns its id.
// Every per-arc table grows in lockstep: lowpt/lowpt2 start at the
// tail's height (adjusted by the caller for back arcs), ref starts
// unset, side starts at +1.
func (s *lrState) newArc(tail, head int) int {
	id := len(s.arcs)
	s.arcs = append(s.arcs, arc{tail: tail, head: head})
	s.lowpt = append(s.lowpt, s.height[tail])
	s.lowpt2 = append(s.lowpt2, s.height[tail])
	s.nesting = append(s.nesting, 0)
	s.ref = append(s.ref, none)
	s.side = append(s.side, 1)
	s.lowptArc = append(s.lowptArc, none)
	s.stackBottom = append(s.stackBottom, none)

	return id
}

// sortByNesting orders every node's outgoing arcs by nesting depth.
// sort.SliceStable keeps creation order on ties, mirroring the stable
// nesting sort the testing phase relies on.
func (s *lrState) sortByNesting() {
	for v := range s.outArcs {
		arcs := s.outArcs[v]
		sort.SliceStable(arcs, func(i, j int) bool {
			return s.nesting[arcs[i]] < s.nesting[arcs[j]]
		})
	}
}

// filled returns a slice of n ints all set to def.
func filled(n, def int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = def
	}

	return out
}
