// Package planarity: Kuratowski subgraph extraction.

package planarity

import (
	"github.com/katalvlaran/planar/core"
)

// Kuratowski extracts a minimal non-planar subgraph of g — a
// topological K5 or K3,3 — as a certificate of non-planarity.
//
// Every edge is removed in turn from a working copy and the full test
// re-run: edges whose removal keeps the graph non-planar stay removed;
// edges whose removal restores planarity are essential and go into the
// result. The output is therefore edge-minimal: deleting any single
// edge of it yields a planar graph.
//
// Cost is one full planarity test per edge, which is why extraction
// only happens on demand and never on the plain planar/non-planar
// decision path. Returns ErrGraphPlanar when g is planar.
func Kuratowski(g *core.Graph, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	work := undirectedCopy(g)
	if runLR(work, o.Recursive) != nil {
		return nil, ErrGraphPlanar
	}

	subgraph := core.NewGraph()
	for _, u := range work.Vertices() {
		// Snapshot u's neighbors; the inner loop mutates adjacency.
		nbrs, err := work.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			_ = work.RemoveEdgeBetween(u, v)
			if runLR(work, o.Recursive) != nil {
				// Removal made the graph planar: (u, v) is essential.
				_, _ = work.AddEdge(u, v, 0)
				_, _ = subgraph.AddEdge(u, v, 0)
			}
		}
	}

	return subgraph, nil
}

// undirectedCopy builds a mutable, undirected, unweighted working copy
// of g with self-loops dropped (parallel and anti-parallel edges
// collapse in the copy).
func undirectedCopy(g *core.Graph) *core.Graph {
	work := core.NewGraph()
	for _, v := range g.Vertices() {
		_ = work.AddVertex(v)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		_, _ = work.AddEdge(e.From, e.To, 0)
	}

	return work
}
