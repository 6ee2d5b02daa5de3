// Package planarity: public entry points and the test pipeline.

package planarity

import (
	"github.com/katalvlaran/planar/core"
)

// CheckPlanarity runs the Left-Right planarity test on g.
//
// The input is never mutated: the test works on a private copy with
// self-loops stripped and parallel edges collapsed, so concurrent
// checks — even on the same graph — are safe.
//
// The returned Result reports Planar plus the matching certificate:
// a *PlanarEmbedding when planar; with WithCounterexample(), a minimal
// non-planar subgraph when not. Non-planarity is an expected outcome,
// not an error; the only error here is ErrNilGraph.
func CheckPlanarity(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	emb := runLR(g, o.Recursive)
	if emb == nil {
		res := &Result{Planar: false}
		if o.Counterexample {
			ce, err := Kuratowski(g, opts...)
			if err != nil {
				return nil, err
			}
			res.Counterexample = ce
		}

		return res, nil
	}

	return &Result{Planar: true, Embedding: emb}, nil
}

// IsPlanar reports whether g admits a planar embedding.
func IsPlanar(g *core.Graph) (bool, error) {
	res, err := CheckPlanarity(g)
	if err != nil {
		return false, err
	}

	return res.Planar, nil
}

// runLR executes the full pipeline on a fresh state and returns the
// embedding, or nil when g is not planar.
func runLR(g *core.Graph, recursive bool) *PlanarEmbedding {
	s := newLRState(g)

	// Fast-path rejection: a simple planar graph has at most 3n−6 edges
	// (Euler's-formula bound), so denser graphs fail without any DFS.
	if len(s.nodes) > 2 && s.edgeCount > 3*len(s.nodes)-6 {
		return nil
	}

	// Phase 1: orient the graph by depth-first traversal.
	s.orient(recursive)

	// Orientation state the later phases never touch again.
	s.adj = nil
	s.arcOf = nil
	s.lowpt2 = nil

	// Phase 2: test for a left-right partition, adjacency sorted by
	// nesting depth.
	s.sortByNesting()
	if !s.test(recursive) {
		return nil
	}

	// Testing state is dead once the partition exists.
	s.height = nil
	s.stackBottom = nil
	s.lowptArc = nil
	s.pairs = nil
	s.stack = nil

	// Side resolution, then phase 3: build the rotation system.
	s.resolveSides(recursive)
	emb := s.embed(recursive)

	s.lowpt = nil
	s.nesting = nil
	s.ref = nil
	s.side = nil

	return emb
}
