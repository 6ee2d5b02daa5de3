// Package core: graph cloning.

package core

// CloneEmpty returns a new Graph with identical configuration and
// vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	// Copy configuration via options
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	// Copy vertices; Metadata maps are shared, not deep-copied
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices,
// edges, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	// Copy edges and adjacency; edge IDs are preserved
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		clone.ensureAdj(e.From)
		clone.adjacency[e.From][e.To] = eid
		if !e.Directed && e.From != e.To {
			clone.ensureAdj(e.To)
			clone.adjacency[e.To][e.From] = eid
		}
	}
	if g.nextEdgeID > clone.nextEdgeID {
		clone.nextEdgeID = g.nextEdgeID
	}

	return clone
}
