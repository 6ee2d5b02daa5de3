// Package core: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) vertex and edge management on the
// Graph type declared in types.go. Separate RWMutex locks for vertices
// (muVert) and edges+adjacency (muEdgeAdj) keep contention low.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	// Acquire write lock on vertices only
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Check if vertex already present
	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	// Insert new Vertex struct with empty Metadata map
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Initialize adjacency entry for this vertex
	g.muEdgeAdj.Lock()
	g.ensureAdj(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if the
// vertex does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock vertices and edges+adjacency to prevent races
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Verify vertex presence
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Remove all edges where id is either endpoint
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.removeAdj(e)
			delete(g.edges, eid)
		}
	}

	// Remove vertex itself and its adjacency row
	delete(g.vertices, id)
	delete(g.adjacency, id)

	return nil
}

// AddEdge creates a new edge from 'from' to 'to' with the given weight
// and returns its unique Edge.ID. Both endpoints are created if absent.
// If an edge between the endpoints already exists, the existing edge ID
// is returned and the graph is unchanged (the Graph stores simple
// graphs; parallel edges collapse).
//
// Returns ErrEmptyVertexID, ErrBadWeight, or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1. Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2. Weight constraint
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3. Loop constraint
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4. Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5. Lock everything around edges & adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6. Collapse parallel edges onto the existing one
	if eid, ok := g.adjacency[from][to]; ok {
		return eid, nil
	}

	// 7. Generate a new atomic Edge.ID and store the edge
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	// 8. Insert into adjacency[from][to], mirroring for undirected
	//    (loops skip the mirror)
	g.ensureAdj(from)
	g.adjacency[from][to] = eid
	if !e.Directed && from != to {
		g.ensureAdj(to)
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror) from
// the graph. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid) // delete from global edges map
	g.removeAdj(e)       // remove adjacency entries, mirror included

	return nil
}

// RemoveEdgeBetween deletes the edge connecting from and to, if any.
// For undirected graphs the endpoint order is irrelevant.
// Returns ErrEdgeNotFound when the endpoints are not connected.
// Complexity: O(1).
func (g *Graph) RemoveEdgeBetween(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	e := g.edges[eid]
	delete(g.edges, eid)
	g.removeAdj(e)

	return nil
}

// HasEdge reports true if an edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeBetween returns the edge connecting from and to.
// Returns ErrEdgeNotFound when the endpoints are not connected.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Neighbors returns all edges incident to vertex 'id'.
// For directed graphs, only outgoing edges are returned; for
// undirected, every incident edge appears once.
// Result is sorted by the opposite endpoint's ID for determinism.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Ensure vertex exists
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	// Lock edges+adjacency for reading
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	// Sort by opposite endpoint to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool {
		return out[i].Other(id) < out[j].Other(id)
	})

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted.
// A self-loop contributes id itself once.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.From == id && e.To == id {
			ids = append(ids, id) // self-loop
			continue
		}
		ids = append(ids, e.Other(id))
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Degree returns the number of edges incident to id.
// A self-loop counts once. Returns ErrVertexNotFound for unknown ids.
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Clear resets the graph to an empty state but preserves option flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Internal helper methods:
////////////////////

// ensureAdj makes adjacency[id] non-nil.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
}

// removeAdj deletes e's adjacency entries in both directions.
func (g *Graph) removeAdj(e *Edge) {
	if m := g.adjacency[e.From]; m != nil {
		delete(m, e.To)
	}
	// mirror when undirected
	if !e.Directed && e.From != e.To {
		if m := g.adjacency[e.To]; m != nil {
			delete(m, e.From)
		}
	}
}
