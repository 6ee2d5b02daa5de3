// Package planarity: the PlanarEmbedding half-edge structure.
//
// A combinatorial embedding stores, for every node, the circular
// clockwise order of its incident half-edges. Each half-edge (u, v)
// carries cw/ccw pointers to its neighbors in u's rotation, and each
// node with neighbors remembers the first one, marking the start of
// the circular list. A valid embedding contains the opposite half-edge
// (v, u) for every (u, v) present.
//
// The structure is deliberately its own type rather than a graph
// subtype: mutating it through anything but the insertion primitives
// below can corrupt the rotation system undetectably until
// CheckStructure is run.

package planarity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/planar/core"
)

// PlanarEmbedding is a mutable clockwise rotation system.
// The zero value is not usable; call NewPlanarEmbedding.
type PlanarEmbedding struct {
	nodes map[string]struct{}

	// cw[u][v] is the neighbor that follows v immediately clockwise in
	// u's rotation; ccw is the counterclockwise mirror. Membership of v
	// in cw[u] is what defines the half-edge (u, v).
	cw  map[string]map[string]string
	ccw map[string]map[string]string

	// firstNbr marks the start of each node's circular list. Absent for
	// isolated nodes.
	firstNbr map[string]string
}

// halfEdge identifies a directed edge-end for face bookkeeping.
type halfEdge struct {
	from, to string
}

// NewPlanarEmbedding returns an empty embedding.
func NewPlanarEmbedding() *PlanarEmbedding {
	return &PlanarEmbedding{
		nodes:    make(map[string]struct{}),
		cw:       make(map[string]map[string]string),
		ccw:      make(map[string]map[string]string),
		firstNbr: make(map[string]string),
	}
}

// AddNode declares a node without any incident half-edges.
// Adding an existing node is a no-op.
func (p *PlanarEmbedding) AddNode(id string) error {
	if id == "" {
		return core.ErrEmptyVertexID
	}
	p.addNode(id)

	return nil
}

func (p *PlanarEmbedding) addNode(id string) {
	if _, ok := p.nodes[id]; ok {
		return
	}
	p.nodes[id] = struct{}{}
	p.cw[id] = make(map[string]string)
	p.ccw[id] = make(map[string]string)
}

// HasNode reports whether id is a node of the embedding.
func (p *PlanarEmbedding) HasNode(id string) bool {
	_, ok := p.nodes[id]

	return ok
}

// Nodes returns all node IDs in sorted order.
func (p *PlanarEmbedding) Nodes() []string {
	out := make([]string, 0, len(p.nodes))
	for id := range p.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// HasEdge reports whether the half-edge (u, v) is present.
func (p *PlanarEmbedding) HasEdge(u, v string) bool {
	_, ok := p.cw[u][v]

	return ok
}

// Degree returns the number of half-edges leaving v.
func (p *PlanarEmbedding) Degree(v string) (int, error) {
	if !p.HasNode(v) {
		return 0, ErrNodeNotFound
	}

	return len(p.cw[v]), nil
}

// AddHalfEdgeCW inserts the half-edge (u, v) immediately clockwise of
// the existing half-edge (u, ref). An empty ref declares that u has no
// neighbors yet; the new half-edge becomes its own circular list of
// size one. Unknown nodes are created on demand.
//
// Returns ErrReferenceNotFound, leaving the rotation unchanged, when
// ref is not currently a neighbor of u, or when ref is empty but u
// already has neighbors.
func (p *PlanarEmbedding) AddHalfEdgeCW(u, v, ref string) error {
	if u == "" || v == "" {
		return core.ErrEmptyVertexID
	}
	p.addNode(u)
	p.addNode(v)

	if ref == "" {
		if len(p.cw[u]) > 0 {
			return fmt.Errorf("planarity: cannot add half-edge (%s, %s) without a reference: %w", u, v, ErrReferenceNotFound)
		}
		// u's first half-edge: a circular list of one.
		p.cw[u][v] = v
		p.ccw[u][v] = v
		p.firstNbr[u] = v

		return nil
	}

	cwRef, ok := p.cw[u][ref]
	if !ok {
		return fmt.Errorf("planarity: cannot add half-edge (%s, %s) after (%s, %s): %w", u, v, u, ref, ErrReferenceNotFound)
	}
	// Splice v between ref and ref's old clockwise successor.
	p.cw[u][ref] = v
	p.cw[u][v] = cwRef
	p.ccw[u][cwRef] = v
	p.ccw[u][v] = ref

	return nil
}

// AddHalfEdgeCCW inserts the half-edge (u, v) immediately
// counterclockwise of the existing half-edge (u, ref). If ref was u's
// first neighbor, v takes its place as first. Empty ref behaves as in
// AddHalfEdgeCW.
func (p *PlanarEmbedding) AddHalfEdgeCCW(u, v, ref string) error {
	if u == "" || v == "" {
		return core.ErrEmptyVertexID
	}
	if ref == "" {
		return p.AddHalfEdgeCW(u, v, "")
	}

	ccwRef, ok := p.ccw[u][ref]
	if !ok {
		return fmt.Errorf("planarity: cannot add half-edge (%s, %s) before (%s, %s): %w", u, v, u, ref, ErrReferenceNotFound)
	}
	if err := p.AddHalfEdgeCW(u, v, ccwRef); err != nil {
		return err
	}
	if p.firstNbr[u] == ref {
		// Update the start of the circular list.
		p.firstNbr[u] = v
	}

	return nil
}

// AddHalfEdgeFirst inserts (u, v) as the new first neighbor of u,
// counterclockwise before (clockwise-prior to) the current first.
func (p *PlanarEmbedding) AddHalfEdgeFirst(u, v string) error {
	return p.AddHalfEdgeCCW(u, v, p.firstNbr[u])
}

// ConnectComponents inserts the mutual half-edges (v, w) and (w, v),
// each as the first neighbor of its start node. Valid only when v and
// w lie in different connected components: it does not merge rotations
// consistently otherwise, and the two calls must not be repeated in
// the opposite order.
func (p *PlanarEmbedding) ConnectComponents(v, w string) error {
	if err := p.AddHalfEdgeFirst(v, w); err != nil {
		return err
	}

	return p.AddHalfEdgeFirst(w, v)
}

// NeighborsCW returns v's neighbors in clockwise order, starting at
// v's first neighbor. An isolated node yields an empty sequence.
//
// Returns ErrNodeNotFound for unknown nodes, and ErrBadEmbedding when
// v has neighbors but no first neighbor, or when the cw pointers do
// not close into a cycle over exactly v's neighbors.
func (p *PlanarEmbedding) NeighborsCW(v string) ([]string, error) {
	if !p.HasNode(v) {
		return nil, ErrNodeNotFound
	}
	deg := len(p.cw[v])
	if deg == 0 {
		return nil, nil
	}
	start, ok := p.firstNbr[v]
	if !ok {
		return nil, fmt.Errorf("planarity: node %s has neighbors but no first neighbor: %w", v, ErrBadEmbedding)
	}

	out := make([]string, 0, deg)
	out = append(out, start)
	cur, ok := p.cw[v][start]
	for cur != start {
		if !ok {
			return nil, fmt.Errorf("planarity: missing clockwise orientation for a neighbor of %s: %w", v, ErrBadEmbedding)
		}
		if len(out) == deg {
			// The walk should have closed by now; the cycle skips or
			// repeats a neighbor.
			return nil, fmt.Errorf("planarity: clockwise order of %s does not close: %w", v, ErrBadEmbedding)
		}
		out = append(out, cur)
		cur, ok = p.cw[v][cur]
	}

	return out, nil
}

// NextFaceHalfEdge returns the half-edge following (v, w) on the face
// to its right: turn counterclockwise at w.
func (p *PlanarEmbedding) NextFaceHalfEdge(v, w string) (string, string, error) {
	next, ok := p.ccw[w][v]
	if !ok {
		return "", "", ErrHalfEdgeNotFound
	}

	return w, next, nil
}

// TraverseFace returns the nodes on the boundary of the face that lies
// to the right of the half-edge (v, w) (with v drawn below w).
func (p *PlanarEmbedding) TraverseFace(v, w string) ([]string, error) {
	return p.traverseFace(v, w, make(map[halfEdge]struct{}))
}

// traverseFace walks a face boundary, marking every half-edge it
// visits. Revisiting a half-edge before returning to the start means
// the embedding cannot be planar.
func (p *PlanarEmbedding) traverseFace(v, w string, marked map[halfEdge]struct{}) ([]string, error) {
	if !p.HasEdge(v, w) {
		return nil, ErrHalfEdgeNotFound
	}

	face := []string{v}
	marked[halfEdge{v, w}] = struct{}{}
	prev, cur := v, w
	// The boundary ends with the half-edge (incoming, v).
	incoming := p.cw[v][w]

	for cur != v || prev != incoming {
		face = append(face, cur)
		var err error
		prev, cur, err = p.NextFaceHalfEdge(prev, cur)
		if err != nil {
			return nil, fmt.Errorf("planarity: face of (%s, %s) leaves the embedding: %w", v, w, ErrBadEmbedding)
		}
		if _, seen := marked[halfEdge{prev, cur}]; seen {
			return nil, fmt.Errorf("planarity: impossible face at (%s, %s): %w", prev, cur, ErrBadEmbedding)
		}
		marked[halfEdge{prev, cur}] = struct{}{}
	}

	return face, nil
}

// CheckStructure returns nil exactly when the embedding is valid:
//
//   - every half-edge (u, v) has its opposite (v, u),
//   - every node's clockwise walk visits each of its neighbors once,
//   - every connected component with more than one node satisfies
//     Euler's formula, nodes − edges + faces == 2, with faces counted
//     by traversing each half-edge's boundary exactly once.
//
// A failure means the embedding instance is corrupt; it is returned as
// an error wrapping ErrBadEmbedding. Embeddings produced by
// CheckPlanarity always pass; the check exists to validate
// hand-constructed or deserialized rotation systems.
func (p *PlanarEmbedding) CheckStructure() error {
	// Fundamental structure first: orientations and mutual half-edges.
	for _, v := range p.Nodes() {
		ordered, err := p.NeighborsCW(v)
		if err != nil {
			return err
		}
		if len(ordered) != len(p.cw[v]) {
			return fmt.Errorf("planarity: clockwise order of %s misses a neighbor: %w", v, ErrBadEmbedding)
		}
		for w := range p.cw[v] {
			if !p.HasEdge(w, v) {
				return fmt.Errorf("planarity: opposite half-edge of (%s, %s) is missing: %w", v, w, ErrBadEmbedding)
			}
		}
	}

	// Planarity of each component via Euler's formula.
	counted := make(map[halfEdge]struct{})
	for _, component := range p.components() {
		if len(component) == 1 {
			continue // nothing to verify on a single node
		}
		halfEdges, faces := 0, 0
		for _, v := range component {
			nbrs, err := p.NeighborsCW(v)
			if err != nil {
				return err
			}
			for _, w := range nbrs {
				halfEdges++
				if _, ok := counted[halfEdge{v, w}]; !ok {
					// A face not seen before; mark its whole boundary.
					faces++
					if _, err = p.traverseFace(v, w, counted); err != nil {
						return err
					}
				}
			}
		}
		edges := halfEdges / 2
		if len(component)-edges+faces != 2 {
			return fmt.Errorf("planarity: component of %s violates Euler's formula: %w", component[0], ErrBadEmbedding)
		}
	}

	return nil
}

// components returns the connected components of the embedding, each
// sorted, in sorted order of their smallest node.
func (p *PlanarEmbedding) components() [][]string {
	visited := make(map[string]struct{}, len(p.nodes))
	var out [][]string
	for _, v := range p.Nodes() {
		if _, ok := visited[v]; ok {
			continue
		}
		comp := []string{}
		stack := []string{v}
		visited[v] = struct{}{}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for w := range p.cw[u] {
				if _, ok := visited[w]; !ok {
					visited[w] = struct{}{}
					stack = append(stack, w)
				}
			}
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}

// GetData serializes the rotation system as a map from every node to
// its neighbors in clockwise order. The inverse of SetData.
func (p *PlanarEmbedding) GetData() (map[string][]string, error) {
	data := make(map[string][]string, len(p.nodes))
	for _, v := range p.Nodes() {
		nbrs, err := p.NeighborsCW(v)
		if err != nil {
			return nil, err
		}
		data[v] = nbrs
	}

	return data, nil
}

// SetData rebuilds rotations from a map of clockwise-ordered neighbor
// lists, inserting each list back to front with AddHalfEdgeFirst so
// SetData(GetData()) reproduces an identical clockwise order at every
// node. Existing rotations are extended, not replaced.
func (p *PlanarEmbedding) SetData(data map[string][]string) error {
	keys := make([]string, 0, len(data))
	for v := range data {
		keys = append(keys, v)
	}
	sort.Strings(keys)

	for _, v := range keys {
		if err := p.AddNode(v); err != nil {
			return err
		}
		nbrs := data[v]
		for i := len(nbrs) - 1; i >= 0; i-- {
			if err := p.AddHalfEdgeFirst(v, nbrs[i]); err != nil {
				return err
			}
		}
	}

	return nil
}
