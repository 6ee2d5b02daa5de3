// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and
// cloning graphs.
//
// What:
//
//   - Graph: an in-memory simple graph (at most one edge per vertex
//     pair), directed or undirected, optionally weighted, optionally
//     permitting self-loops. All mutation and queries are guarded by
//     two sync.RWMutex locks (muVert for the vertex catalog, muEdgeAdj
//     for edges and adjacency), so graphs can be shared across
//     goroutines with minimal contention.
//   - Vertex: identified by a non-empty string ID, with an optional
//     free-form Metadata map.
//   - Edge: From→To endpoints, int64 Weight, a unique generated ID.
//
// Why:
//   - Serve as the input container for the planarity package: it needs
//     the node set, neighbor iteration, edge existence tests, edge
//     add/remove for working copies, and cloning — nothing more exotic.
//   - Stay deterministic: Vertices, Edges, Neighbors, and NeighborIDs
//     return results in sorted order so algorithm output is
//     reproducible across runs.
//
// Key Types & Functions:
//
//   - NewGraph(opts ...GraphOption) *Graph
//   - GraphOption: WithDirected(bool), WithWeighted(), WithLoops()
//   - AddVertex, HasVertex, RemoveVertex
//   - AddEdge, RemoveEdge, RemoveEdgeBetween, HasEdge, EdgeBetween
//   - Neighbors, NeighborIDs, Vertices, Edges, Degree
//   - VertexCount, EdgeCount, Clone, CloneEmpty, Clear
//
// Complexity:
//
//   - AddVertex/HasVertex/AddEdge/HasEdge: O(1) amortized
//   - Neighbors/NeighborIDs: O(d log d) for degree d (sorted output)
//   - Vertices/Edges: O(V log V) / O(E log E)
//   - Clone: O(V + E)
//
// Errors:
//
//   - ErrEmptyVertexID   vertex ID is the empty string
//   - ErrVertexNotFound  requested vertex does not exist
//   - ErrEdgeNotFound    requested edge does not exist
//   - ErrBadWeight       non-zero weight on an unweighted graph
//   - ErrLoopNotAllowed  self-loop when loops are disabled
package core
