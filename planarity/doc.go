// Package planarity implements the Left-Right planarity test on a
// core.Graph and constructs combinatorial embeddings (clockwise
// rotation systems) for planar graphs.
//
// What:
//
//   - CheckPlanarity(g, opts...): decide planarity and return a
//     certificate — a *PlanarEmbedding when the graph is planar, or
//     (with WithCounterexample) a Kuratowski subgraph when it is not.
//   - IsPlanar(g): boolean convenience wrapper.
//   - Kuratowski(g): extract a minimal non-planar subgraph
//     (a topological K5 or K3,3) from a non-planar graph.
//   - PlanarEmbedding: a standalone half-edge rotation structure with
//     insertion primitives (AddHalfEdgeCW/CCW/First, ConnectComponents),
//     clockwise neighbor iteration, face traversal, Euler's-formula
//     validation (CheckStructure), and GetData/SetData round-trips.
//
// Why:
//   - Planarity is a gateway property: planar graphs admit specialized
//     linear-time algorithms, and a rotation system is the input every
//     planar drawing pipeline starts from.
//   - The certificate makes answers checkable: embeddings validate via
//     Euler's formula, counterexamples are minimal by construction.
//
// How:
//
//	The test runs in three DFS passes over a private working copy of
//	the input (self-loops stripped, parallel edges collapsed):
//
//	 1. Orientation — root a DFS forest, orient every edge as tree or
//	    back edge, compute lowpoints and a nesting order.
//	 2. Testing — walk the tree with adjacency sorted by nesting depth,
//	    maintaining a stack of conflict pairs of back-edge intervals;
//	    an unresolvable conflict proves non-planarity immediately.
//	 3. Embedding — resolve each edge's left/right side, re-sort by
//	    signed nesting depth, and insert every half-edge into the
//	    rotation system.
//
//	Every pass runs on an explicit work-stack, so recursion depth never
//	depends on graph size; WithRecursion() selects true-recursive
//	twins that produce identical results (useful for verification).
//
// Key Types & Functions:
//
//   - CheckPlanarity(g *core.Graph, opts ...Option) (*Result, error)
//   - IsPlanar(g *core.Graph) (bool, error)
//   - Kuratowski(g *core.Graph, opts ...Option) (*core.Graph, error)
//   - Result: Planar flag plus Embedding / Counterexample certificate
//   - PlanarEmbedding, NewPlanarEmbedding()
//   - Option: WithCounterexample(), WithRecursion()
//
// Complexity:
//
//   - CheckPlanarity: Time O((V+E) log V) (dominated by the nesting
//     sorts), Memory O(V+E)
//   - Kuratowski:     O(E) full re-tests, i.e. O(E·(V+E) log V)
//   - CheckStructure: Time O(V+E), Memory O(E)
//
// Errors:
//
//   - ErrNilGraph            graph pointer is nil
//   - ErrGraphPlanar         Kuratowski called on a planar graph
//   - ErrNodeNotFound        embedding query for an unknown node
//   - ErrHalfEdgeNotFound    face traversal from a missing half-edge
//   - ErrReferenceNotFound   half-edge insertion against a missing
//     reference neighbor (usage error; no mutation performed)
//   - ErrBadEmbedding        structural validation failure: missing
//     mutual half-edge, unset first neighbor on a non-isolated node,
//     broken clockwise cycle, impossible face, or an Euler's-formula
//     mismatch (the embedding instance is corrupt and unrecoverable)
//
// Non-planarity is NOT an error: it is reported through Result.Planar.
package planarity
