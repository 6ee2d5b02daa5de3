// Package planarity: sentinel errors, functional options, and the
// Result type shared by the public entry points.
package planarity

import (
	"errors"

	"github.com/katalvlaran/planar/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to
	// CheckPlanarity, IsPlanar, or Kuratowski.
	ErrNilGraph = errors.New("planarity: graph is nil")

	// ErrGraphPlanar is returned by Kuratowski when the input graph is
	// planar and therefore has no non-planar subgraph to extract.
	ErrGraphPlanar = errors.New("planarity: graph is planar, no counterexample exists")

	// ErrNodeNotFound indicates an embedding query referenced a node
	// that was never added to the PlanarEmbedding.
	ErrNodeNotFound = errors.New("planarity: node not found in embedding")

	// ErrHalfEdgeNotFound indicates a face traversal was started from a
	// half-edge that does not exist in the embedding.
	ErrHalfEdgeNotFound = errors.New("planarity: half-edge not found in embedding")

	// ErrReferenceNotFound indicates a half-edge insertion named a
	// reference neighbor that is not currently adjacent to the start
	// node. The embedding is left unmodified.
	ErrReferenceNotFound = errors.New("planarity: reference neighbor does not exist")

	// ErrBadEmbedding indicates the embedding violates a structural
	// invariant (missing mutual half-edge, unset first neighbor, broken
	// clockwise cycle, impossible face, or Euler's-formula mismatch).
	// An embedding that fails validation is corrupt; there is no repair.
	ErrBadEmbedding = errors.New("planarity: bad embedding")
)

// Option configures optional behavior of the planarity entry points.
// Use with CheckPlanarity(g, opts...) or Kuratowski(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for a planarity check.
type Options struct {
	// Counterexample requests extraction of a Kuratowski subgraph when
	// the graph turns out to be non-planar. Extraction re-runs the full
	// test once per edge, so it is only performed on demand.
	// Default is false.
	Counterexample bool

	// Recursive selects the true-recursive implementations of the DFS
	// phases instead of the explicit-stack ones. Both variants produce
	// identical results; the recursive form exists for verification and
	// may overflow the call stack on very deep graphs. Default is false.
	Recursive bool
}

// DefaultOptions returns an Options struct with:
//   - no counterexample extraction
//   - iterative (explicit work-stack) DFS phases
func DefaultOptions() Options {
	return Options{
		Counterexample: false,
		Recursive:      false,
	}
}

// WithCounterexample returns an Option that enables Kuratowski subgraph
// extraction for non-planar inputs.
func WithCounterexample() Option {
	return func(o *Options) {
		o.Counterexample = true
	}
}

// WithRecursion returns an Option that switches every DFS phase to its
// recursive reference implementation.
func WithRecursion() Option {
	return func(o *Options) {
		o.Recursive = true
	}
}

// Result captures the outcome of a planarity check.
type Result struct {
	// Planar is true if the graph admits a planar embedding.
	Planar bool

	// Embedding is the combinatorial embedding witnessing planarity.
	// It is non-nil exactly when Planar is true, and is owned by the
	// caller; mutate it only through its half-edge insertion methods.
	Embedding *PlanarEmbedding

	// Counterexample is a minimal non-planar subgraph (a topological K5
	// or K3,3). It is non-nil only when Planar is false and the check
	// ran with WithCounterexample().
	Counterexample *core.Graph
}
