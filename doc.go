// Package planar is an in-memory toolkit for planarity testing and
// combinatorial embeddings — decide whether a graph can be drawn in the
// plane without edge crossings, and obtain a certificate either way.
//
// 🚀 What is planar?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Planarity testing: the Left-Right planarity test in linear passes
//		• Combinatorial embeddings: clockwise rotation systems per vertex
//		• Certificates: a PlanarEmbedding when planar, a Kuratowski
//		  subgraph (topological K5 or K3,3) when not
//		• Validation: Euler's-formula face counting over half-edge faces
//
// ✨ Why choose planar?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, in-code docs, explicit-stack DFS
//     that never overflows on deep graphs
//   - Pure Go – no cgo, no hidden deps
//   - Certificates, not just booleans – every answer comes with a witness
//
// Under the hood, everything is organized under two subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	planarity/ — the Left-Right planarity test, PlanarEmbedding, Kuratowski
//	             subgraph extraction
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╳ │        K4: planar — the rotation system it returns
//	    C───D        satisfies V − E + F = 2 on its component.
//
// Dive into the planarity package docs for the full phase-by-phase
// description of the algorithm and its invariants.
//
//	go get github.com/katalvlaran/planar
package planar
