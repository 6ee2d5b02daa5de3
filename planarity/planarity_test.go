// Package planarity_test verifies the Left-Right planarity test against
// known planar and non-planar graphs, the structural invariants of the
// embeddings it produces, and the agreement between the explicit-stack
// and recursive phase implementations.
package planarity_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/planarity"
)

// completeGraph builds K_n with vertex IDs N1..Nn.
func completeGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", j), 0)
		}
	}

	return g
}

// completeBipartite builds K_{m,n} with parts A1..Am and B1..Bn.
func completeBipartite(m, n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			_, _ = g.AddEdge(fmt.Sprintf("A%d", i), fmt.Sprintf("B%d", j), 0)
		}
	}

	return g
}

// pathGraph builds a path P0−P1−…−P(n-1) with zero-padded IDs so the
// dense index order matches the path order.
func pathGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(pathID(i), pathID(i+1), 0)
	}

	return g
}

func pathID(i int) string { return fmt.Sprintf("P%05d", i) }

// gridGraph builds an m×n grid, planar by construction.
func gridGraph(m, n int) *core.Graph {
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("G%d-%d", r, c) }
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_, _ = g.AddEdge(id(r, c), id(r, c+1), 0)
			}
			if r+1 < m {
				_, _ = g.AddEdge(id(r, c), id(r+1, c), 0)
			}
		}
	}

	return g
}

// petersenGraph builds the Petersen graph (non-planar, not via the
// edge-count fast path: 15 ≤ 3·10−6).
func petersenGraph() *core.Graph {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("O%d", i), fmt.Sprintf("O%d", (i+1)%5), 0) // outer cycle
		_, _ = g.AddEdge(fmt.Sprintf("I%d", i), fmt.Sprintf("I%d", (i+2)%5), 0) // inner pentagram
		_, _ = g.AddEdge(fmt.Sprintf("O%d", i), fmt.Sprintf("I%d", i), 0)       // spokes
	}

	return g
}

func TestCheckPlanarity_NilGraph(t *testing.T) {
	res, err := planarity.CheckPlanarity(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, planarity.ErrNilGraph)

	_, err = planarity.IsPlanar(nil)
	assert.ErrorIs(t, err, planarity.ErrNilGraph)
}

func TestIsPlanar_KnownGraphs(t *testing.T) {
	cases := []struct {
		name   string
		graph  *core.Graph
		planar bool
	}{
		{"empty", core.NewGraph(), true},
		{"single vertex", vertexOnly("X"), true},
		{"single edge", completeGraph(2), true},
		{"triangle", completeGraph(3), true},
		{"K4", completeGraph(4), true},
		{"K5", completeGraph(5), false},
		{"K6", completeGraph(6), false},
		{"K2,3", completeBipartite(2, 3), true},
		{"K3,3", completeBipartite(3, 3), false},
		{"K3,4", completeBipartite(3, 4), false},
		{"path", pathGraph(100), true},
		{"grid 5x5", gridGraph(5, 5), true},
		{"Petersen", petersenGraph(), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := planarity.IsPlanar(tc.graph)
			require.NoError(t, err)
			assert.Equal(t, tc.planar, got)
		})
	}
}

func TestCheckPlanarity_EmbeddingAlwaysValid(t *testing.T) {
	graphs := map[string]*core.Graph{
		"triangle":     completeGraph(3),
		"K4":           completeGraph(4),
		"K2,3":         completeBipartite(2, 3),
		"path":         pathGraph(50),
		"grid 6x4":     gridGraph(6, 4),
		"disconnected": disconnectedGraph(),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			res, err := planarity.CheckPlanarity(g)
			require.NoError(t, err)
			require.True(t, res.Planar)
			require.NotNil(t, res.Embedding)
			assert.NoError(t, res.Embedding.CheckStructure())
			assert.Nil(t, res.Counterexample)

			// The embedding covers exactly the input's nodes and edges.
			assert.Equal(t, g.Vertices(), res.Embedding.Nodes())
			for _, e := range g.Edges() {
				assert.True(t, res.Embedding.HasEdge(e.From, e.To))
				assert.True(t, res.Embedding.HasEdge(e.To, e.From))
			}
		})
	}
}

func TestCheckPlanarity_K4Faces(t *testing.T) {
	res, err := planarity.CheckPlanarity(completeGraph(4))
	require.NoError(t, err)
	require.True(t, res.Planar)
	emb := res.Embedding
	require.NoError(t, emb.CheckStructure())

	// Every node has 3 distinct neighbors.
	for _, v := range emb.Nodes() {
		nbrs, err := emb.NeighborsCW(v)
		require.NoError(t, err)
		assert.Len(t, nbrs, 3)
		assert.NotContains(t, nbrs, v)
	}

	// K4 has 4 faces (4 − 6 + 4 = 2), all of them triangles: the face
	// boundary lengths must sum to 2·E = 12.
	sizes := faceSizes(t, emb)
	assert.Len(t, sizes, 4)
	for _, size := range sizes {
		assert.Equal(t, 3, size)
	}
}

func TestCheckPlanarity_Path100(t *testing.T) {
	const n = 100
	res, err := planarity.CheckPlanarity(pathGraph(n))
	require.NoError(t, err)
	require.True(t, res.Planar)
	emb := res.Embedding

	for i := 1; i < n-1; i++ {
		nbrs, err := emb.NeighborsCW(pathID(i))
		require.NoError(t, err)
		// Internal node: exactly its two path neighbors, either order.
		assert.ElementsMatch(t, []string{pathID(i - 1), pathID(i + 1)}, nbrs)
	}
	for _, end := range []string{pathID(0), pathID(n - 1)} {
		nbrs, err := emb.NeighborsCW(end)
		require.NoError(t, err)
		assert.Len(t, nbrs, 1)
	}
}

func TestCheckPlanarity_IsolatedNode(t *testing.T) {
	res, err := planarity.CheckPlanarity(vertexOnly("X"))
	require.NoError(t, err)
	require.True(t, res.Planar)
	emb := res.Embedding

	assert.Equal(t, []string{"X"}, emb.Nodes())
	nbrs, err := emb.NeighborsCW("X")
	require.NoError(t, err)
	assert.Empty(t, nbrs)
	assert.NoError(t, emb.CheckStructure())
}

func TestCheckPlanarity_SelfLoopsStripped(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "A", 0)

	res, err := planarity.CheckPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.Planar)
	assert.False(t, res.Embedding.HasEdge("A", "A"))
	assert.True(t, res.Embedding.HasEdge("A", "B"))
	// The caller's graph keeps its loop.
	assert.True(t, g.HasEdge("A", "A"))
}

func TestCheckPlanarity_DirectedInputTreatedUndirected(t *testing.T) {
	// Anti-parallel directed arcs collapse to one undirected edge.
	g := core.NewGraph(core.WithDirected(true))
	for i := 1; i <= 5; i++ {
		for j := 1; j <= 5; j++ {
			if i != j {
				_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", j), 0)
			}
		}
	}

	got, err := planarity.IsPlanar(g) // underlying simple graph is K5
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCheckPlanarity_EulerFastPath(t *testing.T) {
	// K5 exceeds the 3n−6 bound (10 > 9): rejected before any DFS.
	got, err := planarity.IsPlanar(completeGraph(5))
	require.NoError(t, err)
	assert.False(t, got)

	// At n ≤ 2 the bound does not apply.
	got, err = planarity.IsPlanar(completeGraph(2))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCheckPlanarity_DeepPathNoOverflow(t *testing.T) {
	// A 50k-node path would blow a bounded call stack if any phase
	// recursed; the explicit work-stack variants must not care.
	res, err := planarity.CheckPlanarity(pathGraph(50000))
	require.NoError(t, err)
	assert.True(t, res.Planar)
}

func TestRecursiveAgreesWithIterative(t *testing.T) {
	graphs := map[string]*core.Graph{
		"K4":           completeGraph(4),
		"K5":           completeGraph(5),
		"K3,3":         completeBipartite(3, 3),
		"K2,3":         completeBipartite(2, 3),
		"grid 4x5":     gridGraph(4, 5),
		"path":         pathGraph(64),
		"Petersen":     petersenGraph(),
		"disconnected": disconnectedGraph(),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			iter, err := planarity.CheckPlanarity(g)
			require.NoError(t, err)
			rec, err := planarity.CheckPlanarity(g, planarity.WithRecursion())
			require.NoError(t, err)

			require.Equal(t, iter.Planar, rec.Planar)
			if !iter.Planar {
				return
			}
			// Identical final rotation systems, node by node.
			iterData, err := iter.Embedding.GetData()
			require.NoError(t, err)
			recData, err := rec.Embedding.GetData()
			require.NoError(t, err)
			assert.Equal(t, iterData, recData)
		})
	}
}

func TestEmbedding_RoundTrip(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"K4":       completeGraph(4),
		"grid 3x3": gridGraph(3, 3),
		"path":     pathGraph(10),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := planarity.CheckPlanarity(g)
			require.NoError(t, err)
			require.True(t, res.Planar)

			data, err := res.Embedding.GetData()
			require.NoError(t, err)

			rebuilt := planarity.NewPlanarEmbedding()
			require.NoError(t, rebuilt.SetData(data))
			require.NoError(t, rebuilt.CheckStructure())

			data2, err := rebuilt.GetData()
			require.NoError(t, err)
			assert.Equal(t, data, data2)
		})
	}
}

func TestCheckPlanarity_WithCounterexample(t *testing.T) {
	res, err := planarity.CheckPlanarity(completeGraph(5), planarity.WithCounterexample())
	require.NoError(t, err)
	require.False(t, res.Planar)
	require.NotNil(t, res.Counterexample)
	assert.Nil(t, res.Embedding)
	// K5 is already edge-minimal: the certificate is K5 itself.
	assert.Equal(t, 10, res.Counterexample.EdgeCount())
}

func TestCheckPlanarity_ConcurrentChecks(t *testing.T) {
	shared := gridGraph(6, 6)
	var wg sync.WaitGroup
	wg.Add(16)
	for i := 0; i < 16; i++ {
		go func(nonPlanar bool) {
			defer wg.Done()
			if nonPlanar {
				got, err := planarity.IsPlanar(petersenGraph())
				assert.NoError(t, err)
				assert.False(t, got)

				return
			}
			got, err := planarity.IsPlanar(shared)
			assert.NoError(t, err)
			assert.True(t, got)
		}(i%2 == 0)
	}
	wg.Wait()
}

// vertexOnly builds a graph holding a single isolated vertex.
func vertexOnly(id string) *core.Graph {
	g := core.NewGraph()
	_ = g.AddVertex(id)

	return g
}

// disconnectedGraph builds two components plus an isolated vertex.
func disconnectedGraph() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)
	_, _ = g.AddEdge("X", "Y", 0)
	_ = g.AddVertex("Z")

	return g
}

// faceSizes counts every face boundary of emb once and returns the
// boundary lengths.
func faceSizes(t *testing.T, emb *planarity.PlanarEmbedding) []int {
	t.Helper()
	marked := make(map[[2]string]bool)
	var sizes []int
	for _, v := range emb.Nodes() {
		nbrs, err := emb.NeighborsCW(v)
		require.NoError(t, err)
		for _, w := range nbrs {
			if marked[[2]string{v, w}] {
				continue
			}
			size := 0
			a, b := v, w
			for {
				marked[[2]string{a, b}] = true
				size++
				var err error
				a, b, err = emb.NextFaceHalfEdge(a, b)
				require.NoError(t, err)
				if a == v && b == w {
					break
				}
			}
			sizes = append(sizes, size)
		}
	}

	return sizes
}
