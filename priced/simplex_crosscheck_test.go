package priced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

// TestSimplexPotentialsMatchIndependentShortestPath cross-checks the dual
// network simplex's final node potentials against gonum's Bellman-Ford on
// an independently built graph holding the zone's upper-bound constraints
// (one edge i→0 per clock). Two clocks are bounded only against the
// reference clock (no edge between them), so the spanning tree needs no
// pivoting and every potential must equal the single-hop distance gonum
// computes along that same edge — the
// simplest case in which an external shortest-path algorithm and the
// simplex's tree-potential bookkeeping are required to agree exactly.
func TestSimplexPotentialsMatchIndependentShortestPath(t *testing.T) {
	d := dbm.New(3)
	require.True(t, d.Constrain(1, 0, bound.Encode(10, false))) // x <= 10
	require.True(t, d.Constrain(2, 0, bound.Encode(8, false)))  // y <= 8
	require.False(t, d.IsEmpty())

	rates := []int32{0, -1, -1} // maximize both clocks: both arcs outbound
	tree := infimumNetSimplex(d, rates)
	require.True(t, assertTreeInvariants(d, rates, tree))

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < d.Dim(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 1; i < d.Dim(); i++ {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(0), W: float64(d.At(i, 0).Value())})
	}

	for i := 1; i < d.Dim(); i++ {
		shortest, ok := path.BellmanFordFrom(simple.Node(i), g)
		require.True(t, ok)
		_, dist := shortest.To(0)
		assert.Equal(t, int32(dist), tree[i].potential,
			"clock %d: simplex potential should match the independently computed shortest path to the reference clock", i)
	}
}
