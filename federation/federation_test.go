package federation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
)

func box(lo1, hi1, lo2, hi2 int32) *dbm.DBM {
	d := dbm.New(3)
	d.Constrain(0, 1, bound.Encode(-lo1, false))
	d.Constrain(1, 0, bound.Encode(hi1, false))
	d.Constrain(0, 2, bound.Encode(-lo2, false))
	d.Constrain(2, 0, bound.Encode(hi2, false))
	return d
}

// TestSubtractionDisjointness mirrors spec.md §8 scenario 2.
func TestSubtractionDisjointness(t *testing.T) {
	f := New(3)
	f.Add(dbmstore.Wrap(box(0, 10, 0, 10)))

	g := box(3, 5, 3, 5)
	f.Subtract(g)

	require.Equal(t, 4, f.Size())

	for _, n := range f.nodes() {
		inter := n.h.Matrix().Copy()
		assert.False(t, inter.Intersection(g), "piece must be disjoint from G")
	}

	union := f.Clone()
	gf := New(3)
	gf.Add(dbmstore.Wrap(g))
	union.Union(gf)

	p := []int32{0, 4, 4}
	included := false
	for _, n := range union.nodes() {
		if n.h.Matrix().IsPointIncludedInt(p) {
			included = true
		}
	}
	assert.True(t, included, "F-G plus G must still cover a point of G")
}

func TestReduceDropsSubsets(t *testing.T) {
	f := New(3)
	f.Add(dbmstore.Wrap(box(0, 10, 0, 10)))
	f.Add(dbmstore.Wrap(box(2, 4, 2, 4)))
	f.Reduce()
	assert.Equal(t, 1, f.Size())
}

func TestConvexUnionCollapsesToOne(t *testing.T) {
	f := New(3)
	f.Add(dbmstore.Wrap(box(0, 2, 0, 2)))
	f.Add(dbmstore.Wrap(box(5, 7, 5, 7)))
	f.ConvexUnion()
	require.Equal(t, 1, f.Size())
	p := []int32{0, 4, 4}
	assert.True(t, f.nodes()[0].h.Matrix().IsPointIncludedInt(p))
}

func TestMergeReduceRestricted(t *testing.T) {
	f := New(3)
	f.Add(dbmstore.Wrap(box(0, 5, 0, 10)))
	f.Add(dbmstore.Wrap(box(5, 10, 0, 10)))
	f.MergeReduce(0, Restricted)
	assert.Equal(t, 1, f.Size())
}

func TestDelayQueries(t *testing.T) {
	f := New(3)
	f.Add(dbmstore.Wrap(box(5, 10, 5, 10)))

	d, err := f.GetMinDelay([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 5, d, 1e-4)

	d2, err := f.GetMaxDelay([]float64{0, 7, 7})
	require.NoError(t, err)
	assert.InDelta(t, 3, d2, 1e-4)
}
