package dbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
)

// TestZeroAndInit mirrors spec.md §8 scenario 1.
func TestZeroAndInit(t *testing.T) {
	z := Zero(3)
	require.True(t, z.HasZero())
	assert.True(t, z.IsPointIncludedInt([]int32{0, 0, 0}))
	assert.False(t, z.IsPointIncludedInt([]int32{0, 1, 0}))

	in := New(3)
	assert.True(t, in.IsUnbounded())
	assert.True(t, in.IsPointIncludedInt([]int32{0, 0, 0}))
	assert.True(t, in.IsPointIncludedInt([]int32{1000, 1000, 1000}))

	rel := z.Relation(in)
	assert.Equal(t, Subset, rel)
}

func TestCloseIdempotent(t *testing.T) {
	d := New(3)
	d.Constrain(1, 0, bound.Encode(10, false))
	d.Constrain(2, 0, bound.Encode(10, false))
	require.True(t, d.Close())
	snapshot := d.Copy()
	require.True(t, d.Close())
	assert.True(t, d.Equal(snapshot))
}

func TestUpIdempotentAndUnbounded(t *testing.T) {
	d := New(3)
	d.Constrain(1, 0, bound.Encode(5, false))
	d.Close()
	d.Up()
	first := d.Copy()
	d.Up()
	assert.True(t, d.Equal(first))
	assert.True(t, d.IsUnbounded())
}

func TestDownIdempotent(t *testing.T) {
	d := New(3)
	d.Constrain(0, 1, bound.Encode(-2, false))
	d.Close()
	d.Down()
	first := d.Copy()
	d.Down()
	assert.True(t, d.Equal(first))
}

// widenersContainOriginal asserts D ⊆ O(D) for the monotone-widener family.
func TestMonotoneWideners(t *testing.T) {
	fresh := func() *DBM {
		d := New(3)
		d.Constrain(1, 0, bound.Encode(5, true))
		d.Constrain(0, 1, bound.Encode(-1, false))
		d.Close()
		return d
	}

	d1 := fresh()
	before := d1.Copy()
	d1.Up()
	assert.Equal(t, Subset, before.Relation(d1))

	d2 := fresh()
	before2 := d2.Copy()
	d2.FreeClock(1)
	assert.Equal(t, Subset, before2.Relation(d2))

	d3 := fresh()
	before3 := d3.Copy()
	d3.RelaxUp()
	assert.Equal(t, Subset, before3.Relation(d3))
}

func TestIntersectionCommutativeAssociative(t *testing.T) {
	a := New(3)
	a.Constrain(1, 0, bound.Encode(10, false))
	a.Close()
	b := New(3)
	b.Constrain(1, 0, bound.Encode(5, false))
	b.Close()
	c := New(3)
	c.Constrain(0, 1, bound.Encode(-1, false))
	c.Close()

	ab := a.Copy()
	ab.Intersection(b)
	ba := b.Copy()
	ba.Intersection(a)
	assert.True(t, ab.Equal(ba))

	abC := ab.Copy()
	abC.Intersection(c)
	bcA := b.Copy()
	bcA.Intersection(c)
	bcA.Intersection(a)
	assert.True(t, abC.Equal(bcA))
}

func TestConvexUnionCommutative(t *testing.T) {
	a := New(3)
	a.Constrain(1, 0, bound.Encode(10, false))
	a.Close()
	b := New(3)
	b.Constrain(1, 0, bound.Encode(5, false))
	b.Close()

	ab := a.Copy()
	ab.ConvexUnion(b)
	ba := b.Copy()
	ba.ConvexUnion(a)
	assert.True(t, ab.Equal(ba))
}

func TestRelaxIdempotentAndWidens(t *testing.T) {
	d := New(3)
	d.Constrain(1, 0, bound.Encode(5, true))
	d.Close()
	before := d.Copy()
	d.RelaxUp()
	once := d.Copy()
	d.RelaxUp()
	assert.True(t, d.Equal(once))
	assert.Equal(t, Subset, before.Relation(d))
}

func TestConstrainMakesEmpty(t *testing.T) {
	d := New(2)
	ok := d.Constrain(1, 0, bound.Encode(5, false))
	require.True(t, ok)
	ok = d.Constrain(0, 1, bound.Encode(-10, false))
	assert.False(t, ok)
	assert.True(t, d.IsEmpty())
}

func TestPointInclusionEpsilonDocumentedContract(t *testing.T) {
	// Frozen contract (SPEC_FULL.md §7): the epsilon-tolerant real
	// comparison treats a value exactly at the strict boundary as
	// satisfying "< bound" within epsilon, even though the same point
	// fails the exact integer check. Do not silently tighten this.
	assert.True(t, isLT(3-1e-9, 3))
	assert.False(t, (3 - 1e-9) < 3-epsilon-1e-9)
}
