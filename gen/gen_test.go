package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

func fixedSource(seed int64) Option { return WithSource(rand.New(rand.NewSource(seed))) }

func TestRandomDBMNonEmpty(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d, err := RandomDBM(4, fixedSource(seed))
		require.NoError(t, err)
		assert.False(t, d.IsEmpty())
	}
}

func TestRandomDBMDimensionOne(t *testing.T) {
	d, err := RandomDBM(1, fixedSource(1))
	require.NoError(t, err)
	assert.False(t, d.IsEmpty())
	assert.Equal(t, 1, d.Dim())
}

func TestRandomDBMBadDimension(t *testing.T) {
	_, err := RandomDBM(0)
	assert.ErrorIs(t, err, ErrBadDimension)
}

func TestRandomConstrainedDBMSatisfiesConstraints(t *testing.T) {
	cs := []dbm.Constraint{{I: 0, J: 1, Bound: bound.Encode(-2, false)}}
	d, err := RandomConstrainedDBM(3, cs, fixedSource(7))
	require.NoError(t, err)
	assert.False(t, d.IsEmpty())
	assert.LessOrEqual(t, int32(d.At(0, 1)), int32(bound.Encode(-2, false)))
}

func TestRandomSupersetContainsSrc(t *testing.T) {
	src, err := RandomDBM(3, fixedSource(3))
	require.NoError(t, err)
	super := RandomSuperset(src, fixedSource(4))
	rel := src.Relation(super)
	assert.True(t, rel == dbm.Subset || rel == dbm.Equal)
}

func TestRandomSubsetIncludedInSrc(t *testing.T) {
	src, err := RandomDBM(3, fixedSource(5))
	require.NoError(t, err)
	sub, _ := RandomSubset(src, fixedSource(6))
	rel := src.Relation(sub)
	assert.True(t, rel == dbm.Superset || rel == dbm.Equal)
}

func TestRandomPointIncluded(t *testing.T) {
	d, err := RandomDBM(3, fixedSource(9))
	require.NoError(t, err)
	pt, ok := RandomPoint(d, fixedSource(10))
	require.True(t, ok)
	assert.True(t, d.IsPointIncludedInt(pt))
}

func TestRandomFederationMembers(t *testing.T) {
	f, err := RandomFederation(3, 4, fixedSource(11))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Size())
}

func TestRandomCostInfimumNoError(t *testing.T) {
	d, err := RandomDBM(3, fixedSource(13))
	require.NoError(t, err)
	p, err := RandomCost(d, 3, 5, fixedSource(14))
	require.NoError(t, err)
	_, err = p.Infimum()
	assert.NoError(t, err)
}
