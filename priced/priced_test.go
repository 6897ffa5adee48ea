package priced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

// TestInfimumNoRates mirrors spec.md §8 scenario 5.
func TestInfimumNoRates(t *testing.T) {
	d := dbm.New(3)
	d.Constrain(1, 0, bound.Encode(5, false))
	d.Constrain(2, 0, bound.Encode(5, false))
	require.False(t, d.IsEmpty())

	p, err := New(d, []int32{0, 0, 0}, 7)
	require.NoError(t, err)

	inf, err := p.Infimum()
	require.NoError(t, err)
	assert.EqualValues(t, 7, inf)
}

// TestInfimumSimpleRate mirrors spec.md §8 scenario 6, n=2, D = {2<=x<=5}.
func TestInfimumSimpleRate(t *testing.T) {
	d := dbm.New(2)
	d.Constrain(0, 1, bound.Encode(-2, false)) // x >= 2
	d.Constrain(1, 0, bound.Encode(5, false))  // x <= 5
	require.False(t, d.IsEmpty())

	pPos, err := New(d.Copy(), []int32{0, 1}, 0)
	require.NoError(t, err)
	inf, err := pPos.Infimum()
	require.NoError(t, err)
	assert.EqualValues(t, 2, inf)

	val, err := pPos.InfimumValuation()
	require.NoError(t, err)
	assert.EqualValues(t, 2, val[1])

	pNeg, err := New(d.Copy(), []int32{0, -1}, 0)
	require.NoError(t, err)
	infNeg, err := pNeg.Infimum()
	require.NoError(t, err)
	assert.EqualValues(t, -5, infNeg)

	val2, err := pNeg.InfimumValuation()
	require.NoError(t, err)
	assert.EqualValues(t, 5, val2[1])
}

// TestInfimumUnbounded mirrors spec.md §8 scenario 6's unbounded case: {x>=2}
// with r=(0,-1) is unbounded below.
func TestInfimumUnbounded(t *testing.T) {
	d := dbm.New(2)
	d.Constrain(0, 1, bound.Encode(-2, false)) // x >= 2, x unbounded above

	p, err := New(d, []int32{0, -1}, 0)
	require.NoError(t, err)

	_, err = p.Infimum()
	assert.ErrorIs(t, err, ErrUnbounded)

	_, err = p.InfimumValuation()
	assert.ErrorIs(t, err, ErrUnbounded)
}

func TestAssertTreeInvariantsHoldAfterSimplex(t *testing.T) {
	d := dbm.New(3)
	d.Constrain(1, 0, bound.Encode(10, false))
	d.Constrain(2, 0, bound.Encode(10, false))
	d.Constrain(0, 1, bound.Encode(-2, false))
	d.Constrain(0, 2, bound.Encode(-3, false))
	require.False(t, d.IsEmpty())

	rates := []int32{0, -1, -2}
	tree := infimumNetSimplex(d, rates)
	assert.True(t, assertTreeInvariants(d, rates, tree))
}
