package dbm

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
)

func TestDenseDecodesBounds(t *testing.T) {
	d := New(2)
	require.True(t, d.Constrain(1, 0, bound.Encode(5, false)))
	require.True(t, d.Constrain(0, 1, bound.Encode(-2, false)))

	got, err := d.Dense()
	require.NoError(t, err)

	want := [][]float64{
		{0, -2},
		{5, 0},
	}
	for i := range want {
		for j := range want[i] {
			if diff := cmp.Diff(want[i][j], got.At(i, j)); diff != "" {
				t.Errorf("Dense()[%d][%d] mismatch (-want +got):\n%s", i, j, diff)
			}
		}
	}
}

func TestDenseUnconstrainedIsInfinity(t *testing.T) {
	d := New(2)
	got, err := d.Dense()
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.At(1, 0), 1))
}

func TestDenseEmptyZoneErrors(t *testing.T) {
	d := New(2)
	require.True(t, d.Constrain(0, 1, bound.Encode(-5, false))) // x1 >= 5
	require.False(t, d.Constrain(1, 0, bound.Encode(2, false))) // x1 <= 2, contradicts
	require.True(t, d.IsEmpty())

	_, err := d.Dense()
	assert.ErrorIs(t, err, ErrEmptyZone)
}
