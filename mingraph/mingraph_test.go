package mingraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

// TestAnalyzeThreeClock mirrors spec.md §8 scenario 3: 0≤x, 0≤y, x-y=3, x≤10.
func TestAnalyzeThreeClock(t *testing.T) {
	d := dbm.New(3) // 0=ref, 1=x, 2=y
	d.Constrain(0, 1, bound.LEZero)
	d.Constrain(0, 2, bound.LEZero)
	d.Constrain(1, 2, bound.Encode(3, false))
	d.Constrain(2, 1, bound.Encode(-3, false))
	d.Constrain(1, 0, bound.Encode(10, false))
	require.True(t, d.Close())

	bm, count := Analyze(d)
	assert.Equal(t, 4, count)
	assert.True(t, bm.Get(0, 1))
	assert.True(t, bm.Get(0, 2))
	assert.True(t, bm.Get(1, 2))
	assert.True(t, bm.Get(2, 1))
	assert.False(t, bm.Get(1, 0)) // implied by (1,2)+(2,0)
}

func TestPackedRoundTrip(t *testing.T) {
	d := dbm.New(3)
	d.Constrain(1, 0, bound.Encode(10, false))
	d.Constrain(2, 0, bound.Encode(7, true))
	d.Constrain(0, 1, bound.Encode(-1, false))
	require.True(t, d.Close())

	for _, minimize := range []bool{true, false} {
		for _, try16 := range []bool{true, false} {
			stream := WriteToMinDBMWithOffset(d, minimize, try16, 0)
			got := ReadFromMinDBM(stream, 0)
			assert.True(t, d.Equal(got), "minimize=%v try16=%v", minimize, try16)
		}
	}
}

func TestPackedRoundTripWithOffset(t *testing.T) {
	d := dbm.New(2)
	d.Constrain(1, 0, bound.Encode(4, false))
	require.True(t, d.Close())

	stream := WriteToMinDBMWithOffset(d, true, false, 2)
	stream[0], stream[1] = 0xCAFE, 0xBEEF // caller-owned header words
	got := ReadFromMinDBM(stream, 2)
	assert.True(t, d.Equal(got))
}

func TestRelationWithMinDBM(t *testing.T) {
	d := dbm.New(2)
	d.Constrain(1, 0, bound.Encode(4, false))
	require.True(t, d.Close())

	stream := WriteToMinDBMWithOffset(d, true, false, 0)
	assert.Equal(t, dbm.Equal, RelationWithMinDBM(d, stream, 0))
}

func TestFormatReportsPackingTag(t *testing.T) {
	d := dbm.New(2)
	d.Constrain(1, 0, bound.Encode(4, false))
	require.True(t, d.Close())

	minimized := WriteToMinDBMWithOffset(d, true, false, 0)
	assert.Equal(t, "mingraph(dim=2, minimized)", Format(minimized, 0))

	plain := WriteToMinDBMWithOffset(d, false, true, 0)
	assert.Equal(t, "mingraph(dim=2, try16)", Format(plain, 0))
}
