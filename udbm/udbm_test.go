package udbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
	"github.com/zonelib/udbm/federation"
)

func TestConstraintsBuildRoundTrip(t *testing.T) {
	c := NewConstraints(Names{"", "x", "y"})
	d, err := c.Build("x - y < 3 && x <= 10 && y >= 2")
	require.NoError(t, err)
	require.False(t, d.IsEmpty())

	assert.Equal(t, bound.Encode(3, true), d.At(1, 2))
	assert.Equal(t, bound.Encode(10, false), d.At(1, 0))
	assert.Equal(t, bound.Encode(-2, false), d.At(0, 2))
}

func TestConstraintsUnknownClock(t *testing.T) {
	c := NewConstraints(Names{"", "x"})
	_, err := c.Build("z < 3")
	assert.ErrorIs(t, err, ErrUnknownClock)
}

func TestConstraintsSyntaxError(t *testing.T) {
	c := NewConstraints(Names{"", "x"})
	_, err := c.Parse("x <> 3")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestFormatDBMRoundTrips(t *testing.T) {
	c := NewConstraints(Names{"", "x", "y"})
	d, err := c.Build("x - y < 3 && x <= 10")
	require.NoError(t, err)

	got := FormatDBM(d, c.names)
	assert.Contains(t, got, "x - y < 3")
	assert.Contains(t, got, "x - 0 <= 10")
}

func TestFormatDBMEmptyAndTrue(t *testing.T) {
	assert.Equal(t, "true", FormatDBM(dbm.New(1), DefaultNamer()))

	d := dbm.New(2)
	require.True(t, d.Constrain(0, 1, bound.Encode(-5, false)))
	require.False(t, d.Constrain(1, 0, bound.Encode(2, false)))
	assert.Equal(t, "false", FormatDBM(d, DefaultNamer()))
}

func TestFormatFederation(t *testing.T) {
	f := federation.New(2)
	d := dbm.New(2)
	require.True(t, d.Constrain(1, 0, bound.Encode(5, false)))
	f.Add(dbmstore.Wrap(d))

	got := FormatFederation(f, DefaultNamer())
	assert.Contains(t, got, "x1 - 0 <= 5")
}
