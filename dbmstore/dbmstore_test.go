package dbmstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonelib/udbm/bound"
)

func TestGetCopySharedVsUnique(t *testing.T) {
	h := New(2)
	h.Clone() // refcount 2
	require.EqualValues(t, 2, h.RefCount())

	nh, mat := GetCopy(h)
	assert.NotSame(t, h, nh)
	assert.EqualValues(t, 1, nh.RefCount())
	assert.EqualValues(t, 1, h.RefCount())
	mat.Constrain(1, 0, bound.Encode(3, false))

	nh2, mat2 := GetCopy(nh)
	assert.Same(t, nh, nh2)
	assert.Same(t, mat, mat2)
}

func TestInternDeduplicates(t *testing.T) {
	defer CleanUp()
	a := New(3)
	b := New(3)
	ia := Intern(a)
	ib := Intern(b)
	assert.Same(t, ia, ib)
	assert.EqualValues(t, 2, ia.RefCount())
}

func TestOutOfRangeOnEmpty(t *testing.T) {
	h := New(2)
	_, mat := GetCopy(h)
	mat.Constrain(1, 0, bound.Encode(1, false))
	mat.Constrain(0, 1, bound.Encode(-5, false))
	require.True(t, mat.IsEmpty())

	_, err := h.PointIncludedInt([]int32{0, 0})
	assert.ErrorIs(t, err, ErrOutOfRange)
}
