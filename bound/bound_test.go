package bound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		value  int32
		strict bool
	}{
		{"zero weak", 0, false},
		{"zero strict", 0, true},
		{"positive weak", 10, false},
		{"negative strict", -7, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Encode(tc.value, tc.strict)
			v, strict := b.Decode()
			assert.Equal(t, tc.value, v)
			assert.Equal(t, tc.strict, strict)
		})
	}
}

func TestLEZero(t *testing.T) {
	v, strict := LEZero.Decode()
	assert.Equal(t, int32(0), v)
	assert.False(t, strict)
}

func TestNegate(t *testing.T) {
	b := Encode(5, true) // < 5
	n := b.Negate()       // ≤ -5
	v, strict := n.Decode()
	assert.Equal(t, int32(-5), v)
	assert.False(t, strict)

	w := Encode(5, false) // ≤ 5
	nw := w.Negate()      // < -5
	v2, strict2 := nw.Decode()
	assert.Equal(t, int32(-5), v2)
	assert.True(t, strict2)
}

func TestWeakNegate(t *testing.T) {
	w := Encode(3, false)
	nw := w.WeakNegate()
	v, strict := nw.Decode()
	assert.Equal(t, int32(-3), v)
	assert.False(t, strict)
}

func TestAddInfinity(t *testing.T) {
	assert.Equal(t, Infinity, Infinity.Add(Encode(5, false)))
	assert.Equal(t, Infinity, Encode(5, false).Add(Infinity))
	assert.Equal(t, Infinity, Infinity.Add(Infinity))
}

func TestAddStrictnessAbsorption(t *testing.T) {
	weak := Encode(3, false)
	strict := Encode(4, true)
	sum := weak.Add(strict)
	v, s := sum.Decode()
	assert.Equal(t, int32(7), v)
	assert.True(t, s, "strict absorbs weak")

	bothWeak := weak.Add(Encode(2, false))
	v2, s2 := bothWeak.Decode()
	assert.Equal(t, int32(5), v2)
	assert.False(t, s2)
}

func TestAddCommutativeAssociative(t *testing.T) {
	a := Encode(3, true)
	b := Encode(-2, false)
	c := Encode(1, true)
	require.Equal(t, a.Add(b), b.Add(a))
	require.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
}

func TestAddSaturates(t *testing.T) {
	big := Encode(Overflow.Value()-1, false)
	sum := big.Add(big)
	assert.Equal(t, Infinity, sum)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Encode(1, false).Compare(Encode(2, false)))
	assert.Equal(t, 1, Encode(2, false).Compare(Encode(1, false)))
	assert.Equal(t, 0, Encode(2, false).Compare(Encode(2, false)))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Infinity))
	assert.True(t, Valid(Encode(100, false)))
	assert.False(t, Valid(Encode(Overflow.Value()+1, false)))
}
