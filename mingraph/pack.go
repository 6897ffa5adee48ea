// File: pack.go
// Role: the little-endian 32-bit packed minimal-graph stream — word 0 is a
// header (tag, dimension, flags); the
// remaining words hold the bit matrix (when minimized) followed by the
// constraint values, either one per 32-bit word or two per word when every
// essential value fits in 16 bits (try16).

package mingraph

import (
	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

type header struct {
	dim      int
	try16    bool
	minimize bool
}

// encodeHeader packs word 0 per spec.md §6: the packing variant (plain,
// minimized, try16 or minimized+try16 — see tag.go) in bits 0..2, dimension
// in bits 3..18, and the (currently unused, reserved for future callers) 13
// flag bits in 19..31.
func encodeHeader(h header) uint32 {
	return uint32(tagOf(h)) | uint32(h.dim)<<3
}

// decodeHeader reads the dimension and packing variant back out of word 0.
// try16/minimize are derived from the type tag in bits 0..2, the single
// source of truth for the packing variant; bits 19..31 are reserved and
// ignored on read.
func decodeHeader(w uint32) header {
	t := tag(w & 0x7)
	dim := int((w >> 3) & 0xFFFF)
	switch t {
	case tagMinimized:
		return header{dim: dim, minimize: true}
	case tagTry16:
		return header{dim: dim, try16: true}
	case tagMinimizedTry16:
		return header{dim: dim, minimize: true, try16: true}
	default:
		return header{dim: dim}
	}
}

func bitMatrixWords(dim int) int {
	bits := dim * dim
	return (bits + 31) / 32
}

func writeBitMatrix(bm *BitMatrix) []uint32 {
	words := make([]uint32, bitMatrixWords(bm.Dim))
	bitIdx := 0
	for i := 0; i < bm.Dim; i++ {
		for j := 0; j < bm.Dim; j++ {
			if bm.Get(i, j) {
				words[bitIdx/32] |= 1 << uint(bitIdx%32)
			}
			bitIdx++
		}
	}
	return words
}

func readBitMatrix(stream []uint32, offsetWords, dim int) *BitMatrix {
	bm := NewBitMatrix(dim)
	bitIdx := 0
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			word := stream[offsetWords+bitIdx/32]
			if word&(1<<uint(bitIdx%32)) != 0 {
				bm.Set(i, j)
			}
			bitIdx++
		}
	}
	return bm
}

// WriteToMinDBMWithOffset packs d into a 32-bit stream starting at
// offsetWords, so that callers may prepend their own header words. If
// minimize is true only essential edges (per Analyze) are included; else
// every off-diagonal edge is included. If try16 is true and every included
// value fits in a signed 16-bit range, values are packed two per word.
func WriteToMinDBMWithOffset(d *dbm.DBM, minimize, try16 bool, offsetWords int) []uint32 {
	n := d.Dim()
	var bm *BitMatrix
	if minimize {
		bm, _ = Analyze(d)
	} else {
		bm = NewBitMatrix(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					bm.Set(i, j)
				}
			}
		}
	}

	values := make([]bound.Bound, 0, bm.Count())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && bm.Get(i, j) {
				values = append(values, d.At(i, j))
			}
		}
	}

	actualTry16 := try16
	if actualTry16 {
		for _, v := range values {
			if val, _ := v.Decode(); val >= 1<<14 || val < -(1<<14) {
				actualTry16 = false
				break
			}
		}
	}

	h := header{dim: n, try16: actualTry16, minimize: minimize}
	out := make([]uint32, offsetWords, offsetWords+1)
	out = append(out, encodeHeader(h))

	if minimize {
		out = append(out, writeBitMatrix(bm)...)
	}

	if actualTry16 {
		for i := 0; i < len(values); i += 2 {
			w := uint32(uint16(int16(values[i])))
			if i+1 < len(values) {
				w |= uint32(uint16(int16(values[i+1]))) << 16
			}
			out = append(out, w)
		}
	} else {
		for _, v := range values {
			out = append(out, uint32(int32(v)))
		}
	}

	return out
}

// ReadFromMinDBM decodes a stream produced by WriteToMinDBMWithOffset,
// starting at offsetWords, and returns a fully-closed DBM.
func ReadFromMinDBM(stream []uint32, offsetWords int) *dbm.DBM {
	h := decodeHeader(stream[offsetWords])
	n := h.dim
	d := dbm.New(n)

	valuesStart := offsetWords + 1
	var bm *BitMatrix
	if h.minimize {
		bm = readBitMatrix(stream, valuesStart, n)
		valuesStart += bitMatrixWords(n)
	} else {
		bm = NewBitMatrix(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					bm.Set(i, j)
				}
			}
		}
	}

	count := bm.Count()
	values := make([]bound.Bound, 0, count)
	if h.try16 {
		for i := 0; i < count; i += 2 {
			w := stream[valuesStart+i/2]
			values = append(values, bound.Bound(int16(uint16(w))))
			if i+1 < count {
				values = append(values, bound.Bound(int16(uint16(w>>16))))
			}
		}
	} else {
		for i := 0; i < count; i++ {
			values = append(values, bound.Bound(int32(stream[valuesStart+i])))
		}
	}

	touched := make([]bool, n)
	vi := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && bm.Get(i, j) {
				d.Set(i, j, values[vi])
				vi++
				touched[i] = true
				touched[j] = true
			}
		}
	}
	d.CloseX(touched)
	return d
}
