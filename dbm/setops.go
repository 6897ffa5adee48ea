// File: setops.go
// Role: Intersection (elementwise min, re-closed) and ConvexUnion
// (elementwise max, already closed).

package dbm

import "github.com/zonelib/udbm/bound"

// Intersection tightens the receiver to the elementwise minimum of d and
// other, i.e. the intersection of the two zones, and re-closes. Returns
// false (and marks the receiver empty) if any D[i][j]+D[j][i] pair becomes
// negative. Both operands must share dimension.
func (d *DBM) Intersection(other *DBM) bool {
	if d.dim != other.dim {
		panic(ErrDimensionMismatch)
	}
	if d.empty || other.empty {
		d.empty = true
		return false
	}
	for i := range d.m {
		if other.m[i] < d.m[i] {
			d.m[i] = other.m[i]
		}
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i == j {
				continue
			}
			if d.m[d.idx(i, j)].Add(d.m[d.idx(j, i)]) < bound.LEZero {
				d.empty = true
				return false
			}
		}
	}
	return d.Close()
}

// ConvexUnion replaces the receiver with the elementwise maximum of d and
// other — the smallest zone containing both (the convex hull, an
// over-approximation of the true union unless one contains the other). The
// result is already closed. Both operands must share dimension and be
// non-empty.
func (d *DBM) ConvexUnion(other *DBM) {
	if d.dim != other.dim {
		panic(ErrDimensionMismatch)
	}
	if other.empty {
		return
	}
	if d.empty {
		*d = *other.Copy()
		return
	}
	for i := range d.m {
		if other.m[i] > d.m[i] {
			d.m[i] = other.m[i]
		}
	}
}
