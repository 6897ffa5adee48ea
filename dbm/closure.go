// File: closure.go
// Role: construction and the Floyd–Warshall-family closure operations.
// Determinism: fixed i→k→j loop order, matching the original dbm_close.

package dbm

import "github.com/zonelib/udbm/bound"

// New allocates a DBM of the given dimension, initialized to the
// unconstrained zone (equivalent to Init). dim must be >= 1 (the reference
// clock alone is dimension 1).
func New(dim int) *DBM {
	d := alloc(dim)
	d.init()
	return d
}

// Init resets the receiver to the unconstrained zone: every clock may take
// any non-negative value. D[i][0] = +∞ for i>0, D[0][j] = ≤0 for j>0, and
// the diagonal is ≤0. Complexity: O(n^2).
func (d *DBM) Init(dim int) *DBM {
	*d = *alloc(dim)
	d.init()
	return d
}

// Zero allocates a DBM representing the single-point zone where every clock
// equals 0. Complexity: O(n^2).
func Zero(dim int) *DBM {
	d := alloc(dim)
	d.zero()
	return d
}

func alloc(dim int) *DBM {
	if dim < 1 {
		panic(ErrBadDimension)
	}
	return &DBM{dim: dim, m: make([]bound.Bound, dim*dim)}
}

func (d *DBM) init() {
	d.empty = false
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			switch {
			case i == j:
				d.m[d.idx(i, j)] = bound.LEZero
			case i == 0:
				d.m[d.idx(i, j)] = bound.LEZero
			default:
				d.m[d.idx(i, j)] = bound.Infinity
			}
		}
	}
}

func (d *DBM) zero() {
	d.empty = false
	for i := range d.m {
		d.m[i] = bound.LEZero
	}
}

// Close performs full Floyd–Warshall tightening in O(n^3) and reports
// whether the result is non-empty. On success the receiver is left in
// canonical closed form; on failure (a strictly negative diagonal entry
// appears) the receiver is marked empty and its matrix contents are no
// longer meaningful.
func (d *DBM) Close() bool {
	n := d.dim
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := d.m[d.idx(i, k)]
			if dik == bound.Infinity {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := d.m[d.idx(k, j)]
				if dkj == bound.Infinity {
					continue
				}
				via := dik.Add(dkj)
				ij := d.idx(i, j)
				if via < d.m[ij] {
					d.m[ij] = via
				}
			}
		}
	}
	return d.checkConsistent()
}

// checkConsistent scans the diagonal for a strictly-negative entry (the
// emptiness test) and marks the DBM empty if found.
func (d *DBM) checkConsistent() bool {
	for i := 0; i < d.dim; i++ {
		if d.m[d.idx(i, i)] < bound.LEZero {
			d.empty = true
			return false
		}
	}
	return true
}

// Close1 re-closes after changes restricted to row/column k. O(n^2).
// Precondition: every other entry of the matrix is already closed.
func (d *DBM) Close1(k int) bool {
	n := d.dim
	for i := 0; i < n; i++ {
		dik := d.m[d.idx(i, k)]
		if dik == bound.Infinity {
			continue
		}
		for j := 0; j < n; j++ {
			dkj := d.m[d.idx(k, j)]
			if dkj == bound.Infinity {
				continue
			}
			via := dik.Add(dkj)
			ij := d.idx(i, j)
			if via < d.m[ij] {
				d.m[ij] = via
			}
		}
	}
	return d.checkConsistent()
}

// CloseIJ re-closes after a single tightening of D[i][j]. O(n^2).
// Valid only when no other entry has changed since the last closure.
func (d *DBM) CloseIJ(i, j int) bool {
	n := d.dim
	dij := d.m[d.idx(i, j)]
	for k := 0; k < n; k++ {
		// Path i -> j -> k tightening D[i][k].
		djk := d.m[d.idx(j, k)]
		if djk != bound.Infinity {
			via := dij.Add(djk)
			ik := d.idx(i, k)
			if via < d.m[ik] {
				d.m[ik] = via
			}
		}
		// Path k -> i -> j tightening D[k][j].
		dki := d.m[d.idx(k, i)]
		if dki != bound.Infinity {
			via := dki.Add(dij)
			kj := d.idx(k, j)
			if via < d.m[kj] {
				d.m[kj] = via
			}
		}
	}
	// Finally close every pair through the (possibly updated) row i / col j.
	for a := 0; a < n; a++ {
		dai := d.m[d.idx(a, i)]
		if dai == bound.Infinity {
			continue
		}
		for b := 0; b < n; b++ {
			djb := d.m[d.idx(j, b)]
			if djb == bound.Infinity {
				continue
			}
			via := dai.Add(dij).Add(djb)
			ab := d.idx(a, b)
			if via < d.m[ab] {
				d.m[ab] = via
			}
		}
	}
	return d.checkConsistent()
}

// CloseX re-closes when only the clocks marked in touched have had their
// rows/columns modified. O(n^2 * |touched|).
func (d *DBM) CloseX(touched []bool) bool {
	for k, isTouched := range touched {
		if isTouched {
			if ok := d.Close1(k); !ok {
				return false
			}
		}
	}
	return d.checkConsistent()
}

// CloseLU performs a specialized closure skipping rows k where both
// lower[k] and upper[k] are -∞ (i.e. extrapolation will erase that clock's
// constraints anyway), used after LU extrapolation. lower/upper are
// per-clock ceilings indexed like the matrix (index 0 is unused).
func (d *DBM) CloseLU(lower, upper []int32) bool {
	n := d.dim
	for k := 0; k < n; k++ {
		if k > 0 && lower[k] < 0 && upper[k] < 0 {
			continue
		}
		for i := 0; i < n; i++ {
			dik := d.m[d.idx(i, k)]
			if dik == bound.Infinity {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := d.m[d.idx(k, j)]
				if dkj == bound.Infinity {
					continue
				}
				via := dik.Add(dkj)
				ij := d.idx(i, j)
				if via < d.m[ij] {
					d.m[ij] = via
				}
			}
		}
	}
	return d.checkConsistent()
}
