// File: free.go
// Role: free-clock rules (§4.2.1 of the specification) — releasing lower
// and/or upper bounds on one or all clocks. Each rule already leaves the
// DBM closed; no re-closure is required.

package dbm

import "github.com/zonelib/udbm/bound"

// FreeClock releases every bound on clock k except its relation to the
// reference clock's lower bound: D[k][i] := +∞ and D[i][k] := D[i][0] for
// all i != k. Complexity: O(n).
func (d *DBM) FreeClock(k int) {
	if d.empty {
		return
	}
	for i := 0; i < d.dim; i++ {
		if i == k {
			continue
		}
		d.m[d.idx(k, i)] = bound.Infinity
		d.m[d.idx(i, k)] = d.m[d.idx(i, 0)]
	}
}

// FreeUp releases the upper bound on clock k: D[k][j] := +∞ for j != k.
func (d *DBM) FreeUp(k int) {
	if d.empty {
		return
	}
	for j := 0; j < d.dim; j++ {
		if j != k {
			d.m[d.idx(k, j)] = bound.Infinity
		}
	}
}

// FreeDown releases the lower bound on clock k: D[i][k] := D[i][0] for
// i != k.
func (d *DBM) FreeDown(k int) {
	if d.empty {
		return
	}
	for i := 0; i < d.dim; i++ {
		if i != k {
			d.m[d.idx(i, k)] = d.m[d.idx(i, 0)]
		}
	}
}

// FreeAllUp releases the upper bound of every clock: D[i][0] := +∞ for i>0.
// Equivalent to Up, kept distinct to mirror the original's API surface.
func (d *DBM) FreeAllUp() {
	d.Up()
}

// FreeAllDown releases the lower bound of every clock: D[i][j] := D[i][0]
// for all i>0, j>0, i!=j, and D[0][j] := LEZero.
func (d *DBM) FreeAllDown() {
	if d.empty {
		return
	}
	for i := 1; i < d.dim; i++ {
		di0 := d.m[d.idx(i, 0)]
		for j := 1; j < d.dim; j++ {
			if i == j {
				continue
			}
			d.m[d.idx(i, j)] = di0
		}
	}
	for j := 1; j < d.dim; j++ {
		d.m[d.idx(0, j)] = bound.LEZero
	}
}
