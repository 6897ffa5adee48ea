// File: timeops.go
// Role: Up (let time pass) and Down (reverse time).

package dbm

import "github.com/zonelib/udbm/bound"

// Up releases every clock's upper bound against the reference clock,
// letting time pass without limit: D[i][0] := +∞ for i>0. Already closed;
// no re-closure is needed because widening the upper bound on clock i
// cannot create a new tighter two-hop path. Complexity: O(n).
func (d *DBM) Up() {
	if d.empty {
		return
	}
	for i := 1; i < d.dim; i++ {
		d.m[d.idx(i, 0)] = bound.Infinity
	}
}

// Down reverses time: every clock may be moved back toward 0 freely, so the
// lower bound against the reference clock becomes the tightest bound
// implied by any other clock: D[0][j] := min_i D[i][j] for j>0, clamped to
// LEZero. Already closed. Complexity: O(n^2).
func (d *DBM) Down() {
	if d.empty {
		return
	}
	for j := 1; j < d.dim; j++ {
		best := bound.LEZero
		for i := 1; i < d.dim; i++ {
			if i == j {
				continue
			}
			v := d.m[d.idx(i, j)]
			if v < best {
				best = v
			}
		}
		d.m[d.idx(0, j)] = best
	}
}
