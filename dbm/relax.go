// File: relax.go
// Role: weaken strict bounds that are not required to keep the zone closed
// (§4.2.2), and the reverse — strengthen zero-weak bounds to strict.

package dbm

import "github.com/zonelib/udbm/bound"

// relaxable reports whether D[i][j] may be weakened without changing the
// zone: true iff no intermediate k realizes the same value through a weak
// two-hop path, i.e. no k with D[i][k] + weak(D[k][j]) == D[i][j].
func (d *DBM) relaxable(i, j int) bool {
	dij := d.m[d.idx(i, j)]
	if dij == bound.Infinity || dij.IsWeak() {
		return false
	}
	for k := 0; k < d.dim; k++ {
		if k == i || k == j {
			continue
		}
		dik := d.m[d.idx(i, k)]
		dkj := d.m[d.idx(k, j)]
		if dik == bound.Infinity || dkj == bound.Infinity {
			continue
		}
		if dik.Add(dkj.Weaken()) == dij {
			return false
		}
	}
	return true
}

func (d *DBM) relaxEntry(i, j int) {
	if d.relaxable(i, j) {
		d.m[d.idx(i, j)] = d.m[d.idx(i, j)].Weaken()
	}
}

// RelaxUp weakens every strict upper bound D[i][0] for i>0 that is
// relaxable. D ⊆ RelaxUp(D): this only ever widens the zone.
func (d *DBM) RelaxUp() {
	if d.empty {
		return
	}
	for i := 1; i < d.dim; i++ {
		d.relaxEntry(i, 0)
	}
}

// RelaxDown weakens every strict lower bound D[0][j] for j>0 that is
// relaxable.
func (d *DBM) RelaxDown() {
	if d.empty {
		return
	}
	for j := 1; j < d.dim; j++ {
		d.relaxEntry(0, j)
	}
}

// RelaxUpClock weakens every strict bound in column k (D[i][k] for i!=k)
// that is relaxable — the "upper" constraints imposed on other clocks by k.
func (d *DBM) RelaxUpClock(k int) {
	if d.empty {
		return
	}
	for i := 0; i < d.dim; i++ {
		if i != k {
			d.relaxEntry(i, k)
		}
	}
}

// RelaxDownClock weakens every strict bound in row k (D[k][j] for j!=k)
// that is relaxable.
func (d *DBM) RelaxDownClock(k int) {
	if d.empty {
		return
	}
	for j := 0; j < d.dim; j++ {
		if j != k {
			d.relaxEntry(k, j)
		}
	}
}

// RelaxAll weakens every relaxable strict off-diagonal bound in the matrix.
func (d *DBM) RelaxAll() {
	if d.empty {
		return
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i != j {
				d.relaxEntry(i, j)
			}
		}
	}
}

// TightenDown strengthens every zero-weak lower bound D[0][j] (j>0, value
// 0, weak) to strict. May produce the empty zone if the resulting closure
// detects a negative diagonal (e.g. when some other clock is forced equal
// to the reference clock via a zero-weak cycle).
func (d *DBM) TightenDown() bool {
	if d.empty {
		return false
	}
	touched := make([]bool, d.dim)
	zero := bound.Encode(0, false)
	for j := 1; j < d.dim; j++ {
		if d.m[d.idx(0, j)] == zero {
			d.m[d.idx(0, j)] = zero.Strict()
			touched[0] = true
			touched[j] = true
		}
	}
	return d.CloseX(touched)
}

// TightenUp strengthens every zero-weak upper bound D[i][0] (i>0, value 0,
// weak) to strict.
func (d *DBM) TightenUp() bool {
	if d.empty {
		return false
	}
	touched := make([]bool, d.dim)
	zero := bound.Encode(0, false)
	for i := 1; i < d.dim; i++ {
		if d.m[d.idx(i, 0)] == zero {
			d.m[d.idx(i, 0)] = zero.Strict()
			touched[0] = true
			touched[i] = true
		}
	}
	return d.CloseX(touched)
}
