// File: constrain.go
// Role: tighten individual or batched constraints and re-close.

package dbm

import "github.com/zonelib/udbm/bound"

// Constrain tightens D[i][j] to min(D[i][j], c) and re-closes via CloseIJ.
// Returns false (and marks the DBM empty) if the negation of the new bound
// exceeds D[j][i], i.e. the zone becomes empty.
func (d *DBM) Constrain(i, j int, c bound.Bound) bool {
	if d.empty {
		return false
	}
	if c >= d.m[d.idx(i, j)] {
		return true // no tightening possible, still consistent
	}
	if c.Negate() > d.m[d.idx(j, i)] {
		d.empty = true
		return false
	}
	d.m[d.idx(i, j)] = c
	return d.CloseIJ(i, j)
}

// ConstrainMany tightens every constraint in cs, then performs a single
// CloseX pass over the set of touched clocks. Returns false if any single
// tightening makes the zone empty (short-circuiting further work).
func (d *DBM) ConstrainMany(cs []Constraint) bool {
	if d.empty {
		return false
	}
	touched := make([]bool, d.dim)
	for _, c := range cs {
		if c.Bound >= d.m[d.idx(c.I, c.J)] {
			continue
		}
		if c.Bound.Negate() > d.m[d.idx(c.J, c.I)] {
			d.empty = true
			return false
		}
		d.m[d.idx(c.I, c.J)] = c.Bound
		touched[c.I] = true
		touched[c.J] = true
	}
	return d.CloseX(touched)
}
