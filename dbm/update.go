// File: update.go
// Role: reset operations for clock assignment (x := v, x := y, x := x+v,
// x := y+v), each followed by the matching re-closure.

package dbm

import "github.com/zonelib/udbm/bound"

// UpdateValue sets clock k to the constant v: row/column k are rewritten as
// D[k][i] = v + D[0][i] and D[i][k] = D[i][0] - v, then re-closed via
// Close1(k). Complexity: O(n^2).
func (d *DBM) UpdateValue(k int, v int32) bool {
	if d.empty {
		return false
	}
	vb := bound.Encode(v, false)
	negvb := bound.Encode(-v, false)
	for i := 0; i < d.dim; i++ {
		if i == k {
			continue
		}
		d.m[d.idx(k, i)] = vb.Add(d.m[d.idx(0, i)])
		d.m[d.idx(i, k)] = d.m[d.idx(i, 0)].Add(negvb)
	}
	d.m[d.idx(k, k)] = bound.LEZero
	return d.Close1(k)
}

// UpdateClock assigns xi := xj by copying row/column j into row/column i,
// then re-closing via Close1(i). Complexity: O(n^2).
func (d *DBM) UpdateClock(i, j int) bool {
	if d.empty {
		return false
	}
	if i == j {
		return true
	}
	for k := 0; k < d.dim; k++ {
		if k == i {
			continue
		}
		d.m[d.idx(i, k)] = d.m[d.idx(j, k)]
		d.m[d.idx(k, i)] = d.m[d.idx(k, j)]
	}
	d.m[d.idx(i, i)] = bound.LEZero
	return d.Close1(i)
}

// UpdateIncrement shifts clock k by a constant: xk := xk + v. Row k is
// shifted by +v (xk-xi becomes xk+v-xi) and column k by -v, then re-closed
// via Close1(k). Complexity: O(n^2).
func (d *DBM) UpdateIncrement(k int, v int32) bool {
	if d.empty {
		return false
	}
	shiftPos := bound.Encode(v, false)
	shiftNeg := bound.Encode(-v, false)
	for i := 0; i < d.dim; i++ {
		if i == k {
			continue
		}
		if d.m[d.idx(k, i)] != bound.Infinity {
			d.m[d.idx(k, i)] = d.m[d.idx(k, i)].Add(shiftPos)
		}
		if d.m[d.idx(i, k)] != bound.Infinity {
			d.m[d.idx(i, k)] = d.m[d.idx(i, k)].Add(shiftNeg)
		}
	}
	return d.Close1(k)
}

// Update assigns xi := xj + v: a combination of UpdateClock and
// UpdateIncrement realized directly to avoid an intermediate closure pass.
// Complexity: O(n^2).
func (d *DBM) Update(i, j int, v int32) bool {
	if d.empty {
		return false
	}
	if i == j {
		return d.UpdateIncrement(i, v)
	}
	shiftPos := bound.Encode(v, false)
	shiftNeg := bound.Encode(-v, false)
	for k := 0; k < d.dim; k++ {
		if k == i {
			continue
		}
		djk := d.m[d.idx(j, k)]
		if djk != bound.Infinity {
			d.m[d.idx(i, k)] = djk.Add(shiftPos)
		} else {
			d.m[d.idx(i, k)] = bound.Infinity
		}
		dkj := d.m[d.idx(k, j)]
		if dkj != bound.Infinity {
			d.m[d.idx(k, i)] = dkj.Add(shiftNeg)
		} else {
			d.m[d.idx(k, i)] = bound.Infinity
		}
	}
	d.m[d.idx(i, i)] = bound.LEZero
	return d.Close1(i)
}
