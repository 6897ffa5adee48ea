// File: extrapolate.go
// Role: controlled widening against per-clock ceilings so that the
// bisimulation quotient stays finite (§4.2, extrapolation bullet).
//
// Ceiling convention: max/lower/upper are indexed like the matrix (index 0
// is unused, index k is the ceiling for clock k); a negative entry means
// "clock k is unconstrained", mirroring the "-∞" ceiling of the spec.

package dbm

import "github.com/zonelib/udbm/bound"

func lowerRawFor(ceiling int32) bound.Bound {
	if ceiling < 0 {
		return bound.LEZero
	}
	return bound.Encode(-ceiling, true)
}

// ExtrapolateMaxBounds widens the classic (non-diagonal) way: a lower bound
// D[0][j] below -max[j] is first relaxed to "< -max[j]" (or "≤ 0" for a
// negative ceiling); then a bound D[i][j] between two clocks is erased to +∞
// when it exceeds max[i] or when D[0][i] or D[0][j], as relaxed by the first
// step, is still below the negated ceiling. Upper bounds D[i][0] are left
// unchanged. D ⊆ ExtrapolateMaxBounds(D).
func (d *DBM) ExtrapolateMaxBounds(max []int32) bool {
	if d.empty {
		return false
	}
	n := d.dim
	for j := 1; j < n; j++ {
		ij := d.idx(0, j)
		if d.m[ij].Value() < -max[j] {
			d.m[ij] = lowerRawFor(max[j])
		}
	}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			if d.m[d.idx(0, i)].Value() < -max[i] ||
				d.m[d.idx(0, j)].Value() < -max[j] ||
				d.m[d.idx(i, j)].Value() > max[i] {
				d.m[d.idx(i, j)] = bound.Infinity
			}
		}
	}
	return d.Close()
}

// ExtrapolateLUBounds widens using independent lower and upper ceilings per
// clock (the Behrmann et al. LU-extrapolation): the lower-bound check on
// clock i uses max(lower[i],upper[i]), the upper-bound check on D[i][j]
// uses upper[i]. D ⊆ ExtrapolateLUBounds(D).
func (d *DBM) ExtrapolateLUBounds(lower, upper []int32) bool {
	if d.empty {
		return false
	}
	n := d.dim
	ceil := func(k int) int32 {
		if lower[k] > upper[k] {
			return lower[k]
		}
		return upper[k]
	}
	for j := 1; j < n; j++ {
		lj := ceil(j)
		ij := d.idx(0, j)
		if d.m[ij].Value() < -lj {
			d.m[ij] = lowerRawFor(lj)
		}
	}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			if d.m[d.idx(0, i)].Value() < -ceil(i) ||
				d.m[d.idx(0, j)].Value() < -upper[j] ||
				d.m[d.idx(i, j)].Value() > upper[i] {
				d.m[d.idx(i, j)] = bound.Infinity
			}
		}
	}
	return d.Close()
}

// DiagonalExtrapolateMaxBounds is the diagonal-preserving variant of
// ExtrapolateMaxBounds: a diagonal constraint D[i][j] (i,j>0) is kept
// whenever neither clock's own ceiling has been breached, even if D[i][j]
// itself exceeds max[i] — only the two clock-ceiling checks can force a
// widening to +∞. ExtrapolateMaxBounds(D) ⊆ DiagonalExtrapolateMaxBounds(D).
func (d *DBM) DiagonalExtrapolateMaxBounds(max []int32) bool {
	if d.empty {
		return false
	}
	n := d.dim
	for j := 1; j < n; j++ {
		ij := d.idx(0, j)
		if d.m[ij].Value() < -max[j] {
			d.m[ij] = lowerRawFor(max[j])
		}
	}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			if d.m[d.idx(0, i)].Value() < -max[i] || d.m[d.idx(0, j)].Value() < -max[j] {
				d.m[d.idx(i, j)] = bound.Infinity
			}
		}
	}
	return d.Close()
}

// DiagonalExtrapolateLUBounds is the diagonal-preserving variant of
// ExtrapolateLUBounds, forming the top of the widening lattice:
// ExtrapolateMaxBounds(D) ⊆ DiagonalExtrapolateMaxBounds(D) ⊆
// DiagonalExtrapolateLUBounds(D).
func (d *DBM) DiagonalExtrapolateLUBounds(lower, upper []int32) bool {
	if d.empty {
		return false
	}
	n := d.dim
	ceil := func(k int) int32 {
		if lower[k] > upper[k] {
			return lower[k]
		}
		return upper[k]
	}
	for j := 1; j < n; j++ {
		lj := ceil(j)
		ij := d.idx(0, j)
		if d.m[ij].Value() < -lj {
			d.m[ij] = lowerRawFor(lj)
		}
	}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			if d.m[d.idx(0, i)].Value() < -ceil(i) || d.m[d.idx(0, j)].Value() < -upper[j] {
				d.m[d.idx(i, j)] = bound.Infinity
			}
		}
	}
	return d.Close()
}
