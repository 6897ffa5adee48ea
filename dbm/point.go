// File: point.go
// Role: point-membership queries and simple structural predicates.

package dbm

import "github.com/zonelib/udbm/bound"

// epsilon is the tolerance used by IsPointIncludedReal's strict/weak
// comparisons. Preserved as a frozen contract: see the Open Question in
// SPEC_FULL.md — two provably-disjoint zones may both appear to contain a
// shared floating-point boundary point because (x-y) rounds to a value
// exactly equal to the shared bound. Do not "fix" this silently.
const epsilon = 1e-6

func isLE(a, b float64) bool { return a <= b+epsilon }
func isLT(a, b float64) bool { return a < b+epsilon }

// IsUnbounded reports whether any clock has no upper bound against the
// reference clock: ∃i>0. D[i][0] = +∞.
func (d *DBM) IsUnbounded() bool {
	if d.empty {
		return false
	}
	for i := 1; i < d.dim; i++ {
		if d.m[d.idx(i, 0)] == bound.Infinity {
			return true
		}
	}
	return false
}

// HasZero reports whether the all-zero valuation satisfies every
// constraint in the (closed, non-empty) DBM.
func (d *DBM) HasZero() bool {
	if d.empty {
		return false
	}
	for i := range d.m {
		if d.m[i] < bound.LEZero {
			return false
		}
	}
	return true
}

// IsPointIncludedInt reports whether the integer point p (indexed like the
// matrix, p[0] must be 0) satisfies every constraint pi - pj ≺ D[i][j].
func (d *DBM) IsPointIncludedInt(p []int32) bool {
	if d.empty {
		return false
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i == j {
				continue
			}
			c := d.m[d.idx(i, j)]
			if c == bound.Infinity {
				continue
			}
			diff := p[i] - p[j]
			v, strict := c.Decode()
			if strict {
				if diff >= v {
					return false
				}
			} else if diff > v {
				return false
			}
		}
	}
	return true
}

// IsPointIncludedReal reports whether the real-valued point p satisfies
// every constraint, using an epsilon-tolerant comparison (see the Open
// Question documented at the top of this file).
func (d *DBM) IsPointIncludedReal(p []float64) bool {
	if d.empty {
		return false
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i == j {
				continue
			}
			c := d.m[d.idx(i, j)]
			if c == bound.Infinity {
				continue
			}
			diff := p[i] - p[j]
			v, strict := c.Decode()
			bv := float64(v)
			if strict {
				if !isLT(diff, bv) {
					return false
				}
			} else if !isLE(diff, bv) {
				return false
			}
		}
	}
	return true
}
