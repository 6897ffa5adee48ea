// File: dense.go
// Role: a decoded-integer debug view of a closed zone, for visualization
// boundaries and cross-checking closure against an independent
// representation — never used by any algorithm in this package.

package dbm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense converts a non-empty zone into a gonum mat.Dense of decoded
// integer bounds, with +Inf standing in for an unconstrained entry and the
// strictness bit discarded. Returns ErrEmptyZone if the zone is empty:
// there is no meaningful matrix to visualize.
func (d *DBM) Dense() (*mat.Dense, error) {
	if d.empty {
		return nil, ErrEmptyZone
	}
	data := make([]float64, d.dim*d.dim)
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			b := d.m[d.idx(i, j)]
			if b.IsInfinity() {
				data[d.idx(i, j)] = math.Inf(1)
				continue
			}
			data[d.idx(i, j)] = float64(b.Value())
		}
	}
	return mat.NewDense(d.dim, d.dim, data), nil
}
