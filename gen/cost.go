// File: cost.go
// Role: random priced-zone generation for the priced package's
// property-based tests (random rate vectors over a random zone).

package gen

import (
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/priced"
)

// RandomCost builds a PricedDBM over d with a random rate vector in
// [-maxRate, maxRate] (rates[0] is always 0, the reference clock) and a
// random offset in [0, maxOffset].
func RandomCost(d *dbm.DBM, maxRate, maxOffset int32, opts ...Option) (*priced.PricedDBM, error) {
	o := build(opts)
	dim := d.Dim()
	rates := make([]int32, dim)
	for i := 1; i < dim; i++ {
		rates[i] = o.rng.Int31n(2*maxRate+1) - maxRate
	}
	offset := o.rng.Int31n(maxOffset + 1)
	return priced.New(d, rates, offset)
}
