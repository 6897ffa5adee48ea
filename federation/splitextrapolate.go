// File: splitextrapolate.go
// Role: SplitExtrapolate (§4.6.8) — apply extrapolateMaxBounds without
// letting the widening cross a diagonal constraint that a caller has
// flagged as logically significant.

package federation

import (
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
)

// SplitExtrapolate partitions the federation by each diagonal constraint in
// turn (member vs its negation), applies ExtrapolateMaxBounds to every
// resulting piece, re-intersects each piece with the diagonals that held
// for it, and finally MergeReduces the result. This prevents the max-bounds
// widening
// from erasing a diagonal distinction (e.g. x - y ≤ 3 vs x - y > 3) that
// the caller depends on for a later logical test.
func (f *Federation) SplitExtrapolate(diagonals []dbm.Constraint, max []int32) {
	members := f.nodes()
	type piece struct {
		d     *dbm.DBM
		holds []dbm.Constraint
	}
	pieces := make([]piece, 0, len(members))
	for _, n := range members {
		pieces = append(pieces, piece{d: n.h.Matrix().Copy()})
	}

	for _, c := range diagonals {
		var next []piece
		for _, p := range pieces {
			pos := p.d.Copy()
			if pos.Constrain(c.I, c.J, c.Bound) {
				next = append(next, piece{d: pos, holds: append(append([]dbm.Constraint{}, p.holds...), c)})
			}
			neg := p.d.Copy()
			if neg.Constrain(c.J, c.I, c.Bound.Negate()) {
				next = append(next, piece{d: neg, holds: append([]dbm.Constraint{}, p.holds...)})
			}
		}
		pieces = next
	}

	result := New(f.dim)
	for _, p := range pieces {
		p.d.ExtrapolateMaxBounds(max)
		for _, c := range p.holds {
			if !p.d.Constrain(c.I, c.J, c.Bound) {
				break
			}
		}
		if !p.d.IsEmpty() {
			result.Add(dbmstore.Wrap(p.d))
		}
	}
	for _, n := range members {
		n.h.DecRef()
	}
	f.head, f.size = result.head, result.size
	f.MergeReduce(0, Restricted)
}
