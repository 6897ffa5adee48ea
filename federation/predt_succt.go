// File: predt_succt.go
// Role: the predecessor/successor-under-timing operators (§4.6.6).

package federation

import (
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
)

func restricted(d *dbm.DBM, restrict *dbm.DBM) *dbm.DBM {
	if restrict != nil {
		d.Intersection(restrict)
	}
	return d
}

// Predt computes, for each member g of good, down(g) minus the union over
// each member b of bad of (down(b) ∪ down((down(g) ∩ g) − b)), and returns
// the union of these partial results across all of good. When restrict is
// non-nil it is intersected into every down(...) zone before use, confining
// the result to a universal context.
func Predt(good, bad *Federation, restrict *dbm.DBM) *Federation {
	result := New(good.dim)
	for _, g := range good.nodes() {
		downGood := g.h.Matrix().Copy()
		downGood.Down()
		restricted(downGood, restrict)
		if downGood.IsEmpty() {
			continue
		}

		reached := New(good.dim)
		reached.Add(dbmstore.Wrap(downGood.Copy()))

		entry := g.h.Matrix().Copy()
		entry.Intersection(downGood)

		for _, b := range bad.nodes() {
			downB := b.h.Matrix().Copy()
			downB.Down()
			restricted(downB, restrict)
			reached.Subtract(downB)

			for _, p := range internSubtract(entry.Copy(), b.h.Matrix()) {
				p.Down()
				restricted(p, restrict)
				reached.Subtract(p)
			}
		}
		result.Union(reached)
	}
	result.MergeReduce(0, Restricted)
	return result
}

// Succt computes the dual operator on the receiver (interpreted as the bad
// region): for each member g of good, up(g) with up(b) subtracted for every
// member b of bad; the pieces are collected and merge-reduced. The result is
// not checked against good: no test is made that (result ∩ up(result)) −
// good is empty.
func (bad *Federation) Succt(good *Federation) *Federation {
	result := New(bad.dim)
	for _, g := range good.nodes() {
		upG := g.h.Matrix().Copy()
		upG.Up()

		survivors := []*dbm.DBM{upG}
		for _, b := range bad.nodes() {
			upB := b.h.Matrix().Copy()
			upB.Up()
			var next []*dbm.DBM
			for _, s := range survivors {
				next = append(next, internSubtract(s, upB)...)
			}
			survivors = next
			if len(survivors) == 0 {
				break
			}
		}
		for _, s := range survivors {
			result.Add(dbmstore.Wrap(s))
		}
	}
	result.MergeReduce(0, Restricted)
	return result
}
