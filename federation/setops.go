// File: setops.go
// Role: the set-theoretic operations closed over a federation's own
// members — Intersection with a single DBM, Union with another
// federation, ConvexUnion, and the plain (non-heuristic) Reduce.

package federation

import (
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
)

// Intersection intersects every member with d in place, dropping any
// member that becomes empty. Panics on dimension mismatch.
func (f *Federation) Intersection(d *dbm.DBM) {
	if f.dim != d.Dim() {
		panic(ErrDimensionMismatch)
	}
	kept := f.nodes()[:0]
	for _, n := range f.nodes() {
		nh, mat := dbmstore.GetCopy(n.h)
		if !mat.Intersection(d) {
			nh.DecRef()
			f.size--
			continue
		}
		n.h = nh
		kept = append(kept, n)
	}
	f.head = relink(kept)
}

// Union absorbs every member of other into f, transferring ownership
// (other is left empty). Members are not deduplicated or reduced; call
// Reduce afterward if a minimal representation is required.
func (f *Federation) Union(other *Federation) {
	if f.size != 0 && other.size != 0 && f.dim != other.dim {
		panic(ErrDimensionMismatch)
	}
	f.AppendEnd(other)
}

// ConvexUnion replaces f with the single convex zone that is the smallest
// zone containing every member — elementwise-max over all member matrices,
// collapsing the federation to size at most 1.
func (f *Federation) ConvexUnion() {
	ns := f.nodes()
	if len(ns) == 0 {
		return
	}
	nh, mat := dbmstore.GetCopy(ns[0].h)
	for _, n := range ns[1:] {
		mat.ConvexUnion(n.h.Matrix())
		n.h.DecRef()
	}
	f.head = &node{h: nh}
	f.size = 1
}

// Reduce drops every member that is included in (or equal to) another
// member, leaving only the maximal elements. Unlike MergeReduce this never
// merges two members into a wider third zone — it only removes redundant
// subsets, so it always terminates in O(n²) Relation comparisons.
func (f *Federation) Reduce() {
	ns := f.nodes()
	keep := make([]bool, len(ns))
	for i := range ns {
		keep[i] = true
	}
	for i := 0; i < len(ns); i++ {
		if !keep[i] {
			continue
		}
		for j := i + 1; j < len(ns); j++ {
			if !keep[j] {
				continue
			}
			switch ns[i].h.Matrix().Relation(ns[j].h.Matrix()) {
			case dbm.Equal, dbm.Subset:
				keep[i] = false
			case dbm.Superset:
				keep[j] = false
			}
		}
	}
	kept := ns[:0]
	for i, n := range ns {
		if keep[i] {
			kept = append(kept, n)
		} else {
			n.h.DecRef()
			f.size--
		}
	}
	f.head = relink(kept)
}
