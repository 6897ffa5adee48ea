// File: merge.go
// Role: MergeReduce — the heuristic, safety-proved reduction that merges
// two compatible members into their convex union rather than merely
// dropping redundant subsets (which is all Reduce does).

package federation

import (
	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
)

// MergeLevel selects how aggressively MergeReduce merges two incomparable
// members. Restricted is the default; Unrestricted merges more often at
// the cost of an extra safety-proof subtraction per candidate pair.
type MergeLevel int

const (
	// Restricted requires at least n-2 agreeing off-diagonal entries
	// (nbOK >= n-2) before merging; no safety proof is run.
	Restricted MergeLevel = iota
	// Unrestricted merges on any diagonal agreement (nbOK >= 1) provided
	// the safety proof (convexUnion(Di,Dj) - Di) ⊆ Dj holds.
	Unrestricted
)

// MergeReduce scans member pairs from index skip onward and merges any
// pair found mergeable under level into their convex union, replacing both
// with the single merged member. Pairs before skip are assumed already
// reduced by a previous call and are not re-scanned against each other,
// only used as merge targets for later members.
func (f *Federation) MergeReduce(skip int, level MergeLevel) {
	ns := f.nodes()
	alive := make([]bool, len(ns))
	for i := range ns {
		alive[i] = true
	}

	for i := skip; i < len(ns); i++ {
		if !alive[i] {
			continue
		}
		for j := 0; j < len(ns); j++ {
			if !alive[i] {
				break
			}
			if j == i || (j >= skip && j < i) || !alive[j] {
				continue
			}
			di, dj := ns[i].h.Matrix(), ns[j].h.Matrix()

			if weakDisjoint(di, dj) {
				continue
			}

			switch di.Relation(dj) {
			case dbm.Equal, dbm.Subset:
				alive[i] = false
				continue
			case dbm.Superset:
				alive[j] = false
				continue
			}

			n := di.Dim()
			nbOK := diagonalAgreement(di, dj)
			mergeable := false
			switch level {
			case Restricted:
				mergeable = nbOK >= n-2
			case Unrestricted:
				mergeable = nbOK >= 1 && mergeIsSafe(di, dj)
			}
			if !mergeable {
				continue
			}

			nh, mat := dbmstore.GetCopy(ns[i].h)
			mat.ConvexUnion(dj)
			ns[i].h = nh
			alive[j] = false
		}
	}

	kept := ns[:0]
	for i, n := range ns {
		if alive[i] {
			kept = append(kept, n)
		} else {
			n.h.DecRef()
			f.size--
		}
	}
	f.head = relink(kept)
}

// weakDisjoint reports whether di and dj cannot possibly overlap: some
// pair of constraints weakly sums below LE_ZERO, proving the zones share
// no point even under the most permissive (weak) reading of both.
func weakDisjoint(di, dj *dbm.DBM) bool {
	n := di.Dim()
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			if di.At(p, q).Weaken().Add(dj.At(q, p).Weaken()) < bound.LEZero {
				return true
			}
		}
	}
	return false
}

// diagonalAgreement counts the off-diagonal entries on which di and dj
// carry exactly the same bound — the compatibility score nbOK.
func diagonalAgreement(di, dj *dbm.DBM) int {
	n := di.Dim()
	nbOK := 0
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			if di.At(p, q) == dj.At(p, q) {
				nbOK++
			}
		}
	}
	return nbOK
}

// mergeIsSafe implements the exact safety proof required for an
// unrestricted merge: the convex union of di and dj must not introduce any
// point outside dj ∪ di, i.e. (convexUnion(di,dj) - di) ⊆ dj.
func mergeIsSafe(di, dj *dbm.DBM) bool {
	hull := di.Copy()
	hull.ConvexUnion(dj)
	pieces := internSubtract(hull, di)
	for _, p := range pieces {
		if p.Relation(dj) != dbm.Subset && p.Relation(dj) != dbm.Equal {
			return false
		}
	}
	return true
}
