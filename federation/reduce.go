// File: reduce.go
// Role: the remaining size-reducing family — ConvexReduce, ExpensiveReduce,
// PartitionReduce, ExpensiveConvexReduce. All preserve the federation's
// semantic union; only MergeReduce and these may ever grow a member past
// the convex hull of what it replaces.

package federation

import (
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
)

// ConvexReduce tries, for each member, to grow a tentative convex hull by
// absorbing compatible neighbors, committing only when hull − (absorbed ∪
// original) is empty — i.e. the hull introduces no point outside the
// members it replaces.
func (f *Federation) ConvexReduce() {
	ns := f.nodes()
	alive := make([]bool, len(ns))
	for i := range ns {
		alive[i] = true
	}

	for i := 0; i < len(ns); i++ {
		if !alive[i] {
			continue
		}
		hull := ns[i].h.Matrix().Copy()
		absorbed := []int{i}
		for j := i + 1; j < len(ns); j++ {
			if !alive[j] {
				continue
			}
			candidate := hull.Copy()
			candidate.ConvexUnion(ns[j].h.Matrix())
			if hullIsExact(candidate, ns, absorbed, j) {
				hull = candidate
				absorbed = append(absorbed, j)
			}
		}
		if len(absorbed) > 1 {
			nh, mat := dbmstore.GetCopy(ns[i].h)
			*mat = *hull
			ns[i].h = nh
			for _, j := range absorbed[1:] {
				ns[j].h.DecRef()
				alive[j] = false
				f.size--
			}
		}
	}

	kept := ns[:0]
	for i, n := range ns {
		if alive[i] {
			kept = append(kept, n)
		}
	}
	f.head = relink(kept)
}

// hullIsExact reports whether candidate − (union of the members named by
// absorbed plus j) is empty, i.e. absorbing j into the hull loses nothing.
func hullIsExact(candidate *dbm.DBM, ns []*node, absorbed []int, j int) bool {
	pieces := []*dbm.DBM{candidate.Copy()}
	all := append(append([]int{}, absorbed...), j)
	for _, idx := range all {
		var next []*dbm.DBM
		for _, p := range pieces {
			next = append(next, internSubtract(p, ns[idx].h.Matrix())...)
		}
		pieces = next
		if len(pieces) == 0 {
			return true
		}
	}
	return len(pieces) == 0
}

// ExpensiveReduce removes any member wholly contained in the union of the
// rest, tested by iterated subtraction: O(k²) DBM subtractions.
func (f *Federation) ExpensiveReduce() {
	ns := f.nodes()
	alive := make([]bool, len(ns))
	for i := range ns {
		alive[i] = true
	}
	for i := range ns {
		if !alive[i] {
			continue
		}
		pieces := []*dbm.DBM{ns[i].h.Matrix().Copy()}
		for j := range ns {
			if j == i || !alive[j] {
				continue
			}
			var next []*dbm.DBM
			for _, p := range pieces {
				next = append(next, internSubtract(p, ns[j].h.Matrix())...)
			}
			pieces = next
			if len(pieces) == 0 {
				break
			}
		}
		if len(pieces) == 0 {
			ns[i].h.DecRef()
			alive[i] = false
			f.size--
		}
	}
	kept := ns[:0]
	for i, n := range ns {
		if alive[i] {
			kept = append(kept, n)
		}
	}
	f.head = relink(kept)
}

// PartitionReduce splits the federation into weakly-disjoint islands (no
// pair of members across islands can possibly intersect), reduces each
// island independently with ConvexReduce followed by ExpensiveReduce, then
// concatenates the islands back together.
func (f *Federation) PartitionReduce() {
	ns := f.nodes()
	parent := make([]int, len(ns))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for i := range ns {
		for j := i + 1; j < len(ns); j++ {
			if !weakDisjoint(ns[i].h.Matrix(), ns[j].h.Matrix()) {
				union(i, j)
			}
		}
	}

	islands := make(map[int][]*node)
	for i, n := range ns {
		r := find(i)
		islands[r] = append(islands[r], n)
	}

	result := New(f.dim)
	for _, members := range islands {
		island := &Federation{dim: f.dim}
		island.head = relink(members)
		island.size = len(members)
		island.ConvexReduce()
		island.ExpensiveReduce()
		result.AppendEnd(island)
	}
	f.head, f.size = result.head, result.size
}

// ExpensiveConvexReduce computes the convex hull of the whole federation;
// if the hull minus the federation is small (here: empty, the exact case —
// the federation was already convex), the federation collapses to that one
// hull; otherwise the federation is left as ConvexReduce left it, since
// materializing a large hull difference is counter-productive.
func (f *Federation) ExpensiveConvexReduce() {
	ns := f.nodes()
	if len(ns) <= 1 {
		return
	}
	hull := ns[0].h.Matrix().Copy()
	for _, n := range ns[1:] {
		hull.ConvexUnion(n.h.Matrix())
	}
	pieces := []*dbm.DBM{hull.Copy()}
	for _, n := range ns {
		var next []*dbm.DBM
		for _, p := range pieces {
			next = append(next, internSubtract(p, n.h.Matrix())...)
		}
		pieces = next
		if len(pieces) == 0 {
			break
		}
	}
	if len(pieces) != 0 {
		f.ConvexReduce()
		return
	}
	f.ConvexUnion()
}
