// File: subtract.go
// Role: federation subtraction — Subtract removes a DBM's area from every
// member; internSubtract implements the single-DBM decomposition that
// produces a disjoint set of pieces covering a \ b.

package federation

import (
	"math"
	"sort"

	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
	"github.com/zonelib/udbm/mingraph"
)

// Subtract removes d's area from every member of f: each member a is
// replaced by the (possibly empty, possibly multi-piece) result of a \ d.
func (f *Federation) Subtract(d *dbm.DBM) {
	if f.size != 0 && f.dim != d.Dim() {
		panic(ErrDimensionMismatch)
	}
	ns := f.nodes()
	var kept []*node
	for _, n := range ns {
		pieces := internSubtract(n.h.Matrix(), d)
		n.h.DecRef()
		for _, p := range pieces {
			kept = append(kept, &node{h: dbmstore.Wrap(p)})
		}
	}
	f.size = len(kept)
	f.head = relink(kept)
}

type subtractEdge struct {
	i, j int
	c    dbm.Constraint
}

// internSubtract decomposes a \ b into a set of pairwise-disjoint zones
// whose union equals the set difference, walking b's essential constraints
// (per mingraph.Analyze) in worst-value order — the "algorithm 3" heuristic
// from original_source/src/fed.cpp:217-240, which cross-checks each
// candidate edge of b against a (a cut already implied by some other
// combination of a's and b's constraints would remove nothing further, and
// sorts last) so that the cuts most likely to produce large, simple pieces
// are applied first. Edge order changes the number and shape of the
// resulting pieces, never the correctness of their union.
func internSubtract(a, b *dbm.DBM) []*dbm.DBM {
	if b.IsEmpty() {
		return []*dbm.DBM{a.Copy()}
	}
	if a.IsEmpty() {
		return nil
	}

	edges := essentialEdges(b)
	dim := a.Dim()
	scores := make([]int64, len(edges))
	for k, e := range edges {
		scores[k] = worstValue(a, b, dim, e.i, e.j)
	}
	order := make([]int, len(edges))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(x, y int) bool {
		return scores[order[x]] < scores[order[y]]
	})
	sorted := make([]subtractEdge, len(edges))
	for k, idx := range order {
		sorted[k] = edges[idx]
	}
	edges = sorted

	remaining := a.Copy()
	var pieces []*dbm.DBM
	for _, e := range edges {
		i, j, c := e.i, e.j, e.c.Bound
		if remaining.IsEmpty() {
			break
		}
		if c >= remaining.At(i, j) {
			continue // this half-space of b doesn't cut anything further
		}
		piece := remaining.Copy()
		if piece.Constrain(j, i, c.Negate()) {
			pieces = append(pieces, piece)
		}
		if !remaining.Constrain(i, j, c) {
			break
		}
	}
	return pieces
}

// essentialEdges extracts b's minimal constraint graph as a flat edge list.
func essentialEdges(b *dbm.DBM) []subtractEdge {
	bm, _ := mingraph.Analyze(b)
	dim := b.Dim()
	edges := make([]subtractEdge, 0, bm.Count())
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j || !bm.Get(i, j) {
				continue
			}
			edges = append(edges, subtractEdge{i: i, j: j, c: dbm.Constraint{I: i, J: j, Bound: b.At(i, j)}})
		}
	}
	return edges
}

// worstValue scores b's edge (i,j) for the edge-ordering heuristic, exactly
// as original_source/src/fed.cpp's SUBTRACTION_ALGORITHM==3 worstValue does:
// for every other clock k, check whether the path a[i,k] + b[k,j] (or the
// symmetric a[k,j] + b[i,k]) already dominates b's own bound on (i,j) — if
// so the cut through (i,j) lies entirely outside a and removes nothing, so
// it sorts last (math.MaxInt64). Otherwise the score is how far b[i,j] is
// from a's own bound on (i,j): the smallest, most conservative cut sorts
// first.
func worstValue(a, b *dbm.DBM, dim, i, j int) int64 {
	bij := b.At(i, j).Weaken()
	for k := 0; k < dim; k++ {
		if k == i || k == j {
			continue
		}
		if !b.At(k, j).IsInfinity() && !a.At(i, k).IsInfinity() {
			if int64(bij)-int64(a.At(i, k).Weaken())-int64(b.At(k, j).Weaken()) >= 0 {
				return math.MaxInt64
			}
		}
		if !b.At(i, k).IsInfinity() && !a.At(k, j).IsInfinity() {
			if int64(bij)-int64(a.At(k, j).Weaken())-int64(b.At(i, k).Weaken()) >= 0 {
				return math.MaxInt64
			}
		}
	}
	return int64(bij) - int64(a.At(i, j))
}
