// File: analyze.go
// Role: the two-phase minimal-graph algorithm (§4.3).

package mingraph

import (
	"sort"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

// Analyze computes the minimal graph of a closed, non-empty DBM d. It
// returns the essential-edge bitset and the number of edges marked.
//
// Phase 1 collapses zero-cycle equivalence classes (i≡j iff
// D[i][j]+D[j][i] == LEZero) to a canonical Hamiltonian cycle over each
// class's members in index order, so intra-class redundancy never survives
// as a clique of essential edges. Phase 2 marks every remaining (i,j),
// i not≡ j, essential unless some k realizes D[i][j] == D[i][k]+D[k][j].
func Analyze(d *dbm.DBM) (*BitMatrix, int) {
	n := d.Dim()
	bm := NewBitMatrix(n)
	classOf := zeroCycleClasses(d)

	byClass := make(map[int][]int)
	for i := 0; i < n; i++ {
		byClass[classOf[i]] = append(byClass[classOf[i]], i)
	}
	for _, members := range byClass {
		if len(members) < 2 {
			continue
		}
		sort.Ints(members)
		for idx, a := range members {
			b := members[(idx+1)%len(members)]
			bm.Set(a, b)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || classOf[i] == classOf[j] {
				continue
			}
			if isEssential(d, i, j) {
				bm.Set(i, j)
			}
		}
	}

	return bm, bm.Count()
}

// zeroCycleClasses returns, for every clock index, the smallest index of
// its zero-cycle equivalence class (union-find over D[i][j]+D[j][i]==LEZero).
func zeroCycleClasses(d *dbm.DBM) []int {
	n := d.Dim()
	parent := make([]int, n)
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
			if ra < rb {
				parent[rb] = ra
			} else {
				parent[ra] = rb
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.At(i, j).Add(d.At(j, i)) == bound.LEZero {
				union(i, j)
			}
		}
	}
	classOf := make([]int, n)
	for i := 0; i < n; i++ {
		classOf[i] = find(i)
	}
	return classOf
}

// isEssential reports whether no intermediate clock k realizes the same
// bound as D[i][j] via a two-hop path, i.e. D[i][j] is not implied by the
// rest of the closure.
func isEssential(d *dbm.DBM, i, j int) bool {
	dij := d.At(i, j)
	if dij == bound.Infinity {
		return false
	}
	n := d.Dim()
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		dik := d.At(i, k)
		dkj := d.At(k, j)
		if dik == bound.Infinity || dkj == bound.Infinity {
			continue
		}
		if dik.Add(dkj) == dij {
			return false
		}
	}
	return true
}

// CleanBitMatrix prunes a superset of candidate essential edges using the
// closure of d, re-testing only the edges already marked in superset. Used
// when a cache supplies a conservative superset and only confirmation
// (rather than full re-analysis) is required.
func CleanBitMatrix(d *dbm.DBM, superset *BitMatrix) *BitMatrix {
	n := d.Dim()
	classOf := zeroCycleClasses(d)
	out := NewBitMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !superset.Get(i, j) {
				continue
			}
			if classOf[i] == classOf[j] {
				out.Set(i, j)
				continue
			}
			if isEssential(d, i, j) {
				out.Set(i, j)
			}
		}
	}
	return out
}

// GetBitMatrixFromMinDBM extracts the essential-edge bitset from a packed
// stream without reconstructing the full DBM.
func GetBitMatrixFromMinDBM(stream []uint32, offsetWords int) *BitMatrix {
	h := decodeHeader(stream[offsetWords])
	if !h.minimize {
		bm := NewBitMatrix(h.dim)
		for i := 0; i < h.dim; i++ {
			for j := 0; j < h.dim; j++ {
				if i != j {
					bm.Set(i, j)
				}
			}
		}
		return bm
	}
	return readBitMatrix(stream, offsetWords+1, h.dim)
}

// RelationWithMinDBM is equivalent to d.Relation(unpack(stream)): it unpacks
// the stream into a DBM with ReadFromMinDBM and compares d against it.
func RelationWithMinDBM(d *dbm.DBM, stream []uint32, offsetWords int) dbm.Relation {
	other := ReadFromMinDBM(stream, offsetWords)
	return d.Relation(other)
}

// ConvexUnionWithMinDBM convex-unions d with the zone packed in stream,
// without requiring the caller to unpack it into a *dbm.DBM first.
func ConvexUnionWithMinDBM(d *dbm.DBM, stream []uint32, offsetWords int) {
	other := ReadFromMinDBM(stream, offsetWords)
	d.ConvexUnion(other)
}
