// File: types.go
// Role: DBM struct, Relation enum, Constraint literal, index accessors.

package dbm

import "github.com/zonelib/udbm/bound"

// Relation classifies the set-theoretic relationship between two zones, as
// returned by Relation. Comparisons are pairwise over every entry, so an
// EQUAL result requires D1[i][j] == D2[i][j] for all i,j.
type Relation int

const (
	// Different means neither zone contains the other.
	Different Relation = iota
	// Subset means the receiver is strictly included in the argument.
	Subset
	// Superset means the argument is strictly included in the receiver.
	Superset
	// Equal means the two zones coincide exactly.
	Equal
)

// String renders a Relation for diagnostics.
func (r Relation) String() string {
	switch r {
	case Subset:
		return "Subset"
	case Superset:
		return "Superset"
	case Equal:
		return "Equal"
	default:
		return "Different"
	}
}

// Constraint is a literal difference constraint "xi - xj ≺ bound", used to
// build and tighten DBMs from a flat list rather than one call per entry.
type Constraint struct {
	I, J  int
	Bound bound.Bound
}

// DBM is a single zone: an n×n matrix of bound.Bound values in row-major
// order, plus an emptiness flag. The zero value is not usable; construct
// with New, Init or Zero.
//
// Concurrency: a DBM is not safe for concurrent mutation. Readers may share
// a *DBM freely; dbmstore provides the copy-on-write discipline needed to
// share DBMs across federations.
type DBM struct {
	dim   int
	m     []bound.Bound
	empty bool
}

// Dim returns the number of clocks, including the reference clock at index 0.
func (d *DBM) Dim() int { return d.dim }

// IsEmpty reports whether the DBM represents the empty zone.
func (d *DBM) IsEmpty() bool { return d.empty }

// MarkEmpty marks the DBM empty, preserving its dimension. The matrix
// contents become meaningless; every subsequent query must check IsEmpty
// first, matching the §4.2.3 poison-diagonal contract of the original.
func (d *DBM) MarkEmpty() { d.empty = true }

// At returns D[i][j]. Panics if i or j is out of [0,dim) — an internal
// programmer error, not a user-triggered one, matching the original's
// assertion-gated access.
func (d *DBM) At(i, j int) bound.Bound {
	d.checkIndex(i)
	d.checkIndex(j)
	return d.m[i*d.dim+j]
}

// Set writes D[i][j] directly, bypassing closure. Callers must re-close
// (Close, Close1, CloseIJ or CloseX as appropriate) after direct writes.
func (d *DBM) Set(i, j int, v bound.Bound) {
	d.checkIndex(i)
	d.checkIndex(j)
	d.m[i*d.dim+j] = v
}

func (d *DBM) checkIndex(i int) {
	if i < 0 || i >= d.dim {
		panic(ErrIndexOutOfRange)
	}
}

// idx is the private row-major offset helper used by every algorithm in this
// package to avoid repeated bounds-checked At/Set in hot loops.
func (d *DBM) idx(i, j int) int { return i*d.dim + j }
