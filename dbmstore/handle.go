// File: handle.go
// Role: the reference-counted Handle and its lifecycle operations.

package dbmstore

import (
	"errors"

	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/mingraph"
)

// ErrOutOfRange is returned when a valuation query is issued against an
// empty DBM or federation (§4.4, §7).
var ErrOutOfRange = errors.New("dbmstore: valuation query on empty DBM")

// Handle owns a *dbm.DBM behind a reference count, an optional cached
// minimal graph, and a flag recording interning-table membership.
type Handle struct {
	dim      int
	refCount int32
	hashed   bool
	minGraph *mingraph.BitMatrix
	matrix   *dbm.DBM
}

// New allocates a fresh Handle wrapping an unconstrained DBM of dimension n.
func New(dim int) *Handle {
	return &Handle{dim: dim, refCount: 1, matrix: dbm.New(dim)}
}

// Wrap takes ownership of an existing *dbm.DBM, returning a Handle with
// reference count 1.
func Wrap(d *dbm.DBM) *Handle {
	return &Handle{dim: d.Dim(), refCount: 1, matrix: d}
}

// Dim returns the handle's dimension.
func (h *Handle) Dim() int { return h.dim }

// RefCount returns the current reference count.
func (h *Handle) RefCount() int32 { return h.refCount }

// Matrix returns the underlying DBM for read-only use. Callers that intend
// to mutate must go through GetCopy instead.
func (h *Handle) Matrix() *dbm.DBM { return h.matrix }

// IsEmpty reports whether the owned zone is empty.
func (h *Handle) IsEmpty() bool { return h.matrix.IsEmpty() }

// Clone increments the reference count and returns the same handle — the
// cheap, non-cyclic sharing path used when handing a DBM to a second owner.
func (h *Handle) Clone() *Handle {
	h.refCount++
	return h
}

// IncRef increments the reference count without otherwise changing h.
func (h *Handle) IncRef() { h.refCount++ }

// DecRef decrements the reference count, releasing the underlying matrix
// once it reaches zero.
func (h *Handle) DecRef() {
	h.refCount--
	if h.refCount <= 0 {
		h.matrix = nil
		h.minGraph = nil
	}
}

// GetCopy returns a Handle guaranteed to be uniquely owned (refcount 1)
// together with its mutable matrix: if h is already unique it is returned
// as-is (its minimal-graph cache is invalidated, since the caller is about
// to mutate); otherwise a new Handle is allocated, the matrix is deep
// copied, h is released, and the new Handle/matrix pair is returned.
//
// Every structural mutation on a Handle shared by a federation must go
// through GetCopy first.
func GetCopy(h *Handle) (*Handle, *dbm.DBM) {
	if h.refCount == 1 {
		h.minGraph = nil
		return h, h.matrix
	}
	nh := &Handle{dim: h.dim, refCount: 1, matrix: h.matrix.Copy()}
	h.DecRef()
	return nh, nh.matrix
}

// InvalidateMinGraphCache drops the cached minimal graph, e.g. after a
// direct write that bypassed GetCopy's invalidation (defensive use only).
func (h *Handle) InvalidateMinGraphCache() { h.minGraph = nil }

// MinGraph returns the cached minimal graph, computing and caching it via
// mingraph.Analyze on first use.
func (h *Handle) MinGraph() *mingraph.BitMatrix {
	if h.minGraph == nil {
		bm, _ := mingraph.Analyze(h.matrix)
		h.minGraph = bm
	}
	return h.minGraph
}
