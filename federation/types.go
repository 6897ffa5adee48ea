// File: types.go
// Role: the node/Federation structs and basic accessors.

package federation

import "github.com/zonelib/udbm/dbmstore"

type node struct {
	h    *dbmstore.Handle
	next *node
}

// Federation is an unordered collection of same-dimension DBMs, interpreted
// as their set-theoretic union, stored as a singly-linked list of
// reference-counted handles.
type Federation struct {
	dim  int
	size int
	head *node
}

// New creates an empty federation of the given dimension.
func New(dim int) *Federation { return &Federation{dim: dim} }

// Dim returns the federation's common dimension.
func (f *Federation) Dim() int { return f.dim }

// Size returns the number of member DBMs.
func (f *Federation) Size() int { return f.size }

// IsEmpty reports whether the federation has no members (represents ∅, not
// to be confused with a federation containing only the empty zone, which
// cannot exist — empty members are always dropped on insertion).
func (f *Federation) IsEmpty() bool { return f.size == 0 }

// Members returns the handles currently in the federation, head-first. The
// caller must not mutate the returned handles without going through
// dbmstore.GetCopy first.
func (f *Federation) Members() []*dbmstore.Handle {
	out := make([]*dbmstore.Handle, 0, f.size)
	for n := f.head; n != nil; n = n.next {
		out = append(out, n.h)
	}
	return out
}

func (f *Federation) nodes() []*node {
	out := make([]*node, 0, f.size)
	for n := f.head; n != nil; n = n.next {
		out = append(out, n)
	}
	return out
}

func relink(ns []*node) *node {
	for i := range ns {
		if i+1 < len(ns) {
			ns[i].next = ns[i+1]
		} else {
			ns[i].next = nil
		}
	}
	if len(ns) == 0 {
		return nil
	}
	return ns[0]
}

// Clone returns a federation sharing the same handles as f, each with an
// incremented reference count — the cheap way to hand a snapshot to a
// second owner.
func (f *Federation) Clone() *Federation {
	cp := &Federation{dim: f.dim}
	for n := f.head; n != nil; n = n.next {
		n.h.IncRef()
		cp.head = &node{h: n.h, next: cp.head}
		cp.size++
	}
	// Clone built the list in reverse; restore original order.
	cp.head = relink(reverseNodes(cp.nodes()))
	return cp
}

func reverseNodes(ns []*node) []*node {
	out := make([]*node, len(ns))
	for i, n := range ns {
		out[len(ns)-1-i] = n
	}
	return out
}
