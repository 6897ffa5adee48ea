// File: list.go
// Role: list-level primitives — Add, Append/Steal (O(1) ownership
// transfer), Write/Read/Mix (serialization for permutation tests) and the
// filtering family (RemoveEmpty/RemoveIncludedIn/RemoveThisDBM).

package federation

import (
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/dbmstore"
)

// Add prepends h to the federation and increments its reference count.
// Empty handles are dropped silently, matching the invariant that no
// member is ever the empty zone.
func (f *Federation) Add(h *dbmstore.Handle) {
	if h.IsEmpty() {
		return
	}
	h.IncRef()
	f.head = &node{h: h, next: f.head}
	f.size++
}

// Append moves the entirety of other's list onto the front of f,
// transferring ownership in O(1) and zeroing other. Panics on dimension
// mismatch with a non-empty other.
func (f *Federation) Append(other *Federation) { f.AppendBegin(other) }

// AppendBegin splices other's list in front of f's own list.
func (f *Federation) AppendBegin(other *Federation) {
	if other.size == 0 {
		return
	}
	if f.size != 0 && f.dim != other.dim {
		panic(ErrDimensionMismatch)
	}
	f.dim = other.dim
	tail := other.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = f.head
	f.head = other.head
	f.size += other.size
	other.head, other.size = nil, 0
}

// AppendEnd splices other's list after f's own tail.
func (f *Federation) AppendEnd(other *Federation) {
	if other.size == 0 {
		return
	}
	if f.size != 0 && f.dim != other.dim {
		panic(ErrDimensionMismatch)
	}
	f.dim = other.dim
	if f.head == nil {
		f.head = other.head
	} else {
		tail := f.head
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = other.head
	}
	f.size += other.size
	other.head, other.size = nil, 0
}

// Steal splices the sub-list of from starting at the given zero-based
// position (to the end of from's list) onto the front of f, in time linear
// in from's length (the stolen tail is walked to relink it) and without
// copying any handle.
func (f *Federation) Steal(position int, from *Federation) {
	if position < 0 || position >= from.size {
		return
	}
	var prev *node
	cur := from.head
	for i := 0; i < position; i++ {
		prev = cur
		cur = cur.next
	}
	stolen := from.size - position
	if prev == nil {
		from.head = nil
	} else {
		prev.next = nil
	}
	from.size -= stolen

	if f.size != 0 && f.dim != from.dim {
		panic(ErrDimensionMismatch)
	}
	f.dim = from.dim
	tail := cur
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = f.head
	f.head = cur
	f.size += stolen
}

// Write serializes the member handles, head-first, without touching
// reference counts.
func (f *Federation) Write() []*dbmstore.Handle { return f.Members() }

// Read replaces f's list with the given handles in the given order,
// incrementing each handle's reference count as Add does.
func (f *Federation) Read(handles []*dbmstore.Handle) {
	f.head, f.size = nil, 0
	for i := len(handles) - 1; i >= 0; i-- {
		f.Add(handles[i])
	}
}

// Mix applies a deterministic permutation (full reversal) to the member
// list, used by tests to expose algorithms that are accidentally sensitive
// to list order.
func (f *Federation) Mix() {
	ns := f.nodes()
	for i, j := 0, len(ns)-1; i < j; i, j = i+1, j-1 {
		ns[i], ns[j] = ns[j], ns[i]
	}
	f.head = relink(ns)
}

// RemoveEmpty drops every member whose zone is empty, releasing its handle.
// Given the insertion invariant this is normally a no-op, but is provided
// for federations built by direct list surgery (Steal/Append) that may
// transiently violate it.
func (f *Federation) RemoveEmpty() {
	kept := f.nodes()[:0]
	for _, n := range f.nodes() {
		if n.h.IsEmpty() {
			n.h.DecRef()
			f.size--
		} else {
			kept = append(kept, n)
		}
	}
	f.head = relink(kept)
}

// RemoveThisDBM removes every member whose zone equals target, releasing
// its handle.
func (f *Federation) RemoveThisDBM(target *dbmstore.Handle) {
	kept := f.nodes()[:0]
	for _, n := range f.nodes() {
		if n.h.Matrix().Equal(target.Matrix()) {
			n.h.DecRef()
			f.size--
		} else {
			kept = append(kept, n)
		}
	}
	f.head = relink(kept)
}

// RemoveIncludedIn prunes this federation's members that are subsets of
// some member of arg, and (symmetrically) prunes arg's members that are
// strict subsets of some member of this federation: for each pair (m, a),
// m is dropped when m ⊑ a, a is dropped when a ⊏ m, and both survive when
// the relation is Different.
func (f *Federation) RemoveIncludedIn(arg *Federation) {
	argNodes := arg.nodes()
	keepArg := make(map[*node]bool, len(argNodes))
	for _, a := range argNodes {
		keepArg[a] = true
	}

	keptF := f.nodes()[:0]
	for _, m := range f.nodes() {
		dropped := false
		for _, a := range argNodes {
			if !keepArg[a] {
				continue
			}
			switch m.h.Matrix().Relation(a.h.Matrix()) {
			case dbm.Equal, dbm.Subset:
				dropped = true
			case dbm.Superset:
				keepArg[a] = false
			}
			if dropped {
				break
			}
		}
		if dropped {
			m.h.DecRef()
			f.size--
		} else {
			keptF = append(keptF, m)
		}
	}
	f.head = relink(keptF)

	keptArg := argNodes[:0]
	for _, a := range argNodes {
		if keepArg[a] {
			keptArg = append(keptArg, a)
		} else {
			a.h.DecRef()
			arg.size--
		}
	}
	arg.head = relink(keptArg)
}
