// File: intern.go
// Role: the global hash-consing table. Clients call Intern explicitly;
// nothing on a mutation path interns automatically (§4.4, §9).

package dbmstore

import (
	"hash/fnv"
	"sync"

	"github.com/zonelib/udbm/dbm"
)

var internTable = struct {
	mu    sync.Mutex
	table map[uint64]*Handle
}{table: make(map[uint64]*Handle)}

func hashMatrix(d *dbm.DBM) uint64 {
	h := fnv.New64a()
	n := d.Dim()
	buf := make([]byte, 4)
	write := func(v int32) {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		_, _ = h.Write(buf)
	}
	write(int32(n))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			write(int32(d.At(i, j)))
		}
	}
	return h.Sum64()
}

// Intern inserts h into the process-wide hash-consing table, replacing h
// with an equal, already-interned handle when one exists — h is released
// in that case. Otherwise h is registered and returned unchanged. Intern
// never runs implicitly; callers opt in explicitly.
func Intern(h *Handle) *Handle {
	key := hashMatrix(h.matrix)
	internTable.mu.Lock()
	defer internTable.mu.Unlock()

	if existing, ok := internTable.table[key]; ok && existing.matrix.Equal(h.matrix) {
		existing.IncRef()
		h.DecRef()
		return existing
	}
	h.hashed = true
	internTable.table[key] = h
	return h
}

// CleanUp drops every entry from the interning table. The table never
// evicts on its own; clients call CleanUp between phases of a program to
// bound its size.
func CleanUp() {
	internTable.mu.Lock()
	internTable.table = make(map[uint64]*Handle)
	internTable.mu.Unlock()
}

// IsHashed reports whether h is currently registered in the interning table.
func (h *Handle) IsHashed() bool { return h.hashed }
