// File: namer.go
// Role: the clock-naming boundary used by Format and the Constraints grammar.

package udbm

import "strconv"

// ClockNamer maps a clock index to its display name. Index 0 is the
// reference clock and is conventionally never printed.
type ClockNamer interface {
	ClockName(i int) string
}

// Names is the common ClockNamer: a fixed slice of names indexed by clock,
// with Names[0] ignored (the reference clock has no name).
type Names []string

// ClockName returns Names[i], or "x<i>" if i is out of range.
func (n Names) ClockName(i int) string {
	if i >= 0 && i < len(n) {
		return n[i]
	}
	return "x" + strconv.Itoa(i)
}

type indexNamer struct{}

// ClockName returns "x<i>" for every index, the namer used when the caller
// has no real clock names on hand.
func (indexNamer) ClockName(i int) string { return "x" + strconv.Itoa(i) }

// DefaultNamer names every clock "x<i>".
func DefaultNamer() ClockNamer { return indexNamer{} }
