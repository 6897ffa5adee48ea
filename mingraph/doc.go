// Package mingraph reduces a closed, non-empty DBM to the unique minimal
// set of constraints whose closure reproduces it (the "minimal graph"), and
// packs that minimal graph into the little-endian 32-bit word stream
// described in pack.go.
//
// The analysis runs in two phases: zero-cycle equivalence classes are first
// collapsed to a canonical chain (so that clocks forced equal by the zone
// contribute only a Hamiltonian cycle of constraints rather than a clique),
// then every remaining off-diagonal entry is marked essential unless some
// intermediate clock realizes the identical bound through a two-hop path.
//
// Complexity: Analyze runs in O(n^3) (the inner two-hop scan dominates);
// the packed-format writer adds O(n^2) to that Analyze call when minimizing,
// and the reader runs in O(n^3) because it re-closes the unpacked matrix.
package mingraph
