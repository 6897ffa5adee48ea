// Package dbm implements the Difference Bound Matrix: the canonical
// representation of a single convex zone over a fixed set of clocks.
//
// A DBM of dimension n holds an n×n matrix D of bound.Bound values, where
// D[i][j] encodes the constraint xi - xj ≺ D[i][j]. Clock 0 is the
// distinguished reference clock (always 0 in every valuation). A DBM is
// either empty (marked by its empty flag) or closed: the unique
// canonical form where no entry can be tightened by a two-hop shortest path.
//
// Mutating operations follow the original UDBM contract: they leave the
// receiver in canonical closed form, or mark it empty, and every algorithm
// other than Close itself requires a closed, non-empty input.
//
// Complexity is documented per operation; the dominant cost is O(n^3) for a
// full Floyd–Warshall Close (and for CloseLU, which skips only some pivots),
// O(n^2) for the partial re-closures Close1 and CloseIJ, and O(n^2) per
// touched clock for CloseX.
//
// Errors: DBM algorithms never return an error. Zone-shrinking operations
// report emptiness via a bool return or via IsEmpty(); valuation queries on
// an empty DBM return false rather than failing, because dbm has no notion
// of an out-of-band failure — that surfaces one layer up in dbmstore.
package dbm
