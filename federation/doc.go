// Package federation represents a finite union of zones — a federation —
// as a singly-linked list of dbmstore.Handle nodes sharing a common
// dimension, and implements every operation closed over that union:
// intersection, union, convex union, subtraction, predt/succt, the delay
// queries, the extrapolation split, and the family of size-reducing
// reductions (merge, convex, expensive, partition).
//
// Invariants upheld by every operation: all members share the federation's
// dimension; no member is ever the empty zone (empty results are dropped on
// insertion); members need not be pairwise disjoint or incomparable unless
// the federation has gone through a reduction.
//
// Complexity is dominated by Subtraction and MergeReduce; both are
// documented per-function. No operation here spawns goroutines; the model
// is single-threaded and cooperative: a federation and its members belong
// to one logical thread of control between calls.
package federation
