// Package bound defines the encoded representation of a single difference
// constraint "xi - xj ≺ b" used throughout the DBM, minimal-graph, federation
// and priced packages.
//
// A Bound packs a strictness bit and an integer value into one int32 word so
// that closure and subtraction can compare and add constraints without ever
// unpacking them. The encoding is:
//
//	low bit  = strictness (1 = weak "≤", 0 = strict "<")
//	remaining bits = value << 1
//
// LEZero ("≤ 0") sits on the diagonal of every valid DBM. Infinity ("< +∞",
// by convention stored weak so that Negate/Add behave uniformly) must be the
// largest representable Bound. Overflow is a saturation sentinel: any sum
// whose magnitude reaches Overflow is clamped to Infinity instead of wrapping.
//
// Complexity: every operation in this package is O(1).
//
// Errors: none — Bound arithmetic cannot fail; overflow is unrepresentable
// sentinel saturation, not an error.
package bound
