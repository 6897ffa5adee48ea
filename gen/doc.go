// Package gen generates random zones, federations and priced zones for
// property-based testing. It is a sibling of the core module, not a
// dependency of it: core packages never import gen, only gen's own
// tests and the udbm-gen CLI driver do.
//
// Grounded on original_source/src/gen.c: RandomDBM mirrors dbm_generate,
// RandomConstrainedDBM mirrors dbm_generateConstrained, RandomSuperset/
// RandomSubset mirror dbm_generateSuperset/dbm_generateSubset, and
// RandomPoint mirrors dbm_generatePoint.
package gen
