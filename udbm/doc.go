// Package udbm provides the human-facing boundary the core packages
// deliberately stay away from: naming clocks for printing, rendering a zone
// or federation as text, and parsing a conjunction of literal difference
// constraints back into a DBM. None of this is used to parse the *output*
// of this library — clients must treat printed zones as opaque diagnostics,
// never as a wire format — it only builds DBMs from constraints a caller
// already has in hand (tests, examples, a config file).
package udbm
