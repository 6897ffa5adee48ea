// Package dbmstore wraps *dbm.DBM values behind reference-counted Handles
// so that federations can share identical zones without copying, and
// mutation always goes through an explicit copy-on-write step (§4.4).
//
// A Handle additionally caches the owning zone's minimal graph (see
// mingraph) and, optionally, membership in a process-wide hash-consing
// table populated by Intern.
//
// Concurrency: reference-count mutation is not
// safe for concurrent use by itself — a Handle is owned by one logical
// thread of control between operations. The interning table is the one
// piece of genuinely shared, global state and is guarded by a mutex so that
// CleanUp and Intern calls from different phases of a single program do not
// race, not so that two goroutines may safely share a Handle.
package dbmstore
