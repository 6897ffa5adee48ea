package federation

import "errors"

// ErrDimensionMismatch indicates an operation combined federations, or a
// federation and a DBM, of different dimension.
var ErrDimensionMismatch = errors.New("federation: dimension mismatch")

// ErrOutOfRange reports a query against an empty federation. No function of
// this package returns it; the delay queries report ErrNoDelay instead.
var ErrOutOfRange = errors.New("federation: query against empty federation")
