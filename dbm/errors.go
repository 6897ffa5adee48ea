package dbm

import "errors"

// Sentinel errors for the dbm package. Structural operations never fail —
// emptiness is reported through a bool/IsEmpty, not an error — but a few
// entry points validate arguments before touching the matrix.
var (
	// ErrDimensionMismatch indicates two DBMs of different dimension were
	// combined by an operation that requires equal dimension.
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrBadDimension indicates a non-positive dimension was requested.
	ErrBadDimension = errors.New("dbm: dimension must be >= 1")

	// ErrIndexOutOfRange indicates a clock index outside [0, dim) was used.
	ErrIndexOutOfRange = errors.New("dbm: clock index out of range")

	// ErrEmptyZone indicates an operation that requires a non-empty zone
	// (e.g. a debug view) was called on one marked empty.
	ErrEmptyZone = errors.New("dbm: zone is empty")
)
