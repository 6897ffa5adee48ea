package priced

import "errors"

// ErrDimensionMismatch indicates a rate vector whose length does not
// match the DBM's dimension.
var ErrDimensionMismatch = errors.New("priced: rate vector dimension mismatch")

// ErrUnbounded is returned by InfimumValuation when the cost function is
// unbounded below over the zone (some artificial arc in the simplex
// retains positive flow at termination): no infimum-achieving valuation
// exists.
var ErrUnbounded = errors.New("priced: cost is unbounded below over this zone")

// ErrEmptyZone is returned when an infimum is requested over the empty
// zone, which has no valuations at all.
var ErrEmptyZone = errors.New("priced: infimum requested over the empty zone")
