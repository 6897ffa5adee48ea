package gen

import "errors"

// ErrBadDimension indicates a requested dimension below 1.
var ErrBadDimension = errors.New("gen: dimension must be >= 1")

// ErrGenerationFailed indicates a constrained generation request that could
// not produce a non-empty zone within the retry budget.
var ErrGenerationFailed = errors.New("gen: could not generate a non-empty zone satisfying the constraints")
