// File: delay.go
// Role: the delay queries (§4.6.7) — GetMinDelay, GetMaxDelay,
// GetMaxBackDelay, GetDelay. All work against a point shifted uniformly
// along every active clock, bisecting on strict facets via the same
// epsilon contract documented in dbm/point.go.

package federation

import "errors"

// ErrNoDelay is returned when no delay (forward or backward) places the
// point inside the federation.
var ErrNoDelay = errors.New("federation: point never enters the federation under this delay direction")

const delayEpsilon = 1e-6
const maxDelaySearch = 1 << 20

// direction is +1 for forward delay queries, -1 for backward.
func (f *Federation) search(point []float64, direction float64) (float64, bool) {
	if f.included(point) {
		return 0, true
	}
	lo, hi := 0.0, 1.0
	for !f.included(shift(point, hi, direction)) {
		lo = hi
		hi *= 2
		if hi > maxDelaySearch {
			return 0, false
		}
	}
	for hi-lo > delayEpsilon {
		mid := (lo + hi) / 2
		if f.included(shift(point, mid, direction)) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, true
}

func shift(point []float64, delta, direction float64) []float64 {
	out := make([]float64, len(point))
	out[0] = point[0]
	for i := 1; i < len(point); i++ {
		out[i] = point[i] + direction*delta
	}
	return out
}

func (f *Federation) included(point []float64) bool {
	for _, n := range f.nodes() {
		if n.h.Matrix().IsPointIncludedReal(point) {
			return true
		}
	}
	return false
}

// GetMinDelay returns the smallest δ ≥ 0 such that point shifted forward by
// δ on every active clock lies in the federation.
func (f *Federation) GetMinDelay(point []float64) (float64, error) {
	d, ok := f.search(point, 1)
	if !ok {
		return 0, ErrNoDelay
	}
	return d, nil
}

// GetMaxDelay returns the largest δ ≥ 0, located by doubling and then
// bisection, at which point shifted forward is still in the federation.
// If the point is still inside once the doubling passes maxDelaySearch, that
// finite probe delay is returned; +∞ is never returned. It returns
// ErrNoDelay if point is not in the federation to begin with.
func (f *Federation) GetMaxDelay(point []float64) (float64, error) {
	if !f.included(point) {
		return 0, ErrNoDelay
	}
	lo, hi := 0.0, 1.0
	for f.included(shift(point, hi, 1)) {
		hi *= 2
		if hi > maxDelaySearch {
			return hi, nil // unbounded within search resolution
		}
	}
	for hi-lo > delayEpsilon {
		mid := (lo + hi) / 2
		if f.included(shift(point, mid, 1)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// GetMaxBackDelay returns the largest δ ≥ 0 such that point shifted
// backward by every δ' ∈ [0, δ] remains in the federation.
func (f *Federation) GetMaxBackDelay(point []float64) (float64, error) {
	if !f.included(point) {
		return 0, ErrNoDelay
	}
	lo, hi := 0.0, 1.0
	for f.included(shift(point, hi, -1)) {
		hi *= 2
		if hi > maxDelaySearch {
			return hi, nil
		}
	}
	for hi-lo > delayEpsilon {
		mid := (lo + hi) / 2
		if f.included(shift(point, mid, -1)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// GetDelay returns the smallest δ (forward if positive, backward if
// negative) needed to bring point inside the federation, preferring
// forward delay when both directions succeed at the same magnitude.
func (f *Federation) GetDelay(point []float64) (float64, error) {
	fwd, fwdOK := f.search(point, 1)
	back, backOK := f.search(point, -1)
	switch {
	case fwdOK && (!backOK || fwd <= back):
		return fwd, nil
	case backOK:
		return -back, nil
	default:
		return 0, ErrNoDelay
	}
}
