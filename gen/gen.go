// File: gen.go
// Role: random zone, superset/subset and point generators for
// property-based tests, grounded on original_source/src/gen.c's
// dbm_generate/dbm_generateConstrained/dbm_generateSuperset/
// dbm_generateSubset/dbm_generatePoint.

package gen

import (
	"math/rand"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

// Options configures the generators, mirroring the range/retry knobs
// dbm_generate's callers pass explicitly in the original test suite.
type Options struct {
	// Range bounds the magnitude of generated constraint values. Mirrors
	// dbm_generate's range argument; values below 20 are raised to 20.
	Range int32
	// Retries bounds how many attempts a constrained generator makes
	// before giving up with ErrGenerationFailed.
	Retries int
	rng     *rand.Rand
}

// Option configures an Options value.
type Option func(*Options)

// WithRange sets the approximate magnitude of generated bounds.
func WithRange(r int32) Option {
	return func(o *Options) { o.Range = r }
}

// WithRetries sets the retry budget for constrained generation.
func WithRetries(n int) Option {
	return func(o *Options) { o.Retries = n }
}

// WithSource sets the random source, for reproducible tests.
func WithSource(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// DefaultOptions returns the generator defaults: range 20, 64 retries, and
// a new random source seeded with 1.
func DefaultOptions() Options {
	return Options{Range: 20, Retries: 64, rng: rand.New(rand.NewSource(1))}
}

func build(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Range < 20 {
		o.Range = 20
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}
	return o
}

// RandomDBM generates a random closed, non-empty zone of the given
// dimension: every clock gets a random lower and upper bound against the
// reference clock, the zone is closed, then a handful of random pairwise
// constraints are tightened without ever making it empty. Mirrors
// dbm_generate's two-phase "bounds then disturb" structure.
func RandomDBM(dim int, opts ...Option) (*dbm.DBM, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	o := build(opts)
	if dim == 1 {
		return dbm.New(dim), nil
	}
	for attempt := 0; attempt < o.Retries; attempt++ {
		if d, ok := tryRandomDBM(dim, o); ok {
			return d, nil
		}
	}
	return nil, ErrGenerationFailed
}

// tryRandomDBM makes a single attempt, reporting ok=false if a disturbance
// emptied the zone (the caller retries with fresh randomness rather than
// recursing, bounding worst-case stack depth).
func tryRandomDBM(dim int, o Options) (*dbm.DBM, bool) {
	d := dbm.New(dim)
	for i := 1; i < dim; i++ {
		middle := o.rng.Int31n(o.Range/2 + 1)
		lower := 1 - o.rng.Int31n(middle+1)
		upper := 1 + middle + o.rng.Int31n(o.Range/2+1)
		d.Constrain(0, i, bound.Encode(-lower, false))
		d.Constrain(i, 0, bound.Encode(upper, false))
	}

	threshold := dim * (dim - 1) / 2
	tightened := 0
	for i := 1; i < dim && tightened < 2*threshold; i++ {
		for j := 0; j < i; j++ {
			switch o.rng.Intn(4) {
			case 1:
				tightenEntry(d, i, j, o.rng)
				tightened++
			case 2:
				tightenEntry(d, j, i, o.rng)
				tightened++
			case 3:
				tightenEntry(d, i, j, o.rng)
				tightenEntry(d, j, i, o.rng)
				tightened += 2
			}
			if d.IsEmpty() {
				return nil, false
			}
		}
	}
	return d, true
}

// tightenEntry lowers the value of a finite D[i][j] by a random amount of
// 0, 1 or 2, keeping its strictness; the result may be empty.
func tightenEntry(d *dbm.DBM, i, j int, rng *rand.Rand) {
	cur := d.At(i, j)
	if cur.IsInfinity() {
		return
	}
	v, strict := cur.Decode()
	delta := rng.Int31n(3)
	if delta == 0 {
		return
	}
	d.Constrain(i, j, bound.Encode(v-delta, strict))
}

// RandomConstrainedDBM generates a random non-empty zone satisfying the
// given literal constraints, retrying with a fresh random zone on failure.
// Mirrors dbm_generateConstrained.
func RandomConstrainedDBM(dim int, constraints []dbm.Constraint, opts ...Option) (*dbm.DBM, error) {
	o := build(opts)
	for attempt := 0; attempt < o.Retries; attempt++ {
		d, err := RandomDBM(dim, opts...)
		if err != nil {
			return nil, err
		}
		if d.ConstrainMany(constraints) && !d.IsEmpty() {
			return d, nil
		}
	}
	return nil, ErrGenerationFailed
}

// RandomArgDBM generates a second zone of the same dimension as src,
// suitable as the other argument to an intersection or subtraction test.
// Mirrors dbm_generateArgDBM.
func RandomArgDBM(src *dbm.DBM, opts ...Option) (*dbm.DBM, error) {
	return RandomDBM(src.Dim(), opts...)
}

// RandomSuperset generates a zone that contains src (every bound at least
// as loose), re-closing after widening. Mirrors dbm_generateSuperset.
func RandomSuperset(src *dbm.DBM, opts ...Option) *dbm.DBM {
	o := build(opts)
	dst := src.Copy()
	dim := dst.Dim()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			cur := dst.At(i, j)
			if cur.IsInfinity() {
				continue
			}
			if o.rng.Intn(3) != 0 {
				continue
			}
			v, strict := cur.Decode()
			dst.Set(i, j, bound.Encode(v+1+o.rng.Int31n(5), strict))
		}
	}
	dst.Close()
	return dst
}

// RandomSubset generates a zone included in src, tightening a handful of
// entries, and reports whether the inclusion is strict. Mirrors
// dbm_generateSubset.
func RandomSubset(src *dbm.DBM, opts ...Option) (*dbm.DBM, bool) {
	o := build(opts)
	dst := src.Copy()
	dim := dst.Dim()
	strictened := false
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j || o.rng.Intn(3) != 0 {
				continue
			}
			before := dst.At(i, j)
			tightenEntry(dst, i, j, o.rng)
			if dst.IsEmpty() {
				*dst = *src.Copy()
				strictened = false
				continue
			}
			if dst.At(i, j) != before {
				strictened = true
			}
		}
	}
	return dst, strictened
}

// RandomPoint generates a random integer point included in d. Mirrors
// dbm_generatePoint: each clock is sampled within [lower(i), upper(i)]
// derived from D[0][i]/D[i][0], then the draw is validated against the
// full zone (diagonal constraints may still reject it).
func RandomPoint(d *dbm.DBM, opts ...Option) ([]int32, bool) {
	o := build(opts)
	dim := d.Dim()
	pt := make([]int32, dim)
	for attempt := 0; attempt < o.Retries; attempt++ {
		for i := 1; i < dim; i++ {
			lower := -d.At(0, i).Value()
			upperBound := d.At(i, 0)
			var upper int32
			if upperBound.IsInfinity() {
				upper = lower + o.Range
			} else {
				upper = upperBound.Value()
			}
			if upper < lower {
				upper = lower
			}
			pt[i] = lower + o.rng.Int31n(upper-lower+1)
		}
		if d.IsPointIncludedInt(pt) {
			return pt, true
		}
	}
	return nil, false
}

// RandomRealPoint generates a random real-valued point included in d by
// adding a random fraction in [0, 0.5) to the last clock of an integer point.
// Mirrors dbm_generateRealPoint.
func RandomRealPoint(d *dbm.DBM, opts ...Option) ([]float64, bool) {
	o := build(opts)
	intPt, ok := RandomPoint(d, opts...)
	if !ok {
		return nil, false
	}
	pt := make([]float64, len(intPt))
	for i, v := range intPt {
		pt[i] = float64(v)
	}
	for attempt := 0; attempt < o.Retries; attempt++ {
		frac := o.rng.Float64() * 0.5
		pt[len(pt)-1] = float64(intPt[len(intPt)-1]) + frac
		if d.IsPointIncludedReal(pt) {
			return pt, true
		}
	}
	return pt, d.IsPointIncludedReal(pt)
}
