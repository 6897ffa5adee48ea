// File: pricing.go
// Role: PricedDBM — a zone plus a linear cost function, with a cached
// infimum invalidated on every mutation.

package priced

import "github.com/zonelib/udbm/dbm"

// PricedDBM pairs a zone with a cost function cost(x) = Offset +
// Σᵢ Rates[i]·xᵢ, valid for any x in the zone. Rates[0] is unused (clock 0
// is the fixed reference).
type PricedDBM struct {
	matrix *dbm.DBM
	rates  []int32
	offset int32

	infimumCached bool
	infimumValue  int32
	unbounded     bool
}

// New wraps d with the given per-clock rates and constant offset. len(rates)
// must equal d.Dim().
func New(d *dbm.DBM, rates []int32, offset int32) (*PricedDBM, error) {
	if len(rates) != d.Dim() {
		return nil, ErrDimensionMismatch
	}
	return &PricedDBM{matrix: d, rates: append([]int32{}, rates...), offset: offset}, nil
}

// Matrix returns the underlying zone.
func (p *PricedDBM) Matrix() *dbm.DBM { return p.matrix }

// Rates returns the per-clock rate vector.
func (p *PricedDBM) Rates() []int32 { return p.rates }

// Offset returns the constant cost term.
func (p *PricedDBM) Offset() int32 { return p.offset }

// SetRates replaces the rate vector and invalidates the infimum cache.
func (p *PricedDBM) SetRates(rates []int32) error {
	if len(rates) != p.matrix.Dim() {
		return ErrDimensionMismatch
	}
	p.rates = append([]int32{}, rates...)
	p.invalidate()
	return nil
}

// SetOffset replaces the constant cost term and invalidates the cache.
func (p *PricedDBM) SetOffset(offset int32) {
	p.offset = offset
	p.invalidate()
}

// ShiftOffset adjusts the offset by rates·delta, the correction required
// when the zone's own zero point moves uniformly by delta along every
// clock (e.g. after a delay), and invalidates the cache.
func (p *PricedDBM) ShiftOffset(delta int32) {
	var sum int32
	for i := 1; i < len(p.rates); i++ {
		sum += p.rates[i] * delta
	}
	p.offset += sum
	p.invalidate()
}

func (p *PricedDBM) invalidate() {
	p.infimumCached = false
}

func (p *PricedDBM) allRatesNonNegative() bool {
	for _, r := range p.rates {
		if r < 0 {
			return false
		}
	}
	return true
}

// Infimum returns the minimum of the cost function over the zone. When
// every rate is non-negative the infimum is attained at the zone's own
// lower corner (each clock at its minimum feasible value against the
// reference clock); otherwise the dual network simplex is run once and
// cached.
func (p *PricedDBM) Infimum() (int32, error) {
	if p.matrix.IsEmpty() {
		return 0, ErrEmptyZone
	}
	if p.infimumCached {
		if p.unbounded {
			return 0, ErrUnbounded
		}
		return p.infimumValue, nil
	}

	if p.allRatesNonNegative() {
		solution := p.offset
		for i := 1; i < len(p.rates); i++ {
			solution += p.rates[i] * -valueAt(p.matrix, 0, i)
		}
		p.infimumCached = true
		p.unbounded = false
		p.infimumValue = solution
		return solution, nil
	}

	tree := infimumNetSimplex(p.matrix, p.rates)
	dim := p.matrix.Dim()
	solution := p.offset
	for i := 1; i < dim; i++ {
		if tree[i].potential == infinityValue && tree[i].pred == 0 && tree[i].flow > 0 {
			p.infimumCached = true
			p.unbounded = true
			return 0, ErrUnbounded
		}
		solution += p.rates[i] * tree[i].potential
	}
	p.infimumCached = true
	p.unbounded = false
	p.infimumValue = solution
	return solution, nil
}

// InfimumValuation returns the clock valuation achieving the infimum.
// valuation[0] is always 0 (the reference clock). Returns ErrUnbounded if
// the cost is unbounded below, matching the domain-error case of the
// scalar Infimum.
func (p *PricedDBM) InfimumValuation() ([]int32, error) {
	if p.matrix.IsEmpty() {
		return nil, ErrEmptyZone
	}
	dim := p.matrix.Dim()
	valuation := make([]int32, dim)

	if p.allRatesNonNegative() {
		for i := 1; i < dim; i++ {
			valuation[i] = -valueAt(p.matrix, 0, i)
		}
		return valuation, nil
	}

	tree := infimumNetSimplex(p.matrix, p.rates)
	for i := 1; i < dim; i++ {
		if tree[i].potential == infinityValue && tree[i].pred == 0 && tree[i].flow > 0 {
			return nil, ErrUnbounded
		}
		valuation[i] = tree[i].potential
	}
	return valuation, nil
}
