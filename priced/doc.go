// Package priced extends a zone with a cost function: a per-clock rate
// vector and a constant offset, giving cost(x) = offset + Σᵢ rates[i]·xᵢ
// for any valuation x in the zone. Infimum computes the minimum of that
// cost over the zone via a dual network simplex on the zone's minimal
// constraint graph — the arcs are the essential difference constraints,
// the supply/demand at clock i is -rates[i], and the simplex pivots until
// every reduced cost is non-negative.
//
// The infimum is cached on the PricedDBM and invalidated by SetRates,
// SetOffset and ShiftOffset. Changes made to the zone through Matrix() do
// not invalidate it.
package priced
