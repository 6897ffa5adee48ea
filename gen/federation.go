// File: federation.go
// Role: random federation generation layered on RandomDBM, used by the
// federation package's property-based tests.

package gen

import (
	"github.com/zonelib/udbm/dbmstore"
	"github.com/zonelib/udbm/federation"
)

// RandomFederation builds a federation of members random zones of the
// given dimension, none of which need be disjoint (Subtract/MergeReduce in
// the federation package are exactly what normalizes that).
func RandomFederation(dim, members int, opts ...Option) (*federation.Federation, error) {
	f := federation.New(dim)
	for i := 0; i < members; i++ {
		d, err := RandomDBM(dim, opts...)
		if err != nil {
			return nil, err
		}
		f.Add(dbmstore.Wrap(d))
	}
	return f, nil
}
