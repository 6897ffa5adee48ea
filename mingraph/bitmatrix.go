// File: bitmatrix.go
// Role: BitMatrix, the n² essential-edge marker produced by Analyze.

package mingraph

// BitMatrix marks, for each (i,j) with i != j, whether the constraint
// D[i][j] is essential to the closure of the DBM it was computed from.
type BitMatrix struct {
	Dim  int
	bits []bool
}

// NewBitMatrix allocates an all-clear BitMatrix of the given dimension.
func NewBitMatrix(dim int) *BitMatrix {
	return &BitMatrix{Dim: dim, bits: make([]bool, dim*dim)}
}

// Set marks (i,j) essential.
func (b *BitMatrix) Set(i, j int) { b.bits[i*b.Dim+j] = true }

// Clear marks (i,j) not essential.
func (b *BitMatrix) Clear(i, j int) { b.bits[i*b.Dim+j] = false }

// Get reports whether (i,j) is marked essential.
func (b *BitMatrix) Get(i, j int) bool { return b.bits[i*b.Dim+j] }

// Count returns the number of essential edges marked.
func (b *BitMatrix) Count() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether two bit matrices of the same dimension agree on
// every entry.
func (b *BitMatrix) Equal(other *BitMatrix) bool {
	if b.Dim != other.Dim {
		return false
	}
	for i := range b.bits {
		if b.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}
