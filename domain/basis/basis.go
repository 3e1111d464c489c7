// Package basis provides the Karhunen-Loève spectral basis of standard
// Brownian motion on [0,1]: eigenvalues 1/(π²(k−1/2)²) paired with
// eigenfunctions √2·sin(π(k−1/2)t).
package basis

import (
	"math"

	"github.com/Gogonemnem/FDA/internal/errors"
)

// EigenPair couples one eigenvalue of the Brownian covariance operator with
// its eigenfunction. Index is 1-based; pairs are immutable once constructed.
type EigenPair struct {
	Index int
	Value float64
}

// Evaluate computes the eigenfunction √2·sin(π(k−1/2)t) at time t.
func (p EigenPair) Evaluate(t float64) float64 {
	return math.Sqrt2 * math.Sin(math.Pi*(float64(p.Index)-0.5)*t)
}

// Eigenvalue returns 1/(π²(k−1/2)²) for 1-based index k.
func Eigenvalue(k int) float64 {
	d := math.Pi * (float64(k) - 0.5)
	return 1.0 / (d * d)
}

// Basis is the truncated spectral basis of size J. Pairs are ordered by
// index, so eigenvalues are strictly decreasing.
type Basis struct {
	Pairs []EigenPair
}

// New constructs the truncated basis of size j. Rejects j <= 0.
func New(j int) (*Basis, error) {
	if j <= 0 {
		return nil, errors.InvalidInput("basis size must be positive")
	}
	pairs := make([]EigenPair, j)
	for k := 1; k <= j; k++ {
		pairs[k-1] = EigenPair{Index: k, Value: Eigenvalue(k)}
	}
	return &Basis{Pairs: pairs}, nil
}

// Size returns the number of eigenpairs in the basis.
func (b *Basis) Size() int {
	return len(b.Pairs)
}

// Eigenvalues returns the eigenvalues in index order.
func (b *Basis) Eigenvalues() []float64 {
	vals := make([]float64, len(b.Pairs))
	for i, p := range b.Pairs {
		vals[i] = p.Value
	}
	return vals
}

// Truncate returns the leading eigenvalues for null-distribution
// calibration. Rejects jTrunc outside 1..Size.
func (b *Basis) Truncate(jTrunc int) ([]float64, error) {
	if jTrunc <= 0 || jTrunc > len(b.Pairs) {
		return nil, errors.InvalidInput("truncation size must be in 1..basis size")
	}
	return b.Eigenvalues()[:jTrunc], nil
}
