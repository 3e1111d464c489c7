package sim

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Gogonemnem/FDA/internal/errors"
)

// ScoreSampler draws independent Gaussian Karhunen-Loève scores with
// diagonal covariance equal to the eigenvalue vector. Scaling independent
// unit normals by √λ_j is equivalent to a diagonal multivariate normal draw
// and avoids any matrix machinery.
type ScoreSampler struct {
	scales []float64 // √eigenvalue per basis index
}

// NewScoreSampler creates a sampler for the given eigenvalue vector.
func NewScoreSampler(eigenvalues []float64) (*ScoreSampler, error) {
	if len(eigenvalues) == 0 {
		return nil, errors.InvalidInput("eigenvalue vector must be nonempty")
	}
	scales := make([]float64, len(eigenvalues))
	for j, ev := range eigenvalues {
		if ev <= 0 {
			return nil, errors.InvalidInput("eigenvalues must be positive")
		}
		scales[j] = math.Sqrt(ev)
	}
	return &ScoreSampler{scales: scales}, nil
}

// Sample draws n independent score vectors of length J.
func (s *ScoreSampler) Sample(n int, src rand.Source) [][]float64 {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	scores := make([][]float64, n)
	for i := range scores {
		row := make([]float64, len(s.scales))
		for j, scale := range s.scales {
			row[j] = scale * normal.Rand()
		}
		scores[i] = row
	}
	return scores
}
